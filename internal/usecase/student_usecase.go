package usecase

import (
	"context"
	"errors"
	"log"

	"career-guide/internal/domain/student"
)

type ProgressReport struct {
	StudentID string          `json:"student_id"`
	Summary   ProgressSummary `json:"summary"`
	Progress  map[string]bool `json:"progress"`
}

type StudentUsecase interface {
	GetStudent(ctx context.Context, id string) (student.Record, error)
	ListStudents(ctx context.Context) ([]student.Record, error)
	GetProgress(ctx context.Context, id string) (ProgressReport, error)
	UpdateProgress(ctx context.Context, id string, skill string) (ProgressReport, error)
	UpdateProfile(ctx context.Context, id string, patch student.ProfilePatch) (student.Profile, error)
}

type Student struct {
	students student.Repository
	events   EventPublisher
	log      *log.Logger
}

func NewStudentUsecase(students student.Repository, events EventPublisher, logger *log.Logger) *Student {
	if events == nil {
		events = NopPublisher{}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Student{students: students, events: events, log: logger}
}

// Ids are matched exactly.
func (u *Student) GetStudent(ctx context.Context, id string) (student.Record, error) {
	if id == "" {
		return student.Record{}, ErrStudentNotFound
	}
	rec, err := u.students.GetByID(ctx, id)
	if err != nil {
		return student.Record{}, mapStudentRepoError(err)
	}
	return rec, nil
}

func (u *Student) ListStudents(ctx context.Context) ([]student.Record, error) {
	items, err := u.students.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Student) GetProgress(ctx context.Context, id string) (ProgressReport, error) {
	rec, err := u.GetStudent(ctx, id)
	if err != nil {
		return ProgressReport{}, err
	}
	return progressReport(rec), nil
}

func (u *Student) UpdateProgress(ctx context.Context, id string, skill string) (ProgressReport, error) {
	if id == "" {
		return ProgressReport{}, ErrStudentNotFound
	}

	rec, err := u.students.UpdateProgress(ctx, id, skill)
	if err != nil {
		return ProgressReport{}, mapStudentRepoError(err)
	}

	report := progressReport(rec)
	evt := newEvent(EventProgressUpdated, rec.ID)
	evt.Skill = skill
	evt.Progress = &report.Summary
	publish(ctx, u.events, u.log, evt)

	return report, nil
}

// UpdateProfile stores supplied fields as given. An empty patch changes
// nothing and publishes no event.
func (u *Student) UpdateProfile(ctx context.Context, id string, patch student.ProfilePatch) (student.Profile, error) {
	if id == "" {
		return student.Profile{}, ErrStudentNotFound
	}

	rec, err := u.students.UpdateProfile(ctx, id, patch)
	if err != nil {
		return student.Profile{}, mapStudentRepoError(err)
	}

	if !patch.IsEmpty() {
		publish(ctx, u.events, u.log, newEvent(EventProfileUpdated, rec.ID))
	}
	return rec.Profile, nil
}

func progressReport(rec student.Record) ProgressReport {
	done, total := rec.Completion()
	return ProgressReport{
		StudentID: rec.ID,
		Summary:   NewProgressSummary(done, total),
		Progress:  rec.Progress,
	}
}

func mapStudentRepoError(err error) error {
	switch {
	case errors.Is(err, student.ErrNotFound):
		return ErrStudentNotFound
	case errors.Is(err, student.ErrInvalidSkill):
		return ErrInvalidSkill
	default:
		return ErrInternal
	}
}
