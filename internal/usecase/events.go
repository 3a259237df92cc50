package usecase

import (
	"context"
	"errors"
	"log"
	"math"
	"time"
)

const (
	EventStudentCreated  = "student_created"
	EventProgressUpdated = "progress_updated"
	EventProfileUpdated  = "profile_updated"
)

type ProgressSummary struct {
	Completed  int     `json:"completed"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

func NewProgressSummary(completed, total int) ProgressSummary {
	s := ProgressSummary{Completed: completed, Total: total}
	if total > 0 {
		s.Percentage = math.Round(1000*float64(completed)/float64(total)) / 10
	}
	return s
}

type Event struct {
	Type      string           `json:"type"`
	StudentID string           `json:"student_id"`
	Skill     string           `json:"skill,omitempty"`
	Progress  *ProgressSummary `json:"progress,omitempty"`
	Timestamp string           `json:"timestamp"`
}

type EventPublisher interface {
	Publish(ctx context.Context, evt Event) error
}

type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }

// MultiPublisher delivers an event to every sink and joins their errors.
type MultiPublisher []EventPublisher

func (m MultiPublisher) Publish(ctx context.Context, evt Event) error {
	var errs []error
	for _, p := range m {
		if p == nil {
			continue
		}
		if err := p.Publish(ctx, evt); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func newEvent(typ, studentID string) Event {
	return Event{
		Type:      typ,
		StudentID: studentID,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// publish never fails the caller; delivery problems are only logged.
func publish(ctx context.Context, p EventPublisher, logger *log.Logger, evt Event) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, evt); err != nil && logger != nil {
		logger.Printf("event publish failed | type=%s student_id=%s err=%v", evt.Type, evt.StudentID, err)
	}
}
