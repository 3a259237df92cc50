package usecase

import (
	"context"
	"errors"
	"log"

	"career-guide/internal/domain/catalog"
	"career-guide/internal/domain/matching"
	"career-guide/internal/domain/student"
	"career-guide/internal/infrastructure/document"
)

const topCareerMatches = 3

type DocumentInput struct {
	Filename    string
	ContentType string
	Data        []byte
}

type AnalysisResult struct {
	Student    student.Record
	TopMatches []matching.CareerMatch
}

type AnalysisUsecase interface {
	AnalyzeResume(ctx context.Context, text string) (AnalysisResult, error)
	AnalyzeDocument(ctx context.Context, in DocumentInput) (AnalysisResult, error)
}

type Analysis struct {
	catalog   catalog.Catalog
	extractor matching.Extractor
	chooser   matching.Chooser
	students  student.Repository
	events    EventPublisher
	log       *log.Logger
}

func NewAnalysisUsecase(
	cat catalog.Catalog,
	extractor matching.Extractor,
	chooser matching.Chooser,
	students student.Repository,
	events EventPublisher,
	logger *log.Logger,
) *Analysis {
	if extractor == nil {
		extractor = matching.NewKeywordExtractor(cat.Market.RequiredSkills)
	}
	if chooser == nil {
		chooser = matching.RandomChooser{}
	}
	if events == nil {
		events = NopPublisher{}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Analysis{
		catalog:   cat,
		extractor: extractor,
		chooser:   chooser,
		students:  students,
		events:    events,
		log:       logger,
	}
}

// Evaluate runs the recommendation pipeline without storing anything. The
// returned record has no id and no progress. Empty text yields no skills
// and the whole catalog as gaps.
func (u *Analysis) Evaluate(ctx context.Context, text string) (student.Record, error) {
	skills, err := u.extractor.Extract(ctx, text)
	if err != nil {
		u.log.Printf("analysis status=error stage=extract extractor=%s err=%v", u.extractor.Name(), err)
		return student.Record{}, ErrInternal
	}

	market := u.catalog.Market
	gaps := matching.FindGaps(skills, market.RequiredSkills)
	pathway := matching.GeneratePathway(gaps, u.catalog.Resources, u.chooser)
	matches := matching.RecommendCareers(skills, market.CareerPaths)

	return student.Record{
		Skills:        skills,
		SkillGaps:     gaps,
		Pathway:       pathway,
		CareerMatches: matches,
	}, nil
}

func (u *Analysis) AnalyzeResume(ctx context.Context, text string) (AnalysisResult, error) {
	rec, err := u.Evaluate(ctx, text)
	if err != nil {
		return AnalysisResult{}, err
	}

	created, err := u.students.Create(ctx, rec)
	if err != nil {
		u.log.Printf("analysis status=error stage=store err=%v", err)
		return AnalysisResult{}, ErrInternal
	}

	u.log.Printf("analysis status=ok student_id=%s extractor=%s skills=%d gaps=%d pathway=%d",
		created.ID, u.extractor.Name(), len(created.Skills), len(created.SkillGaps), len(created.Pathway))

	evt := newEvent(EventStudentCreated, created.ID)
	done, total := created.Completion()
	summary := NewProgressSummary(done, total)
	evt.Progress = &summary
	publish(ctx, u.events, u.log, evt)

	return AnalysisResult{
		Student:    created,
		TopMatches: matching.TopMatches(created.CareerMatches, topCareerMatches),
	}, nil
}

func (u *Analysis) AnalyzeDocument(ctx context.Context, in DocumentInput) (AnalysisResult, error) {
	if len(in.Data) == 0 {
		return AnalysisResult{}, ErrInvalidInput
	}

	ct := document.DetectType(in.Filename, in.ContentType)
	text, err := document.ExtractText(ct, in.Data)
	if err != nil {
		if errors.Is(err, document.ErrUnsupportedType) {
			return AnalysisResult{}, ErrUnsupportedDocument
		}
		u.log.Printf("analysis status=error stage=document filename=%q content_type=%s err=%v", in.Filename, ct, err)
		return AnalysisResult{}, ErrInvalidInput
	}

	return u.AnalyzeResume(ctx, text)
}
