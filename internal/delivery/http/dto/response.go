package dto

import (
	"time"

	"career-guide/internal/domain/catalog"
	"career-guide/internal/domain/matching"
	"career-guide/internal/domain/student"
	"career-guide/internal/usecase"
)

type AnalysisResponse struct {
	StudentID     string                      `json:"student_id"`
	Skills        []string                    `json:"skills"`
	SkillGaps     []string                    `json:"skill_gaps"`
	Pathway       map[string]catalog.Resource `json:"pathway"`
	CareerMatches []matching.CareerMatch      `json:"career_matches"`
}

func NewAnalysisResponse(res usecase.AnalysisResult) AnalysisResponse {
	return AnalysisResponse{
		StudentID:     res.Student.ID,
		Skills:        res.Student.Skills,
		SkillGaps:     res.Student.SkillGaps,
		Pathway:       res.Student.Pathway,
		CareerMatches: res.TopMatches,
	}
}

type StudentResponse struct {
	StudentID     string                      `json:"student_id"`
	Skills        []string                    `json:"skills"`
	SkillGaps     []string                    `json:"skill_gaps"`
	Pathway       map[string]catalog.Resource `json:"pathway"`
	CareerMatches []matching.CareerMatch      `json:"career_matches"`
	Progress      map[string]bool             `json:"progress"`
	Profile       student.Profile             `json:"profile"`
	CreatedAt     time.Time                   `json:"created_at"`
}

func NewStudentResponse(r student.Record) StudentResponse {
	return StudentResponse{
		StudentID:     r.ID,
		Skills:        r.Skills,
		SkillGaps:     r.SkillGaps,
		Pathway:       r.Pathway,
		CareerMatches: r.CareerMatches,
		Progress:      r.Progress,
		Profile:       r.Profile,
		CreatedAt:     r.CreatedAt,
	}
}

type ProgressResponse struct {
	StudentID  string          `json:"student_id"`
	Completed  int             `json:"completed"`
	Total      int             `json:"total"`
	Percentage float64         `json:"percentage"`
	Progress   map[string]bool `json:"progress"`
}

func NewProgressResponse(r usecase.ProgressReport) ProgressResponse {
	return ProgressResponse{
		StudentID:  r.StudentID,
		Completed:  r.Summary.Completed,
		Total:      r.Summary.Total,
		Percentage: r.Summary.Percentage,
		Progress:   r.Progress,
	}
}

type CareerResponse struct {
	Title string `json:"title"`
	catalog.CareerDefinition
}

func NewCareerResponses(paths catalog.CareerPaths) []CareerResponse {
	out := make([]CareerResponse, 0, len(paths))
	for _, c := range paths {
		out = append(out, CareerResponse{Title: c.Name, CareerDefinition: c})
	}
	return out
}
