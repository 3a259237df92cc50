package dto

import (
	"fmt"
	"reflect"
	"strings"

	"career-guide/internal/domain/student"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate runs struct tag validation on a request body.
func Validate(req interface{}) error {
	return validate.Struct(req)
}

// FieldErrors flattens validator output into "field: rule" strings. It
// returns nil when err is not a validation error.
func FieldErrors(err error) []string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, fmt.Sprintf("%s: %s", jsonFieldName(fe.Namespace()), fe.Tag()))
	}
	return out
}

// jsonFieldName drops the top-level struct name from a validator namespace,
// e.g. UpdateProfileRequest.career_goal.title -> career_goal.title.
func jsonFieldName(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

type AnalyzeResumeRequest struct {
	// Text must be present; an empty string is a valid resume.
	Text *string `json:"text" validate:"required"`
}

type UpdateProgressRequest struct {
	StudentID string `json:"student_id" validate:"required"`
	Skill     string `json:"skill" validate:"required"`
}

type CareerGoalRequest struct {
	Title  string  `json:"title" validate:"required"`
	Reason *string `json:"reason,omitempty"`
}

type UpdateProfileRequest struct {
	Name       *string            `json:"name,omitempty"`
	Email      *string            `json:"email,omitempty"`
	Education  *string            `json:"education,omitempty"`
	CareerGoal *CareerGoalRequest `json:"career_goal,omitempty"`
}

func (r UpdateProfileRequest) ToPatch() student.ProfilePatch {
	patch := student.ProfilePatch{
		Name:      r.Name,
		Email:     r.Email,
		Education: r.Education,
	}
	if r.CareerGoal != nil {
		patch.CareerGoal = &student.CareerGoal{
			Title:  r.CareerGoal.Title,
			Reason: r.CareerGoal.Reason,
		}
	}
	return patch
}
