package usecase

import "errors"

var (
	ErrStudentNotFound     = errors.New("student not found")
	ErrInvalidSkill        = errors.New("invalid skill")
	ErrResourcesNotFound   = errors.New("resources not found for this skill")
	ErrInvalidInput        = errors.New("invalid input")
	ErrUnsupportedDocument = errors.New("unsupported document type")
	ErrInternal            = errors.New("internal error")
)
