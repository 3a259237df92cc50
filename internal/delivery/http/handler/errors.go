package handler

import (
	"errors"

	"career-guide/internal/delivery/http/dto"
	"career-guide/internal/delivery/http/middleware"
	"career-guide/internal/pkg/response"
	"career-guide/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const (
	msgStudentNotFound   = "Student not found"
	msgInvalidSkill      = "Invalid skill"
	msgResourcesNotFound = "Resources not found for this skill"
	msgBadRequest        = "Bad request"
	msgValidationFailed  = "Validation failed"
	msgUnsupportedType   = "Unsupported document type"
)

func mapStudentUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrStudentNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, msgStudentNotFound, nil, err)
	case errors.Is(err, usecase.ErrInvalidSkill):
		return middleware.NewAppError(fiber.StatusBadRequest, msgInvalidSkill, nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, msgBadRequest, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func mapAnalysisUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, msgBadRequest, nil, err)
	case errors.Is(err, usecase.ErrUnsupportedDocument):
		return middleware.NewAppError(fiber.StatusUnsupportedMediaType, msgUnsupportedType, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func mapMarketUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrResourcesNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, msgResourcesNotFound, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

// bindAndValidate decodes the JSON body into req and runs tag validation.
func bindAndValidate(c fiber.Ctx, req interface{}) error {
	if err := c.Bind().Body(req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, msgBadRequest, nil, err)
	}
	if err := dto.Validate(req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, msgValidationFailed, dto.FieldErrors(err), err)
	}
	return nil
}
