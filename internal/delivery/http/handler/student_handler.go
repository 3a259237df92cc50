package handler

import (
	"career-guide/internal/delivery/http/dto"
	"career-guide/internal/pkg/response"
	"career-guide/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type StudentHandler struct {
	uc usecase.StudentUsecase
}

func NewStudentHandler(uc usecase.StudentUsecase) *StudentHandler {
	return &StudentHandler{uc: uc}
}

func (h *StudentHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/students", h.List)
	r.Get("/student/:id", h.Get)
	r.Get("/student/:id/progress", h.Progress)
	r.Post("/update_progress", h.UpdateProgress)
	r.Post("/update_profile/:id", h.UpdateProfile)
}

func (h *StudentHandler) Get(c fiber.Ctx) error {
	rec, err := h.uc.GetStudent(c.Context(), c.Params("id"))
	if err != nil {
		return mapStudentUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewStudentResponse(rec))
}

func (h *StudentHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListStudents(c.Context())
	if err != nil {
		return mapStudentUsecaseError(err)
	}

	res := make([]dto.StudentResponse, 0, len(items))
	for _, it := range items {
		res = append(res, dto.NewStudentResponse(it))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *StudentHandler) Progress(c fiber.Ctx) error {
	report, err := h.uc.GetProgress(c.Context(), c.Params("id"))
	if err != nil {
		return mapStudentUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProgressResponse(report))
}

func (h *StudentHandler) UpdateProgress(c fiber.Ctx) error {
	var req dto.UpdateProgressRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	report, err := h.uc.UpdateProgress(c.Context(), req.StudentID, req.Skill)
	if err != nil {
		return mapStudentUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageProgressUpdated, dto.NewProgressResponse(report))
}

func (h *StudentHandler) UpdateProfile(c fiber.Ctx) error {
	var req dto.UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	profile, err := h.uc.UpdateProfile(c.Context(), c.Params("id"), req.ToPatch())
	if err != nil {
		return mapStudentUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageProfileUpdated, profile)
}
