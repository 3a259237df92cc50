package handler

import (
	"io"

	"career-guide/internal/delivery/http/dto"
	"career-guide/internal/delivery/http/middleware"
	"career-guide/internal/pkg/response"
	"career-guide/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const maxUploadBytes = 10 << 20

type AnalysisHandler struct {
	uc usecase.AnalysisUsecase
}

func NewAnalysisHandler(uc usecase.AnalysisUsecase) *AnalysisHandler {
	return &AnalysisHandler{uc: uc}
}

func (h *AnalysisHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/analyze_resume", h.Analyze)
	r.Post("/analyze_resume/upload", h.Upload)
}

func (h *AnalysisHandler) Analyze(c fiber.Ctx) error {
	var req dto.AnalyzeResumeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	res, err := h.uc.AnalyzeResume(c.Context(), *req.Text)
	if err != nil {
		return mapAnalysisUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageResumeAnalyzed, dto.NewAnalysisResponse(res))
}

func (h *AnalysisHandler) Upload(c fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Missing file", nil, err)
	}
	if fh.Size > maxUploadBytes {
		return middleware.NewAppError(fiber.StatusRequestEntityTooLarge, "File too large", nil, nil)
	}

	f, err := fh.Open()
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, msgBadRequest, nil, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, msgBadRequest, nil, err)
	}

	res, err := h.uc.AnalyzeDocument(c.Context(), usecase.DocumentInput{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(fiber.HeaderContentType),
		Data:        data,
	})
	if err != nil {
		return mapAnalysisUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageResumeAnalyzed, dto.NewAnalysisResponse(res))
}
