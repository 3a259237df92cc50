package handler

import (
	"career-guide/internal/delivery/http/dto"
	"career-guide/internal/pkg/response"
	"career-guide/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MarketHandler struct {
	uc usecase.MarketUsecase
}

func NewMarketHandler(uc usecase.MarketUsecase) *MarketHandler {
	return &MarketHandler{uc: uc}
}

func (h *MarketHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/resources/:skill", h.Resources)
	r.Get("/market_data", h.MarketData)
	r.Get("/skills", h.Skills)
	r.Get("/careers", h.Careers)
}

func (h *MarketHandler) Resources(c fiber.Ctx) error {
	list, err := h.uc.GetResources(c.Context(), c.Params("skill"))
	if err != nil {
		return mapMarketUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, list)
}

func (h *MarketHandler) MarketData(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, h.uc.GetMarketData(c.Context()))
}

func (h *MarketHandler) Skills(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, h.uc.ListSkills(c.Context()))
}

func (h *MarketHandler) Careers(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCareerResponses(h.uc.ListCareers(c.Context())))
}
