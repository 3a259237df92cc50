package routes

import (
	"career-guide/internal/delivery/http/handler"
	"career-guide/internal/usecase"
	"career-guide/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Deps struct {
	AppName  string
	Analysis usecase.AnalysisUsecase
	Students usecase.StudentUsecase
	Market   usecase.MarketUsecase
	WS       *ws.Handler
}

type Registry struct {
	health   *handler.HealthHandler
	analysis *handler.AnalysisHandler
	students *handler.StudentHandler
	market   *handler.MarketHandler
	ws       *ws.Handler
}

func NewRegistry(d Deps) *Registry {
	return &Registry{
		health:   handler.NewHealthHandler(d.AppName),
		analysis: handler.NewAnalysisHandler(d.Analysis),
		students: handler.NewStudentHandler(d.Students),
		market:   handler.NewMarketHandler(d.Market),
		ws:       d.WS,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)
	r.analysis.RegisterRoutes(app)
	r.students.RegisterRoutes(app)
	r.market.RegisterRoutes(app)
	if r.ws != nil {
		app.Get("/ws/students", r.ws.HandleStudentsWS)
	}
}
