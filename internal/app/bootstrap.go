package app

import (
	"fmt"
	"log"
	"strings"

	"career-guide/internal/config"
	"career-guide/internal/delivery/http/middleware"
	"career-guide/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(cfg config.Config, c *Container, logger *log.Logger) *App {
	if logger == nil {
		logger = log.Default()
	}
	f := fiber.New(fiber.Config{
		AppName:      cfg.App.AppName,
		UnescapePath: true,
		BodyLimit:    12 << 20,
	})

	registerGlobalMiddleware(f, cfg, logger)
	routes.NewRegistry(routes.Deps{
		AppName:  cfg.App.AppName,
		Analysis: c.Analysis,
		Students: c.Students,
		Market:   c.Market,
		WS:       c.WSHandler,
	}).Register(f)

	return &App{Fiber: f, Container: c}
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	logger := log.Default()

	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("build container: %w", err)
	}

	return New(cfg, c, logger), c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, cfg config.Config, logger *log.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(logger, "/health").Middleware())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.App.CORSAllowOrigins,
		AllowMethods: []string{fiber.MethodGet, fiber.MethodPost, fiber.MethodOptions},
		AllowHeaders: []string{fiber.HeaderContentType, middleware.HeaderRequestID},
	}))
	app.Use(middleware.NewErrorMiddleware(logger).Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
