package server

import (
	"context"

	"teamsync-be/internal/bootstrap"
	"teamsync-be/internal/config"
	"teamsync-be/internal/metrics"
	"teamsync-be/internal/pkg/apperror"
	"teamsync-be/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "TeamSync API",
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: serverutils.NewErrorHandler(container.Logger),
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type",
	}))
	app.Use(otelfiber.Middleware())

	if cfg.App.MetricsEnabled {
		app.Use(metrics.Middleware())
		app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))
	}

	if cfg.Media.Driver == "local" {
		app.Static("/uploads", cfg.Media.LocalDir)
	}

	app.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Welcome to TeamSync API!",
			"status":  "OK",
		})
	})

	container.RegisterRoutes(app.Group("/api/v1"))

	app.Use(func(ctx *fiber.Ctx) error {
		return apperror.NotFound("Route not found")
	})

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	s.container.Logger.Info("SERVER", "Server is running", map[string]interface{}{"port": s.cfg.App.Port})
	return s.app.Listen(":" + s.cfg.App.Port)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}
