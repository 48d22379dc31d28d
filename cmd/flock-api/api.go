// Package main provides the dev API server. It implements the hosted
// backend's REST contract so the client and CLI can run against a local
// instance.
package main

import (
	"log/slog"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/gofiber/fiber/v3/middleware/logger"

	"github.com/flockhq/flock/pkg/eventbus"
	"github.com/flockhq/flock/pkg/persistence"
	"github.com/flockhq/flock/pkg/services"
	"github.com/flockhq/flock/pkg/web"
)

type API struct {
	logger      *slog.Logger
	persistence persistence.Persistence
	eventBus    eventbus.EventBus
	validate    *validator.Validate
}

func NewAPI(
	logger *slog.Logger,
	persistence persistence.Persistence,
	eventBus eventbus.EventBus,
) *API {
	return &API{
		logger:      logger,
		persistence: persistence,
		eventBus:    eventBus,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (a *API) App() *fiber.App {
	workflowService := services.NewWorkflow(a.persistence, a.eventBus, a.logger)
	sessionService := services.NewSession(a.persistence, a.eventBus, a.logger)
	rosterService := services.NewRoster(a.persistence, a.eventBus, a.logger)

	handlers := web.NewAPIHandlers(workflowService, sessionService, rosterService, a.validate)

	app := fiber.New()
	app.Use(cors.New())
	app.Use(logger.New(logger.Config{
		DisableColors: true,
	}))

	app.Get(healthcheck.DefaultLivenessEndpoint, healthcheck.NewHealthChecker())
	app.Get(healthcheck.DefaultReadinessEndpoint, healthcheck.NewHealthChecker())

	app.Get("/", func(c fiber.Ctx) error {
		return c.SendString("Flock API")
	})

	handlers.Register(app)

	app.Get("/health", func(c fiber.Ctx) error {
		message, healthy := workflowService.HealthCheck(c.Context())
		if !healthy {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "unhealthy", "message": message,
			})
		}

		return c.JSON(fiber.Map{"status": "healthy", "message": message})
	})

	return app
}

func (a *API) Start(port int) error {
	return a.App().Listen(":" + strconv.Itoa(port))
}
