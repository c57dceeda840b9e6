package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"

	"github.com/artem13815/ai-service/api/http/handlers"
	"github.com/artem13815/ai-service/api/http/middleware"
)

// NewApp creates the Fiber app with the shared middleware chain.
func NewApp(log zerolog.Logger, frontendURL string) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "ai-service",
		ErrorHandler: handlers.NewErrorHandler(log),
		BodyLimit:    1 << 20,
	})
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(cors.New(cors.Config{
		AllowOrigins: frontendURL,
		AllowHeaders: "Origin, Content-Type, Accept, X-Request-ID",
		AllowMethods: "GET,POST,OPTIONS",
	}))
	return app
}

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, health *handlers.HealthHandler, generate *handlers.GenerateHandler) {
	// Health and readiness endpoints for probes/monitoring
	app.Get("/health", health.Health)
	app.Get("/ready", health.Ready)

	app.Post("/generate", generate.Generate)
}
