// @title         ai-service API
// @version       1.0
// @description   Gateway that answers a patient chat message with a single reply, from the configured LLM provider or a local fallback.
// @BasePath      /
// @schemes       http
// @host          localhost:8080
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	swagger "github.com/gofiber/swagger"

	_ "github.com/artem13815/ai-service/docs"

	// internal imports
	"github.com/artem13815/ai-service/api/http"
	"github.com/artem13815/ai-service/api/http/handlers"
	"github.com/artem13815/ai-service/pkg/config"
	"github.com/artem13815/ai-service/pkg/generate"
	"github.com/artem13815/ai-service/pkg/health"
	"github.com/artem13815/ai-service/pkg/health/checkers"
	"github.com/artem13815/ai-service/pkg/llm/openai"
	"github.com/artem13815/ai-service/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration from env/.env
	config.LoadDotEnv()
	log := logger.New(os.Getenv("LOG_LEVEL"), os.Getenv("APP_ENV"))
	cfg := config.Load(log)
	settings := cfg.Settings

	// Wire dependencies
	llmClient := openai.New(settings)
	generateUC := generate.NewService(settings, llmClient, log)
	generateHandler := handlers.NewGenerateHandler(generateUC)

	readiness := health.NewService(checkers.NewProviderChecker(settings))
	healthHandler := handlers.NewHealthHandler(readiness, settings.Provider)

	app := http.NewApp(log, cfg.FrontendURL)
	http.Register(app, healthHandler, generateHandler)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			log.Error().Err(err).Msg("shutdown")
		}
	}()

	log.Info().
		Str("port", cfg.Port).
		Str("provider", settings.Provider).
		Str("model", settings.Model).
		Float64("timeout_seconds", settings.RequestTimeoutSeconds).
		Msg("HTTP server listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
