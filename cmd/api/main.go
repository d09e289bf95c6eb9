package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"marketplace-assistant/config"
	_ "marketplace-assistant/docs" // Swagger docs
	"marketplace-assistant/internal/assistant/classifier"
	assistantDelivery "marketplace-assistant/internal/assistant/delivery/http"
	"marketplace-assistant/internal/assistant/repository/postgre"
	"marketplace-assistant/internal/assistant/usecase"
	"marketplace-assistant/internal/httpserver"
	"marketplace-assistant/internal/middleware"
	"marketplace-assistant/pkg/gemini"
	"marketplace-assistant/pkg/log"
)

// @title       Marketplace Assistant API
// @description Conversational assistant for a household-services marketplace: intent classification, role-aware answers and multi-turn follow-ups.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Marketplace Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Completion client
	llm, err := gemini.New(gemini.Config{
		APIKey:  cfg.Gemini.APIKey,
		Model:   cfg.Gemini.Model,
		APIURL:  cfg.Gemini.APIURL,
		Timeout: cfg.Gemini.Timeout,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize gemini client: ", err)
		return
	}
	logger.Infof(ctx, "Completion model: %s", llm.Model())

	// 4. Marketplace read database
	db, err := postgre.Open(cfg.Database.DSN)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer db.Close()

	repo := postgre.New(db, logger)

	// 5. Assistant domain
	cls := classifier.New(llm, logger)
	assistantUC := usecase.New(logger, cls, llm, repo, repo, repo)
	assistantHandler := assistantDelivery.New(logger, assistantUC)

	// 6. HTTP server
	mw := middleware.New(logger, cfg.RateLimit.RequestsPerMin)

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		Middleware:       mw,
		AssistantHandler: assistantHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
