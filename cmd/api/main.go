package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"task-command-interpreter/config"
	"task-command-interpreter/internal/httpserver"
	"task-command-interpreter/internal/intent"
	interpretHTTP "task-command-interpreter/internal/interpret/delivery/http"
	"task-command-interpreter/internal/interpret/usecase"
	"task-command-interpreter/internal/middleware"
	"task-command-interpreter/internal/resolver"
	"task-command-interpreter/pkg/log"
)

// @title       Task Command Interpreter API
// @description Rule-based interpretation of free-text commands into structured task, project, and user operations.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
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

	logger.Info(ctx, "Starting Task Command Interpreter...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Core pipeline
	parser := intent.New(logger)

	store := resolver.NewLearningStore(cfg.Interpreter.MaxSessions, cfg.Interpreter.SessionTTL)
	entityResolver := resolver.New(logger, store, resolver.Options{
		MinConfidence:   cfg.Interpreter.MinConfidence,
		AmbiguityMargin: cfg.Interpreter.AmbiguityMargin,
		LearnedBoost:    cfg.Interpreter.LearnedBoost,
	})

	// 4. Interpret domain
	interpretUC := usecase.New(logger, parser, entityResolver)
	interpretHandler := interpretHTTP.New(logger, interpretUC)

	// 5. Middleware
	mw := middleware.New(logger, cfg.RateLimit)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		InterpretHandler: interpretHandler,
		Middleware:       mw,
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
