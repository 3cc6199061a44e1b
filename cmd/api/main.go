package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"tutorial-api/config"
	_ "tutorial-api/docs" // Swagger docs
	"tutorial-api/internal/httpserver"
	"tutorial-api/internal/middleware"
	"tutorial-api/pkg/log"
)

// @title       Tutorial API
// @description Path, query, header, cookie and body parameter demos with 422 validation errors.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	config.Watch(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Tutorial API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		Middleware: middleware.Config{
			RateLimitEnabled:    cfg.RateLimit.Enabled,
			RateLimitPerMin:     cfg.RateLimit.PerMin,
			RateLimitBurst:      cfg.RateLimit.Burst,
			RateLimitMaxClients: cfg.RateLimit.MaxClients,
			RateLimitTTL:        cfg.RateLimit.TTL,
		},
		MetricsEnabled: cfg.Metrics.Enabled,
		MetricsPath:    cfg.Metrics.Path,
		SwaggerEnabled: cfg.Swagger.Enabled,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 4. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
