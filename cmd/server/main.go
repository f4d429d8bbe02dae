// Package main implements the entry point for the Sakhi API server, which
// serves the menstrual cycle tracker and the app's reference content.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/sakhisuraksha/sakhi-api/internal/config"
	"github.com/sakhisuraksha/sakhi-api/internal/platform/logger"
)

func main() {
	cfg, err := loadAppConfig()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		log.Fatalf("Failed to set up logger: %v", err)
	}

	app, err := newApplication(cfg, l)
	if err != nil {
		l.Error("Failed to initialize application", "error", err)
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.Run(context.Background()); err != nil {
		l.Error("Server stopped with error", "error", err)
		log.Fatalf("Server error: %v", err)
	}
}

// loadAppConfig loads the configuration from .env, config.yaml and the environment.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"rate_limit_enabled", cfg.RateLimit.Enabled,
		"metrics_enabled", cfg.Metrics.Enabled)

	return cfg, nil
}
