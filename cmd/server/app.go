package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	apiMiddleware "github.com/sakhisuraksha/sakhi-api/internal/api/middleware"
	"github.com/sakhisuraksha/sakhi-api/internal/config"
	"github.com/sakhisuraksha/sakhi-api/internal/content"
	"github.com/sakhisuraksha/sakhi-api/internal/domain/cycle"
	"github.com/sakhisuraksha/sakhi-api/internal/metrics"
	"github.com/sakhisuraksha/sakhi-api/internal/service"
	"github.com/sakhisuraksha/sakhi-api/internal/service/session"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// Metrics; registry is nil when metrics are disabled
	registry *prometheus.Registry
	metrics  metrics.Recorder

	engine  cycle.Service
	tracker service.TrackerService
	tokens  session.TokenService
	catalog *content.Catalog

	// nil when rate limiting is disabled
	rateLimiter *apiMiddleware.RateLimiter

	now func() time.Time
}

// newApplication creates a new application instance with all dependencies initialized.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config:  cfg,
		logger:  logger,
		metrics: metrics.Nop{},
		now:     time.Now,
	}

	if cfg.Metrics.Enabled {
		app.registry = prometheus.NewRegistry()
		app.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		app.metrics = metrics.NewCollector(app.registry)
	}

	var err error
	app.engine, err = cycle.NewDefaultService()
	if err != nil {
		return nil, fmt.Errorf("failed to create cycle engine: %w", err)
	}

	app.tracker, err = service.NewTrackerService(app.engine)
	if err != nil {
		return nil, fmt.Errorf("failed to create tracker service: %w", err)
	}

	app.tokens, err = session.NewJWTService(cfg.Session)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session token service: %w", err)
	}
	logger.Info("Session token service initialized",
		"lifetime_minutes", cfg.Session.LifetimeMinutes)

	app.catalog, err = content.Default()
	if err != nil {
		return nil, fmt.Errorf("failed to load content catalog: %w", err)
	}
	logger.Info("Content catalog loaded",
		"sections", len(app.catalog.Sections),
		"stores", len(app.catalog.Stores),
		"contacts", len(app.catalog.Contacts))

	if cfg.RateLimit.Enabled {
		app.rateLimiter = apiMiddleware.NewRateLimiter(cfg.RateLimit, app.metrics)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.rateLimiter != nil {
		app.rateLimiter.Stop()
	}

	app.logger.Info("Application shutdown completed")
}
