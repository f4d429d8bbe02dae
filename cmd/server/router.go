package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sakhisuraksha/sakhi-api/internal/api"
	apiMiddleware "github.com/sakhisuraksha/sakhi-api/internal/api/middleware"
	"github.com/sakhisuraksha/sakhi-api/internal/metrics"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)
	r.Use(apiMiddleware.MetricsMiddleware(app.metrics))

	trackerHandler := api.NewTrackerHandler(app.tracker, app.tokens, app.metrics, app.now)
	cycleHandler := api.NewCycleHandler(app.engine, app.metrics, app.now)
	contentHandler := api.NewContentHandler(app.catalog, app.metrics)
	feedbackHandler := api.NewFeedbackHandler(app.catalog, app.metrics)
	sessionMiddleware := apiMiddleware.NewSessionMiddleware(app.tokens)

	r.Route("/api", func(r chi.Router) {
		// Grouped so the limiter runs after routing and sees the route pattern
		r.Group(func(r chi.Router) {
			if app.rateLimiter != nil {
				r.Use(app.rateLimiter.Middleware)
			}

			// Tracker
			r.Post("/tracker/session", trackerHandler.StartSession)
			r.Group(func(r chi.Router) {
				r.Use(sessionMiddleware.RequireSession)
				r.Get("/tracker", trackerHandler.GetTracker)
				r.Put("/tracker/last-period", trackerHandler.SetLastPeriod)
				r.Post("/tracker/cycle-length/increment", trackerHandler.IncrementCycleLength)
				r.Post("/tracker/cycle-length/decrement", trackerHandler.DecrementCycleLength)
				r.Get("/tracker/calendar", trackerHandler.GetCalendar)
			})

			// Stateless engine
			r.Post("/cycle/predict", cycleHandler.Predict)
			r.Post("/cycle/adjust", cycleHandler.Adjust)

			// Reference content
			r.Get("/info", contentHandler.ListSections)
			r.Get("/info/{sectionID}", contentHandler.GetSection)
			r.Get("/stores", contentHandler.ListStores)
			r.Get("/help/contacts", contentHandler.ListContacts)
			r.Post("/help/share-location", contentHandler.ShareLocation)

			// Feedback
			r.Get("/feedback/types", feedbackHandler.ListTypes)
			r.Post("/feedback", feedbackHandler.Submit)
		})
	})

	if app.registry != nil {
		r.Handle(app.config.Metrics.Path, metrics.Handler(app.registry))
	}

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
