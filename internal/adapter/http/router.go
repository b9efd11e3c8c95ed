package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/openbooks/openbooks/internal/adapter/http/handler"
	"github.com/openbooks/openbooks/internal/adapter/http/middleware"
	"github.com/openbooks/openbooks/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	TransactionHandler *handler.TransactionHandler
	AccountHandler     *handler.AccountHandler
	BusinessHandler    *handler.BusinessHandler
	HealthHandler      *handler.HealthHandler
	MetricsHandler     http.Handler
	MetricsMiddleware  *middleware.MetricsMiddleware
	LoggingMiddleware  *middleware.LoggingMiddleware
	RateLimiter        *middleware.RateLimiter
	IdempotencyStore   usecase.IdempotencyStore
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	if cfg.LoggingMiddleware != nil {
		r.Use(cfg.LoggingMiddleware.Wrap)
	}
	if cfg.MetricsMiddleware != nil {
		r.Use(cfg.MetricsMiddleware.Wrap)
	}
	r.Use(middleware.Recovery)
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Businesses
		r.Route("/businesses", func(r chi.Router) {
			r.Post("/", cfg.BusinessHandler.Register)
			r.Get("/", cfg.BusinessHandler.List)
			r.Get("/{id}", cfg.BusinessHandler.Get)
			r.Get("/{id}/accounts", cfg.AccountHandler.ListByBusiness)
			r.Get("/{id}/transactions", cfg.TransactionHandler.ListJournal)
			r.Get("/{id}/next-sequence", cfg.TransactionHandler.NextSequence)
			r.Post("/{id}/recalculate", cfg.TransactionHandler.Recalculate)
		})

		// Accounts
		r.Route("/accounts", func(r chi.Router) {
			r.Post("/", cfg.AccountHandler.Create)
			r.Get("/search", cfg.AccountHandler.Search)
			r.Get("/{id}", cfg.AccountHandler.Get)
			r.Patch("/{id}", cfg.AccountHandler.Update)
		})

		// Transactions
		r.Route("/transactions", func(r chi.Router) {
			r.Post("/", cfg.TransactionHandler.Post)
			r.Get("/{id}", cfg.TransactionHandler.Get)
		})

		// Account types
		r.Get("/account-types", cfg.AccountHandler.ListTypes)
	})

	return r
}
