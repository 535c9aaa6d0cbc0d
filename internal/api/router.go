// Gustus - Recipe Analytics and Seasonal Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustus

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/gustus/internal/classifier"
	"github.com/tomtom215/gustus/internal/config"
	"github.com/tomtom215/gustus/internal/database"
	"github.com/tomtom215/gustus/internal/ranking"
)

// Router wires handlers and middleware into a Chi route tree.
type Router struct {
	handler    *Handler
	middleware *Middleware
}

// NewRouter creates a Router from the application components.
func NewRouter(db *database.DB, engine *classifier.Engine, ranker *ranking.Ranker, cfg *config.Config) *Router {
	return &Router{
		handler: NewHandler(db, engine, ranker, cfg),
		middleware: NewMiddlewareFromConfig(
			cfg.API.CORSOrigins,
			cfg.API.RateLimitRequests,
			cfg.API.RateLimitWindow,
			cfg.API.RateLimitDisabled,
		),
	}
}

// Setup configures all HTTP routes and returns the root handler.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to every route in order.
	r.Use(RequestIDWithLogging())
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.middleware.CORS())

	// Health endpoints get a permissive rate limit so monitoring tools can
	// poll frequently.
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.middleware.RateLimitHealth())
		r.Use(SecurityHeaders())
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
		r.Get("/", router.handler.Health)
	})

	// Read endpoints.
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.middleware.RateLimit())
		r.Use(SecurityHeaders())
		r.Use(Instrument())

		r.Get("/stats", router.handler.Stats)
		r.Get("/recipes", router.handler.Recipes)
		r.Get("/recipes/{id}", router.handler.Recipe)
		r.Get("/recipes/{id}/classification", router.handler.RecipeClassification)
		r.Get("/rankings", router.handler.Rankings)

		// Classification runs the full scoring pipeline per record, so it
		// gets a tighter budget than the read endpoints.
		r.Group(func(r chi.Router) {
			r.Use(router.middleware.RateLimitClassify())
			r.Post("/classify", router.handler.Classify)
			r.Post("/classify/batch", router.handler.ClassifyBatch)
		})
	})

	// Prometheus metrics endpoint.
	r.Handle("/metrics", promhttp.Handler())

	return r
}
