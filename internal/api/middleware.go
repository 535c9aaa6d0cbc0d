// Gustus - Recipe Analytics and Seasonal Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustus

package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/tomtom215/gustus/internal/logging"
	"github.com/tomtom215/gustus/internal/metrics"
)

// MiddlewareConfig holds CORS and rate limiting settings for the router.
type MiddlewareConfig struct {
	CORSAllowedOrigins []string
	CORSAllowedMethods []string
	CORSAllowedHeaders []string
	CORSMaxAge         int // seconds

	RateLimitRequests int
	RateLimitWindow   time.Duration
	RateLimitDisabled bool
}

// DefaultMiddlewareConfig returns a secure default configuration.
// CORS origins default to empty, requiring explicit configuration.
func DefaultMiddlewareConfig() *MiddlewareConfig {
	return &MiddlewareConfig{
		CORSAllowedOrigins: []string{},
		CORSAllowedMethods: []string{"GET", "POST", "OPTIONS"},
		CORSAllowedHeaders: []string{"Content-Type", "Accept"},
		CORSMaxAge:         86400,

		RateLimitRequests: 100,
		RateLimitWindow:   time.Minute,
	}
}

// Middleware provides Chi-compatible middleware factories built on the
// production-hardened Chi ecosystem implementations.
type Middleware struct {
	config *MiddlewareConfig
	cors   func(http.Handler) http.Handler
}

// NewMiddleware creates a middleware factory with the given configuration.
func NewMiddleware(config *MiddlewareConfig) *Middleware {
	if config == nil {
		config = DefaultMiddlewareConfig()
	}

	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins: config.CORSAllowedOrigins,
		AllowedMethods: config.CORSAllowedMethods,
		AllowedHeaders: config.CORSAllowedHeaders,
		MaxAge:         config.CORSMaxAge,
	})

	return &Middleware{
		config: config,
		cors:   corsHandler,
	}
}

// NewMiddlewareFromConfig bridges the application configuration to the
// middleware factory.
func NewMiddlewareFromConfig(corsOrigins []string, rateLimitReqs int, rateLimitWindow time.Duration, rateLimitDisabled bool) *Middleware {
	cfg := DefaultMiddlewareConfig()
	cfg.CORSAllowedOrigins = corsOrigins
	cfg.RateLimitRequests = rateLimitReqs
	cfg.RateLimitWindow = rateLimitWindow
	cfg.RateLimitDisabled = rateLimitDisabled
	return NewMiddleware(cfg)
}

// CORS returns the go-chi/cors middleware built from the configuration.
func (m *Middleware) CORS() func(http.Handler) http.Handler {
	return m.cors
}

// noopMiddleware passes requests through unchanged.
func noopMiddleware(next http.Handler) http.Handler {
	return next
}

// RateLimit returns the default IP-keyed rate limiter.
func (m *Middleware) RateLimit() func(http.Handler) http.Handler {
	if m.config.RateLimitDisabled {
		return noopMiddleware
	}

	return httprate.Limit(
		m.config.RateLimitRequests,
		m.config.RateLimitWindow,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(rateLimitExceeded),
	)
}

// RateLimitConfig defines rate limit parameters for specific endpoint groups.
type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

// Endpoint-group rate limits. Health checks come from monitoring tools and
// need headroom; classification endpoints run the full scoring pipeline per
// record and get a tighter budget.
var (
	RateLimitHealth   = RateLimitConfig{Requests: 1000, Window: time.Minute}
	RateLimitClassify = RateLimitConfig{Requests: 30, Window: time.Minute}
)

// RateLimitCustom returns an IP-keyed rate limiter with explicit parameters.
func (m *Middleware) RateLimitCustom(cfg RateLimitConfig) func(http.Handler) http.Handler {
	if m.config.RateLimitDisabled {
		return noopMiddleware
	}

	return httprate.Limit(
		cfg.Requests,
		cfg.Window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(rateLimitExceeded),
	)
}

// RateLimitHealth returns the permissive limiter for health endpoints.
func (m *Middleware) RateLimitHealth() func(http.Handler) http.Handler {
	return m.RateLimitCustom(RateLimitHealth)
}

// RateLimitClassify returns the tighter limiter for classification endpoints.
func (m *Middleware) RateLimitClassify() func(http.Handler) http.Handler {
	return m.RateLimitCustom(RateLimitClassify)
}

// rateLimitExceeded responds with the standard error envelope and records
// the rejection.
func rateLimitExceeded(w http.ResponseWriter, r *http.Request) {
	metrics.APIRateLimitHits.WithLabelValues(r.URL.Path).Inc()
	respondError(w, http.StatusTooManyRequests, "RATE_LIMITED", "too many requests", nil)
}

// RequestIDWithLogging adds a request ID to the context and wires it into
// the logging context so every log line carries request_id.
func RequestIDWithLogging() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		chiRequestID := chimiddleware.RequestID(next)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get("X-Request-ID")
			if requestID == "" {
				requestID = logging.GenerateRequestID()
				r.Header.Set("X-Request-ID", requestID)
			}

			ctx := logging.ContextWithRequestID(r.Context(), requestID)
			w.Header().Set("X-Request-ID", requestID)

			chiRequestID.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Instrument records Prometheus request metrics using the matched Chi route
// pattern, keeping label cardinality bounded regardless of path parameters.
func Instrument() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			metrics.TrackActiveRequest(true)
			defer metrics.TrackActiveRequest(false)

			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			endpoint := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					endpoint = pattern
				}
			}

			metrics.RecordAPIRequest(r.Method, endpoint, strconv.Itoa(ww.Status()), time.Since(start))
		})
	}
}

// SecurityHeaders adds standard security headers to API responses.
func SecurityHeaders() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("X-Frame-Options", "DENY")
			w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
			next.ServeHTTP(w, r)
		})
	}
}
