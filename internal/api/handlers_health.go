// Gustus - Recipe Analytics and Seasonal Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustus

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/gustus/internal/models"
)

// Health returns full health status including database connectivity.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	dbConnected := h.db != nil && h.db.Ping(r.Context()) == nil

	status := "healthy"
	if !dbConnected {
		status = "degraded"
	}

	health := models.HealthStatus{
		Status:            status,
		Version:           Version,
		DatabaseConnected: dbConnected,
		Uptime:            time.Since(h.startTime).Seconds(),
	}

	respondSuccess(w, health, 0)
}

// HealthLive handles liveness probes. Returns 200 if the process is alive,
// regardless of dependencies.
func (h *Handler) HealthLive(w http.ResponseWriter, _ *http.Request) {
	respondSuccess(w, map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	}, 0)
}

// HealthReady handles readiness probes. Ready means the database answers and
// the classification engine is built.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if h.db == nil || h.db.Ping(r.Context()) != nil {
		respondError(w, http.StatusServiceUnavailable, "NOT_READY", "database not reachable", nil)
		return
	}
	if h.engine == nil {
		respondError(w, http.StatusServiceUnavailable, "NOT_READY", "classifier not initialized", nil)
		return
	}

	respondSuccess(w, map[string]interface{}{"ready": true}, 0)
}

// Stats returns row counts, per-category totals, and last run information.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	stats, err := h.db.GetStats(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to load stats", err)
		return
	}

	respondSuccess(w, stats, time.Since(start))
}
