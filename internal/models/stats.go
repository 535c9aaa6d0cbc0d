// Gustus - Recipe Analytics and Seasonal Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustus

package models

import (
	"time"
)

// Stats represents overall system statistics.
type Stats struct {
	TotalRecipes         int            `json:"total_recipes"`
	TotalInteractions    int            `json:"total_interactions"`
	TotalClassifications int            `json:"total_classifications"`
	ByCategory           map[string]int `json:"by_category"`
	LastRunID            string         `json:"last_run_id,omitempty"`
	LastRunTime          *time.Time     `json:"last_run_time,omitempty"`
	DatabaseSizeBytes    int64          `json:"database_size_bytes"`
}

// HealthStatus represents the health check response.
type HealthStatus struct {
	Status            string  `json:"status"`
	Version           string  `json:"version"`
	DatabaseConnected bool    `json:"database_connected"`
	Uptime            float64 `json:"uptime_seconds"`
}

// ClassificationSummary aggregates one classification run for reporting.
type ClassificationSummary struct {
	RunID          string         `json:"run_id"`
	Total          int            `json:"total"`
	ByCategory     map[string]int `json:"by_category"`
	ByProvenance   map[string]int `json:"by_provenance"`
	MeanConfidence float64        `json:"mean_confidence"`
	LowConfidence  int            `json:"low_confidence"`
	DurationMS     int64          `json:"duration_ms"`
}
