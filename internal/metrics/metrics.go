// Gustus - Recipe Analytics and Seasonal Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustus

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Classification Metrics
	ClassificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "classifications_total",
			Help: "Total number of classifications by category and provenance",
		},
		[]string{"category", "provenance"},
	)

	ClassificationConfidence = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "classification_confidence",
			Help:    "Distribution of classification confidence scores (0-100)",
			Buckets: []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
		},
	)

	ClassificationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "classification_duration_seconds",
			Help:    "Duration of single-record classification in seconds",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
		},
	)

	// Pipeline Metrics
	PipelineRunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pipeline_run_duration_seconds",
			Help:    "Duration of full classification pipeline runs in seconds",
			Buckets: []float64{1, 5, 10, 30, 60, 120, 300, 600},
		},
	)

	PipelineRecordsProcessed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pipeline_records_processed_total",
			Help: "Total number of records processed by the pipeline",
		},
	)

	PipelineErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pipeline_errors_total",
			Help: "Total number of pipeline errors",
		},
		[]string{"error_type"}, // "import", "classify", "store"
	)

	PipelineLastSuccess = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "pipeline_last_success_timestamp",
			Help: "Unix timestamp of last successful pipeline run",
		},
	)

	// Import Metrics
	ImportRowsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "import_rows_total",
			Help: "Total number of CSV rows imported",
		},
		[]string{"source"}, // "recipes", "interactions"
	)

	ImportDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "import_duration_seconds",
			Help:    "Duration of CSV imports in seconds",
			Buckets: []float64{1, 5, 10, 30, 60, 120, 300},
		},
		[]string{"source"},
	)

	// Database Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "duckdb_query_duration_seconds",
			Help:    "Duration of DuckDB queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "duckdb_query_errors_total",
			Help: "Total number of DuckDB query errors",
		},
		[]string{"operation", "table", "error_type"},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Ranking Metrics
	RankingComputeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ranking_compute_duration_seconds",
			Help:    "Duration of seasonal ranking computation in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"season", "category"},
	)
)

// RecordClassification records one classification result.
func RecordClassification(category, provenance string, confidence float64, duration time.Duration) {
	ClassificationsTotal.WithLabelValues(category, provenance).Inc()
	ClassificationConfidence.Observe(confidence)
	ClassificationDuration.Observe(duration.Seconds())
}

// RecordPipelineRun records a full pipeline run.
func RecordPipelineRun(duration time.Duration, recordsProcessed int, err error) {
	PipelineRunDuration.Observe(duration.Seconds())
	PipelineRecordsProcessed.Add(float64(recordsProcessed))
	if err != nil {
		PipelineErrors.WithLabelValues("classify").Inc()
		return
	}
	PipelineLastSuccess.Set(float64(time.Now().Unix()))
}

// RecordImport records a CSV import.
func RecordImport(source string, rows int, duration time.Duration) {
	ImportRowsTotal.WithLabelValues(source).Add(float64(rows))
	ImportDuration.WithLabelValues(source).Observe(duration.Seconds())
}

// RecordDBQuery records a database query metric.
func RecordDBQuery(operation, table string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
	if err != nil {
		errorType := err.Error()
		if len(errorType) > 50 {
			errorType = errorType[:50]
		}
		DBQueryErrors.WithLabelValues(operation, table, errorType).Inc()
	}
}

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
