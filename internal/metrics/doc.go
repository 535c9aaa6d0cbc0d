// Gustus - Recipe Analytics and Seasonal Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustus

/*
Package metrics provides Prometheus metrics collection and export for observability.

This package implements application instrumentation using the Prometheus
client library, exposing metrics for monitoring performance, errors, and
system health.

# Overview

The package provides metrics for:
  - Classification counts by category and provenance
  - Classification confidence distribution
  - Pipeline run duration and throughput
  - Database query performance
  - HTTP request latency and throughput
  - CSV import statistics

# Metrics Endpoint

Metrics are exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:8087/metrics
*/
package metrics
