// Gustus - Recipe Analytics and Seasonal Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustus

/*
Package api provides the HTTP surface of the application using the Chi router.

Endpoints:

	GET  /api/v1/health                        Full health status
	GET  /api/v1/health/live                   Liveness probe
	GET  /api/v1/health/ready                  Readiness probe
	GET  /api/v1/stats                         Row counts and last run info
	GET  /api/v1/recipes                       Paginated recipe listing
	GET  /api/v1/recipes/{id}                  Single recipe
	GET  /api/v1/recipes/{id}/classification   Stored classifier verdict
	POST /api/v1/classify                      Classify one ad-hoc record
	POST /api/v1/classify/batch                Classify up to 1000 records
	GET  /api/v1/rankings                      Seasonal top-N per category
	GET  /metrics                              Prometheus metrics

All responses use the models.APIResponse envelope. Request bodies are decoded
with goccy/go-json and validated with the validation package before any work
happens.
*/
package api
