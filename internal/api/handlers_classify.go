// Gustus - Recipe Analytics and Seasonal Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustus

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/gustus/internal/classifier"
	"github.com/tomtom215/gustus/internal/metrics"
	"github.com/tomtom215/gustus/internal/models"
)

// Classify runs the classifier on one ad-hoc record from the request body.
// The verdict is returned but not persisted; persisted verdicts come from
// pipeline runs over the imported recipe table.
func (h *Handler) Classify(w http.ResponseWriter, r *http.Request) {
	var req models.ClassifyRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "request body is not valid JSON", err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	start := time.Now()
	result := h.engine.Classify(req.Record())
	elapsed := time.Since(start)

	metrics.RecordClassification(string(result.Category), string(result.Provenance), result.Confidence, elapsed)
	respondSuccess(w, result, elapsed)
}

// ClassifyBatch runs the classifier on up to 1000 records through the
// pipeline's worker pool. Results are index-aligned with the request.
func (h *Handler) ClassifyBatch(w http.ResponseWriter, r *http.Request) {
	var req models.ClassifyBatchRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "request body is not valid JSON", err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	start := time.Now()
	records := make([]classifier.Record, len(req.Records))
	for i, rec := range req.Records {
		records[i] = rec.Record()
	}

	results, err := h.runner.ClassifyRecords(r.Context(), records)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "batch classification failed", err)
		return
	}

	respondSuccess(w, map[string]interface{}{
		"count":   len(results),
		"results": results,
	}, time.Since(start))
}
