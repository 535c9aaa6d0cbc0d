// Gustus - Recipe Analytics and Seasonal Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustus

package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/gustus/internal/database"
)

// Recipes returns a paginated recipe listing.
func (h *Handler) Recipes(w http.ResponseWriter, r *http.Request) {
	limit := getIntParam(r, "limit", h.cfg.API.DefaultPageSize)
	offset := getIntParam(r, "offset", 0)

	if limit < 1 || limit > h.cfg.API.MaxPageSize {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR",
			"limit must be between 1 and "+strconv.Itoa(h.cfg.API.MaxPageSize), nil)
		return
	}
	if offset < 0 {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "offset must not be negative", nil)
		return
	}

	start := time.Now()
	recipes, err := h.db.ListRecipes(r.Context(), limit, offset)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to list recipes", err)
		return
	}

	total, err := h.db.CountRecipes(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to count recipes", err)
		return
	}

	respondSuccess(w, map[string]interface{}{
		"total":   total,
		"limit":   limit,
		"offset":  offset,
		"recipes": recipes,
	}, time.Since(start))
}

// recipeIDParam parses the {id} URL parameter.
func recipeIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

// Recipe returns one recipe by ID.
func (h *Handler) Recipe(w http.ResponseWriter, r *http.Request) {
	id, ok := recipeIDParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "id must be a positive integer", nil)
		return
	}

	start := time.Now()
	recipe, err := h.db.GetRecipe(r.Context(), id)
	if errors.Is(err, database.ErrNotFound) {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "recipe not found", nil)
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to load recipe", err)
		return
	}

	respondSuccess(w, recipe, time.Since(start))
}

// RecipeClassification returns the stored classifier verdict for one recipe.
func (h *Handler) RecipeClassification(w http.ResponseWriter, r *http.Request) {
	id, ok := recipeIDParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "id must be a positive integer", nil)
		return
	}

	start := time.Now()
	c, err := h.db.GetClassification(r.Context(), id)
	if errors.Is(err, database.ErrNotFound) {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "no classification stored for this recipe", nil)
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to load classification", err)
		return
	}

	respondSuccess(w, c, time.Since(start))
}
