// Gustus - Recipe Analytics and Seasonal Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustus

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/gustus/internal/cache"
	"github.com/tomtom215/gustus/internal/classifier"
	"github.com/tomtom215/gustus/internal/metrics"
	"github.com/tomtom215/gustus/internal/models"
	"github.com/tomtom215/gustus/internal/ranking"
	"github.com/tomtom215/gustus/internal/season"
)

// Rankings returns the seasonal top-N for one or all categories.
//
// Query parameters:
//
//	season   - Spring, Summer, Fall or Winter. Defaults to the current season.
//	category - main_dish, dessert or beverage. Omitted means all three.
//	limit    - truncate each list to the top N entries. Defaults to the full
//	           configured list size.
func (h *Handler) Rankings(w http.ResponseWriter, r *http.Request) {
	s := season.FromDate(time.Now())
	if raw := r.URL.Query().Get("season"); raw != "" {
		parsed, ok := season.Parse(raw)
		if !ok {
			respondError(w, http.StatusBadRequest, "VALIDATION_ERROR",
				"season must be one of Spring, Summer, Fall, Winter", nil)
			return
		}
		s = parsed
	}

	cats := []classifier.Category{classifier.MainDish, classifier.Dessert, classifier.Beverage}
	if raw := r.URL.Query().Get("category"); raw != "" {
		cat, ok := classifier.ParseCategory(raw)
		if !ok {
			respondError(w, http.StatusBadRequest, "VALIDATION_ERROR",
				"category must be one of main_dish, dessert, beverage", nil)
			return
		}
		cats = []classifier.Category{cat}
	}

	limit := getIntParam(r, "limit", 0)
	if limit < 0 {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "limit must be a positive integer", nil)
		return
	}

	start := time.Now()
	rankings := make([]models.SeasonalRanking, 0, len(cats))
	for _, cat := range cats {
		ranked, err := h.computeRanking(r, s, cat)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to compute rankings", err)
			return
		}
		if limit > 0 && limit < len(ranked.Entries) {
			ranked.Entries = ranked.Entries[:limit]
		}
		rankings = append(rankings, ranked)
	}

	respondSuccess(w, map[string]interface{}{
		"season":   s,
		"rankings": rankings,
	}, time.Since(start))
}

// computeRanking loads the aggregates for one (season, category) cell and
// ranks them. Computed cells are cached; a cell changes only when a new
// classification run or import lands.
func (h *Handler) computeRanking(r *http.Request, s season.Season, cat classifier.Category) (models.SeasonalRanking, error) {
	key := cache.Key("rankings", s, cat)
	if cached, ok := h.rankingCache.Get(key); ok {
		if ranked, ok := cached.(models.SeasonalRanking); ok {
			return ranked, nil
		}
	}

	start := time.Now()
	ctx := r.Context()

	aggs, err := h.db.SeasonalAggregates(ctx, s, cat)
	if err != nil {
		return models.SeasonalRanking{}, err
	}

	seasonal, ok, err := h.db.SeasonalMean(ctx, s, cat)
	if err != nil {
		return models.SeasonalRanking{}, err
	}
	if !ok {
		seasonal = 0
	}
	global, ok, err := h.db.CategoryMean(ctx, cat)
	if err != nil {
		return models.SeasonalRanking{}, err
	}
	if !ok {
		global = 0
	}

	ranked := h.ranker.Rank(s, cat, aggs, ranking.SeasonMean(seasonal, global))
	metrics.RankingComputeDuration.WithLabelValues(string(s), string(cat)).Observe(time.Since(start).Seconds())

	h.rankingCache.Set(key, ranked)
	return ranked, nil
}
