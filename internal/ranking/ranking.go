// Gustus - Recipe Analytics and Seasonal Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustus

// Package ranking scores recipes per (season, category) with a Bayesian
// average damped by a popularity weight.
//
// The quality score shrinks a recipe's seasonal rating average toward the
// seasonal mean of its category; the fewer valid reviews, the stronger the
// shrinkage. The popularity weight is a saturating function of total
// seasonal review count, so a recipe with two glowing reviews cannot outrank
// a well-reviewed staple. Per-category parameters reflect review volume:
// beverages get far fewer reviews than main dishes, so their half-saturation
// point is lower.
package ranking

import (
	"math"
	"sort"

	"github.com/tomtom215/gustus/internal/classifier"
	"github.com/tomtom215/gustus/internal/config"
	"github.com/tomtom215/gustus/internal/models"
	"github.com/tomtom215/gustus/internal/season"
)

// Ranker scores and ranks recipe aggregates.
type Ranker struct {
	cfg config.RankingConfig
}

// New creates a Ranker from ranking configuration.
func New(cfg config.RankingConfig) *Ranker {
	return &Ranker{cfg: cfg}
}

// QScore computes the Bayesian quality score for one recipe: the rating
// average shrunk toward seasonMean with pseudo-count kBayes.
func QScore(avgRating float64, validReviews int, seasonMean, kBayes float64) float64 {
	denom := float64(validReviews) + kBayes
	if denom <= 0 {
		return seasonMean
	}
	return (avgRating*float64(validReviews) + seasonMean*kBayes) / denom
}

// PopularityWeight computes the saturating popularity weight in [0, 1).
// kPop is the review count scale; gamma sharpens the low-count penalty.
func PopularityWeight(totalReviews int, kPop, gamma float64) float64 {
	if totalReviews <= 0 || kPop <= 0 {
		return 0
	}
	return math.Pow(1-math.Exp(-float64(totalReviews)/kPop), gamma)
}

// Score computes the final popularity-weighted score for one aggregate.
func (r *Ranker) Score(agg models.RecipeAggregate, category classifier.Category, seasonMean float64) (score, q float64) {
	params := r.cfg.ForCategory(category)
	q = QScore(agg.AvgRating, agg.ValidReviews, seasonMean, params.KBayes)
	score = q * PopularityWeight(agg.TotalReviews, params.KPop, params.Gamma)
	return score, q
}

// SeasonMean is the fallback chain for the shrinkage target: the seasonal
// category mean when the cell has rated reviews, else the category's global
// mean, else a neutral midpoint.
func SeasonMean(seasonal, global float64) float64 {
	if seasonal > 0 {
		return seasonal
	}
	if global > 0 {
		return global
	}
	return 2.5
}

// Rank scores the aggregates for one (season, category) cell and returns
// the top-N entries ordered by score descending. Ties break on recipe ID
// ascending so repeated runs produce identical output.
func (r *Ranker) Rank(s season.Season, category classifier.Category, aggs []models.RecipeAggregate, seasonMean float64) models.SeasonalRanking {
	entries := make([]models.RankedRecipe, 0, len(aggs))
	for _, agg := range aggs {
		score, q := r.Score(agg, category, seasonMean)
		entries = append(entries, models.RankedRecipe{
			RecipeID:     agg.RecipeID,
			Name:         agg.Name,
			Score:        score,
			QScore:       q,
			AvgRating:    agg.AvgRating,
			ValidReviews: agg.ValidReviews,
			TotalReviews: agg.TotalReviews,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].RecipeID < entries[j].RecipeID
	})

	if len(entries) > r.cfg.TopN {
		entries = entries[:r.cfg.TopN]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}

	return models.SeasonalRanking{
		Season:   s,
		Category: category,
		Entries:  entries,
	}
}
