// Gustus - Recipe Analytics and Seasonal Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustus

package models

import (
	"time"

	"github.com/tomtom215/gustus/internal/classifier"
	"github.com/tomtom215/gustus/internal/season"
)

// Recipe is one row of the imported recipe table. Nutrition and Tags are
// parsed out of the raw Python-literal columns at import time.
type Recipe struct {
	ID          int64                `json:"id" db:"id"`
	Name        string               `json:"name" db:"name"`
	Minutes     int                  `json:"minutes" db:"minutes"`
	Submitted   time.Time            `json:"submitted" db:"submitted"`
	Tags        []string             `json:"tags" db:"tags"`
	Nutrition   classifier.Nutrition `json:"nutrition"`
	NSteps      int                  `json:"n_steps" db:"n_steps"`
	Description string               `json:"description,omitempty" db:"description"`
}

// Record converts the recipe row into a classifier input.
func (r Recipe) Record() classifier.Record {
	return classifier.Record{
		ID:        r.ID,
		Name:      r.Name,
		Tags:      r.Tags,
		Nutrition: r.Nutrition,
	}
}

// Interaction is one user review. Rating 0 means the user left a review
// without a star rating; it counts toward popularity but not toward the
// rating average.
type Interaction struct {
	UserID   int64     `json:"user_id" db:"user_id"`
	RecipeID int64     `json:"recipe_id" db:"recipe_id"`
	Date     time.Time `json:"date" db:"date"`
	Rating   float64   `json:"rating" db:"rating"`
}

// Season returns the review's season, Unknown for a missing date.
func (i Interaction) Season() season.Season {
	return season.FromDate(i.Date)
}

// Classification is a stored classifier verdict for one recipe.
type Classification struct {
	RecipeID     int64                 `json:"recipe_id" db:"recipe_id"`
	Name         string                `json:"name" db:"name"`
	Category     classifier.Category   `json:"category" db:"category"`
	Confidence   float64               `json:"confidence" db:"confidence"`
	Provenance   classifier.Provenance `json:"provenance" db:"provenance"`
	PMainDish    float64               `json:"p_main_dish" db:"p_main_dish"`
	PDessert     float64               `json:"p_dessert" db:"p_dessert"`
	PBeverage    float64               `json:"p_beverage" db:"p_beverage"`
	RunID        string                `json:"run_id" db:"run_id"`
	ClassifiedAt time.Time             `json:"classified_at" db:"classified_at"`
}

// FromResult builds a Classification row from a classifier result.
func FromResult(res classifier.Result, runID string, at time.Time) Classification {
	return Classification{
		RecipeID:     res.ID,
		Name:         res.Name,
		Category:     res.Category,
		Confidence:   res.Confidence,
		Provenance:   res.Provenance,
		PMainDish:    res.FinalProbs[0],
		PDessert:     res.FinalProbs[1],
		PBeverage:    res.FinalProbs[2],
		RunID:        runID,
		ClassifiedAt: at,
	}
}

// RecipeAggregate is the per-recipe seasonal review aggregate the ranking
// scores are computed from. ValidReviews counts reviews with a nonzero
// rating; TotalReviews also counts rating-less reviews, which signal
// popularity.
type RecipeAggregate struct {
	RecipeID     int64   `json:"recipe_id" db:"recipe_id"`
	Name         string  `json:"name" db:"name"`
	AvgRating    float64 `json:"avg_rating" db:"avg_rating"`
	ValidReviews int     `json:"valid_reviews" db:"valid_reviews"`
	TotalReviews int     `json:"total_reviews" db:"total_reviews"`
}

// RankedRecipe is one entry of a seasonal top-N list.
//
// Score is the popularity-weighted Bayesian quality score; QScore is the
// Bayesian average before the popularity weight is applied.
type RankedRecipe struct {
	Rank         int     `json:"rank"`
	RecipeID     int64   `json:"recipe_id" db:"recipe_id"`
	Name         string  `json:"name" db:"name"`
	Score        float64 `json:"score" db:"score"`
	QScore       float64 `json:"q_score" db:"q_score"`
	AvgRating    float64 `json:"avg_rating" db:"avg_rating"`
	ValidReviews int     `json:"valid_reviews" db:"valid_reviews"`
	TotalReviews int     `json:"total_reviews" db:"total_reviews"`
}

// SeasonalRanking is the top-N list for one (season, category) cell.
type SeasonalRanking struct {
	Season   season.Season       `json:"season"`
	Category classifier.Category `json:"category"`
	Entries  []RankedRecipe      `json:"entries"`
}

// ClassifyRequest is the body of POST /api/v1/classify. ID is optional; a
// zero ID skips the exception-table lookup.
type ClassifyRequest struct {
	ID        int64                `json:"id"`
	Name      string               `json:"name" validate:"required,max=512"`
	Tags      []string             `json:"tags" validate:"max=128,dive,max=128"`
	Nutrition classifier.Nutrition `json:"nutrition"`
}

// Record converts the request into a classifier input.
func (r ClassifyRequest) Record() classifier.Record {
	return classifier.Record{
		ID:        r.ID,
		Name:      r.Name,
		Tags:      r.Tags,
		Nutrition: r.Nutrition,
	}
}

// ClassifyBatchRequest is the body of POST /api/v1/classify/batch.
type ClassifyBatchRequest struct {
	Records []ClassifyRequest `json:"records" validate:"required,min=1,max=1000,dive"`
}
