// Gustus - Recipe Analytics and Seasonal Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustus

package ranking

import (
	"math"
	"testing"

	"github.com/tomtom215/gustus/internal/classifier"
	"github.com/tomtom215/gustus/internal/config"
	"github.com/tomtom215/gustus/internal/models"
	"github.com/tomtom215/gustus/internal/season"
)

func floatNear(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func defaultRankingConfig() config.RankingConfig {
	return config.RankingConfig{
		TopN:     20,
		MainDish: config.BayesianParams{KBayes: 65, KPop: 45, Gamma: 1.2},
		Dessert:  config.BayesianParams{KBayes: 60, KPop: 40, Gamma: 1.2},
		Beverage: config.BayesianParams{KBayes: 20, KPop: 4, Gamma: 0.7},
	}
}

func TestQScore(t *testing.T) {
	tests := []struct {
		name       string
		avg        float64
		valid      int
		seasonMean float64
		kBayes     float64
		want       float64
	}{
		{"sparse shrinks toward mean", 4.8, 12, 4.2, 65, 4.293506494},
		{"popular dominates mean", 4.5, 400, 4.2, 65, 4.458064516},
		{"no valid reviews returns mean", 0, 0, 4.2, 65, 4.2},
		{"zero pseudo count returns raw avg", 3.7, 10, 4.2, 0, 3.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := QScore(tt.avg, tt.valid, tt.seasonMean, tt.kBayes)
			if !floatNear(got, tt.want, 1e-6) {
				t.Errorf("QScore = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPopularityWeight(t *testing.T) {
	tests := []struct {
		name    string
		reviews int
		kPop    float64
		gamma   float64
		want    float64
	}{
		{"no reviews", 0, 45, 1.2, 0},
		{"few reviews", 20, 45, 1.2, 0.292315205},
		{"many reviews saturates", 450, 45, 1.2, 0.999945520},
		{"beverage scale", 5, 4, 0.7, 0.789539278},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PopularityWeight(tt.reviews, tt.kPop, tt.gamma)
			if !floatNear(got, tt.want, 1e-6) {
				t.Errorf("PopularityWeight = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("monotonic in review count", func(t *testing.T) {
		prev := -1.0
		for n := 0; n <= 200; n += 10 {
			w := PopularityWeight(n, 45, 1.2)
			if w < prev {
				t.Fatalf("weight decreased at n=%d: %v < %v", n, w, prev)
			}
			if w < 0 || w >= 1.0+1e-12 {
				t.Fatalf("weight out of range at n=%d: %v", n, w)
			}
			prev = w
		}
	})
}

func TestScorePerCategoryParams(t *testing.T) {
	r := New(defaultRankingConfig())
	agg := models.RecipeAggregate{AvgRating: 4.9, ValidReviews: 3, TotalReviews: 5}

	// Beverage parameters saturate much earlier, so the same sparse
	// aggregate scores far higher as a beverage than as a main dish.
	bevScore, bevQ := r.Score(agg, classifier.Beverage, 4.4)
	if !floatNear(bevQ, 4.465217391, 1e-6) {
		t.Errorf("beverage q = %v, want 4.465217391", bevQ)
	}
	if !floatNear(bevScore, 3.525464517, 1e-6) {
		t.Errorf("beverage score = %v, want 3.525464517", bevScore)
	}

	mainScore, _ := r.Score(agg, classifier.MainDish, 4.4)
	if mainScore >= bevScore {
		t.Errorf("main-dish score %v should be below beverage score %v for sparse reviews", mainScore, bevScore)
	}
}

func TestSeasonMean(t *testing.T) {
	tests := []struct {
		name     string
		seasonal float64
		global   float64
		want     float64
	}{
		{"seasonal available", 4.3, 4.1, 4.3},
		{"fallback to global", 0, 4.1, 4.1},
		{"fallback to midpoint", 0, 0, 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SeasonMean(tt.seasonal, tt.global); got != tt.want {
				t.Errorf("SeasonMean(%v, %v) = %v, want %v", tt.seasonal, tt.global, got, tt.want)
			}
		})
	}
}

func TestRank(t *testing.T) {
	cfg := defaultRankingConfig()
	cfg.TopN = 3
	r := New(cfg)

	aggs := []models.RecipeAggregate{
		{RecipeID: 1, Name: "two perfect reviews", AvgRating: 5.0, ValidReviews: 2, TotalReviews: 2},
		{RecipeID: 2, Name: "well reviewed staple", AvgRating: 4.5, ValidReviews: 400, TotalReviews: 450},
		{RecipeID: 3, Name: "solid but quiet", AvgRating: 4.0, ValidReviews: 50, TotalReviews: 80},
		{RecipeID: 4, Name: "barely reviewed", AvgRating: 3.0, ValidReviews: 1, TotalReviews: 1},
	}

	ranking := r.Rank(season.Summer, classifier.MainDish, aggs, 4.2)

	if ranking.Season != season.Summer || ranking.Category != classifier.MainDish {
		t.Fatalf("ranking cell = (%s, %s), want (Summer, main_dish)", ranking.Season, ranking.Category)
	}
	if len(ranking.Entries) != 3 {
		t.Fatalf("len(Entries) = %d, want 3", len(ranking.Entries))
	}

	// The staple wins despite the lower average: popularity weight
	// crushes the two-review recipe.
	if ranking.Entries[0].RecipeID != 2 {
		t.Errorf("top entry = recipe %d, want 2", ranking.Entries[0].RecipeID)
	}
	for i, e := range ranking.Entries {
		if e.Rank != i+1 {
			t.Errorf("Entries[%d].Rank = %d, want %d", i, e.Rank, i+1)
		}
		if i > 0 && e.Score > ranking.Entries[i-1].Score {
			t.Errorf("entries not sorted by score at %d", i)
		}
	}
}

func TestRankDeterministicTieBreak(t *testing.T) {
	r := New(defaultRankingConfig())

	// Identical aggregates force a score tie; IDs must break it the same
	// way every run.
	aggs := []models.RecipeAggregate{
		{RecipeID: 9, AvgRating: 4.0, ValidReviews: 10, TotalReviews: 10},
		{RecipeID: 3, AvgRating: 4.0, ValidReviews: 10, TotalReviews: 10},
		{RecipeID: 6, AvgRating: 4.0, ValidReviews: 10, TotalReviews: 10},
	}

	for run := 0; run < 5; run++ {
		got := r.Rank(season.Winter, classifier.Dessert, aggs, 4.2)
		for i, wantID := range []int64{3, 6, 9} {
			if got.Entries[i].RecipeID != wantID {
				t.Fatalf("run %d: Entries[%d].RecipeID = %d, want %d", run, i, got.Entries[i].RecipeID, wantID)
			}
		}
	}
}

func TestRankEmpty(t *testing.T) {
	r := New(defaultRankingConfig())
	got := r.Rank(season.Fall, classifier.Beverage, nil, 4.2)
	if len(got.Entries) != 0 {
		t.Errorf("len(Entries) = %d, want 0", len(got.Entries))
	}
}
