// Gustus - Recipe Analytics and Seasonal Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustus

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/tomtom215/gustus/internal/classifier"
	"github.com/tomtom215/gustus/internal/metrics"
	"github.com/tomtom215/gustus/internal/models"
	"github.com/tomtom215/gustus/internal/season"
)

// SeasonalAggregates returns per-recipe review aggregates for one
// (season, category) cell. The rating average and valid count include only
// reviews with a nonzero rating; the total count includes all reviews.
func (db *DB) SeasonalAggregates(ctx context.Context, s season.Season, category classifier.Category) ([]models.RecipeAggregate, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()
	start := time.Now()

	rows, err := db.conn.QueryContext(ctx, `
		SELECT
			i.recipe_id,
			ANY_VALUE(c.name),
			COALESCE(AVG(i.rating) FILTER (WHERE i.rating > 0), 0),
			COUNT(*) FILTER (WHERE i.rating > 0),
			COUNT(*)
		FROM interactions i
		JOIN classifications c ON c.recipe_id = i.recipe_id
		WHERE i.season = ? AND c.category = ?
		GROUP BY i.recipe_id`,
		string(s), string(category))
	metrics.RecordDBQuery("select", "interactions", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to query seasonal aggregates: %w", err)
	}
	defer closeQuietly(rows)

	var aggs []models.RecipeAggregate
	for rows.Next() {
		var a models.RecipeAggregate
		if err := rows.Scan(&a.RecipeID, &a.Name, &a.AvgRating, &a.ValidReviews, &a.TotalReviews); err != nil {
			return nil, fmt.Errorf("failed to scan aggregate: %w", err)
		}
		aggs = append(aggs, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("aggregate iteration failed: %w", err)
	}
	return aggs, nil
}

// SeasonalMean returns the mean of nonzero ratings for one (season,
// category) cell. The boolean reports whether any rated review exists.
func (db *DB) SeasonalMean(ctx context.Context, s season.Season, category classifier.Category) (float64, bool, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	var mean sql.NullFloat64
	err := db.conn.QueryRowContext(ctx, `
		SELECT AVG(i.rating) FILTER (WHERE i.rating > 0)
		FROM interactions i
		JOIN classifications c ON c.recipe_id = i.recipe_id
		WHERE i.season = ? AND c.category = ?`,
		string(s), string(category)).Scan(&mean)
	if err != nil {
		return 0, false, fmt.Errorf("failed to query seasonal mean: %w", err)
	}
	return mean.Float64, mean.Valid, nil
}

// CategoryMean returns the global mean of nonzero ratings for a category
// across all seasons. Used as the shrinkage fallback for empty cells.
func (db *DB) CategoryMean(ctx context.Context, category classifier.Category) (float64, bool, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	var mean sql.NullFloat64
	err := db.conn.QueryRowContext(ctx, `
		SELECT AVG(i.rating) FILTER (WHERE i.rating > 0)
		FROM interactions i
		JOIN classifications c ON c.recipe_id = i.recipe_id
		WHERE c.category = ?`,
		string(category)).Scan(&mean)
	if err != nil {
		return 0, false, fmt.Errorf("failed to query category mean: %w", err)
	}
	return mean.Float64, mean.Valid, nil
}
