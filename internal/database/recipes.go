// Gustus - Recipe Analytics and Seasonal Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustus

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/gustus/internal/dataset"
	"github.com/tomtom215/gustus/internal/metrics"
	"github.com/tomtom215/gustus/internal/models"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

const recipeColumns = `id, name, minutes, submitted, tags, calories, fat, sugar, sodium, protein, saturated_fat, carbs, n_steps, COALESCE(description, '')`

// scanRecipe scans one recipe row in recipeColumns order.
func scanRecipe(row interface{ Scan(...interface{}) error }) (models.Recipe, error) {
	var r models.Recipe
	var submitted sql.NullTime
	var tags string

	err := row.Scan(
		&r.ID, &r.Name, &r.Minutes, &submitted, &tags,
		&r.Nutrition.Calories, &r.Nutrition.Fat, &r.Nutrition.Sugar, &r.Nutrition.Sodium,
		&r.Nutrition.Protein, &r.Nutrition.SaturatedFat, &r.Nutrition.Carbs,
		&r.NSteps, &r.Description,
	)
	if err != nil {
		return models.Recipe{}, err
	}

	if submitted.Valid {
		r.Submitted = submitted.Time
	}
	r.Tags = dataset.ParseTags(tags)
	return r, nil
}

// GetRecipe returns one recipe by ID, or ErrNotFound.
func (db *DB) GetRecipe(ctx context.Context, id int64) (models.Recipe, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()
	start := time.Now()

	row := db.conn.QueryRowContext(ctx,
		`SELECT `+recipeColumns+` FROM recipes WHERE id = ?`, id)

	r, err := scanRecipe(row)
	if errors.Is(err, sql.ErrNoRows) {
		// Missing rows are a normal outcome, not a query failure.
		metrics.RecordDBQuery("select", "recipes", time.Since(start), nil)
		return models.Recipe{}, fmt.Errorf("recipe %d: %w", id, ErrNotFound)
	}
	metrics.RecordDBQuery("select", "recipes", time.Since(start), err)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("failed to get recipe %d: %w", id, err)
	}
	return r, nil
}

// ListRecipes returns recipes ordered by ID with limit/offset pagination.
func (db *DB) ListRecipes(ctx context.Context, limit, offset int) ([]models.Recipe, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()
	start := time.Now()

	rows, err := db.conn.QueryContext(ctx,
		`SELECT `+recipeColumns+` FROM recipes ORDER BY id LIMIT ? OFFSET ?`, limit, offset)
	metrics.RecordDBQuery("select", "recipes", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	defer closeQuietly(rows)

	var recipes []models.Recipe
	for rows.Next() {
		r, err := scanRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recipe: %w", err)
		}
		recipes = append(recipes, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("recipe iteration failed: %w", err)
	}
	return recipes, nil
}

// CountRecipes returns the total recipe row count.
func (db *DB) CountRecipes(ctx context.Context) (int, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	start := time.Now()
	var n int
	err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM recipes`).Scan(&n)
	metrics.RecordDBQuery("count", "recipes", time.Since(start), err)
	if err != nil {
		return 0, fmt.Errorf("failed to count recipes: %w", err)
	}
	return n, nil
}
