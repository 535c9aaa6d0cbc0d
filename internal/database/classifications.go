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

	"github.com/tomtom215/gustus/internal/metrics"
	"github.com/tomtom215/gustus/internal/models"
)

// StoreClassifications upserts a batch of classification rows in one
// transaction. A re-run of the pipeline replaces each recipe's verdict.
func (db *DB) StoreClassifications(ctx context.Context, batch []models.Classification) error {
	if len(batch) == 0 {
		return nil
	}

	ctx, cancel := db.ensureContext(ctx)
	defer cancel()
	start := time.Now()

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin classification transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR REPLACE INTO classifications
		 (recipe_id, name, category, confidence, provenance, p_main_dish, p_dessert, p_beverage, run_id, classified_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare classification insert: %w", err)
	}
	defer closeWithLog(stmt, "classification insert statement")

	for _, c := range batch {
		if _, err := stmt.ExecContext(ctx,
			c.RecipeID, c.Name, string(c.Category), c.Confidence, string(c.Provenance),
			c.PMainDish, c.PDessert, c.PBeverage, c.RunID, c.ClassifiedAt,
		); err != nil {
			return fmt.Errorf("failed to insert classification for recipe %d: %w", c.RecipeID, err)
		}
	}

	err = tx.Commit()
	metrics.RecordDBQuery("insert", "classifications", time.Since(start), err)
	if err != nil {
		return fmt.Errorf("failed to commit classifications: %w", err)
	}
	return nil
}

const classificationColumns = `recipe_id, name, category, confidence, provenance, p_main_dish, p_dessert, p_beverage, run_id, classified_at`

// GetClassification returns the stored verdict for one recipe, or ErrNotFound.
func (db *DB) GetClassification(ctx context.Context, recipeID int64) (models.Classification, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()
	start := time.Now()

	var c models.Classification
	err := db.conn.QueryRowContext(ctx,
		`SELECT `+classificationColumns+` FROM classifications WHERE recipe_id = ?`, recipeID,
	).Scan(
		&c.RecipeID, &c.Name, &c.Category, &c.Confidence, &c.Provenance,
		&c.PMainDish, &c.PDessert, &c.PBeverage, &c.RunID, &c.ClassifiedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		metrics.RecordDBQuery("select", "classifications", time.Since(start), nil)
		return models.Classification{}, fmt.Errorf("classification for recipe %d: %w", recipeID, ErrNotFound)
	}
	metrics.RecordDBQuery("select", "classifications", time.Since(start), err)
	if err != nil {
		return models.Classification{}, fmt.Errorf("failed to get classification for recipe %d: %w", recipeID, err)
	}
	return c, nil
}

// CountsByCategory returns classification counts keyed by category name.
func (db *DB) CountsByCategory(ctx context.Context) (map[string]int, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	rows, err := db.conn.QueryContext(ctx,
		`SELECT category, COUNT(*) FROM classifications GROUP BY category`)
	if err != nil {
		return nil, fmt.Errorf("failed to count classifications: %w", err)
	}
	defer closeQuietly(rows)

	counts := make(map[string]int)
	for rows.Next() {
		var category string
		var n int
		if err := rows.Scan(&category, &n); err != nil {
			return nil, fmt.Errorf("failed to scan category count: %w", err)
		}
		counts[category] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("category count iteration failed: %w", err)
	}
	return counts, nil
}

// LastRun returns the run ID and timestamp of the most recent classification
// run, or empty values when no classifications exist.
func (db *DB) LastRun(ctx context.Context) (string, sql.NullTime, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	var runID sql.NullString
	var at sql.NullTime
	err := db.conn.QueryRowContext(ctx,
		`SELECT run_id, MAX(classified_at) FROM classifications
		 GROUP BY run_id ORDER BY MAX(classified_at) DESC LIMIT 1`,
	).Scan(&runID, &at)
	if errors.Is(err, sql.ErrNoRows) {
		return "", sql.NullTime{}, nil
	}
	if err != nil {
		return "", sql.NullTime{}, fmt.Errorf("failed to get last run: %w", err)
	}
	return runID.String, at, nil
}

// ExportClassificationsCSV writes all classifications to a CSV file using
// DuckDB's COPY, matching the layout of the original pipeline's export.
func (db *DB) ExportClassificationsCSV(ctx context.Context, outputPath string) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	query := `
		COPY (
			SELECT recipe_id AS id, name, category AS recipe_type, confidence,
				provenance, p_main_dish, p_dessert, p_beverage, run_id
			FROM classifications
			ORDER BY recipe_id
		) TO ? (FORMAT CSV, HEADER)`

	if _, err := db.conn.ExecContext(ctx, query, outputPath); err != nil {
		return fmt.Errorf("failed to export classifications: %w", err)
	}
	return nil
}
