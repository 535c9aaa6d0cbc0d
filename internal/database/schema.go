// Gustus - Recipe Analytics and Seasonal Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustus

package database

import (
	"context"
	"fmt"
	"time"
)

// schemaContext returns a context with timeout for schema operations.
func schemaContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 60*time.Second)
}

// createTables creates the core database tables and indexes.
func (db *DB) createTables() error {
	ctx, cancel := schemaContext()
	defer cancel()

	queries := []string{
		// tags keeps the raw Python-literal column from the dump; the
		// dataset package parses it on read.
		`CREATE TABLE IF NOT EXISTS recipes (
			id BIGINT PRIMARY KEY,
			name TEXT NOT NULL,
			minutes INTEGER NOT NULL DEFAULT 0,
			submitted DATE,
			tags TEXT NOT NULL DEFAULT '',
			calories DOUBLE NOT NULL DEFAULT 0,
			fat DOUBLE NOT NULL DEFAULT 0,
			sugar DOUBLE NOT NULL DEFAULT 0,
			sodium DOUBLE NOT NULL DEFAULT 0,
			protein DOUBLE NOT NULL DEFAULT 0,
			saturated_fat DOUBLE NOT NULL DEFAULT 0,
			carbs DOUBLE NOT NULL DEFAULT 0,
			n_steps INTEGER NOT NULL DEFAULT 0,
			description TEXT
		)`,

		// season is derived from date at import time so ranking queries can
		// group without recomputing the calendar boundaries.
		`CREATE TABLE IF NOT EXISTS interactions (
			user_id BIGINT NOT NULL,
			recipe_id BIGINT NOT NULL,
			date DATE,
			rating DOUBLE NOT NULL DEFAULT 0,
			season TEXT NOT NULL DEFAULT 'Unknown'
		)`,

		`CREATE TABLE IF NOT EXISTS classifications (
			recipe_id BIGINT PRIMARY KEY,
			name TEXT NOT NULL,
			category TEXT NOT NULL,
			confidence DOUBLE NOT NULL,
			provenance TEXT NOT NULL,
			p_main_dish DOUBLE NOT NULL,
			p_dessert DOUBLE NOT NULL,
			p_beverage DOUBLE NOT NULL,
			run_id TEXT NOT NULL,
			classified_at TIMESTAMP NOT NULL
		)`,

		`CREATE INDEX IF NOT EXISTS idx_interactions_recipe ON interactions(recipe_id)`,
		`CREATE INDEX IF NOT EXISTS idx_interactions_season ON interactions(season)`,
		`CREATE INDEX IF NOT EXISTS idx_classifications_category ON classifications(category)`,
		`CREATE INDEX IF NOT EXISTS idx_classifications_run ON classifications(run_id)`,
	}

	for _, query := range queries {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to execute query: %s: %w", query, err)
		}
	}

	return nil
}

// seasonCaseSQL maps a DATE expression to a season name using the same
// boundaries as the season package: Spring Mar 21 - Jun 20, Summer Jun 21 -
// Sep 20, Fall Sep 21 - Dec 20, Winter otherwise. NULL dates map to Unknown.
func seasonCaseSQL(dateExpr string) string {
	return fmt.Sprintf(`CASE
		WHEN %[1]s IS NULL THEN 'Unknown'
		WHEN (MONTH(%[1]s) = 3 AND DAY(%[1]s) >= 21) OR MONTH(%[1]s) IN (4, 5) OR (MONTH(%[1]s) = 6 AND DAY(%[1]s) <= 20) THEN 'Spring'
		WHEN (MONTH(%[1]s) = 6 AND DAY(%[1]s) >= 21) OR MONTH(%[1]s) IN (7, 8) OR (MONTH(%[1]s) = 9 AND DAY(%[1]s) <= 20) THEN 'Summer'
		WHEN (MONTH(%[1]s) = 9 AND DAY(%[1]s) >= 21) OR MONTH(%[1]s) IN (10, 11) OR (MONTH(%[1]s) = 12 AND DAY(%[1]s) <= 20) THEN 'Fall'
		ELSE 'Winter'
	END`, dateExpr)
}
