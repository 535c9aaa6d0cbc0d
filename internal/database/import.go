// Gustus - Recipe Analytics and Seasonal Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustus

package database

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/gustus/internal/dataset"
	"github.com/tomtom215/gustus/internal/logging"
	"github.com/tomtom215/gustus/internal/metrics"
)

// importTimeout bounds a full CSV import. The raw recipe dump is ~230k rows.
const importTimeout = 10 * time.Minute

// recipeRow is a parsed recipe pending insert.
type recipeRow struct {
	id          int64
	name        string
	minutes     int
	submitted   interface{}
	tags        string
	nutrition   [7]float64
	nSteps      int
	description string
}

// ImportRecipes loads the raw recipes CSV into the recipes table. The
// nutrition and tags columns are Python literals; they are parsed Go-side
// so malformed rows degrade to zeros instead of aborting the import.
// Returns the number of rows imported. Re-importing replaces existing rows.
func (db *DB) ImportRecipes(ctx context.Context, csvPath string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, importTimeout)
	defer cancel()
	start := time.Now()

	parsed, skipped, err := db.readRecipeCSV(ctx, csvPath)
	if err != nil {
		return 0, err
	}

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin import transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR REPLACE INTO recipes
		 (id, name, minutes, submitted, tags, calories, fat, sugar, sodium, protein, saturated_fat, carbs, n_steps, description)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare recipe insert: %w", err)
	}
	defer closeWithLog(stmt, "recipe insert statement")

	for _, r := range parsed {
		if _, err := stmt.ExecContext(ctx,
			r.id, r.name, r.minutes, r.submitted, r.tags,
			r.nutrition[0], r.nutrition[1], r.nutrition[2], r.nutrition[3],
			r.nutrition[4], r.nutrition[5], r.nutrition[6],
			r.nSteps, r.description,
		); err != nil {
			return 0, fmt.Errorf("failed to insert recipe %d: %w", r.id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit recipe import: %w", err)
	}

	metrics.RecordImport("recipes", len(parsed), time.Since(start))
	logging.Info().Int("imported", len(parsed)).Int("skipped", skipped).Str("path", csvPath).Msg("Recipe import complete")
	return len(parsed), nil
}

// readRecipeCSV reads and parses the recipe CSV fully before any writes,
// keeping the read cursor and the insert transaction off the pool at the
// same time.
func (db *DB) readRecipeCSV(ctx context.Context, csvPath string) ([]recipeRow, int, error) {
	// all_varchar keeps DuckDB's CSV sniffer from choking on the literal
	// columns; every field is converted explicitly below.
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, name, minutes, submitted, tags, nutrition, n_steps, description
		 FROM read_csv(?, header = true, all_varchar = true)`, csvPath)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read recipes CSV %s: %w", csvPath, err)
	}
	defer closeQuietly(rows)

	var parsed []recipeRow
	skipped := 0
	for rows.Next() {
		var id, name, minutes, submitted, tags, nutrition, nSteps, description sql.NullString
		if err := rows.Scan(&id, &name, &minutes, &submitted, &tags, &nutrition, &nSteps, &description); err != nil {
			return nil, skipped, fmt.Errorf("failed to scan recipe row: %w", err)
		}

		recipeID, err := strconv.ParseInt(strings.TrimSpace(id.String), 10, 64)
		if err != nil {
			skipped++
			continue
		}

		nut := dataset.ParseNutrition(nutrition.String)
		var subArg interface{}
		if sub := dataset.ParseDate(submitted.String); !sub.IsZero() {
			subArg = sub
		}

		parsed = append(parsed, recipeRow{
			id:        recipeID,
			name:      name.String,
			minutes:   atoiOrZero(minutes.String),
			submitted: subArg,
			tags:      tags.String,
			nutrition: [7]float64{
				nut.Calories, nut.Fat, nut.Sugar, nut.Sodium,
				nut.Protein, nut.SaturatedFat, nut.Carbs,
			},
			nSteps:      atoiOrZero(nSteps.String),
			description: description.String,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, skipped, fmt.Errorf("recipe CSV iteration failed: %w", err)
	}

	return parsed, skipped, nil
}

// ImportInteractions loads the raw interactions CSV. The season column is
// derived from the review date inside the INSERT so ranking queries can
// group by it directly. Returns the number of rows imported.
func (db *DB) ImportInteractions(ctx context.Context, csvPath string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, importTimeout)
	defer cancel()
	start := time.Now()

	if _, err := db.conn.ExecContext(ctx, `DELETE FROM interactions`); err != nil {
		return 0, fmt.Errorf("failed to clear interactions: %w", err)
	}

	insert := fmt.Sprintf(
		`INSERT INTO interactions (user_id, recipe_id, date, rating, season)
		 SELECT user_id, recipe_id, date, COALESCE(rating, 0), %s
		 FROM read_csv(?, header = true,
			columns = {'user_id': 'BIGINT', 'recipe_id': 'BIGINT', 'date': 'DATE', 'rating': 'DOUBLE', 'review': 'VARCHAR'})`,
		seasonCaseSQL("date"))

	res, err := db.conn.ExecContext(ctx, insert, csvPath)
	if err != nil {
		return 0, fmt.Errorf("failed to import interactions CSV %s: %w", csvPath, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		n = 0
	}

	metrics.RecordImport("interactions", int(n), time.Since(start))
	logging.Info().Int64("imported", n).Str("path", csvPath).Msg("Interaction import complete")
	return int(n), nil
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
