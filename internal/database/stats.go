// Gustus - Recipe Analytics and Seasonal Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustus

package database

import (
	"context"
	"fmt"
	"os"

	"github.com/tomtom215/gustus/internal/models"
)

// GetStats returns overall row counts and the most recent run for the
// health and stats endpoints.
func (db *DB) GetStats(ctx context.Context) (models.Stats, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	var stats models.Stats

	err := db.conn.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM recipes),
			(SELECT COUNT(*) FROM interactions),
			(SELECT COUNT(*) FROM classifications)`,
	).Scan(&stats.TotalRecipes, &stats.TotalInteractions, &stats.TotalClassifications)
	if err != nil {
		return models.Stats{}, fmt.Errorf("failed to query stats counts: %w", err)
	}

	counts, err := db.CountsByCategory(ctx)
	if err != nil {
		return models.Stats{}, err
	}
	stats.ByCategory = counts

	runID, at, err := db.LastRun(ctx)
	if err != nil {
		return models.Stats{}, err
	}
	stats.LastRunID = runID
	if at.Valid {
		t := at.Time
		stats.LastRunTime = &t
	}

	if info, err := os.Stat(db.cfg.Path); err == nil {
		stats.DatabaseSizeBytes = info.Size()
	}

	return stats, nil
}
