// Gustus - Recipe Analytics and Seasonal Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustus

// Package pipeline runs the classifier over the full recipe table with a
// bounded worker pool. Output order always matches input order, so repeated
// runs over the same data produce identical exports.
package pipeline

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/gustus/internal/classifier"
	"github.com/tomtom215/gustus/internal/config"
	"github.com/tomtom215/gustus/internal/database"
	"github.com/tomtom215/gustus/internal/logging"
	"github.com/tomtom215/gustus/internal/metrics"
	"github.com/tomtom215/gustus/internal/models"
)

// Runner classifies recipes and persists the verdicts.
type Runner struct {
	engine    *classifier.Engine
	db        *database.DB
	workers   int
	chunkSize int
}

// New creates a Runner. Zero workers means one per CPU; chunk size below 1
// falls back to 512.
func New(engine *classifier.Engine, db *database.DB, cfg config.PipelineConfig) *Runner {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	chunkSize := cfg.ChunkSize
	if chunkSize < 1 {
		chunkSize = 512
	}
	return &Runner{
		engine:    engine,
		db:        db,
		workers:   workers,
		chunkSize: chunkSize,
	}
}

// ClassifyRecords classifies a slice of records concurrently. The result
// slice is index-aligned with the input. The engine is immutable after
// construction, so workers share it without locking.
func (r *Runner) ClassifyRecords(ctx context.Context, records []classifier.Record) ([]classifier.Result, error) {
	results := make([]classifier.Result, len(records))
	if len(records) == 0 {
		return results, nil
	}

	workers := r.workers
	if workers > len(records) {
		workers = len(records)
	}

	indexes := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				start := time.Now()
				res := r.engine.Classify(records[i])
				results[i] = res
				metrics.RecordClassification(string(res.Category), string(res.Provenance), res.Confidence, time.Since(start))
			}
		}()
	}

	var err error
feed:
	for i := range records {
		select {
		case indexes <- i:
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		}
	}
	close(indexes)
	wg.Wait()

	if err != nil {
		return nil, fmt.Errorf("classification canceled: %w", err)
	}
	return results, nil
}

// Run classifies every recipe in the database in chunks and stores the
// verdicts under a fresh run ID. Returns a summary of the run.
func (r *Runner) Run(ctx context.Context) (models.ClassificationSummary, error) {
	runID := uuid.NewString()
	start := time.Now()

	logging.Info().Str("run_id", runID).Int("workers", r.workers).Int("chunk_size", r.chunkSize).Msg("Classification run started")

	summary := models.ClassificationSummary{
		RunID:        runID,
		ByCategory:   make(map[string]int),
		ByProvenance: make(map[string]int),
	}

	var confidenceSum float64
	offset := 0
	for {
		recipes, err := r.db.ListRecipes(ctx, r.chunkSize, offset)
		if err != nil {
			metrics.RecordPipelineRun(time.Since(start), summary.Total, err)
			return summary, fmt.Errorf("run %s: %w", runID, err)
		}
		if len(recipes) == 0 {
			break
		}

		records := make([]classifier.Record, len(recipes))
		for i, recipe := range recipes {
			records[i] = recipe.Record()
		}

		results, err := r.ClassifyRecords(ctx, records)
		if err != nil {
			metrics.RecordPipelineRun(time.Since(start), summary.Total, err)
			return summary, fmt.Errorf("run %s: %w", runID, err)
		}

		now := time.Now().UTC()
		batch := make([]models.Classification, len(results))
		for i, res := range results {
			batch[i] = models.FromResult(res, runID, now)

			summary.ByCategory[string(res.Category)]++
			summary.ByProvenance[string(res.Provenance)]++
			confidenceSum += res.Confidence
			if res.Confidence < 50 {
				summary.LowConfidence++
			}
		}

		if err := r.db.StoreClassifications(ctx, batch); err != nil {
			metrics.RecordPipelineRun(time.Since(start), summary.Total, err)
			return summary, fmt.Errorf("run %s: %w", runID, err)
		}

		summary.Total += len(results)
		offset += len(recipes)

		logging.Debug().Str("run_id", runID).Int("processed", summary.Total).Msg("Chunk stored")
	}

	if summary.Total > 0 {
		summary.MeanConfidence = confidenceSum / float64(summary.Total)
	}
	summary.DurationMS = time.Since(start).Milliseconds()

	metrics.RecordPipelineRun(time.Since(start), summary.Total, nil)
	logging.Info().
		Str("run_id", runID).
		Int("total", summary.Total).
		Float64("mean_confidence", summary.MeanConfidence).
		Int64("duration_ms", summary.DurationMS).
		Msg("Classification run complete")

	return summary, nil
}
