// Gustus - Recipe Analytics and Seasonal Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustus

package supervisor

import (
	"context"
	"time"

	"github.com/tomtom215/gustus/internal/logging"
	"github.com/tomtom215/gustus/internal/models"
)

// ClassificationRunner runs one full classification pass over the recipe
// table. Satisfied by *pipeline.Runner.
type ClassificationRunner interface {
	Run(ctx context.Context) (models.ClassificationSummary, error)
}

// SchedulerService runs the classification pipeline on a fixed interval.
// A failed run is logged and retried at the next tick rather than crashing
// the service; only context cancellation stops it.
type SchedulerService struct {
	runner   ClassificationRunner
	interval time.Duration
}

// NewSchedulerService creates the scheduler. The interval must be positive;
// whether to schedule at all is the caller's decision.
func NewSchedulerService(runner ClassificationRunner, interval time.Duration) *SchedulerService {
	return &SchedulerService{
		runner:   runner,
		interval: interval,
	}
}

// Serve implements suture.Service. The first run happens after one full
// interval, not at startup, so a crash-looping run cannot hammer the
// database on every supervisor restart.
func (s *SchedulerService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			summary, err := s.runner.Run(ctx)
			if err != nil {
				logging.Err(err).Msg("Scheduled classification run failed")
				continue
			}
			logging.Info().
				Str("run_id", summary.RunID).
				Int("total", summary.Total).
				Float64("mean_confidence", summary.MeanConfidence).
				Msg("Scheduled classification run complete")
		}
	}
}

// String identifies the service in supervisor log messages.
func (s *SchedulerService) String() string {
	return "classification-scheduler"
}
