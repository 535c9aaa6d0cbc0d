// Gustus - Recipe Analytics and Seasonal Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustus

package api

import (
	"time"

	"github.com/tomtom215/gustus/internal/cache"
	"github.com/tomtom215/gustus/internal/classifier"
	"github.com/tomtom215/gustus/internal/config"
	"github.com/tomtom215/gustus/internal/database"
	"github.com/tomtom215/gustus/internal/pipeline"
	"github.com/tomtom215/gustus/internal/ranking"
)

// rankingCacheTTL bounds how stale a served ranking cell can be after a new
// classification run or import lands.
const rankingCacheTTL = 5 * time.Minute

// Version is the reported application version. Overridden at build time via
// -ldflags "-X github.com/tomtom215/gustus/internal/api.Version=...".
var Version = "dev"

// Handler contains dependencies for API handlers.
//
// Handler methods are split across multiple files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: Shared response and parameter helpers
//   - handlers_health.go: Health and stats endpoints
//   - handlers_classify.go: Classification endpoints
//   - handlers_recipes.go: Recipe lookup endpoints
//   - handlers_rankings.go: Seasonal ranking endpoints
type Handler struct {
	db           *database.DB
	engine       *classifier.Engine
	ranker       *ranking.Ranker
	runner       *pipeline.Runner
	cfg          *config.Config
	rankingCache *cache.Cache
	startTime    time.Time
}

// NewHandler creates a new API handler with all required dependencies.
func NewHandler(db *database.DB, engine *classifier.Engine, ranker *ranking.Ranker, cfg *config.Config) *Handler {
	return &Handler{
		db:           db,
		engine:       engine,
		ranker:       ranker,
		runner:       pipeline.New(engine, db, cfg.Pipeline),
		cfg:          cfg,
		rankingCache: cache.New(rankingCacheTTL),
		startTime:    time.Now(),
	}
}
