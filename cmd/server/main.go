// Gustus - Recipe Analytics and Seasonal Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustus

// Package main is the entry point for the Gustus API server.
//
// Gustus classifies Food.com recipes into three categories (main dish,
// dessert, beverage) with a deterministic two-signal engine, and ranks them
// per season with a popularity-weighted Bayesian score.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: layered settings from defaults, config file and
//     environment variables (Koanf v2)
//  2. Database: DuckDB with the recipe, interaction and classification tables
//  3. Classifier: the compiled, immutable classification engine
//  4. Supervisor tree: the HTTP server and the optional periodic
//     reclassification scheduler under Suture supervision
//
// # Configuration
//
// Configuration is loaded via Koanf v2 (highest priority wins):
//   - Environment variables with the GUSTUS_ prefix
//   - Config file (config.yaml)
//   - Built-in defaults
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM: it stops
// accepting new connections, waits for in-flight requests (10s timeout),
// checkpoints and closes the database.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/gustus/internal/api"
	"github.com/tomtom215/gustus/internal/classifier"
	"github.com/tomtom215/gustus/internal/config"
	"github.com/tomtom215/gustus/internal/database"
	"github.com/tomtom215/gustus/internal/logging"
	"github.com/tomtom215/gustus/internal/pipeline"
	"github.com/tomtom215/gustus/internal/ranking"
	"github.com/tomtom215/gustus/internal/supervisor"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", api.Version).
		Str("db_path", cfg.Database.Path).
		Str("environment", cfg.Server.Environment).
		Msg("Starting Gustus")

	db, err := database.New(&cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()
	logging.Info().Msg("Database initialized")

	engine, err := classifier.NewEngine(cfg.Classifier)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to build classification engine")
	}

	ranker := ranking.New(cfg.Ranking)
	router := api.NewRouter(db, engine, ranker, cfg)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddAPIService(supervisor.NewHTTPService(server, supervisor.DefaultTreeConfig().ShutdownTimeout))

	if cfg.Pipeline.RunInterval > 0 {
		runner := pipeline.New(engine, db, cfg.Pipeline)
		tree.AddJobService(supervisor.NewSchedulerService(runner, cfg.Pipeline.RunInterval))
		logging.Info().Dur("interval", cfg.Pipeline.RunInterval).Msg("Periodic classification scheduler enabled")
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Gustus stopped gracefully")
}
