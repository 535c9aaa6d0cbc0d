// Gustus - Recipe Analytics and Seasonal Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustus

// Package main is the batch classification command.
//
// It imports the raw Food.com CSV dumps, runs one full classification pass
// over the recipe table, and optionally exports the verdicts as CSV:
//
//	classify -import -run -export verdicts.csv
//
// Import paths default to the configured dataset locations and can be
// overridden with -recipes and -interactions. The command shares its
// configuration with the server, so a run here is immediately visible to
// the API.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/tomtom215/gustus/internal/classifier"
	"github.com/tomtom215/gustus/internal/config"
	"github.com/tomtom215/gustus/internal/database"
	"github.com/tomtom215/gustus/internal/logging"
	"github.com/tomtom215/gustus/internal/models"
	"github.com/tomtom215/gustus/internal/pipeline"
)

func main() {
	doImport := flag.Bool("import", false, "import the raw CSV datasets before classifying")
	doRun := flag.Bool("run", false, "run a full classification pass")
	exportPath := flag.String("export", "", "export stored classifications to this CSV path")
	recipesPath := flag.String("recipes", "", "recipe CSV path (overrides configuration)")
	interactionsPath := flag.String("interactions", "", "interactions CSV path (overrides configuration)")
	flag.Parse()

	if !*doImport && !*doRun && *exportPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	if *recipesPath != "" {
		cfg.Dataset.RecipesPath = *recipesPath
	}
	if *interactionsPath != "" {
		cfg.Dataset.InteractionsPath = *interactionsPath
	}

	db, err := database.New(&cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *doImport {
		if err := runImport(ctx, db, cfg); err != nil {
			logging.Fatal().Err(err).Msg("Import failed")
		}
	}

	if *doRun {
		if err := runClassification(ctx, db, cfg); err != nil {
			logging.Fatal().Err(err).Msg("Classification run failed")
		}
	}

	if *exportPath != "" {
		if err := db.ExportClassificationsCSV(ctx, *exportPath); err != nil {
			logging.Fatal().Err(err).Str("path", *exportPath).Msg("Export failed")
		}
		logging.Info().Str("path", *exportPath).Msg("Classifications exported")
	}
}

func runImport(ctx context.Context, db *database.DB, cfg *config.Config) error {
	recipes, err := db.ImportRecipes(ctx, cfg.Dataset.RecipesPath)
	if err != nil {
		return fmt.Errorf("importing recipes: %w", err)
	}
	logging.Info().Int("count", recipes).Str("path", cfg.Dataset.RecipesPath).Msg("Recipes imported")

	interactions, err := db.ImportInteractions(ctx, cfg.Dataset.InteractionsPath)
	if err != nil {
		return fmt.Errorf("importing interactions: %w", err)
	}
	logging.Info().Int("count", interactions).Str("path", cfg.Dataset.InteractionsPath).Msg("Interactions imported")

	return nil
}

func runClassification(ctx context.Context, db *database.DB, cfg *config.Config) error {
	engine, err := classifier.NewEngine(cfg.Classifier)
	if err != nil {
		return fmt.Errorf("building engine: %w", err)
	}

	runner := pipeline.New(engine, db, cfg.Pipeline)
	summary, err := runner.Run(ctx)
	if err != nil {
		return err
	}

	printSummary(summary)
	return nil
}

// printSummary writes a human-readable run report to stdout, separate from
// the structured logs.
func printSummary(s models.ClassificationSummary) {
	fmt.Printf("run %s: %d recipes classified in %dms\n", s.RunID, s.Total, s.DurationMS)
	fmt.Printf("mean confidence %.1f, %d below 50\n", s.MeanConfidence, s.LowConfidence)

	categories := make([]string, 0, len(s.ByCategory))
	for cat := range s.ByCategory {
		categories = append(categories, cat)
	}
	sort.Strings(categories)
	for _, cat := range categories {
		fmt.Printf("  %-10s %d\n", cat, s.ByCategory[cat])
	}

	provenances := make([]string, 0, len(s.ByProvenance))
	for p := range s.ByProvenance {
		provenances = append(provenances, p)
	}
	sort.Strings(provenances)
	for _, p := range provenances {
		fmt.Printf("  %-22s %d\n", p, s.ByProvenance[p])
	}
}
