// Gustus - Recipe Analytics and Seasonal Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustus

// Package config provides layered application configuration: struct
// defaults, then an optional YAML file, then environment variables, each
// layer overriding the previous one.
package config

import (
	"time"

	"github.com/tomtom215/gustus/internal/classifier"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig      `koanf:"server"`
	Database   DatabaseConfig    `koanf:"database"`
	API        APIConfig         `koanf:"api"`
	Logging    LoggingConfig     `koanf:"logging"`
	Dataset    DatasetConfig     `koanf:"dataset"`
	Pipeline   PipelineConfig    `koanf:"pipeline"`
	Ranking    RankingConfig     `koanf:"ranking"`
	Classifier classifier.Config `koanf:"classifier"`
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // development, staging, production
}

// DatabaseConfig holds the DuckDB settings.
type DatabaseConfig struct {
	Path                   string `koanf:"path"`
	MaxMemory              string `koanf:"max_memory"`
	Threads                int    `koanf:"threads"` // 0 = use runtime.NumCPU()
	PreserveInsertionOrder bool   `koanf:"preserve_insertion_order"`
}

// APIConfig holds pagination, rate limiting and CORS settings.
type APIConfig struct {
	DefaultPageSize   int           `koanf:"default_page_size"`
	MaxPageSize       int           `koanf:"max_page_size"`
	RateLimitRequests int           `koanf:"rate_limit_requests"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds the zerolog settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// DatasetConfig points at the raw CSV inputs.
type DatasetConfig struct {
	RecipesPath      string `koanf:"recipes_path"`
	InteractionsPath string `koanf:"interactions_path"`
}

// PipelineConfig tunes the batch classification worker pool.
type PipelineConfig struct {
	Workers   int `koanf:"workers"`    // 0 = use runtime.NumCPU()
	ChunkSize int `koanf:"chunk_size"` // records per work unit

	// RunInterval schedules periodic reclassification runs while the server
	// is up. Zero disables the scheduler; runs are then triggered only by
	// the classify command.
	RunInterval time.Duration `koanf:"run_interval"`
}

// BayesianParams are the per-category score regression parameters.
type BayesianParams struct {
	// KBayes is the pseudo-review count pulling sparse recipes toward the
	// seasonal mean.
	KBayes float64 `koanf:"k_bayes"`
	// KPop is the review count at which the popularity weight reaches
	// about 63% of its maximum.
	KPop float64 `koanf:"k_pop"`
	// Gamma amplifies (>1) or dampens (<1) the popularity weight.
	Gamma float64 `koanf:"gamma"`
}

// RankingConfig holds the seasonal ranking parameters.
type RankingConfig struct {
	TopN     int            `koanf:"top_n"`
	MainDish BayesianParams `koanf:"main_dish"`
	Dessert  BayesianParams `koanf:"dessert"`
	Beverage BayesianParams `koanf:"beverage"`
}

// ForCategory returns the Bayesian parameters for a category, falling back
// to the main-dish parameters for anything unknown.
func (r RankingConfig) ForCategory(cat classifier.Category) BayesianParams {
	switch cat {
	case classifier.Dessert:
		return r.Dessert
	case classifier.Beverage:
		return r.Beverage
	default:
		return r.MainDish
	}
}

// defaultConfig returns a Config with all default values. Defaults are
// applied first, then overridden by the config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        8087,
			Host:        "0.0.0.0",
			Timeout:     30 * time.Second,
			Environment: "development",
		},
		Database: DatabaseConfig{
			Path:                   "/data/gustus.duckdb",
			MaxMemory:              "2GB",
			Threads:                0,
			PreserveInsertionOrder: true,
		},
		API: APIConfig{
			DefaultPageSize:   100,
			MaxPageSize:       1000,
			RateLimitRequests: 100,
			RateLimitWindow:   time.Minute,
			CORSOrigins:       []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Dataset: DatasetConfig{
			RecipesPath:      "/data/raw/RAW_recipes.csv",
			InteractionsPath: "/data/raw/RAW_interactions.csv",
		},
		Pipeline: PipelineConfig{
			Workers:   0,
			ChunkSize: 512,
		},
		Ranking: RankingConfig{
			TopN:     20,
			MainDish: BayesianParams{KBayes: 65, KPop: 45, Gamma: 1.2},
			Dessert:  BayesianParams{KBayes: 60, KPop: 40, Gamma: 1.2},
			Beverage: BayesianParams{KBayes: 20, KPop: 4, Gamma: 0.7},
		},
		Classifier: classifier.DefaultConfig(),
	}
}
