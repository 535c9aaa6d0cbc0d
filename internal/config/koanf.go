// Gustus - Recipe Analytics and Seasonal Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustus

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in
// order of priority. The first file found wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/gustus/config.yaml",
	"/etc/gustus/config.yml",
}

// ConfigPathEnvVar overrides the config file path when set.
const ConfigPathEnvVar = "CONFIG_PATH"

// Load builds the configuration from three layers: struct defaults, an
// optional YAML file and environment variables, in increasing priority.
func Load() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: defaults from struct.
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: config file (optional).
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: environment variables (highest priority).
	// GUSTUS_SERVER_PORT -> server.port, LOG_LEVEL -> logging.level
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// envTransformFunc maps environment variable names onto koanf paths.
// Unmapped variables return an empty string and are skipped, so random
// environment variables cannot pollute the configuration.
func envTransformFunc(key string) string {
	key = strings.ToLower(key)

	envMappings := map[string]string{
		// Server
		"http_port":    "server.port",
		"http_host":    "server.host",
		"http_timeout": "server.timeout",
		"environment":  "server.environment",

		// Database
		"duckdb_path":       "database.path",
		"duckdb_max_memory": "database.max_memory",
		"duckdb_threads":    "database.threads",

		// API
		"api_default_page_size": "api.default_page_size",
		"api_max_page_size":     "api.max_page_size",
		"rate_limit_requests":   "api.rate_limit_requests",
		"rate_limit_window":     "api.rate_limit_window",
		"disable_rate_limit":    "api.rate_limit_disabled",
		"cors_origins":          "api.cors_origins",

		// Logging
		"log_level":  "logging.level",
		"log_format": "logging.format",
		"log_caller": "logging.caller",

		// Dataset
		"recipes_csv":      "dataset.recipes_path",
		"interactions_csv": "dataset.interactions_path",

		// Pipeline
		"pipeline_workers":    "pipeline.workers",
		"pipeline_chunk_size": "pipeline.chunk_size",

		// Ranking
		"ranking_top_n": "ranking.top_n",
	}

	if mapped, ok := envMappings[key]; ok {
		return mapped
	}

	// Generic prefix: GUSTUS_SERVER_PORT -> server.port. Sections with
	// multi-word keys keep the first underscore as the section split.
	if rest, ok := strings.CutPrefix(key, "gustus_"); ok {
		if section, field, found := strings.Cut(rest, "_"); found {
			return section + "." + field
		}
	}

	return ""
}

// findConfigFile locates the config file, honoring CONFIG_PATH first.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}
