// Gustus - Recipe Analytics and Seasonal Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustus

package config

import (
	"fmt"
	"strings"
)

var validEnvironments = map[string]bool{
	"development": true,
	"staging":     true,
	"production":  true,
}

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks that required configuration is present and valid.
func (c *Config) Validate() error {
	validators := []func() error{
		c.validateServer,
		c.validateDatabase,
		c.validateAPI,
		c.validateLogging,
		c.validatePipeline,
		c.validateRanking,
		c.validateClassifier,
	}

	for _, validate := range validators {
		if err := validate(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive, got %v", c.Server.Timeout)
	}
	if !validEnvironments[c.Server.Environment] {
		return fmt.Errorf("server.environment must be development, staging or production, got %q", c.Server.Environment)
	}
	return nil
}

func (c *Config) validateDatabase() error {
	if c.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}
	if c.Database.Threads < 0 {
		return fmt.Errorf("database.threads must be >= 0, got %d", c.Database.Threads)
	}
	if c.Database.MaxMemory != "" && !strings.HasSuffix(c.Database.MaxMemory, "B") {
		return fmt.Errorf("database.max_memory must be a size string like 2GB, got %q", c.Database.MaxMemory)
	}
	return nil
}

func (c *Config) validateAPI() error {
	if c.API.DefaultPageSize < 1 {
		return fmt.Errorf("api.default_page_size must be >= 1, got %d", c.API.DefaultPageSize)
	}
	if c.API.MaxPageSize < c.API.DefaultPageSize {
		return fmt.Errorf("api.max_page_size (%d) must be >= api.default_page_size (%d)",
			c.API.MaxPageSize, c.API.DefaultPageSize)
	}
	if !c.API.RateLimitDisabled {
		if c.API.RateLimitRequests < 1 {
			return fmt.Errorf("api.rate_limit_requests must be >= 1, got %d", c.API.RateLimitRequests)
		}
		if c.API.RateLimitWindow <= 0 {
			return fmt.Errorf("api.rate_limit_window must be positive, got %v", c.API.RateLimitWindow)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("logging.level must be one of trace, debug, info, warn, error, got %q", c.Logging.Level)
	}
	if f := strings.ToLower(c.Logging.Format); f != "json" && f != "console" {
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}
	return nil
}

func (c *Config) validatePipeline() error {
	if c.Pipeline.Workers < 0 {
		return fmt.Errorf("pipeline.workers must be >= 0, got %d", c.Pipeline.Workers)
	}
	if c.Pipeline.ChunkSize < 1 {
		return fmt.Errorf("pipeline.chunk_size must be >= 1, got %d", c.Pipeline.ChunkSize)
	}
	if c.Pipeline.RunInterval < 0 {
		return fmt.Errorf("pipeline.run_interval must not be negative, got %v", c.Pipeline.RunInterval)
	}
	return nil
}

func (c *Config) validateRanking() error {
	if c.Ranking.TopN < 1 {
		return fmt.Errorf("ranking.top_n must be >= 1, got %d", c.Ranking.TopN)
	}
	for _, p := range []struct {
		name   string
		params BayesianParams
	}{
		{"ranking.main_dish", c.Ranking.MainDish},
		{"ranking.dessert", c.Ranking.Dessert},
		{"ranking.beverage", c.Ranking.Beverage},
	} {
		if p.params.KBayes < 0 {
			return fmt.Errorf("%s.k_bayes must be >= 0, got %v", p.name, p.params.KBayes)
		}
		if p.params.KPop <= 0 {
			return fmt.Errorf("%s.k_pop must be positive, got %v", p.name, p.params.KPop)
		}
		if p.params.Gamma <= 0 {
			return fmt.Errorf("%s.gamma must be positive, got %v", p.name, p.params.Gamma)
		}
	}
	return nil
}

func (c *Config) validateClassifier() error {
	if c.Classifier.Temperature <= 0 {
		return fmt.Errorf("classifier.temperature must be positive, got %v", c.Classifier.Temperature)
	}
	priorSum := c.Classifier.Priors.MainDish + c.Classifier.Priors.Dessert + c.Classifier.Priors.Beverage
	if priorSum < 0.99 || priorSum > 1.01 {
		return fmt.Errorf("classifier.priors must sum to ~1.0, got %v", priorSum)
	}
	return nil
}
