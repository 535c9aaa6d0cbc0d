// Gustus - Recipe Analytics and Seasonal Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustus

// Package classifier implements the recipe-type classification engine.
//
// Each record is assigned one of three categories (main dish, dessert,
// beverage) with a calibrated confidence by fusing two independent signals:
//
//   - a structural signal derived from the nutrition vector, scored against
//     fixed class prototypes by cosine similarity;
//   - a lexical signal from the recipe name and tags, matched against
//     two-tier (strong/soft) per-category pattern lexicons.
//
// A confidence-gated arbiter reconciles the two, with identifier-based
// ground-truth overrides and a fast path for unambiguous beverage keywords.
//
// The engine is deterministic and rule-based: no training, no model state.
// An Engine is immutable after construction and safe for concurrent use;
// classifying the same record twice yields bit-identical output.
package classifier

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Engine is the compiled, immutable classification pipeline. Build one with
// NewEngine and share it freely across goroutines.
type Engine struct {
	cfg Config

	protoMain     [3]float64
	protoDessert  [3]float64
	protoBeverage [3]float64

	lexicons   *compiledLexicons
	fastPath   *regexp.Regexp
	exceptions map[int64]Category
}

// NewEngine validates and compiles the configuration. Pattern compilation
// failures are configuration-time faults and prevent startup; malformed
// exception entries (non-integer IDs, unknown categories) are skipped so a
// stale table entry cannot take the pipeline down.
func NewEngine(cfg Config) (*Engine, error) {
	if cfg.Temperature <= 0 {
		return nil, fmt.Errorf("classifier temperature must be positive, got %v", cfg.Temperature)
	}

	lexicons, err := compileLexicons(cfg.Lexicons)
	if err != nil {
		return nil, fmt.Errorf("compiling lexicons: %w", err)
	}

	var fastPath *regexp.Regexp
	if len(cfg.Arbiter.FastPath.Patterns) > 0 {
		fastPath, err = regexp.Compile("(?i)(?:" + strings.Join(cfg.Arbiter.FastPath.Patterns, "|") + ")")
		if err != nil {
			return nil, fmt.Errorf("compiling fast-path patterns: %w", err)
		}
	}

	exceptions := make(map[int64]Category, len(cfg.Exceptions))
	for rawID, rawCat := range cfg.Exceptions {
		id, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil {
			continue
		}
		cat, ok := ParseCategory(rawCat)
		if !ok {
			continue
		}
		exceptions[id] = cat
	}

	return &Engine{
		cfg:           cfg,
		protoMain:     cfg.Prototypes.MainDish.vector(),
		protoDessert:  cfg.Prototypes.Dessert.vector(),
		protoBeverage: cfg.Prototypes.Beverage.vector(),
		lexicons:      lexicons,
		fastPath:      fastPath,
		exceptions:    exceptions,
	}, nil
}

// Classify runs the full pipeline over one record: feature extraction,
// structural and lexical scoring, then arbitration. It never fails; every
// record yields exactly one result.
func (e *Engine) Classify(rec Record) Result {
	features := ExtractFeatures(rec.Nutrition)
	structural := e.scoreStructural(features)
	signal := e.lexicons.extract(rec.Name, rec.Tags)
	nlp := e.scoreNLP(signal)
	return e.arbitrate(rec, features, structural, nlp, signal)
}

// ExceptionCategory reports the forced category for an identifier, if any.
func (e *Engine) ExceptionCategory(id int64) (Category, bool) {
	cat, ok := e.exceptions[id]
	return cat, ok
}

// Config returns the engine's configuration (a copy; the engine itself
// stays immutable).
func (e *Engine) Config() Config {
	return e.cfg
}
