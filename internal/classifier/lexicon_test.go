// Gustus - Recipe Analytics and Seasonal Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustus

package classifier

import "testing"

func TestBuildBlob(t *testing.T) {
	tests := []struct {
		name string
		in   string
		tags []string
		want string
	}{
		{"name only", "Iced Tea", nil, "iced tea"},
		{"name and tags", "Iced Tea", []string{"Drink", "SUMMER"}, "iced tea | drink | summer"},
		{"empty name", "", []string{"snack"}, " | snack"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := buildBlob(tt.in, tt.tags); got != tt.want {
				t.Errorf("buildBlob(%q, %v) = %q, want %q", tt.in, tt.tags, got, tt.want)
			}
		})
	}
}

func TestLexiconExtract(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		name   string
		rec    string
		tags   []string
		strong [numClasses]int
		soft   [numClasses]int
	}{
		{
			name:   "beverage soft hits only",
			rec:    "iced tea",
			tags:   []string{"drink"},
			strong: [numClasses]int{0, 0, 0},
			soft:   [numClasses]int{0, 0, 3},
		},
		{
			name:   "dessert strong plus soft with a stray main hit",
			rec:    "chocolate cheesecake",
			tags:   []string{"dessert", "baked"},
			strong: [numClasses]int{1, 1, 0},
			soft:   [numClasses]int{0, 1, 0},
		},
		{
			name:   "main dish strong hits",
			rec:    "vegetable beef stew",
			tags:   []string{"dinner"},
			strong: [numClasses]int{1, 0, 0},
			soft:   [numClasses]int{0, 0, 0},
		},
		{
			name:   "smoothie is a strong beverage hit",
			rec:    "berry smoothie",
			tags:   []string{"drink"},
			strong: [numClasses]int{0, 0, 1},
			soft:   [numClasses]int{0, 1, 1},
		},
		{
			name:   "matching is case insensitive",
			rec:    "CHICKEN SOUP",
			tags:   nil,
			strong: [numClasses]int{1, 0, 0},
			soft:   [numClasses]int{0, 0, 0},
		},
		{
			name:   "soft hits count occurrences",
			rec:    "chocolate chocolate cake",
			tags:   []string{"chocolate"},
			strong: [numClasses]int{0, 0, 0},
			soft:   [numClasses]int{0, 4, 0},
		},
		{
			name:   "no hits",
			rec:    "mystery dish",
			tags:   nil,
			strong: [numClasses]int{0, 0, 0},
			soft:   [numClasses]int{0, 0, 0},
		},
		{
			name:   "substring does not match word boundary patterns",
			rec:    "teacup collection",
			tags:   nil,
			strong: [numClasses]int{0, 0, 0},
			soft:   [numClasses]int{0, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sig := e.lexicons.extract(tt.rec, tt.tags)
			if sig.Strong != tt.strong {
				t.Errorf("Strong = %v, want %v", sig.Strong, tt.strong)
			}
			if sig.Soft != tt.soft {
				t.Errorf("Soft = %v, want %v", sig.Soft, tt.soft)
			}
		})
	}
}

func TestCompileLexicons(t *testing.T) {
	t.Run("default lexicons compile", func(t *testing.T) {
		if _, err := compileLexicons(defaultLexicons()); err != nil {
			t.Fatalf("compileLexicons(defaultLexicons()) failed: %v", err)
		}
	})

	t.Run("invalid pattern is a startup error", func(t *testing.T) {
		cfg := defaultLexicons()
		cfg.Dessert.Strong = append(cfg.Dessert.Strong, `\b(unclosed`)
		if _, err := compileLexicons(cfg); err == nil {
			t.Error("compileLexicons with invalid pattern returned nil error")
		}
	})

	t.Run("empty lexicon never matches", func(t *testing.T) {
		compiled, err := compileLexicons(LexiconsConfig{})
		if err != nil {
			t.Fatalf("compileLexicons(empty) failed: %v", err)
		}
		sig := compiled.extract("chocolate cheesecake", []string{"dessert"})
		if sig.Strong != ([numClasses]int{}) || sig.Soft != ([numClasses]int{}) {
			t.Errorf("empty lexicons produced hits: strong=%v soft=%v", sig.Strong, sig.Soft)
		}
	})
}
