// Gustus - Recipe Analytics and Seasonal Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustus

// Package dataset parses the raw Food.com CSV fields.
//
// The upstream dumps serialize lists as Python literals: the nutrition
// column is "[51.5, 0.0, 13.0, 0.0, 2.0, 0.0, 4.0]" and the tags column is
// "['weeknight', '60-minutes-or-less', ...]". Parsing is tolerant by
// design: a malformed nutrition literal degrades to the zero vector and a
// malformed tags literal to an empty list, so one bad row never aborts an
// import.
package dataset

import (
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/gustus/internal/classifier"
)

// nutrition vector positions in the raw literal.
const (
	posCalories = iota
	posFat
	posSugar
	posSodium
	posProtein
	posSaturatedFat
	posCarbs
	nutritionFields
)

// ParseNutrition converts a Python list literal into a Nutrition vector.
// Missing trailing fields (old dumps omit carbohydrates) read as zero, as
// does any field that fails to parse.
func ParseNutrition(raw string) classifier.Nutrition {
	var values [nutritionFields]float64

	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "[") || !strings.HasSuffix(raw, "]") {
		return classifier.Nutrition{}
	}

	parts := strings.Split(raw[1:len(raw)-1], ",")
	for i, part := range parts {
		if i >= nutritionFields {
			break
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			continue
		}
		values[i] = v
	}

	return classifier.Nutrition{
		Calories:     values[posCalories],
		Fat:          values[posFat],
		Sugar:        values[posSugar],
		Sodium:       values[posSodium],
		Protein:      values[posProtein],
		SaturatedFat: values[posSaturatedFat],
		Carbs:        values[posCarbs],
	}
}

// ParseTags converts a Python list-of-strings literal into a string slice.
// Items are quoted with single or double quotes; anything that cannot be
// scanned yields an empty list. A bare unbracketed string is treated as a
// single tag, matching the upstream loader's fallback.
func ParseTags(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	if !strings.HasPrefix(raw, "[") || !strings.HasSuffix(raw, "]") {
		return []string{raw}
	}

	var tags []string
	body := raw[1 : len(raw)-1]

	for i := 0; i < len(body); {
		quote := body[i]
		if quote != '\'' && quote != '"' {
			i++
			continue
		}

		// Scan to the closing quote, honoring backslash escapes.
		var sb strings.Builder
		j := i + 1
		closed := false
		for j < len(body) {
			c := body[j]
			if c == '\\' && j+1 < len(body) {
				sb.WriteByte(body[j+1])
				j += 2
				continue
			}
			if c == quote {
				closed = true
				break
			}
			sb.WriteByte(c)
			j++
		}
		if !closed {
			return nil
		}
		tags = append(tags, sb.String())
		i = j + 1
	}

	return tags
}

// dateLayouts are the formats seen in the submitted and date columns.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// ParseDate parses a dataset date column. The zero time signals an
// unparseable value; callers map it to the Unknown season.
func ParseDate(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}
