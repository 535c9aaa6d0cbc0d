// Gustus - Recipe Analytics and Seasonal Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustus

package season

import (
	"testing"
	"time"
)

func TestFromDate(t *testing.T) {
	date := func(month time.Month, day int) time.Time {
		return time.Date(2023, month, day, 12, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name string
		in   time.Time
		want Season
	}{
		{"last day of winter", date(time.March, 20), Winter},
		{"first day of spring", date(time.March, 21), Spring},
		{"mid spring", date(time.May, 1), Spring},
		{"last day of spring", date(time.June, 20), Spring},
		{"first day of summer", date(time.June, 21), Summer},
		{"mid summer", date(time.August, 15), Summer},
		{"last day of summer", date(time.September, 20), Summer},
		{"first day of fall", date(time.September, 21), Fall},
		{"mid fall", date(time.November, 5), Fall},
		{"last day of fall", date(time.December, 20), Fall},
		{"first day of winter", date(time.December, 21), Winter},
		{"new year", date(time.January, 1), Winter},
		{"mid winter", date(time.February, 14), Winter},
		{"zero time is unknown", time.Time{}, Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromDate(tt.in); got != tt.want {
				t.Errorf("FromDate(%v) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestSeasonValid(t *testing.T) {
	for _, s := range Order {
		if !s.Valid() {
			t.Errorf("%s.Valid() = false, want true", s)
		}
	}
	if Unknown.Valid() {
		t.Error("Unknown.Valid() = true, want false")
	}
	if Season("Monsoon").Valid() {
		t.Error(`Season("Monsoon").Valid() = true, want false`)
	}
}

func TestParse(t *testing.T) {
	for _, s := range Order {
		got, ok := Parse(string(s))
		if !ok || got != s {
			t.Errorf("Parse(%q) = (%s, %v), want (%s, true)", s, got, ok, s)
		}
	}
	if _, ok := Parse("spring"); ok {
		t.Error("Parse is case sensitive; lowercase should not parse")
	}
}
