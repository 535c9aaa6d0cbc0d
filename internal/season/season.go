// Gustus - Recipe Analytics and Seasonal Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustus

// Package season maps dates onto astronomical seasons.
//
// Boundaries are fixed calendar dates rather than per-year solstice
// calculations: Spring is March 21 to June 20, Summer June 21 to
// September 20, Fall September 21 to December 20, Winter the rest.
package season

import "time"

// Season is an astronomical season label.
type Season string

const (
	Spring  Season = "Spring"
	Summer  Season = "Summer"
	Fall    Season = "Fall"
	Winter  Season = "Winter"
	Unknown Season = "Unknown"
)

// Order is the display order used by rankings and exports.
var Order = []Season{Spring, Summer, Fall, Winter}

// Valid reports whether s is one of the four seasons (Unknown is not).
func (s Season) Valid() bool {
	switch s {
	case Spring, Summer, Fall, Winter:
		return true
	default:
		return false
	}
}

// FromDate returns the astronomical season for a date. The zero time has
// no meaningful season and maps to Unknown.
func FromDate(t time.Time) Season {
	if t.IsZero() {
		return Unknown
	}

	month, day := t.Month(), t.Day()
	switch {
	case (month == time.March && day >= 21) || month == time.April || month == time.May ||
		(month == time.June && day <= 20):
		return Spring
	case (month == time.June && day >= 21) || month == time.July || month == time.August ||
		(month == time.September && day <= 20):
		return Summer
	case (month == time.September && day >= 21) || month == time.October || month == time.November ||
		(month == time.December && day <= 20):
		return Fall
	default:
		return Winter
	}
}

// Parse converts a string to a Season.
func Parse(s string) (Season, bool) {
	switch Season(s) {
	case Spring:
		return Spring, true
	case Summer:
		return Summer, true
	case Fall:
		return Fall, true
	case Winter:
		return Winter, true
	default:
		return Unknown, false
	}
}
