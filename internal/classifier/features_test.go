// Gustus - Recipe Analytics and Seasonal Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustus

package classifier

import (
	"math"
	"testing"
)

func TestExtractFeatures(t *testing.T) {
	// Reference values computed with the calibration constants:
	// densities per kcal, 9 kcal/g fat, 4 kcal/g sugar, epsilon 1e-6.
	n := Nutrition{Calories: 400, Fat: 20, Sugar: 40, Sodium: 20, Protein: 6, SaturatedFat: 12, Carbs: 45}
	f := ExtractFeatures(n)

	const tol = 1e-6
	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"SugarDensity", f.SugarDensity, 0.1},
		{"ProteinDensity", f.ProteinDensity, 0.015},
		{"SodiumDensity", f.SodiumDensity, 0.05},
		{"FatEnergyShare", f.FatEnergyShare, 0.45},
		{"SugarEnergyShare", f.SugarEnergyShare, 0.40},
		{"SugarShareOfCarbs", f.SugarShareOfCarbs, 40.0 / 45.0},
		{"SweetIdx", f.SweetIdx, 0.265},
		{"SavoryIdx", f.SavoryIdx, 0.0105},
		{"LeanIdx", f.LeanIdx, 0.55},
		{"HybridIdx", f.HybridIdx, 0.0105},
	}
	for _, c := range checks {
		if !floatNear(c.got, c.want, tol) {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
	if f.LowCal {
		t.Error("LowCal = true for 400 kcal, want false")
	}
}

func TestExtractFeaturesIndexBounds(t *testing.T) {
	tests := []struct {
		name string
		n    Nutrition
	}{
		{"zero vector", Nutrition{}},
		{"zero calories with sugar", Nutrition{Sugar: 10, Carbs: 5}},
		{"sugar above carbs", Nutrition{Calories: 100, Sugar: 30, Carbs: 10}},
		{"extreme values", Nutrition{Calories: 1e6, Fat: 1e5, Sugar: 1e5, Sodium: 1e6, Protein: 1e5, Carbs: 1e5}},
		{"NaN calories", Nutrition{Calories: math.NaN(), Sugar: 10}},
		{"infinite fat", Nutrition{Calories: 100, Fat: math.Inf(1)}},
		{"negative sugar", Nutrition{Calories: 100, Sugar: -5, Carbs: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := ExtractFeatures(tt.n)
			for _, idx := range []struct {
				name string
				v    float64
			}{
				{"SweetIdx", f.SweetIdx},
				{"SavoryIdx", f.SavoryIdx},
				{"LeanIdx", f.LeanIdx},
				{"HybridIdx", f.HybridIdx},
				{"SugarEnergyShare", f.SugarEnergyShare},
			} {
				if idx.v < 0 || idx.v > 1 || math.IsNaN(idx.v) {
					t.Errorf("%s = %v, want within [0, 1]", idx.name, idx.v)
				}
			}
			for _, d := range []struct {
				name string
				v    float64
			}{
				{"SugarDensity", f.SugarDensity},
				{"ProteinDensity", f.ProteinDensity},
				{"SodiumDensity", f.SodiumDensity},
				{"FatEnergyShare", f.FatEnergyShare},
				{"SugarShareOfCarbs", f.SugarShareOfCarbs},
			} {
				if d.v < 0 || math.IsNaN(d.v) || math.IsInf(d.v, 0) {
					t.Errorf("%s = %v, want finite and non-negative", d.name, d.v)
				}
			}
		})
	}
}

func TestExtractFeaturesLowCalorieFlag(t *testing.T) {
	tests := []struct {
		calories float64
		want     bool
	}{
		{0, true},
		{149.9, true},
		{150, false},
		{151, false},
	}
	for _, tt := range tests {
		f := ExtractFeatures(Nutrition{Calories: tt.calories})
		if f.LowCal != tt.want {
			t.Errorf("LowCal at %v kcal = %v, want %v", tt.calories, f.LowCal, tt.want)
		}
	}
}

func TestExtractFeaturesSugarShareStability(t *testing.T) {
	// Carbs reported below sugar must not push the share above one.
	f := ExtractFeatures(Nutrition{Calories: 100, Sugar: 30, Carbs: 10})
	if f.SugarShareOfCarbs > 1+1e-9 {
		t.Errorf("SugarShareOfCarbs = %v, want <= 1 when carbs < sugar", f.SugarShareOfCarbs)
	}

	// Near-zero carbs and sugar stay stable.
	f = ExtractFeatures(Nutrition{Calories: 100})
	if f.SugarShareOfCarbs != 0 {
		t.Errorf("SugarShareOfCarbs = %v with no sugar, want 0", f.SugarShareOfCarbs)
	}
}

func TestExtractFeaturesHybridIsMinimum(t *testing.T) {
	f := ExtractFeatures(Nutrition{Calories: 300, Fat: 10, Sugar: 30, Sodium: 600, Protein: 20, Carbs: 40})
	want := math.Min(f.SweetIdx, f.SavoryIdx)
	if f.HybridIdx != want {
		t.Errorf("HybridIdx = %v, want min(sweet, savory) = %v", f.HybridIdx, want)
	}
}
