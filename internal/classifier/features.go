// Gustus - Recipe Analytics and Seasonal Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustus

package classifier

// epsilon is the additive denominator constant used in every ratio.
// Divisions are never guarded by conditional branches; the constant alone
// prevents division by zero.
const epsilon = 1e-6

// lowCalorieThreshold flags recipes under this calorie count.
const lowCalorieThreshold = 150

// Energy content per gram of fat and per gram of sugar/carbohydrate (kcal).
const (
	kcalPerGramFat  = 9
	kcalPerGramCarb = 4
)

// Features holds the derived nutrition signals consumed by the structural
// scorer and the arbiter. All index fields lie in [0, 1]; the density and
// share fields are non-negative and finite. Features are pure functions of
// the nutrition vector and are never mutated after extraction.
type Features struct {
	// Per-calorie densities.
	SugarDensity   float64
	ProteinDensity float64
	SodiumDensity  float64

	// Energy-share ratios.
	FatEnergyShare    float64
	SugarEnergyShare  float64 // clamped to [0, 1]
	SugarShareOfCarbs float64

	// Composite taste indices.
	SweetIdx  float64
	SavoryIdx float64
	LeanIdx   float64
	HybridIdx float64

	// LowCal flags recipes under 150 kcal.
	LowCal bool
}

// ExtractFeatures derives the feature set from a nutrition vector.
// Malformed input (NaN, infinities, negative values) degrades to zeroed
// features rather than an error; every record gets a usable feature set.
func ExtractFeatures(n Nutrition) Features {
	denom := n.Calories + epsilon

	sugarDensity := n.Sugar / denom
	proteinDensity := n.Protein / denom
	sodiumDensity := n.Sodium / denom

	fatEnergyShare := kcalPerGramFat * n.Fat / denom
	sugarEnergyShare := clamp(kcalPerGramCarb*n.Sugar/denom, 0, 1)

	// Share of sugar among total carbohydrates, stable when carbs are
	// reported below sugar.
	nonSugarCarbs := n.Carbs - n.Sugar
	if nonSugarCarbs < 0 {
		nonSugarCarbs = 0
	}
	sugarShareOfCarbs := n.Sugar / (n.Sugar + nonSugarCarbs + epsilon)

	f := Features{
		SugarDensity:      sanitize(sugarDensity),
		ProteinDensity:    sanitize(proteinDensity),
		SodiumDensity:     sanitize(sodiumDensity),
		FatEnergyShare:    sanitize(fatEnergyShare),
		SugarEnergyShare:  sanitize(sugarEnergyShare),
		SugarShareOfCarbs: sanitize(sugarShareOfCarbs),
		LowCal:            n.Calories < lowCalorieThreshold,
	}

	// Composite indices combine the raw ratios, clamped to [0, 1].
	// Sodium density is divided by 10 to rescale mg/kcal into a range
	// comparable with protein density.
	f.SweetIdx = clamp(0.55*f.SugarEnergyShare+0.45*f.SugarDensity, 0, 1)
	f.SavoryIdx = clamp(0.55*f.ProteinDensity+0.45*(f.SodiumDensity/10.0), 0, 1)
	f.LeanIdx = clamp(1.0-f.FatEnergyShare, 0, 1)
	f.HybridIdx = f.SweetIdx
	if f.SavoryIdx < f.HybridIdx {
		f.HybridIdx = f.SavoryIdx
	}

	return f
}
