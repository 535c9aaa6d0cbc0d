// Gustus - Recipe Analytics and Seasonal Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustus

package classifier

import "math"

// StructuralResult is the output of the nutrition-derived scorer: a
// calibrated probability vector, the argmax label and a confidence in
// [0, 100] rounded to one decimal.
type StructuralResult struct {
	Probs      [numClasses]float64
	Category   Category
	Confidence float64
}

// scoreStructural compares the feature triple (sweet, savory, lean) to the
// class prototypes and produces the structural distribution.
//
// The procedure is: cosine similarity per prototype, cross-weighted base
// scores, an ordered table of heuristic adjustments, then temperature
// scaling plus log-priors and a stable softmax. Pure and deterministic.
func (e *Engine) scoreStructural(f Features) StructuralResult {
	v := [3]float64{f.SweetIdx, f.SavoryIdx, f.LeanIdx}

	simMain := cosineSimilarity(v, e.protoMain)
	simDessert := cosineSimilarity(v, e.protoDessert)
	simBeverage := cosineSimilarity(v, e.protoBeverage)

	// Base scores: each class boosted by its own similarity, reduced by
	// the others with asymmetric weights.
	cw := e.cfg.CrossWeights
	sMain := 1.10*simMain - cw.MainVsDessert*simDessert - cw.MainVsBeverage*simBeverage
	sDessert := 1.10*simDessert - cw.DessertVsMain*simMain - cw.DessertVsBeverage*simBeverage
	sBeverage := 1.10*simBeverage - cw.BeverageVsMain*simMain - cw.BeverageVsDessert*simDessert

	sMain, sDessert, sBeverage = applyAdjustments(f, sMain, sDessert, sBeverage)

	logits := [numClasses]float64{
		idxMainDish: sMain/e.cfg.Temperature + math.Log(e.cfg.Priors.MainDish+tiny),
		idxDessert:  sDessert/e.cfg.Temperature + math.Log(e.cfg.Priors.Dessert+tiny),
		idxBeverage: sBeverage/e.cfg.Temperature + math.Log(e.cfg.Priors.Beverage+tiny),
	}

	probs := softmax(logits)
	return StructuralResult{
		Probs:      probs,
		Category:   categories[argmax(probs)],
		Confidence: structuralConfidence(probs, f),
	}
}

// applyAdjustments runs the ordered heuristic table over the base scores.
// Each rule is a boolean condition over the derived features with additive
// deltas; order matters and mirrors the reference calibration.
//
//nolint:gocyclo // flat rule table, intentionally sequential
func applyAdjustments(f Features, sMain, sDessert, sBeverage float64) (float64, float64, float64) {
	se := f.SugarEnergyShare
	ss := f.SugarShareOfCarbs
	pdn := f.ProteinDensity
	sdn := f.SodiumDensity
	fatE := f.FatEnergyShare
	sweet := f.SweetIdx
	savory := f.SavoryIdx
	lean := f.LeanIdx

	// Savory profile with no sugar energy: not a dessert.
	if se < 0.09 && (savory > 0.18 || pdn > 0.06) {
		sDessert -= 0.55
	}
	// Sugar-dominant and not savory: dessert over main dish.
	if (se >= 0.20 || sweet > 0.55) && savory < 0.12 {
		sDessert += 0.30
		sMain -= 0.15
	}
	// Carbs are almost all sugar yet sugar carries no energy: artifact rows.
	if ss > 0.85 && se < 0.08 {
		sDessert -= 0.55
	}
	// Clearly savory, or protein-dense with little sugar: main dish.
	if (savory > 0.22 && sweet < 0.18) || (pdn > 0.08 && se < 0.12) {
		sMain += 0.40
	}
	// Low-calorie, lean, low protein and sodium: beverage profile.
	if f.LowCal && lean > 0.80 && pdn < 0.05 && sdn < 0.05 {
		sBeverage += 0.45
	}
	// Savory and fatty recipes are not beverages.
	if savory > 0.15 && lean < 0.70 {
		sBeverage -= 0.40
	}
	// Hybrid sweet-savory profiles: dampen whichever side is weaker.
	if f.HybridIdx > 0.18 {
		if savory > sweet {
			sDessert -= 0.18
		} else {
			sDessert -= 0.05
		}
		if sweet > savory {
			sMain -= 0.18
		} else {
			sMain -= 0.05
		}
	}
	// Fruit-heavy sweets: high sugar, low savory.
	if (se >= 0.18 || sweet >= 0.50) && savory < 0.14 {
		sDessert += 0.25
	}
	// Sweet carb breads and muffins: sugary carbs with moderate fat.
	if ss >= 0.50 && se >= 0.15 && fatE >= 0.18 && fatE <= 0.55 && savory < 0.16 {
		sDessert += 0.22
	}
	// Savory dips and spreads: savory, low sugar, high fat.
	if savory >= 0.22 && se < 0.12 && fatE > 0.50 {
		sMain += 0.25
		sDessert -= 0.20
	}
	// Alcoholic drinks: lean with near-zero sodium and protein.
	if f.LowCal && lean > 0.75 && pdn < 0.04 && sdn < 0.04 {
		sBeverage += 0.20
	}
	// Fruit soups: sweet and lean, pull away from main dish.
	if se >= 0.22 && lean > 0.75 && savory < 0.12 {
		sDessert += 0.18
		sMain -= 0.12
	}

	return sMain, sDessert, sBeverage
}

// Structural confidence calibration: weights of the probability margin and
// entropy terms, the penalty table for ambiguous profiles, and the sigmoid
// that maps the raw score onto [0, 100].
const (
	structConfPMaxWeight      = 0.62
	structConfMarginWeight    = 0.38
	structConfCertaintyWeight = 0.12
	structConfSigmoidSlope    = 3.2
	structConfSigmoidCenter   = 0.50

	penaltyHybrid        = 0.12 // hybrid_idx > 0.18
	penaltyFlatProfile   = 0.10 // both sweet and savory near zero
	penaltySweetMismatch = 0.12 // sweet index high without sugar energy
	penaltyLowCalSavory  = 0.08 // low-calorie yet savory
)

// structuralConfidence converts the structural distribution into a
// confidence score using margin, entropy and ambiguity penalties.
func structuralConfidence(probs [numClasses]float64, f Features) float64 {
	pmax, p2 := top2(probs)
	margin := pmax - p2
	certainty := 1.0 - normalizedEntropy(probs)

	var penalty float64
	if f.HybridIdx > 0.18 {
		penalty += penaltyHybrid
	}
	if f.SweetIdx < 0.08 && f.SavoryIdx < 0.08 {
		penalty += penaltyFlatProfile
	}
	if f.SugarEnergyShare < 0.06 && f.SweetIdx > 0.40 {
		penalty += penaltySweetMismatch
	}
	if f.LowCal && f.SavoryIdx > 0.22 {
		penalty += penaltyLowCalSavory
	}

	raw := structConfPMaxWeight*pmax + structConfMarginWeight*margin +
		structConfCertaintyWeight*certainty - penalty
	conf := sigmoid(structConfSigmoidSlope * (raw - structConfSigmoidCenter))
	return round1(clamp(conf, 0, 1) * 100)
}
