// Gustus - Recipe Analytics and Seasonal Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustus

package classifier

// Category is a recipe type emitted by the classification engine.
type Category string

// The three recipe categories. Index order (main dish, dessert, beverage)
// is fixed across every probability vector in this package.
const (
	MainDish Category = "main_dish"
	Dessert  Category = "dessert"
	Beverage Category = "beverage"
)

// Class indices into probability and score vectors.
const (
	idxMainDish = 0
	idxDessert  = 1
	idxBeverage = 2
	numClasses  = 3
)

// categories maps class indices back to categories.
var categories = [numClasses]Category{MainDish, Dessert, Beverage}

// Index returns the vector index for the category, or -1 if unknown.
func (c Category) Index() int {
	switch c {
	case MainDish:
		return idxMainDish
	case Dessert:
		return idxDessert
	case Beverage:
		return idxBeverage
	default:
		return -1
	}
}

// Valid reports whether c is one of the three known categories.
func (c Category) Valid() bool {
	return c.Index() >= 0
}

// ParseCategory converts a string to a Category.
// It accepts the canonical names and the legacy dataset names
// (plat, dessert, boisson).
func ParseCategory(s string) (Category, bool) {
	switch s {
	case string(MainDish), "plat":
		return MainDish, true
	case string(Dessert):
		return Dessert, true
	case string(Beverage), "boisson":
		return Beverage, true
	default:
		return "", false
	}
}

// Nutrition is the per-recipe nutrition vector in the dataset's fixed order:
// calories, total fat, sugar, sodium, protein, saturated fat, carbohydrates.
// Carbohydrates are optional in the source data; a missing value is zero.
type Nutrition struct {
	Calories     float64 `json:"calories"`
	Fat          float64 `json:"fat"`
	Sugar        float64 `json:"sugar"`
	Sodium       float64 `json:"sodium"`
	Protein      float64 `json:"protein"`
	SaturatedFat float64 `json:"saturated_fat"`
	Carbs        float64 `json:"carbs"`
}

// Record is one classification input. Tags may be empty.
type Record struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Tags      []string  `json:"tags,omitempty"`
	Nutrition Nutrition `json:"nutrition"`
}

// Provenance identifies which arbitration branch produced a result.
type Provenance string

const (
	// ProvenanceException: the record ID was found in the exception table.
	ProvenanceException Provenance = "exception"
	// ProvenanceFastPath: the fast-path beverage keyword override fired.
	ProvenanceFastPath Provenance = "fastpath_beverage"
	// ProvenanceStructOnly: no lexical signal, structural result used as-is.
	ProvenanceStructOnly Provenance = "struct_only"
	// ProvenanceStrongAgree: strong structure, lexical signal agreed.
	ProvenanceStrongAgree Provenance = "strong_agree"
	// ProvenanceStrongKept: strong structure kept over a disagreeing lexical signal.
	ProvenanceStrongKept Provenance = "strong_disagree_kept"
	// ProvenanceStrongOverride: lexical signal overrode a strong structure.
	ProvenanceStrongOverride Provenance = "strong_disagree_nlp"
	// ProvenanceWeakAgree: weak structure, lexical signal agreed.
	ProvenanceWeakAgree Provenance = "weak_agree"
	// ProvenanceWeakOverride: weak structure, medium+ lexical signal adopted.
	ProvenanceWeakOverride Provenance = "weak_disagree_nlp"
	// ProvenanceWeakBlend: weak structure, weak lexical signal, 50/50 argmax.
	ProvenanceWeakBlend Provenance = "weak_disagree_blend"
)

// Result is the full classification output for one record.
//
// StructProbs is the structural-only distribution. The original pipeline
// exported this vector as "final" regardless of arbitration; it is kept for
// compatibility. FinalProbs is the distribution the label and confidence
// were actually derived from.
type Result struct {
	ID         int64      `json:"id"`
	Name       string     `json:"name"`
	Category   Category   `json:"category"`
	Confidence float64    `json:"confidence"`
	Provenance Provenance `json:"provenance"`

	StructProbs [numClasses]float64 `json:"struct_probs"`
	NLPProbs    [numClasses]float64 `json:"nlp_probs"`
	FinalProbs  [numClasses]float64 `json:"final_probs"`
}
