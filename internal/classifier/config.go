// Gustus - Recipe Analytics and Seasonal Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustus

package classifier

// Config holds every tunable constant of the classification engine:
// prototypes, priors, cross-similarity weights, lexicons, arbitration
// thresholds and the exception table. The values are empirically tuned
// calibration data, not derived quantities, so they are modeled as
// configuration with defaults equal to the reference calibration.
//
// A Config is consumed once by NewEngine and never mutated afterward.
type Config struct {
	Prototypes   PrototypesConfig   `koanf:"prototypes" json:"prototypes"`
	Priors       Distribution       `koanf:"priors" json:"priors"`
	CrossWeights CrossWeightsConfig `koanf:"cross_weights" json:"cross_weights"`

	// Temperature divides the adjusted structural scores before the
	// log-priors are added. Lower values sharpen the distribution.
	Temperature float64 `koanf:"temperature" json:"temperature" validate:"gt=0"`

	NLP      NLPConfig      `koanf:"nlp" json:"nlp"`
	Lexicons LexiconsConfig `koanf:"lexicons" json:"lexicons"`
	Arbiter  ArbiterConfig  `koanf:"arbiter" json:"arbiter"`

	// Exceptions maps record identifiers (as strings, for config-format
	// compatibility) to a forced category. Non-integer keys and unknown
	// categories are ignored at engine build time.
	Exceptions map[string]string `koanf:"exceptions" json:"exceptions"`

	// Canonical distributions emitted for forced categories.
	Canonical CanonicalConfig `koanf:"canonical" json:"canonical"`
}

// Prototype is a fixed (sweet, savory, lean) reference point in feature
// space representing an idealized exemplar of a category.
type Prototype struct {
	Sweet  float64 `koanf:"sweet" json:"sweet"`
	Savory float64 `koanf:"savory" json:"savory"`
	Lean   float64 `koanf:"lean" json:"lean"`
}

func (p Prototype) vector() [3]float64 {
	return [3]float64{p.Sweet, p.Savory, p.Lean}
}

// PrototypesConfig holds one prototype per category.
type PrototypesConfig struct {
	MainDish Prototype `koanf:"main_dish" json:"main_dish"`
	Dessert  Prototype `koanf:"dessert" json:"dessert"`
	Beverage Prototype `koanf:"beverage" json:"beverage"`
}

// Distribution is a per-category value triple, used for priors, canonical
// probability vectors and the fast-path distribution.
type Distribution struct {
	MainDish float64 `koanf:"main_dish" json:"main_dish"`
	Dessert  float64 `koanf:"dessert" json:"dessert"`
	Beverage float64 `koanf:"beverage" json:"beverage"`
}

func (d Distribution) vector() [numClasses]float64 {
	return [numClasses]float64{d.MainDish, d.Dessert, d.Beverage}
}

// CrossWeightsConfig holds the asymmetric weights subtracted from each
// class's base score for the other classes' prototype similarities.
type CrossWeightsConfig struct {
	MainVsDessert  float64 `koanf:"main_vs_dessert" json:"main_vs_dessert"`
	MainVsBeverage float64 `koanf:"main_vs_beverage" json:"main_vs_beverage"`

	DessertVsMain     float64 `koanf:"dessert_vs_main" json:"dessert_vs_main"`
	DessertVsBeverage float64 `koanf:"dessert_vs_beverage" json:"dessert_vs_beverage"`

	BeverageVsMain    float64 `koanf:"beverage_vs_main" json:"beverage_vs_main"`
	BeverageVsDessert float64 `koanf:"beverage_vs_dessert" json:"beverage_vs_dessert"`
}

// NLPConfig weights the lexical hit counts when building NLP logits.
type NLPConfig struct {
	// StrongWeight multiplies the binary strong-hit flags.
	StrongWeight float64 `koanf:"strong_weight" json:"strong_weight"`
	// SoftWeight multiplies the soft match counts.
	SoftWeight float64 `koanf:"soft_weight" json:"soft_weight"`
	// Smoothing is added uniformly so a silent blob never yields a zero
	// logit vector.
	Smoothing float64 `koanf:"smoothing" json:"smoothing"`
}

// Lexicon holds the two pattern tiers for one category. Patterns are
// regular expressions combined into a single case-insensitive union.
type Lexicon struct {
	// Strong patterns are decisive; only presence matters.
	Strong []string `koanf:"strong" json:"strong"`
	// Soft patterns are suggestive; non-overlapping matches are counted.
	Soft []string `koanf:"soft" json:"soft"`
}

// LexiconsConfig holds one lexicon per category.
type LexiconsConfig struct {
	MainDish Lexicon `koanf:"main_dish" json:"main_dish"`
	Dessert  Lexicon `koanf:"dessert" json:"dessert"`
	Beverage Lexicon `koanf:"beverage" json:"beverage"`
}

// LevelValues is an NLP-vote-level-indexed value triple (weak / medium /
// strong, i.e. levels 1 / 2 / 3).
type LevelValues struct {
	Weak   float64 `koanf:"weak" json:"weak"`
	Medium float64 `koanf:"medium" json:"medium"`
	Strong float64 `koanf:"strong" json:"strong"`
}

func (l LevelValues) forLevel(level int) float64 {
	switch level {
	case voteWeak:
		return l.Weak
	case voteMedium:
		return l.Medium
	default:
		return l.Strong
	}
}

// FastPathConfig configures the unambiguous-keyword beverage override.
type FastPathConfig struct {
	// Patterns whose presence in the blob triggers the override.
	Patterns []string `koanf:"patterns" json:"patterns"`
	// MaxStructConfidence: the override only fires while the structural
	// confidence is below this threshold.
	MaxStructConfidence float64 `koanf:"max_struct_confidence" json:"max_struct_confidence"`
	// Distribution emitted when the override fires.
	Distribution Distribution `koanf:"distribution" json:"distribution"`
	// MinConfidence floors the reported confidence.
	MinConfidence float64 `koanf:"min_confidence" json:"min_confidence"`
}

// ArbiterConfig holds the thresholds, blend weights, bonuses and penalties
// of the confidence-gated arbitration procedure.
type ArbiterConfig struct {
	// StrongConfidence splits "structure strong" from "structure weak".
	StrongConfidence float64 `koanf:"strong_confidence" json:"strong_confidence"`

	// ExceptionMinConfidence floors the confidence of exception-forced
	// results.
	ExceptionMinConfidence float64 `koanf:"exception_min_confidence" json:"exception_min_confidence"`

	FastPath FastPathConfig `koanf:"fast_path" json:"fast_path"`

	// Structure-only branch (lexical signal silent).
	SilentPenalty float64 `koanf:"silent_penalty" json:"silent_penalty"`
	SilentFloor   float64 `koanf:"silent_floor" json:"silent_floor"`

	// Structure strong, labels agree.
	AgreeStrongNLPWeight LevelValues `koanf:"agree_strong_nlp_weight" json:"agree_strong_nlp_weight"`
	AgreeStrongBonus     LevelValues `koanf:"agree_strong_bonus" json:"agree_strong_bonus"`
	AgreeStrongCap       float64     `koanf:"agree_strong_cap" json:"agree_strong_cap"`

	// Structure strong, labels disagree.
	DisagreeStrongPenalty LevelValues `koanf:"disagree_strong_penalty" json:"disagree_strong_penalty"`
	DisagreeStrongFloor   float64     `koanf:"disagree_strong_floor" json:"disagree_strong_floor"`
	// OverrideMaxConfidence: below this structural confidence a medium+
	// lexical vote may override without a compatibility check.
	OverrideMaxConfidence float64 `koanf:"override_max_confidence" json:"override_max_confidence"`
	DisagreeStrongAlpha   float64 `koanf:"disagree_strong_alpha" json:"disagree_strong_alpha"`
	DisagreeStrongBeta    float64 `koanf:"disagree_strong_beta" json:"disagree_strong_beta"`

	// Profile-compatibility gates for lexical overrides of strong structure.
	BeverageSavoryMax float64 `koanf:"beverage_savory_max" json:"beverage_savory_max"`
	DessertSweetMin   float64 `koanf:"dessert_sweet_min" json:"dessert_sweet_min"`
	DessertSavoryMax  float64 `koanf:"dessert_savory_max" json:"dessert_savory_max"`

	// Structure weak, labels agree.
	AgreeWeakNLPWeight LevelValues `koanf:"agree_weak_nlp_weight" json:"agree_weak_nlp_weight"`
	AgreeWeakBonus     LevelValues `koanf:"agree_weak_bonus" json:"agree_weak_bonus"`
	AgreeWeakCap       float64     `koanf:"agree_weak_cap" json:"agree_weak_cap"`
	AgreeWeakBase      float64     `koanf:"agree_weak_base" json:"agree_weak_base"`

	// Structure weak, labels disagree.
	OverrideWeakAlpha      float64 `koanf:"override_weak_alpha" json:"override_weak_alpha"`
	OverrideWeakMediumBeta float64 `koanf:"override_weak_medium_beta" json:"override_weak_medium_beta"`
	OverrideWeakStrongBeta float64 `koanf:"override_weak_strong_beta" json:"override_weak_strong_beta"`
	OverrideWeakFloor      float64 `koanf:"override_weak_floor" json:"override_weak_floor"`
	SplitBlendFloor        float64 `koanf:"split_blend_floor" json:"split_blend_floor"`
}

// CanonicalConfig holds the canonical probability vector per forced category.
type CanonicalConfig struct {
	MainDish Distribution `koanf:"main_dish" json:"main_dish"`
	Dessert  Distribution `koanf:"dessert" json:"dessert"`
	Beverage Distribution `koanf:"beverage" json:"beverage"`
}

func (c CanonicalConfig) forCategory(cat Category) Distribution {
	switch cat {
	case Dessert:
		return c.Dessert
	case Beverage:
		return c.Beverage
	default:
		return c.MainDish
	}
}

// DefaultConfig returns the reference calibration.
func DefaultConfig() Config {
	return Config{
		Prototypes: PrototypesConfig{
			MainDish: Prototype{Sweet: 0.12, Savory: 0.28, Lean: 0.45},
			Dessert:  Prototype{Sweet: 0.68, Savory: 0.07, Lean: 0.40},
			Beverage: Prototype{Sweet: 0.09, Savory: 0.05, Lean: 0.85},
		},
		// Priors bias the default distribution toward main dishes
		// (target roughly 60/30/10 overall).
		Priors: Distribution{MainDish: 0.50, Dessert: 0.35, Beverage: 0.15},
		CrossWeights: CrossWeightsConfig{
			MainVsDessert:     0.30,
			MainVsBeverage:    0.25,
			DessertVsMain:     0.30,
			DessertVsBeverage: 0.25,
			BeverageVsMain:    0.25,
			BeverageVsDessert: 0.30,
		},
		Temperature: 0.92,
		NLP: NLPConfig{
			StrongWeight: 3.0,
			SoftWeight:   0.8,
			Smoothing:    0.1,
		},
		Lexicons: defaultLexicons(),
		Arbiter: ArbiterConfig{
			StrongConfidence:       60,
			ExceptionMinConfidence: 70,
			FastPath: FastPathConfig{
				Patterns:            []string{`\b(smoothie|milkshake)\b`},
				MaxStructConfidence: 90,
				Distribution:        Distribution{MainDish: 0.05, Dessert: 0.08, Beverage: 0.87},
				MinConfidence:       72,
			},
			SilentPenalty:          8,
			SilentFloor:            30,
			AgreeStrongNLPWeight:   LevelValues{Weak: 0.25, Medium: 0.35, Strong: 0.45},
			AgreeStrongBonus:       LevelValues{Weak: 3, Medium: 6, Strong: 9},
			AgreeStrongCap:         95,
			DisagreeStrongPenalty:  LevelValues{Weak: 8, Medium: 14, Strong: 20},
			DisagreeStrongFloor:    25,
			OverrideMaxConfidence:  75,
			DisagreeStrongAlpha:    0.60,
			DisagreeStrongBeta:     0.40,
			BeverageSavoryMax:      0.18,
			DessertSweetMin:        0.40,
			DessertSavoryMax:       0.15,
			AgreeWeakNLPWeight:     LevelValues{Weak: 0.60, Medium: 0.85, Strong: 1.10},
			AgreeWeakBonus:         LevelValues{Weak: 6, Medium: 12, Strong: 18},
			AgreeWeakCap:           92,
			AgreeWeakBase:          45,
			OverrideWeakAlpha:      0.35,
			OverrideWeakMediumBeta: 0.65,
			OverrideWeakStrongBeta: 0.75,
			OverrideWeakFloor:      50,
			SplitBlendFloor:        38,
		},
		Exceptions: defaultExceptions(),
		Canonical: CanonicalConfig{
			MainDish: Distribution{MainDish: 0.86, Dessert: 0.09, Beverage: 0.05},
			Dessert:  Distribution{MainDish: 0.10, Dessert: 0.84, Beverage: 0.06},
			Beverage: Distribution{MainDish: 0.06, Dessert: 0.10, Beverage: 0.84},
		},
	}
}
