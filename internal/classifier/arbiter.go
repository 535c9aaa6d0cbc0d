// Gustus - Recipe Analytics and Seasonal Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustus

package classifier

// Final-confidence calibration: maps any probability vector onto a
// confidence in [0, 100] from its margin and entropy. Used for blended
// vectors and as the internal-consistency cap on every reported confidence.
const (
	finalConfPMaxWeight      = 0.60
	finalConfMarginWeight    = 0.40
	finalConfCertaintyWeight = 0.10
	finalConfSigmoidSlope    = 3.0
	finalConfSigmoidCenter   = 0.50
)

// finalConfidence converts a probability vector into a confidence score.
func finalConfidence(p [numClasses]float64) float64 {
	pmax, p2 := top2(p)
	margin := pmax - p2
	certainty := 1.0 - normalizedEntropy(p)

	raw := finalConfPMaxWeight*pmax + finalConfMarginWeight*margin +
		finalConfCertaintyWeight*certainty
	return round1(100 * sigmoid(finalConfSigmoidSlope*(raw-finalConfSigmoidCenter)))
}

// arbitrate reconciles the structural and lexical classifier outputs into
// the final label and confidence. Rules are evaluated in strict priority
// order; the first matching rule short-circuits.
//
//nolint:gocyclo // multi-branch decision procedure, deliberately explicit
func (e *Engine) arbitrate(rec Record, f Features, s StructuralResult, n NLPResult, sig LexicalSignal) Result {
	a := e.cfg.Arbiter

	res := Result{
		ID:          rec.ID,
		Name:        rec.Name,
		StructProbs: s.Probs,
		NLPProbs:    n.Probs,
	}

	// Rule 1: identifier override. Known ground truth wins outright.
	if forced, ok := e.exceptions[rec.ID]; ok {
		probs := e.cfg.Canonical.forCategory(forced).vector()
		res.Category = forced
		res.FinalProbs = probs
		res.Confidence = maxf(a.ExceptionMinConfidence, finalConfidence(probs))
		res.Provenance = ProvenanceException
		return res
	}

	// Rule 2: fast-path beverage override for unambiguous keywords, unless
	// the structural signal is already near-certain.
	if e.fastPath != nil && s.Confidence < a.FastPath.MaxStructConfidence && e.fastPath.MatchString(sig.Blob) {
		probs := a.FastPath.Distribution.vector()
		res.Category = Beverage
		res.FinalProbs = probs
		res.Confidence = maxf(a.FastPath.MinConfidence, finalConfidence(probs))
		res.Provenance = ProvenanceFastPath
		return res
	}

	// Rule 3: normal arbitration.
	structStrong := s.Confidence >= a.StrongConfidence

	var (
		probs [numClasses]float64
		label Category
		conf  float64
	)

	switch {
	case n.Level == voteNone:
		// Lexicons silent: structure only, discounted when it is weak.
		probs = s.Probs
		label = s.Category
		conf = s.Confidence
		if !structStrong {
			conf = maxf(a.SilentFloor, s.Confidence-a.SilentPenalty)
		}
		res.Provenance = ProvenanceStructOnly

	case structStrong && n.Category == s.Category:
		// Agreement reinforces: small lexical influence, bounded bonus.
		w := a.AgreeStrongNLPWeight.forLevel(n.Level)
		probs = blend(s.Probs, n.Probs, 1.0, w)
		label = s.Category
		conf = minf(a.AgreeStrongCap,
			maxf(finalConfidence(probs), s.Confidence+a.AgreeStrongBonus.forLevel(n.Level)))
		res.Provenance = ProvenanceStrongAgree

	case structStrong:
		// Disagreement against a strong structure: the lexical label only
		// wins with a medium+ vote and either a not-too-confident
		// structure or a compatible nutrition profile.
		penalty := a.DisagreeStrongPenalty.forLevel(n.Level)
		beverageOK := n.Category == Beverage && f.LowCal && f.SavoryIdx < a.BeverageSavoryMax
		dessertOK := n.Category == Dessert && f.SweetIdx > a.DessertSweetMin && f.SavoryIdx < a.DessertSavoryMax

		if n.Level >= voteMedium && (s.Confidence < a.OverrideMaxConfidence || beverageOK || dessertOK) {
			probs = blend(s.Probs, n.Probs, a.DisagreeStrongAlpha, a.DisagreeStrongBeta)
			label = categories[argmax(probs)]
			res.Provenance = ProvenanceStrongOverride
		} else {
			probs = s.Probs
			label = s.Category
			res.Provenance = ProvenanceStrongKept
		}
		conf = maxf(a.DisagreeStrongFloor, minf(finalConfidence(probs), s.Confidence-penalty))

	case n.Category == s.Category:
		// Weak structure with agreement: lexical signal carries more weight.
		w := a.AgreeWeakNLPWeight.forLevel(n.Level)
		probs = blend(s.Probs, n.Probs, 1.0, w)
		label = s.Category
		conf = minf(a.AgreeWeakCap,
			maxf(finalConfidence(probs),
				maxf(s.Confidence, a.AgreeWeakBase)+a.AgreeWeakBonus.forLevel(n.Level)))
		res.Provenance = ProvenanceWeakAgree

	case n.Level >= voteMedium:
		// Weak structure, confident lexical signal: adopt the lexical label.
		beta := a.OverrideWeakMediumBeta
		if n.Level == voteStrong {
			beta = a.OverrideWeakStrongBeta
		}
		probs = blend(s.Probs, n.Probs, a.OverrideWeakAlpha, beta)
		label = n.Category
		conf = maxf(a.OverrideWeakFloor, finalConfidence(probs))
		res.Provenance = ProvenanceWeakOverride

	default:
		// Both signals weak and split: even blend, argmax decides.
		probs = blend(s.Probs, n.Probs, 0.50, 0.50)
		label = categories[argmax(probs)]
		conf = maxf(a.SplitBlendFloor, finalConfidence(probs))
		res.Provenance = ProvenanceWeakBlend
	}

	// Internal consistency: never report more confidence than the final
	// distribution itself supports.
	conf = minf(conf, finalConfidence(probs))

	res.FinalProbs = probs
	res.Category = label
	res.Confidence = round1(conf)
	return res
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
