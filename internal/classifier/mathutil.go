// Gustus - Recipe Analytics and Seasonal Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustus

package classifier

import "math"

// tiny guards logarithms and divisions the same way the reference
// implementation does. It is distinct from the feature-extraction epsilon.
const tiny = 1e-12

// clamp bounds v to [lo, hi]. NaN collapses to lo so that malformed
// intermediate values degrade to neutral features instead of propagating.
func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// sanitize replaces NaN and infinities with 0 and floors at 0.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// softmax converts logits to a probability distribution. The maximum logit
// is subtracted before exponentiation for numerical stability; this must be
// preserved exactly.
func softmax(logits [numClasses]float64) [numClasses]float64 {
	maxLogit := logits[0]
	for _, l := range logits[1:] {
		if l > maxLogit {
			maxLogit = l
		}
	}

	var exps [numClasses]float64
	var sum float64
	for i, l := range logits {
		exps[i] = math.Exp(l - maxLogit)
		sum += exps[i]
	}

	sum += tiny
	for i := range exps {
		exps[i] /= sum
	}
	return exps
}

// sigmoid is the standard logistic function.
func sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

// cosineSimilarity computes the cosine of the angle between two vectors,
// with additive guards against zero-length inputs.
func cosineSimilarity(a, b [3]float64) float64 {
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	return dot / ((math.Sqrt(na) + tiny) * (math.Sqrt(nb) + tiny))
}

// normalizedEntropy returns the Shannon entropy of p divided by log(n),
// so the result lies in [0, 1].
func normalizedEntropy(p [numClasses]float64) float64 {
	var h float64
	for _, v := range p {
		if v > 0 {
			h -= v * math.Log(v+tiny)
		}
	}
	return h / math.Log(float64(numClasses))
}

// top2 returns the largest and second-largest entries of p.
func top2(p [numClasses]float64) (pmax, p2 float64) {
	pmax, p2 = math.Inf(-1), math.Inf(-1)
	for _, v := range p {
		switch {
		case v > pmax:
			p2 = pmax
			pmax = v
		case v > p2:
			p2 = v
		}
	}
	return pmax, p2
}

// argmax returns the index of the largest entry, preferring the lowest
// index on ties (main dish before dessert before beverage).
func argmax(p [numClasses]float64) int {
	best := 0
	for i := 1; i < len(p); i++ {
		if p[i] > p[best] {
			best = i
		}
	}
	return best
}

// blend combines two distributions as alpha*a + beta*b and renormalizes.
func blend(a, b [numClasses]float64, alpha, beta float64) [numClasses]float64 {
	var out [numClasses]float64
	var sum float64
	for i := range out {
		out[i] = alpha*a[i] + beta*b[i]
		sum += out[i]
	}
	sum += tiny
	for i := range out {
		out[i] /= sum
	}
	return out
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
