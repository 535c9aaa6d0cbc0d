// Gustus - Recipe Analytics and Seasonal Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustus

package classifier

import (
	"math"
	"testing"
)

// floatNear reports whether two floats agree within tol.
func floatNear(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// probsNear reports whether two probability vectors agree elementwise.
func probsNear(a, b [numClasses]float64, tol float64) bool {
	for i := range a {
		if !floatNear(a[i], b[i], tol) {
			return false
		}
	}
	return true
}

// checkDistribution fails the test unless p is a valid probability vector.
func checkDistribution(t *testing.T, p [numClasses]float64) {
	t.Helper()
	sum := 0.0
	for i, v := range p {
		if v < 0 {
			t.Errorf("p[%d] = %v, want >= 0", i, v)
		}
		sum += v
	}
	if !floatNear(sum, 1.0, 1e-9) {
		t.Errorf("sum(p) = %v, want 1.0", sum)
	}
}

func TestSoftmax(t *testing.T) {
	t.Run("equal logits give uniform distribution", func(t *testing.T) {
		p := softmax([numClasses]float64{2.5, 2.5, 2.5})
		for i, v := range p {
			if !floatNear(v, 1.0/3.0, 1e-9) {
				t.Errorf("p[%d] = %v, want 1/3", i, v)
			}
		}
	})

	t.Run("shift invariance", func(t *testing.T) {
		a := softmax([numClasses]float64{1, 2, 3})
		b := softmax([numClasses]float64{101, 102, 103})
		if !probsNear(a, b, 1e-12) {
			t.Errorf("softmax not shift invariant: %v vs %v", a, b)
		}
	})

	t.Run("stable under large logits", func(t *testing.T) {
		p := softmax([numClasses]float64{1000, 999, 998})
		checkDistribution(t, p)
		if p[0] <= p[1] || p[1] <= p[2] {
			t.Errorf("ordering lost: %v", p)
		}
	})

	t.Run("always sums to one", func(t *testing.T) {
		for _, logits := range [][numClasses]float64{
			{0, 0, 0},
			{-5, 0, 5},
			{0.1, 0.1, 3.9},
			{-1e3, 0, 1e3},
		} {
			checkDistribution(t, softmax(logits))
		}
	})
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name       string
		v, lo, hi  float64
		want       float64
	}{
		{"within range", 0.5, 0, 1, 0.5},
		{"below", -0.2, 0, 1, 0},
		{"above", 1.7, 0, 1, 1},
		{"NaN collapses to lower bound", math.NaN(), 0, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clamp(tt.v, tt.lo, tt.hi); got != tt.want {
				t.Errorf("clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want float64
	}{
		{"positive passes through", 3.25, 3.25},
		{"zero passes through", 0, 0},
		{"negative floors to zero", -1.5, 0},
		{"NaN to zero", math.NaN(), 0},
		{"positive infinity to zero", math.Inf(1), 0},
		{"negative infinity to zero", math.Inf(-1), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitize(tt.v); got != tt.want {
				t.Errorf("sanitize(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestArgmax(t *testing.T) {
	tests := []struct {
		name string
		p    [numClasses]float64
		want int
	}{
		{"first", [numClasses]float64{0.6, 0.3, 0.1}, 0},
		{"middle", [numClasses]float64{0.2, 0.7, 0.1}, 1},
		{"last", [numClasses]float64{0.1, 0.2, 0.7}, 2},
		{"tie prefers lowest index", [numClasses]float64{0.4, 0.4, 0.2}, 0},
		{"three way tie", [numClasses]float64{1.0 / 3, 1.0 / 3, 1.0 / 3}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := argmax(tt.p); got != tt.want {
				t.Errorf("argmax(%v) = %d, want %d", tt.p, got, tt.want)
			}
		})
	}
}

func TestTop2(t *testing.T) {
	pmax, p2 := top2([numClasses]float64{0.1, 0.7, 0.2})
	if pmax != 0.7 || p2 != 0.2 {
		t.Errorf("top2 = (%v, %v), want (0.7, 0.2)", pmax, p2)
	}

	pmax, p2 = top2([numClasses]float64{0.5, 0.5, 0.0})
	if pmax != 0.5 || p2 != 0.5 {
		t.Errorf("top2 with tie = (%v, %v), want (0.5, 0.5)", pmax, p2)
	}
}

func TestBlend(t *testing.T) {
	a := [numClasses]float64{0.8, 0.1, 0.1}
	b := [numClasses]float64{0.1, 0.8, 0.1}

	t.Run("renormalizes to a distribution", func(t *testing.T) {
		checkDistribution(t, blend(a, b, 1.0, 0.45))
		checkDistribution(t, blend(a, b, 0.35, 0.65))
	})

	t.Run("zero beta keeps the first distribution", func(t *testing.T) {
		got := blend(a, b, 1.0, 0.0)
		if !probsNear(got, a, 1e-9) {
			t.Errorf("blend(a, b, 1, 0) = %v, want %v", got, a)
		}
	})

	t.Run("even blend is symmetric", func(t *testing.T) {
		ab := blend(a, b, 0.5, 0.5)
		ba := blend(b, a, 0.5, 0.5)
		if !floatNear(ab[0], ba[1], 1e-12) || !floatNear(ab[2], ba[2], 1e-12) {
			t.Errorf("blend not symmetric: %v vs %v", ab, ba)
		}
	})
}

func TestCosineSimilarity(t *testing.T) {
	t.Run("parallel vectors near one", func(t *testing.T) {
		got := cosineSimilarity([3]float64{1, 2, 3}, [3]float64{2, 4, 6})
		if !floatNear(got, 1.0, 1e-9) {
			t.Errorf("cosine of parallel vectors = %v, want 1.0", got)
		}
	})

	t.Run("orthogonal vectors near zero", func(t *testing.T) {
		got := cosineSimilarity([3]float64{1, 0, 0}, [3]float64{0, 1, 0})
		if !floatNear(got, 0.0, 1e-9) {
			t.Errorf("cosine of orthogonal vectors = %v, want 0.0", got)
		}
	})

	t.Run("zero vector does not divide by zero", func(t *testing.T) {
		got := cosineSimilarity([3]float64{0, 0, 0}, [3]float64{1, 1, 1})
		if math.IsNaN(got) || math.IsInf(got, 0) {
			t.Errorf("cosine with zero vector = %v, want finite", got)
		}
	})
}

func TestNormalizedEntropy(t *testing.T) {
	t.Run("uniform distribution near one", func(t *testing.T) {
		got := normalizedEntropy([numClasses]float64{1.0 / 3, 1.0 / 3, 1.0 / 3})
		if !floatNear(got, 1.0, 1e-9) {
			t.Errorf("entropy of uniform = %v, want 1.0", got)
		}
	})

	t.Run("point mass near zero", func(t *testing.T) {
		got := normalizedEntropy([numClasses]float64{1, 0, 0})
		if !floatNear(got, 0.0, 1e-9) {
			t.Errorf("entropy of point mass = %v, want 0.0", got)
		}
	})
}

func TestRound1(t *testing.T) {
	tests := []struct {
		v, want float64
	}{
		{50.649, 50.6},
		{50.66, 50.7},
		{29.44, 29.4},
		{0, 0},
		{100, 100},
	}
	for _, tt := range tests {
		if got := round1(tt.v); got != tt.want {
			t.Errorf("round1(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}
