// Gustus - Recipe Analytics and Seasonal Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustus

package classifier

// NLP vote levels. Level 0 means the lexicons were silent and the vote
// carries no preferred label.
const (
	voteNone   = 0
	voteWeak   = 1
	voteMedium = 2
	voteStrong = 3
)

// NLPResult is the text-signal half of the classifier: a probability
// vector derived from lexical hits plus a discrete vote.
type NLPResult struct {
	Probs [numClasses]float64
	// Category is the NLP-preferred label; only meaningful when Level > 0.
	Category Category
	// Level grades the vote: 3 strong, 2 medium, 1 weak, 0 silent.
	Level int
}

// scoreNLP converts lexical hits into a distribution and a vote.
//
// Logits are strongWeight*strong + softWeight*soft + smoothing; the
// smoothing term keeps a silent blob from producing a zero vector. The
// vote goes to the class with the highest combined score 3*strong + soft,
// graded by how the hits split between the two tiers.
func (e *Engine) scoreNLP(sig LexicalSignal) NLPResult {
	var logits [numClasses]float64
	for i := 0; i < numClasses; i++ {
		logits[i] = e.cfg.NLP.StrongWeight*float64(sig.Strong[i]) +
			e.cfg.NLP.SoftWeight*float64(sig.Soft[i]) +
			e.cfg.NLP.Smoothing
	}

	res := NLPResult{Probs: softmax(logits)}

	totalStrong, totalSoft := 0, 0
	var score [numClasses]int
	for i := 0; i < numClasses; i++ {
		totalStrong += sig.Strong[i]
		totalSoft += sig.Soft[i]
		score[i] = 3*sig.Strong[i] + sig.Soft[i]
	}
	if totalStrong == 0 && totalSoft == 0 {
		return res // silent: level 0, no preferred label
	}

	best := 0
	for i := 1; i < numClasses; i++ {
		if score[i] > score[best] {
			best = i
		}
	}
	res.Category = categories[best]

	switch {
	case sig.Strong[best] >= 1 && sig.Soft[best] >= 2:
		res.Level = voteStrong
	case sig.Strong[best] >= 1:
		res.Level = voteMedium
	case sig.Soft[best] >= 1:
		res.Level = voteWeak
	default:
		res.Level = voteNone
	}
	return res
}
