package badge

import (
	"github.com/aferraro/badge-scanner/constants"
)

// Thresholds holds the per-category minimum confidence a candidate must
// strictly exceed to be auto-selected.
type Thresholds map[constants.FieldCategory]float64

// DefaultThresholds mirror how the categories are scored: heuristic
// categories sit low, pattern-matched contact info sits high.
func DefaultThresholds() Thresholds {
	return Thresholds{
		constants.FieldName:    0.4,
		constants.FieldCompany: 0.3,
		constants.FieldTitle:   0.3,
		constants.FieldEmail:   0.8,
		constants.FieldPhone:   0.8,
	}
}

// Selection is the auto-selected best guess per category. Categories with no
// qualifying candidate are absent from the map.
type Selection map[constants.FieldCategory]Candidate

// Select reduces a candidate set to at most one candidate per category:
// highest confidence wins, ties broken by earliest ordinal index. Pure
// function of its inputs.
func Select(cs *CandidateSet, thresholds Thresholds) Selection {
	sel := make(Selection, len(thresholds))
	for _, cat := range constants.Fields() {
		min, ok := thresholds[cat]
		if !ok {
			continue
		}
		var best *Candidate
		for _, cand := range cs.Candidates(cat) {
			if cand.Confidence <= min {
				continue
			}
			// Candidates arrive in scan order, so strict greater-than
			// keeps the earliest on equal confidence.
			if best == nil || cand.Confidence > best.Confidence {
				c := cand
				best = &c
			}
		}
		if best != nil {
			sel[cat] = *best
		}
	}
	return sel
}
