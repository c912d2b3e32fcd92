package badge

import (
	"testing"

	"github.com/aferraro/badge-scanner/constants"
)

func candidateSetOf(cands ...Candidate) *CandidateSet {
	cs := &CandidateSet{}
	for _, c := range cands {
		cs.add(c)
	}
	return cs
}

func TestSelectThresholdIsStrict(t *testing.T) {
	// A candidate sitting exactly on the threshold must not be selected.
	cs := candidateSetOf(Candidate{
		Line:       Line{Text: "Acme Group", OrdinalIndex: 0},
		Category:   constants.FieldCompany,
		Confidence: 0.3,
	})
	sel := Select(cs, DefaultThresholds())
	if _, ok := sel[constants.FieldCompany]; ok {
		t.Error("candidate at threshold should not be auto-selected")
	}
}

func TestSelectHighestWins(t *testing.T) {
	cs := candidateSetOf(
		Candidate{Line: Line{Text: "Weak Co", OrdinalIndex: 0}, Category: constants.FieldCompany, Confidence: 0.4},
		Candidate{Line: Line{Text: "Strong Co", OrdinalIndex: 2}, Category: constants.FieldCompany, Confidence: 0.8},
	)
	sel := Select(cs, DefaultThresholds())
	if got := sel[constants.FieldCompany].Line.Text; got != "Strong Co" {
		t.Errorf("selected %q, want Strong Co", got)
	}
}

func TestSelectTieBreaksOnOrdinal(t *testing.T) {
	cs := candidateSetOf(
		Candidate{Line: Line{Text: "First Co", OrdinalIndex: 1}, Category: constants.FieldCompany, Confidence: 0.7},
		Candidate{Line: Line{Text: "Second Co", OrdinalIndex: 3}, Category: constants.FieldCompany, Confidence: 0.7},
	)
	sel := Select(cs, DefaultThresholds())
	if got := sel[constants.FieldCompany].Line.OrdinalIndex; got != 1 {
		t.Errorf("tie broke to ordinal %d, want 1", got)
	}
}

func TestSelectSkipsUnknownCategories(t *testing.T) {
	cs := candidateSetOf(Candidate{
		Line:       Line{Text: "Jane Doe", OrdinalIndex: 0},
		Category:   constants.FieldName,
		Confidence: 0.9,
	})
	// Thresholds with no entry for the category mean it is never selected.
	sel := Select(cs, Thresholds{constants.FieldCompany: 0.3})
	if len(sel) != 0 {
		t.Errorf("expected empty selection, got %v", sel)
	}
}

func TestSelectPure(t *testing.T) {
	cs := NewClassifier().Classify(fullCard)
	first := Select(cs, DefaultThresholds())
	for i := 0; i < 5; i++ {
		if again := Select(cs, DefaultThresholds()); len(again) != len(first) {
			t.Fatalf("selection size changed on run %d", i)
		}
	}
}
