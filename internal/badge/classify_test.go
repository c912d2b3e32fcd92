package badge

import (
	"reflect"
	"testing"

	"github.com/aferraro/badge-scanner/constants"
)

const fullCard = "John Doe\nSenior Software Engineer\nTech Solutions Inc\njohn.doe@techsolutions.com\n+1 (555) 123-4567"

func autoSelect(t *testing.T, raw string) Selection {
	t.Helper()
	cs := NewClassifier().Classify(raw)
	return Select(cs, DefaultThresholds())
}

func selectedText(sel Selection, cat constants.FieldCategory) string {
	if cand, ok := sel[cat]; ok {
		return cand.Line.Text
	}
	return ""
}

func TestClassifyFullCard(t *testing.T) {
	sel := autoSelect(t, fullCard)

	want := map[constants.FieldCategory]string{
		constants.FieldName:    "John Doe",
		constants.FieldTitle:   "Senior Software Engineer",
		constants.FieldCompany: "Tech Solutions Inc",
		constants.FieldEmail:   "john.doe@techsolutions.com",
		constants.FieldPhone:   "+1 (555) 123-4567",
	}
	for cat, text := range want {
		if got := selectedText(sel, cat); got != text {
			t.Errorf("%s: got %q, want %q", cat, got, text)
		}
	}
}

func TestClassifyTaglineDropped(t *testing.T) {
	cs := NewClassifier().Classify("Building tomorrow's innovation today\nAcme Corp")

	if len(cs.Filtered) != 1 || cs.Filtered[0].OrdinalIndex != 0 {
		t.Fatalf("expected the tagline to be filtered, got %+v", cs.Filtered)
	}
	if len(cs.Relevant) != 1 || cs.Relevant[0].Text != "Acme Corp" {
		t.Fatalf("expected only Acme Corp to remain, got %+v", cs.Relevant)
	}

	sel := Select(cs, DefaultThresholds())
	if got := selectedText(sel, constants.FieldCompany); got != "Acme Corp" {
		t.Errorf("company: got %q, want %q", got, "Acme Corp")
	}
}

func TestClassifyNoMatches(t *testing.T) {
	sel := autoSelect(t, "???\n###")
	if len(sel) != 0 {
		t.Errorf("expected empty selection, got %v", sel)
	}
}

func TestClassifyEmptyInput(t *testing.T) {
	cs := NewClassifier().Classify("")
	if len(cs.Relevant) != 0 || len(cs.Filtered) != 0 {
		t.Errorf("expected empty candidate set, got %+v", cs)
	}
	if sel := Select(cs, DefaultThresholds()); len(sel) != 0 {
		t.Errorf("expected empty selection, got %v", sel)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	first := NewClassifier().Classify(fullCard)
	for i := 0; i < 10; i++ {
		again := NewClassifier().Classify(fullCard)
		for _, cat := range constants.Fields() {
			if !reflect.DeepEqual(first.Candidates(cat), again.Candidates(cat)) {
				t.Fatalf("run %d: candidates for %s differ", i, cat)
			}
		}
	}
}

func TestEmailSubstringScoped(t *testing.T) {
	cs := NewClassifier().Classify("Contact: Jane Doe jane@co.com")
	cands := cs.Candidates(constants.FieldEmail)
	if len(cands) != 1 {
		t.Fatalf("expected 1 email candidate, got %d", len(cands))
	}
	if cands[0].Line.Text != "jane@co.com" {
		t.Errorf("email candidate = %q, want %q", cands[0].Line.Text, "jane@co.com")
	}
	if cands[0].Confidence != emailConfidence {
		t.Errorf("email confidence = %v, want %v", cands[0].Confidence, emailConfidence)
	}
}

func TestPhoneSubstringScoped(t *testing.T) {
	cs := NewClassifier().Classify("Office line 555-123-4567 ext 9")
	cands := cs.Candidates(constants.FieldPhone)
	if len(cands) != 1 {
		t.Fatalf("expected 1 phone candidate, got %d", len(cands))
	}
	if cands[0].Line.Text != "555-123-4567" {
		t.Errorf("phone candidate = %q, want %q", cands[0].Line.Text, "555-123-4567")
	}
}

func TestUppercaseBadgeName(t *testing.T) {
	sel := autoSelect(t, "JANE SMITH\nJANE SMITH")
	cand, ok := sel[constants.FieldName]
	if !ok {
		t.Fatal("expected a name selection for uppercase badge lines")
	}
	if cand.Line.OrdinalIndex != 0 {
		t.Errorf("tie should break to ordinal 0, got %d", cand.Line.OrdinalIndex)
	}
	if cand.Line.Text != "JANE SMITH" {
		t.Errorf("name = %q, want raw line text", cand.Line.Text)
	}
}

func TestNamePenalties(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"legal suffix", "Acme Technologies"},
		{"role keyword", "Project Manager Lead Hello"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Prepend a plain name so the scored line is not the first
			// relevant line (no position bonus).
			sel := autoSelect(t, "Filler Person\n"+tt.text)
			if cand, ok := sel[constants.FieldName]; ok && cand.Line.Text == tt.text {
				t.Errorf("%q should not win name selection", tt.text)
			}
		})
	}
}

func TestTitleScoring(t *testing.T) {
	cs := NewClassifier().Classify("John Doe\nChief Revenue Officer")
	cands := cs.Candidates(constants.FieldTitle)
	if len(cands) != 1 {
		t.Fatalf("expected 1 title candidate, got %d", len(cands))
	}
	if cands[0].Line.Text != "Chief Revenue Officer" {
		t.Errorf("title candidate = %q", cands[0].Line.Text)
	}
	if cands[0].Confidence <= DefaultThresholds()[constants.FieldTitle] {
		t.Errorf("title confidence %v should exceed threshold", cands[0].Confidence)
	}
}

func TestCompanyFloor(t *testing.T) {
	// A line with nothing company-like gets no candidate at all.
	cs := NewClassifier().Classify("hello there friend")
	if cands := cs.Candidates(constants.FieldCompany); len(cands) != 0 {
		t.Errorf("expected no company candidates, got %+v", cands)
	}
}

func TestHeuristicConfidenceCapped(t *testing.T) {
	cs := NewClassifier().Classify(fullCard)
	for _, cat := range []constants.FieldCategory{constants.FieldName, constants.FieldTitle, constants.FieldCompany} {
		for _, cand := range cs.Candidates(cat) {
			if cand.Confidence > heuristicCap {
				t.Errorf("%s candidate %q confidence %v exceeds cap", cat, cand.Line.Text, cand.Confidence)
			}
		}
	}
}
