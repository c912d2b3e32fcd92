package badge

import (
	"testing"

	"github.com/aferraro/badge-scanner/constants"
)

func initializedAssignment(t *testing.T, raw string) (*Assignment, *CandidateSet) {
	t.Helper()
	cs := NewClassifier().Classify(raw)
	a := NewAssignment()
	a.Initialize(cs, DefaultThresholds())
	return a, cs
}

func TestInitializeSeedsAutoSelection(t *testing.T) {
	a, _ := initializedAssignment(t, fullCard)

	if got := a.Value(constants.FieldName); got != "John Doe" {
		t.Errorf("name = %q, want John Doe", got)
	}
	if got := a.Value(constants.FieldEmail); got != "john.doe@techsolutions.com" {
		t.Errorf("email = %q", got)
	}
}

func TestInitializeEmptyScan(t *testing.T) {
	a, _ := initializedAssignment(t, "???\n###")
	for _, cat := range constants.Fields() {
		if v := a.Value(cat); v != "" {
			t.Errorf("%s should start empty, got %q", cat, v)
		}
	}
}

func TestAssignLineIdempotent(t *testing.T) {
	a, cs := initializedAssignment(t, fullCard)
	line := cs.Relevant[2] // Tech Solutions Inc

	a.AssignLine(line, constants.FieldCompany)
	once := a.Value(constants.FieldCompany)
	a.AssignLine(line, constants.FieldCompany)
	if twice := a.Value(constants.FieldCompany); twice != once {
		t.Errorf("re-assignment changed value: %q -> %q", once, twice)
	}
}

func TestAssignLineOverwrites(t *testing.T) {
	a, cs := initializedAssignment(t, fullCard)

	a.AssignLine(cs.Relevant[0], constants.FieldCompany)
	if got := a.Value(constants.FieldCompany); got != "John Doe" {
		t.Errorf("company = %q, want the re-assigned line text", got)
	}
}

func TestAssignLineUnknownLineIsNoop(t *testing.T) {
	a, _ := initializedAssignment(t, fullCard)
	before := a.Value(constants.FieldName)

	a.AssignLine(Line{Text: "Not From This Scan", OrdinalIndex: 99}, constants.FieldName)
	if got := a.Value(constants.FieldName); got != before {
		t.Errorf("assignment changed for a foreign line: %q", got)
	}
}

func TestAssignSameLineToTwoCategories(t *testing.T) {
	a, cs := initializedAssignment(t, fullCard)
	line := cs.Relevant[0]

	a.AssignLine(line, constants.FieldName)
	a.AssignLine(line, constants.FieldCompany)
	if a.Value(constants.FieldName) != line.Text || a.Value(constants.FieldCompany) != line.Text {
		t.Error("assigning one line to two categories must succeed for both")
	}
}

func TestAssignFreeText(t *testing.T) {
	a, _ := initializedAssignment(t, fullCard)

	a.AssignFreeText(constants.FieldTitle, "Interim CTO")
	if got := a.Value(constants.FieldTitle); got != "Interim CTO" {
		t.Errorf("title = %q, want Interim CTO", got)
	}
}

func TestAssignFreeTextRejectsBlank(t *testing.T) {
	a, _ := initializedAssignment(t, fullCard)
	before := a.Value(constants.FieldEmail)

	a.AssignFreeText(constants.FieldEmail, "  ")
	if got := a.Value(constants.FieldEmail); got != before {
		t.Errorf("blank free text changed value: %q -> %q", before, got)
	}
}

func TestRemoveAssignment(t *testing.T) {
	a, _ := initializedAssignment(t, fullCard)

	a.RemoveAssignment(constants.FieldCompany)
	if got := a.Value(constants.FieldCompany); got != "" {
		t.Errorf("company still set after removal: %q", got)
	}

	out := a.Finalize()
	if _, ok := out[constants.FieldCompany]; ok {
		t.Error("finalized output should omit the removed category")
	}
}

func TestIsLineConsumed(t *testing.T) {
	a, cs := initializedAssignment(t, fullCard)

	if !a.IsLineConsumed(cs.Relevant[0]) {
		t.Error("auto-selected name line should read as consumed")
	}
	if a.IsLineConsumed(Line{Text: "never assigned"}) {
		t.Error("unassigned text should not read as consumed")
	}

	a.RemoveAssignment(constants.FieldName)
	if a.IsLineConsumed(cs.Relevant[0]) {
		t.Error("line should be free again after removal")
	}
}

func TestFinalizeFreezes(t *testing.T) {
	a, cs := initializedAssignment(t, fullCard)
	out := a.Finalize()

	a.AssignLine(cs.Relevant[0], constants.FieldCompany)
	a.AssignFreeText(constants.FieldTitle, "Changed")
	a.RemoveAssignment(constants.FieldName)

	if a.Value(constants.FieldName) != out[constants.FieldName] {
		t.Error("mutation after Finalize must be a no-op")
	}
	if a.Value(constants.FieldTitle) != out[constants.FieldTitle] {
		t.Error("free text after Finalize must be a no-op")
	}
}

func TestFinalizeAllowsEmpty(t *testing.T) {
	a := NewAssignment()
	out := a.Finalize()
	if len(out) != 0 {
		t.Errorf("finalizing an empty assignment should yield an empty map, got %v", out)
	}
}
