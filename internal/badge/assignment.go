package badge

import (
	"strings"

	"github.com/aferraro/badge-scanner/constants"
)

// Assignment is the mutable, user-correctable mapping from category to the
// final string value for one scan session. It bridges auto-selection and
// manual override. Not safe for concurrent use; every scan session owns its
// own instance and instances are never reused across scans.
//
// Lifecycle: NewAssignment (empty) -> Initialize -> any number of
// AssignLine / AssignFreeText / RemoveAssignment -> Finalize. Once finalized
// the assignment is frozen; mutations become no-ops.
type Assignment struct {
	values    map[constants.FieldCategory]string
	relevant  map[string]struct{} // texts of the current scan's relevant lines
	finalized bool
}

func NewAssignment() *Assignment {
	return &Assignment{
		values:   make(map[constants.FieldCategory]string),
		relevant: make(map[string]struct{}),
	}
}

// Initialize seeds the assignment with the selector's output for the given
// candidate set. Categories with no qualifying candidate start empty.
func (a *Assignment) Initialize(cs *CandidateSet, thresholds Thresholds) {
	if a.finalized {
		return
	}
	for _, line := range cs.Relevant {
		a.relevant[line.Text] = struct{}{}
	}
	for cat, cand := range Select(cs, thresholds) {
		a.values[cat] = cand.Line.Text
	}
}

// AssignLine sets the category to the line's text verbatim, overwriting any
// previous value. Lines outside the current scan's relevant set are ignored;
// that is a contract precondition, not an error.
func (a *Assignment) AssignLine(line Line, cat constants.FieldCategory) {
	if a.finalized {
		return
	}
	if _, ok := a.relevant[line.Text]; !ok {
		return
	}
	a.values[cat] = line.Text
}

// AssignFreeText sets the category to an arbitrary user-typed string,
// bypassing the candidate system. Empty or whitespace-only text is rejected
// and the assignment is unchanged.
func (a *Assignment) AssignFreeText(cat constants.FieldCategory, text string) {
	if a.finalized {
		return
	}
	if strings.TrimSpace(text) == "" {
		return
	}
	a.values[cat] = text
}

// RemoveAssignment clears the category back to empty.
func (a *Assignment) RemoveAssignment(cat constants.FieldCategory) {
	if a.finalized {
		return
	}
	delete(a.values, cat)
}

// Value returns the current value for a category, empty if unassigned.
func (a *Assignment) Value(cat constants.FieldCategory) string {
	return a.values[cat]
}

// IsLineConsumed reports whether the line's text is the currently assigned
// value of any category. Advisory only: the presentation layer uses it to
// mark lines as taken, but re-assignment is always permitted.
func (a *Assignment) IsLineConsumed(line Line) bool {
	for _, v := range a.values {
		if v == line.Text {
			return true
		}
	}
	return false
}

// Finalize freezes the assignment and returns a copy of the category/value
// map. It does not require any category to be populated; enforcing a name is
// the caller's job.
func (a *Assignment) Finalize() map[constants.FieldCategory]string {
	a.finalized = true
	out := make(map[constants.FieldCategory]string, len(a.values))
	for cat, v := range a.values {
		out[cat] = v
	}
	return out
}
