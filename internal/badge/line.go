package badge

import (
	"strings"

	"github.com/aferraro/badge-scanner/constants"
)

// Line is a single non-empty, trimmed segment of the raw scan text.
// Immutable once extracted.
type Line struct {
	Text         string `json:"text"`
	OrdinalIndex int    `json:"ordinal_index"` // 0-based position in the original scan
}

// Candidate associates a line with a field category and a confidence in [0,1].
// A line may be a candidate in more than one category.
type Candidate struct {
	Line       Line                    `json:"line"`
	Category   constants.FieldCategory `json:"category"`
	Confidence float64                 `json:"confidence"`
}

// CandidateSet maps each category to its candidates in scan order.
// Built once per scan, read-only after creation.
type CandidateSet struct {
	// Lines that survived the relevance filter, in scan order.
	Relevant []Line `json:"relevant"`
	// Lines dropped by the relevance filter, kept for display.
	Filtered []Line `json:"filtered"`
	// Candidates per category, in scan order.
	ByCategory map[constants.FieldCategory][]Candidate `json:"by_category"`
}

// Candidates returns the candidates for a category in scan order.
func (cs *CandidateSet) Candidates(cat constants.FieldCategory) []Candidate {
	return cs.ByCategory[cat]
}

// Categories returns the categories that have at least one candidate, in the
// canonical field order.
func (cs *CandidateSet) Categories() []constants.FieldCategory {
	var cats []constants.FieldCategory
	for _, cat := range constants.Fields() {
		if len(cs.ByCategory[cat]) > 0 {
			cats = append(cats, cat)
		}
	}
	return cats
}

func (cs *CandidateSet) add(c Candidate) {
	if cs.ByCategory == nil {
		cs.ByCategory = make(map[constants.FieldCategory][]Candidate)
	}
	cs.ByCategory[c.Category] = append(cs.ByCategory[c.Category], c)
}

// ExtractedContact is the only artifact that crosses the output boundary.
// All values are post-sanitization; everything but Name may be empty.
type ExtractedContact struct {
	Name    string `json:"name"`
	Company string `json:"company,omitempty"`
	Title   string `json:"title,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

// SplitLines turns raw OCR text into trimmed, non-empty lines tagged with
// their ordinal index. Blank segments are skipped and do not consume an
// index, so the index is the position among the scan's non-empty lines.
func SplitLines(raw string) []Line {
	var out []Line
	idx := 0
	for _, seg := range strings.Split(raw, "\n") {
		text := strings.TrimSpace(seg)
		if text == "" {
			continue
		}
		out = append(out, Line{Text: text, OrdinalIndex: idx})
		idx++
	}
	return out
}
