package badge

import (
	"regexp"
	"strings"
)

// Noise tables for the relevance filter. Kept as data rather than buried in
// the filtering logic so each rule is auditable and swappable in tests.
var (
	// MarketingWords flags slogan vocabulary that rarely appears in
	// contact data.
	MarketingWords = []string{
		"innovation",
		"excellence",
		"our",
		"your",
		"world class",
		"leading",
		"passion",
		"quality",
		"trusted",
		"award",
	}

	// TaglineVerbs flags mission-statement phrasing ("Building tomorrow...").
	TaglineVerbs = []string{
		"making",
		"building",
		"creating",
		"connecting",
		"delivering",
		"providing",
		"enabling",
		"empowering",
	}

	// URLMarkers flags bare web addresses.
	URLMarkers = []string{"www.", ".com", ".org", ".net", "http"}

	// EventWords flags conference badge boilerplate.
	EventWords = []string{
		"conference",
		"summit",
		"expo",
		"event",
		"attendee",
		"speaker",
		"session",
	}
)

var reTripleDigits = regexp.MustCompile(`\d{3}`)

// lineFilter applies the relevance rules with a given set of noise tables.
// The zero value is not usable; construct via newLineFilter.
type lineFilter struct {
	marketing []string
	verbs     []string
	urls      []string
	events    []string
}

func newLineFilter() *lineFilter {
	return &lineFilter{
		marketing: MarketingWords,
		verbs:     TaglineVerbs,
		urls:      URLMarkers,
		events:    EventWords,
	}
}

// relevant reports whether a line should be scored at all.
func (f *lineFilter) relevant(line Line) bool {
	text := line.Text
	if len(text) < 2 {
		return false
	}

	lower := strings.ToLower(text)
	hasAt := strings.Contains(text, "@")

	// Marketing vocabulary, unless the line still looks like contact data.
	if containsAny(lower, f.marketing) && !hasAt && !reTripleDigits.MatchString(text) {
		return false
	}

	// Tagline: mission-statement verb plus sentence length.
	if containsAny(lower, f.verbs) && len(text) > 20 {
		return false
	}

	// Bare URLs and domains. An @ means it is probably an email line.
	if containsAny(lower, f.urls) && !hasAt {
		return false
	}

	if containsAny(lower, f.events) {
		return false
	}

	return true
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}
