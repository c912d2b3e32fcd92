package badge

import "testing"

func TestRelevanceFilter(t *testing.T) {
	f := newLineFilter()

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"plain name line", "John Doe", true},
		{"too short", "J", false},
		{"marketing slogan", "Excellence in everything we do", false},
		{"marketing word but has at sign", "innovation@acme.com", true},
		{"marketing word but has digits", "Call our office 555 1234", true},
		{"tagline verb long", "Building tomorrow's innovation today", false},
		{"tagline verb short", "Building A", true},
		{"bare domain", "www.acme.com", false},
		{"domain with at sign", "sales@acme.com", true},
		{"conference boilerplate", "TechCrunch Conference 2024", false},
		{"attendee badge line", "ATTENDEE", false},
		{"phone line", "+1 (555) 123-4567", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := f.relevant(Line{Text: tt.text})
			if got != tt.want {
				t.Errorf("relevant(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestSplitLines(t *testing.T) {
	lines := SplitLines("John Doe\n\n  Acme Corp  \n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].Text != "John Doe" || lines[0].OrdinalIndex != 0 {
		t.Errorf("unexpected first line: %+v", lines[0])
	}
	if lines[1].Text != "Acme Corp" || lines[1].OrdinalIndex != 1 {
		t.Errorf("unexpected second line: %+v", lines[1])
	}
}

func TestSplitLinesEmpty(t *testing.T) {
	if lines := SplitLines(""); len(lines) != 0 {
		t.Errorf("expected no lines for empty input, got %d", len(lines))
	}
	if lines := SplitLines("\n\n  \n"); len(lines) != 0 {
		t.Errorf("expected no lines for blank input, got %d", len(lines))
	}
}
