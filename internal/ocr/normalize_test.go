package ocr

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"crlf", "John Doe\r\nAcme Corp\r\n", "John Doe\nAcme Corp"},
		{"bare cr", "John Doe\rAcme Corp", "John Doe\nAcme Corp"},
		{"tabs and runs of spaces", "John\t\tDoe   Jr", "John Doe Jr"},
		{"box noise line dropped", "John Doe\n------\nAcme Corp", "John Doe\n\nAcme Corp"},
		{"pipe noise line dropped", "John Doe\n|||\nAcme Corp", "John Doe\n\nAcme Corp"},
		{"blank runs collapsed", "John Doe\n\n\n\n\nAcme Corp", "John Doe\n\nAcme Corp"},
		{"trailing spaces per line", "John Doe   \nAcme Corp  ", "John Doe\nAcme Corp"},
		{"surrounding whitespace", "\n\n  John Doe  \n\n", "John Doe"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeKeepsShortDashes(t *testing.T) {
	// Two dashes is not border noise; could be a real line.
	if got := Normalize("--"); got != "--" {
		t.Errorf("got %q, want %q", got, "--")
	}
}
