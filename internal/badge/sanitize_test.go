package badge

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/aferraro/badge-scanner/constants"
)

func TestSanitizeFullContact(t *testing.T) {
	values := map[constants.FieldCategory]string{
		constants.FieldName:    "John Doe",
		constants.FieldTitle:   "Senior Software Engineer",
		constants.FieldCompany: "Tech Solutions Inc",
		constants.FieldEmail:   "John.Doe@TechSolutions.com",
		constants.FieldPhone:   "+1 (555) 123-4567",
	}
	c := Sanitize(values, nil)

	if c.Name != "John Doe" {
		t.Errorf("name = %q", c.Name)
	}
	if c.Email != "john.doe@techsolutions.com" {
		t.Errorf("email should be lowercased, got %q", c.Email)
	}
	if c.Phone != "+1 (555) 123-4567" {
		t.Errorf("phone = %q", c.Phone)
	}
}

func TestSanitizeStripsDisallowedCharacters(t *testing.T) {
	values := map[constants.FieldCategory]string{
		constants.FieldName: "Jane <script>alert</script> O'Neil",
	}
	c := Sanitize(values, nil)
	if strings.ContainsAny(c.Name, "<>/") {
		t.Errorf("name still contains markup characters: %q", c.Name)
	}
	if !strings.Contains(c.Name, "O'Neil") {
		t.Errorf("apostrophe should survive, got %q", c.Name)
	}
}

func TestSanitizeDropsInvalidEmail(t *testing.T) {
	values := map[constants.FieldCategory]string{
		constants.FieldEmail: "not-an-email",
	}
	if c := Sanitize(values, nil); c.Email != "" {
		t.Errorf("invalid email should be dropped to empty, got %q", c.Email)
	}
}

func TestSanitizeDropsShortPhone(t *testing.T) {
	values := map[constants.FieldCategory]string{
		constants.FieldPhone: "call me 12",
	}
	if c := Sanitize(values, nil); c.Phone != "" {
		t.Errorf("phone without enough digits should be dropped, got %q", c.Phone)
	}
}

func TestSanitizeCapsLength(t *testing.T) {
	values := map[constants.FieldCategory]string{
		constants.FieldName: strings.Repeat("A", 3) + strings.Repeat("a", 200),
	}
	c := Sanitize(values, nil)
	if len(c.Name) > maxNameLen {
		t.Errorf("name length %d exceeds cap %d", len(c.Name), maxNameLen)
	}
}

func TestSanitizeEmptyAssignment(t *testing.T) {
	c := Sanitize(map[constants.FieldCategory]string{}, nil)
	if c != (ExtractedContact{}) {
		t.Errorf("expected zero contact, got %+v", c)
	}
}

func TestContactSchemaValidation(t *testing.T) {
	tests := []struct {
		name    string
		contact ExtractedContact
		wantErr bool
	}{
		{"valid minimal", ExtractedContact{Name: "Jane Doe"}, false},
		{"valid full", ExtractedContact{Name: "Jane Doe", Company: "Acme Corp", Title: "CTO", Email: "jane@acme.com", Phone: "555-123-4567"}, false},
		{"missing name", ExtractedContact{Company: "Acme Corp"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.contact)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			err = ValidateContactJSON(b)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateContactJSON() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
