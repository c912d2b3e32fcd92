package common

import (
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestRequired(t *testing.T) {
	tests := []struct {
		name    string
		value   interface{}
		wantErr bool
	}{
		{"nil", nil, true},
		{"empty string", "", true},
		{"whitespace", "   ", true},
		{"value", "John", false},
		{"nil string pointer", (*string)(nil), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Required("f", tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("Required(%v) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestMaxLength(t *testing.T) {
	if err := MaxLength("f", "abcd", 3); err == nil {
		t.Error("want error for string over limit")
	}
	if err := MaxLength("f", "abc", 3); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	// non-string values are not this rule's business
	if err := MaxLength("f", 42, 3); err != nil {
		t.Errorf("unexpected error for non-string: %v", err)
	}
}

func TestEmail(t *testing.T) {
	tests := []struct {
		value   string
		wantErr bool
	}{
		{"", false},
		{"jane@acme.com", false},
		{"jane.smith+tag@sub.acme.io", false},
		{"not-an-email", true},
		{"a@b", true},
		{"@acme.com", true},
	}
	for _, tt := range tests {
		err := Email("email", tt.value)
		if (err != nil) != tt.wantErr {
			t.Errorf("Email(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
		}
	}
}

func TestPhone(t *testing.T) {
	tests := []struct {
		value   string
		wantErr bool
	}{
		{"", false},
		{"(555) 123-4567", false},
		{"+1 555.123.4567", false},
		{"12345", true},         // too short
		{"call me maybe", true}, // letters
	}
	for _, tt := range tests {
		err := Phone("phone", tt.value)
		if (err != nil) != tt.wantErr {
			t.Errorf("Phone(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
		}
	}
}

func TestValidatorCollectsErrors(t *testing.T) {
	v := NewValidator()
	v.Field("name", "", Required)
	v.Field("email", "nope", Email)
	if got := len(v.Errors()); got != 2 {
		t.Fatalf("error count = %d, want 2", got)
	}

	err := ValidateAndReturnError(v)
	if err == nil {
		t.Fatal("want error")
	}
	if st, ok := status.FromError(err); !ok || st.Code() != codes.InvalidArgument {
		t.Errorf("want InvalidArgument status, got %v", err)
	}
}

func TestValidateAndReturnErrorClean(t *testing.T) {
	if err := ValidateAndReturnError(NewValidator()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
