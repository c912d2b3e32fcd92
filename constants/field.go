package constants

import "strings"

// FieldCategory is one of the five contact fields a scanned line can be
// classified as. Fixed, closed set.
type FieldCategory string

const (
	FieldName    FieldCategory = "NAME"
	FieldTitle   FieldCategory = "TITLE"
	FieldCompany FieldCategory = "COMPANY"
	FieldEmail   FieldCategory = "EMAIL"
	FieldPhone   FieldCategory = "PHONE"
)

var allFields = []FieldCategory{
	FieldName,
	FieldTitle,
	FieldCompany,
	FieldEmail,
	FieldPhone,
}

// Fields returns the categories in their canonical order.
func Fields() []FieldCategory {
	out := make([]FieldCategory, len(allFields))
	copy(out, allFields)
	return out
}

// FieldStrings returns the categories as plain strings (for enum validators).
func FieldStrings() []string {
	result := make([]string, len(allFields))
	for i, f := range allFields {
		result[i] = string(f)
	}
	return result
}

// ParseField maps a loose string to a category.
func ParseField(input string) (FieldCategory, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(input))
	for _, f := range allFields {
		if normalized == string(f) {
			return f, true
		}
	}
	return "", false
}
