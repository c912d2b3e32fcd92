package badge

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/aferraro/badge-scanner/constants"
)

// Field length caps applied after character filtering.
const (
	maxNameLen    = 100
	maxTitleLen   = 120
	maxCompanyLen = 120
	maxEmailLen   = 254
	maxPhoneLen   = 20
)

var (
	reNameAllowed    = regexp.MustCompile(`[^A-Za-z\s.'-]`)
	reCompanyAllowed = regexp.MustCompile(`[^A-Za-z0-9\s.,&'-]`)
	rePhoneAllowed   = regexp.MustCompile(`[^0-9+().\s-]`)
	reEmailExact     = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	reSpaces         = regexp.MustCompile(`\s{2,}`)
)

// Sanitize turns a finalized assignment into an ExtractedContact. Each field
// passes through a character allow-list and a length cap; values that do not
// survive are silently dropped to empty rather than rejected. The dropped
// field names are logged, matching the policy that nothing downstream of a
// scan is fatal.
func Sanitize(values map[constants.FieldCategory]string, logger *slog.Logger) ExtractedContact {
	if logger == nil {
		logger = slog.Default()
	}

	var dropped []string
	keep := func(cat constants.FieldCategory, cleaned string) string {
		if cleaned == "" && values[cat] != "" {
			dropped = append(dropped, string(cat))
		}
		return cleaned
	}

	contact := ExtractedContact{
		Name:    keep(constants.FieldName, sanitizeText(values[constants.FieldName], reNameAllowed, maxNameLen)),
		Company: keep(constants.FieldCompany, sanitizeText(values[constants.FieldCompany], reCompanyAllowed, maxCompanyLen)),
		Title:   keep(constants.FieldTitle, sanitizeText(values[constants.FieldTitle], reCompanyAllowed, maxTitleLen)),
		Email:   keep(constants.FieldEmail, sanitizeEmail(values[constants.FieldEmail])),
		Phone:   keep(constants.FieldPhone, sanitizePhone(values[constants.FieldPhone])),
	}

	if len(dropped) > 0 {
		logger.Warn("badge.sanitize.dropped", "fields", dropped)
	}
	return contact
}

func sanitizeText(s string, allowed *regexp.Regexp, max int) string {
	s = allowed.ReplaceAllString(s, "")
	s = strings.TrimSpace(reSpaces.ReplaceAllString(s, " "))
	if len(s) > max {
		s = s[:max]
	}
	return s
}

// sanitizeEmail validates the whole value rather than filtering characters;
// a manually typed "email" that is not email-shaped is dropped outright.
func sanitizeEmail(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > maxEmailLen {
		return ""
	}
	if !reEmailExact.MatchString(s) {
		return ""
	}
	return strings.ToLower(s)
}

func sanitizePhone(s string) string {
	s = rePhoneAllowed.ReplaceAllString(s, "")
	s = strings.TrimSpace(reSpaces.ReplaceAllString(s, " "))
	if len(s) > maxPhoneLen {
		s = s[:maxPhoneLen]
	}
	digits := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	if digits < 7 {
		return ""
	}
	return s
}
