// utils/validator.go - Input validation for intake forms
package utils

import (
	"regexp"
	"strings"
)

var (
	emailRegex   = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	nonSlugRegex = regexp.MustCompile(`[^a-z0-9]+`)
)

// ValidateEmail checks if a submitter or collector email is plausible.
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// SanitizeInput cleans submitter-supplied metadata before persisting it.
func SanitizeInput(input string) string {
	// Remove leading/trailing spaces
	input = strings.TrimSpace(input)

	// Remove null bytes
	input = strings.ReplaceAll(input, "\x00", "")

	return input
}

// Slugify converts a display name to a URL slug (lowercase, hyphen separated).
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = nonSlugRegex.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
