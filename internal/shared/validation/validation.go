// Package validation provides pure field validators for user-supplied input.
// All validators are side-effect-free and treat empty input as invalid.
package validation

import (
	"regexp"
	"strings"
)

var (
	emailPattern    = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@(.+)$`)
	phonePattern    = regexp.MustCompile(`^[0-9]{10}$`)
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9]{3,20}$`)
	letterPattern   = regexp.MustCompile(`[A-Za-z]`)
	digitPattern    = regexp.MustCompile(`[0-9]`)
)

// IsValidEmail reports whether s looks like a local-part@domain address.
func IsValidEmail(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	return emailPattern.MatchString(s)
}

// IsValidPassword reports whether s meets the minimum password policy:
// at least 6 characters with at least one letter and one digit.
func IsValidPassword(s string) bool {
	if len(s) < 6 {
		return false
	}
	return letterPattern.MatchString(s) && digitPattern.MatchString(s)
}

// IsValidUsername reports whether s is alphanumeric with 3-20 characters.
func IsValidUsername(s string) bool {
	return usernamePattern.MatchString(s)
}

// IsValidText reports whether the trimmed length of s is within [min, max].
func IsValidText(s string, min, max int) bool {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return false
	}
	length := len(trimmed)
	return length >= min && length <= max
}

// IsValidPhone reports whether s is exactly 10 digits.
func IsValidPhone(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	return phonePattern.MatchString(s)
}

// SanitizeInput trims s, returning an empty string unchanged.
func SanitizeInput(s string) string {
	return strings.TrimSpace(s)
}
