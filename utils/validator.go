// utils/validator.go - Input validation
package utils

import (
	"regexp"
	"strings"
)

// ValidateEmail checks if email is valid
func ValidateEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

var phoneRegex = regexp.MustCompile(`^0[0-9]{8,9}$`)

// ValidatePhone checks a Thai phone number (9 or 10 digits, leading zero).
// Dashes and spaces are stripped before matching.
func ValidatePhone(phone string) bool {
	phone = strings.NewReplacer("-", "", " ", "").Replace(phone)
	return phoneRegex.MatchString(phone)
}

// SanitizeInput removes potentially harmful characters
func SanitizeInput(input string) string {
	// Remove leading/trailing spaces
	input = strings.TrimSpace(input)

	// Remove null bytes
	input = strings.ReplaceAll(input, "\x00", "")

	return input
}
