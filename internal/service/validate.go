package service

import (
	"regexp"
	"strings"
	"unicode"
)

// emailPattern is a deliberately permissive syntactic check, not full
// RFC 5322 validation: something@something.something with no whitespace.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const passwordSpecials = `!@#$%^&*()_+-=[]{};':"\|,.<>/?`

func isValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// isStrongPassword requires at least 6 characters with at least one
// lowercase letter, one uppercase letter, one digit and one special
// character from a fixed set.
func isStrongPassword(password string) bool {
	if len(password) < 6 {
		return false
	}
	var lower, upper, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
		if strings.ContainsRune(passwordSpecials, r) {
			special = true
		}
	}
	return lower && upper && digit && special
}
