package auth

import (
	"regexp"
	"strings"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const specialChars = `!@#$%^&*(),.?":{}|<>`

// ValidateEmail checks the conventional local@domain.tld shape. Returns
// nil when the email is acceptable.
func ValidateEmail(email string) error {
	if email == "" {
		return &ValidationError{Field: "email", Message: "Email is required"}
	}
	if !emailRe.MatchString(email) {
		return &ValidationError{Field: "email", Message: "Invalid email format"}
	}
	return nil
}

// PasswordCheck is the result of the signup password policy. Strength
// counts satisfied criteria out of five and is UI feedback only; validity
// depends on length, mixed case and a digit.
type PasswordCheck struct {
	Valid    bool
	Message  string
	Strength int
}

func ValidatePassword(password string) PasswordCheck {
	if password == "" {
		return PasswordCheck{Message: "Password is required"}
	}

	minLength := len(password) >= 8
	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, ch := range password {
		switch {
		case ch >= 'A' && ch <= 'Z':
			hasUpper = true
		case ch >= 'a' && ch <= 'z':
			hasLower = true
		case ch >= '0' && ch <= '9':
			hasDigit = true
		case strings.ContainsRune(specialChars, ch):
			hasSpecial = true
		}
	}

	strength := 0
	for _, ok := range []bool{minLength, hasUpper, hasLower, hasDigit, hasSpecial} {
		if ok {
			strength++
		}
	}

	if !minLength {
		return PasswordCheck{Message: "Password must be at least 8 characters"}
	}
	if !hasUpper || !hasLower {
		return PasswordCheck{Message: "Password must contain uppercase and lowercase letters", Strength: strength}
	}
	if !hasDigit {
		return PasswordCheck{Message: "Password must contain at least one number", Strength: strength}
	}

	return PasswordCheck{Valid: true, Strength: strength}
}

// StrengthLabel maps a 0-5 strength score to the label shown next to the
// password field.
func StrengthLabel(strength int) string {
	switch {
	case strength == 0:
		return ""
	case strength <= 2:
		return "Weak"
	case strength <= 3:
		return "Fair"
	case strength <= 4:
		return "Good"
	default:
		return "Strong"
	}
}
