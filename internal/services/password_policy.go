package services

import (
	"errors"
	"unicode"
	"unicode/utf8"
)

const (
	MinPasswordLength = 8

	// bcrypt refuses to hash anything longer.
	MaxPasswordBytes = 72
)

var ErrWeakPassword = errors.New("weak password")

// PasswordPolicyError names the first rule a password breaks. It matches
// ErrWeakPassword under errors.Is.
type PasswordPolicyError struct {
	Reason string
}

func (err *PasswordPolicyError) Error() string {
	return "weak password: " + err.Reason
}

func (err *PasswordPolicyError) Unwrap() error {
	return ErrWeakPassword
}

// ValidatePasswordStrength requires MinPasswordLength characters, at most
// MaxPasswordBytes bytes, and at least one upper-case letter, one lower-case
// letter and one digit.
func ValidatePasswordStrength(password string) error {
	switch {
	case utf8.RuneCountInString(password) < MinPasswordLength:
		return &PasswordPolicyError{Reason: "needs at least 8 characters"}
	case len(password) > MaxPasswordBytes:
		return &PasswordPolicyError{Reason: "must be at most 72 bytes"}
	}

	var hasUpper, hasLower, hasDigit bool
	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsDigit(char):
			hasDigit = true
		}
	}

	switch {
	case !hasUpper:
		return &PasswordPolicyError{Reason: "needs an upper-case letter"}
	case !hasLower:
		return &PasswordPolicyError{Reason: "needs a lower-case letter"}
	case !hasDigit:
		return &PasswordPolicyError{Reason: "needs a digit"}
	}
	return nil
}
