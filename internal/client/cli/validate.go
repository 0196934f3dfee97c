package cli

import (
	"errors"
	"strings"
)

// Input validation here only saves a round trip; the backend revalidates
// everything and its answer is the one that counts.

var (
	errUsernameTooShort = errors.New("username must be at least 3 characters")
	errPasswordTooShort = errors.New("password must be at least 6 characters")
	errInvalidEmail     = errors.New("email does not look valid")
)

func validateUsername(username string) error {
	if len(username) < 3 {
		return errUsernameTooShort
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < 6 {
		return errPasswordTooShort
	}
	return nil
}

func validateEmail(email string) error {
	at := strings.Index(email, "@")
	if at < 1 || !strings.Contains(email[at:], ".") {
		return errInvalidEmail
	}
	return nil
}
