// Package validation holds the pure field checks users must pass before
// they are stored. The functions keep no state and return a fresh result
// on every call.
package validation

import (
	"strings"

	"userstore/internal/model"
)

// ValidateName reports whether name is usable: non-empty and at least
// two characters long.
func ValidateName(name string) bool {
	return len(name) >= 2
}

// ValidateEmail reports whether email is usable: non-empty and
// containing at least one "@".
func ValidateEmail(email string) bool {
	return email != "" && strings.Contains(email, "@")
}

// ValidateUser checks the user's name and then its email, returning the
// first failure as a *model.ValidationError. The name check always runs
// first, so a user with both fields invalid reports the name error.
func ValidateUser(u model.User) error {
	if !ValidateName(u.Name) {
		return &model.ValidationError{Field: "name", Message: "must be at least 2 characters"}
	}
	if !ValidateEmail(u.Email) {
		return &model.ValidationError{Field: "email", Message: "must contain @"}
	}
	return nil
}
