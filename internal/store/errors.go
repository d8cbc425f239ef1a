package store

import (
	"strings"

	"github.com/goliatone/go-errors"
)

// ErrEmailTaken surfaces the unique constraint on users.email. Uniqueness is
// enforced at the store layer, not by an application pre-check.
var ErrEmailTaken = errors.New("email is already registered", errors.CategoryConflict).
	WithCode(errors.CodeConflict).
	WithTextCode("EMAIL_TAKEN")

// ErrContentNotFound is returned when a content collection has no record yet
var ErrContentNotFound = errors.New("content record not found", errors.CategoryNotFound).
	WithCode(errors.CodeNotFound).
	WithTextCode("CONTENT_NOT_FOUND")

// IsUniqueViolation will check for a unique constraint failure across the
// drivers the sqlite shim may select
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "constraint failed: UNIQUE")
}
