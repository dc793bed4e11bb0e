package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrAccountNotFound is returned when a sync payload carries an email that
// does not resolve to a registered account. Resource sync never auto-creates
// accounts.
var ErrAccountNotFound = errors.New("account not found")

// ValidationError reports payload fields that are missing or carry a value
// that cannot be coerced to the field's kind. It is raised before any storage
// access.
type ValidationError struct {
	Missing []string
	Invalid []string
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, fmt.Sprintf("missing required fields: %s", strings.Join(e.Missing, ", ")))
	}
	if len(e.Invalid) > 0 {
		parts = append(parts, fmt.Sprintf("invalid fields: %s", strings.Join(e.Invalid, ", ")))
	}
	if len(parts) == 0 {
		return "invalid payload"
	}
	return strings.Join(parts, "; ")
}

// UpsertOutcome distinguishes an insert from an overwrite. The HTTP response
// is the same either way; the outcome feeds logs and metrics.
type UpsertOutcome string

const (
	OutcomeCreated UpsertOutcome = "created"
	OutcomeUpdated UpsertOutcome = "updated"
)
