package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrUnavailable = errors.New("unavailable")
)

// Board errors. Each wraps one of the generic sentinels above so that
// adapters can map them to transport codes without knowing every kind.
var (
	// ErrFetchFailed reports a network or non-2xx failure from the list source.
	ErrFetchFailed = fmt.Errorf("fetch failed: %w", ErrUnavailable)

	// ErrMalformedData reports a list source response with an invalid shape.
	ErrMalformedData = fmt.Errorf("malformed data: %w", ErrUnavailable)

	// ErrSelectionInvalid is advisory: a move session was requested with a
	// selection count other than two.
	ErrSelectionInvalid = errors.New("select exactly 2 lists to create a new list")

	// ErrSelectionUnresolvable reports a selected list number that is absent
	// from the collection.
	ErrSelectionUnresolvable = fmt.Errorf("selection not resolvable: %w", ErrNotFound)

	// ErrItemNotFound reports a move of an item that is not in the source pane.
	ErrItemNotFound = fmt.Errorf("item: %w", ErrNotFound)

	ErrSessionActive = fmt.Errorf("move session already active: %w", ErrConflict)
	ErrNoSession     = fmt.Errorf("no active move session: %w", ErrConflict)

	// ErrFetchInProgress rejects opening a move session while lists are loading.
	ErrFetchInProgress = fmt.Errorf("lists are still loading: %w", ErrConflict)

	// ErrStaleFetch is returned when a fetch result was discarded because a
	// newer fetch superseded it.
	ErrStaleFetch = fmt.Errorf("fetch superseded by a newer request: %w", ErrConflict)
)

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError reports a single rejected field.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
