package person

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPerson is the sentinel for validation failures.
// Every *ValidationError matches it via errors.Is:
//
//	if _, err := builder.Build(); errors.Is(err, person.ErrInvalidPerson) {
//	    // handle invalid input
//	}
var ErrInvalidPerson = errors.New("person: invalid person")

// ValidationError is returned by [Builder.Build] when one or more validation
// rules fail. Messages holds every rule failure in rule order; no rule
// short-circuits another.
type ValidationError struct {
	Messages []string
}

// Error implements the error interface, joining all rule messages.
func (e *ValidationError) Error() string {
	if len(e.Messages) == 0 {
		return "person: validation failed"
	}
	return fmt.Sprintf("person: validation failed: %s", strings.Join(e.Messages, " "))
}

// Is implements error comparison for errors.Is, matching [ErrInvalidPerson].
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidPerson
}

// NewValidationError creates a validation error from rule messages.
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

// AsValidationError extracts a ValidationError from the error chain.
// Returns the ValidationError and true if found, nil and false otherwise.
// This follows Go's errors.As() convention.
//
// Example:
//
//	if valErr, ok := person.AsValidationError(err); ok {
//	    for _, msg := range valErr.Messages {
//	        log.Println(msg)
//	    }
//	}
func AsValidationError(err error) (*ValidationError, bool) {
	var valErr *ValidationError
	if errors.As(err, &valErr) {
		return valErr, true
	}
	return nil, false
}
