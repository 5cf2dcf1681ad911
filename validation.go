package person

import "strings"

// ValidationMode controls when a builder's validation rules run.
type ValidationMode int

const (
	// ValidationModeDeferred runs rules only at Validate/Build time.
	// Setters are total and never record errors. This is the default.
	ValidationModeDeferred ValidationMode = iota

	// ValidationModeImmediate additionally runs the relevant rule inside
	// each setter, recording failures for inspection via
	// [Builder.HasErrors] and [Builder.Errors]. Validate and Build still
	// judge the draft's final state only.
	ValidationModeImmediate
)

// Rule failure messages, in rule order.
const (
	msgNameEmpty   = "Name cannot be empty."
	msgAgeNegative = "Age cannot be negative."
)

// Result is the outcome of validating a draft: a validity flag plus the
// ordered list of rule-failure messages. A valid Result has no messages.
type Result struct {
	Valid  bool
	Errors []string
}

// Err returns the Result as an error: nil when valid, otherwise a
// *ValidationError carrying all messages.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	return NewValidationError(r.Errors...)
}

// ValidateName checks the name rule: non-empty after trimming whitespace.
// Returns nil or a single-message *ValidationError.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return NewValidationError(msgNameEmpty)
	}
	return nil
}

// ValidateAge checks the age rule: non-negative.
// Returns nil or a single-message *ValidationError.
func ValidateAge(age int) error {
	if age < 0 {
		return NewValidationError(msgAgeNegative)
	}
	return nil
}

// validateDraft applies every rule to the draft values in rule order,
// collecting all failures. It never short-circuits.
func validateDraft(name string, age int) Result {
	var msgs []string
	if strings.TrimSpace(name) == "" {
		msgs = append(msgs, msgNameEmpty)
	}
	if age < 0 {
		msgs = append(msgs, msgAgeNegative)
	}
	return Result{
		Valid:  len(msgs) == 0,
		Errors: msgs,
	}
}
