package parser

import (
	"fmt"
	"strings"

	"github.com/manav03panchal/countdown/internal/errors"
)

// TimeParseError represents a target parsing error with helpful suggestions.
type TimeParseError struct {
	Input      string
	Field      string
	Message    string
	Examples   []string
	Suggestion string
}

func (e *TimeParseError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid %s '%s': %s", e.Field, e.Input, e.Message)
}

// Unwrap lets callers match with errors.Is(err, errors.ErrInvalidTarget).
func (e *TimeParseError) Unwrap() error {
	return errors.ErrInvalidTarget
}

// TargetExamples provides example target formats.
var TargetExamples = []string{
	"2026-12-24T18:00",
	"+5m",
	"+1h30m",
	"tomorrow 9am",
	"friday 5pm",
	"in 3 days",
}

// NewTargetError creates a target parse error with standard examples.
func NewTargetError(input, message string) *TimeParseError {
	return &TimeParseError{
		Input:      input,
		Field:      "target",
		Message:    message,
		Examples:   TargetExamples,
		Suggestion: "Targets can be a date/time (2026-12-24T18:00), relative (+5m) or natural language (friday 5pm).",
	}
}

// ToUserError converts a TimeParseError to a UserError for consistent handling.
func (e *TimeParseError) ToUserError() *errors.UserError {
	suggestion := e.Suggestion
	if len(e.Examples) > 0 && suggestion == "" {
		suggestion = fmt.Sprintf("Try: %s", strings.Join(e.Examples[:min(3, len(e.Examples))], ", "))
	}

	return errors.NewUserErrorWithField(e.Field, e.Input, e.Message, suggestion).
		WithCause(errors.ErrInvalidTarget)
}
