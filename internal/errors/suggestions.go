package errors

import "errors"

// Suggestions maps common errors to helpful suggestions.
var Suggestions = map[error]string{
	ErrIncompleteInput: "Provide a title, a category and a target date/time.",
	ErrInvalidTarget:   "Try formats like '2026-12-24T18:00', '+5m', 'tomorrow 9am' or 'friday 5pm'.",
	ErrTitleTooLong:    "Titles must be 200 characters or fewer.",
	ErrTimerNotFound:   "Use the timer number shown on its card.",
	ErrInvalidSpec:     "Use --timer 'Title|Category|Target', e.g. --timer 'Call|Meeting|+5m'.",
	ErrInvalidSeconds:  "Provide a non-negative whole number of seconds.",
	ErrInvalidColor:    "Use hex color format like '#FF5733' or '#00FF00'.",
}

// GetSuggestion returns a suggestion for an error, if available.
// UserError suggestions take precedence over the sentinel table.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}

	if ue, ok := AsUserError(err); ok && ue.Suggestion != "" {
		return ue.Suggestion
	}

	for knownErr, suggestion := range Suggestions {
		if errors.Is(err, knownErr) {
			return suggestion
		}
	}

	return ""
}

// FormatError formats an error with optional suggestion.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if suggestion := GetSuggestion(err); suggestion != "" {
		msg += "\n" + suggestion
	}
	return msg
}
