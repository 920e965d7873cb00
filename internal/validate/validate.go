// Package validate provides input validation helpers for the Countdown CLI.
package validate

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/manav03panchal/countdown/internal/errors"
)

// MaxTitleLength is the maximum length for a timer title.
const MaxTitleLength = 200

// MaxCategoryLength is the maximum length for a category label.
const MaxCategoryLength = 64

// Complete reports whether all form fields carry a non-blank value.
func Complete(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

// Title validates a timer title.
func Title(title string) error {
	if strings.TrimSpace(title) == "" {
		return errors.NewUserError("Title cannot be empty", "Provide a title for the timer").
			WithCause(errors.ErrIncompleteInput)
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return errors.NewUserError(
			"Title too long",
			"Titles must be 200 characters or fewer").
			WithCause(errors.ErrTitleTooLong)
	}
	return nil
}

// Category validates a category label. Unknown labels are allowed.
func Category(category string) error {
	if strings.TrimSpace(category) == "" {
		return errors.NewUserError("Category cannot be empty", "Pick a category such as Meeting").
			WithCause(errors.ErrIncompleteInput)
	}
	if utf8.RuneCountInString(category) > MaxCategoryLength {
		return errors.NewUserErrorWithField("category", category,
			"Category too long",
			"Categories must be 64 characters or fewer")
	}
	return nil
}

// HexColor validates a hex color code.
func HexColor(color string) error {
	if color == "" {
		return nil // Empty is allowed (no color)
	}
	if !strings.HasPrefix(color, "#") {
		return errors.NewUserErrorWithField("color", color,
			"Invalid color format",
			"Use hex format like '#FF5733' or '#00FF00'").WithCause(errors.ErrInvalidColor)
	}
	hex := strings.TrimPrefix(color, "#")
	if len(hex) != 6 {
		return errors.NewUserErrorWithField("color", color,
			"Invalid color format",
			"Use 6-digit hex format like '#FF5733'").WithCause(errors.ErrInvalidColor)
	}
	for _, c := range hex {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')) {
			return errors.NewUserErrorWithField("color", color,
				"Invalid hex character in color",
				"Use only hex digits (0-9, A-F)").WithCause(errors.ErrInvalidColor)
		}
	}
	return nil
}

// NonEmpty validates that a string is not empty.
func NonEmpty(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.NewUserError(
			field+" cannot be empty",
			"Provide a value for "+field).WithCause(errors.ErrIncompleteInput)
	}
	return nil
}

// SanitizeTitle trims whitespace and removes control characters.
func SanitizeTitle(title string) string {
	title = strings.TrimSpace(title)

	var sb strings.Builder
	for _, r := range title {
		if !unicode.IsControl(r) {
			sb.WriteRune(r)
		}
	}

	return sb.String()
}
