// Package parser turns user-entered target date/times into instants.
package parser

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"
)

// Layouts accepted before falling back to natural language. The first entry
// is the format produced by HTML datetime-local pickers.
var targetLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// relativeRegex matches relative time expressions like "+5m", "+1h", "+2d".
var relativeRegex = regexp.MustCompile(`^\+(\d+)([smhdw])$`)

// bareNumberRegex matches input with no unit or date separator. Such input
// is rejected; dateparser would read "5" as a day of the current month.
var bareNumberRegex = regexp.MustCompile(`^\d+$`)

// ParseTarget parses a target date/time relative to now.
//
// Accepted, in order: datetime-local style layouts in the local zone, RFC3339,
// relative offsets ("+30s", "+2d", "+1h30m"), then natural language via
// go-dateparser. Bare numbers are rejected. Past instants are accepted. Anything else yields a
// *TimeParseError.
func ParseTarget(input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, NewTargetError(input, "target is required")
	}

	for _, layout := range targetLayouts {
		if t, err := time.ParseInLocation(layout, input, now.Location()); err == nil {
			return t, nil
		}
	}
	if t, err := time.Parse(time.RFC3339, input); err == nil {
		return t, nil
	}

	if strings.HasPrefix(input, "+") {
		return parseRelative(input, now)
	}
	if bareNumberRegex.MatchString(input) {
		return time.Time{}, NewTargetError(input, "a bare number is not a date; use +N<unit> for an offset")
	}

	// Use go-dateparser for natural language parsing
	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}

	result, err := dateparser.Parse(cfg, input)
	if err != nil || result.Time.IsZero() {
		return time.Time{}, NewTargetError(input, "could not parse target")
	}

	return result.Time, nil
}

// parseRelative handles "+N<unit>" and compound Go durations like "+1h30m".
func parseRelative(input string, now time.Time) (time.Time, error) {
	if match := relativeRegex.FindStringSubmatch(input); match != nil {
		num, err := strconv.ParseInt(match[1], 10, 64)
		if err != nil {
			return time.Time{}, NewTargetError(input, "offset too large")
		}
		if num <= 0 {
			return time.Time{}, NewTargetError(input, "offset must be positive")
		}

		var unit time.Duration
		switch match[2] {
		case "s":
			unit = time.Second
		case "m":
			unit = time.Minute
		case "h":
			unit = time.Hour
		case "d":
			unit = 24 * time.Hour
		case "w":
			unit = 7 * 24 * time.Hour
		}
		if num > math.MaxInt64/int64(unit) {
			return time.Time{}, NewTargetError(input, "offset too large")
		}
		return now.Add(time.Duration(num) * unit), nil
	}

	d, err := time.ParseDuration(strings.TrimPrefix(input, "+"))
	if err != nil {
		return time.Time{}, NewTargetError(input, "could not parse offset")
	}
	if d <= 0 {
		return time.Time{}, NewTargetError(input, "offset must be positive")
	}
	return now.Add(d), nil
}

// FormatDateTimeLocal formats t in the datetime-local layout.
func FormatDateTimeLocal(t time.Time) string {
	return t.Format(targetLayouts[0])
}
