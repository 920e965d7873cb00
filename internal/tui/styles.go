// Package tui provides the interactive terminal view for Countdown.
package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette for the view.
var (
	ColorPrimary = lipgloss.Color("#7C3AED") // Purple
	ColorMuted   = lipgloss.Color("#6B7280") // Gray
	ColorWarning = lipgloss.Color("#F59E0B") // Yellow
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorSuccess = lipgloss.Color("#10B981") // Green
	ColorBorder  = lipgloss.Color("#4B5563") // Dark gray
	ColorValue   = lipgloss.Color("#F9FAFB") // Near white
)

// Base styles for the view.
var (
	// StyleTitle is used for the header.
	StyleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// StyleSubtitle is used for the clock and secondary information.
	StyleSubtitle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	StyleWarning = lipgloss.NewStyle().
			Foreground(ColorWarning)

	StyleError = lipgloss.NewStyle().
			Foreground(ColorError)

	StyleSuccess = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// StyleHelp is used for help text at the bottom.
	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)
)

// Card styles.
var (
	// StyleCard is the frame around one timer. The border color is replaced
	// by the timer's category color.
	StyleCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	// StyleCardSelected marks the card under the cursor.
	StyleCardSelected = StyleCard.
				Border(lipgloss.ThickBorder())

	StyleCardTitle = lipgloss.NewStyle().
			Bold(true)

	// StyleBlock frames one unit value (days, hours, ...).
	StyleBlock = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorBorder).
			Width(9).
			Align(lipgloss.Center)

	StyleBlockValue = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorValue)

	StyleBlockUnit = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// StyleRemoveEnabled and StyleRemoveDisabled render the remove hint.
	StyleRemoveEnabled = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorError)

	StyleRemoveDisabled = lipgloss.NewStyle().
				Faint(true).
				Strikethrough(true).
				Foreground(ColorMuted)

	StyleDone = lipgloss.NewStyle().
			Italic(true).
			Foreground(ColorSuccess)
)

// CategoryColor returns the color for a category, or the border color when
// the category has none.
func CategoryColor(color string) lipgloss.TerminalColor {
	if color == "" {
		return ColorBorder
	}
	return lipgloss.Color(color)
}
