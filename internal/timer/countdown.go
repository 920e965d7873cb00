// Package timer provides the countdown arithmetic and plain-text card
// rendering for Countdown.
package timer

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/manav03panchal/countdown/internal/model"
)

// Seconds per unit.
const (
	SecondsPerMinute = 60
	SecondsPerHour   = 3600
	SecondsPerDay    = 86400
)

// SecondsRemaining returns the whole seconds from now until target, floored
// at zero.
func SecondsRemaining(target, now time.Time) int64 {
	diff := target.UnixMilli() - now.UnixMilli()
	if diff <= 0 {
		return 0
	}
	return diff / 1000
}

// Parts is a duration split into calendar-free units.
type Parts struct {
	Days    int64 `json:"days"`
	Hours   int64 `json:"hours"`
	Minutes int64 `json:"minutes"`
	Seconds int64 `json:"seconds"`
}

// Total reconstructs the number of seconds the parts represent.
func (p Parts) Total() int64 {
	return p.Days*SecondsPerDay + p.Hours*SecondsPerHour + p.Minutes*SecondsPerMinute + p.Seconds
}

// Decompose splits totalSeconds into days, hours, minutes and seconds.
// Negative input is treated as zero.
func Decompose(totalSeconds int64) Parts {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	return Parts{
		Days:    totalSeconds / SecondsPerDay,
		Hours:   (totalSeconds % SecondsPerDay) / SecondsPerHour,
		Minutes: (totalSeconds % SecondsPerHour) / SecondsPerMinute,
		Seconds: totalSeconds % SecondsPerMinute,
	}
}

// FormatParts formats parts as HH:MM:SS, prefixed with "Nd " when days > 0.
func FormatParts(p Parts) string {
	clock := fmt.Sprintf("%02d:%02d:%02d", p.Hours, p.Minutes, p.Seconds)
	if p.Days > 0 {
		return fmt.Sprintf("%dd %s", p.Days, clock)
	}
	return clock
}

// FormatRemaining formats a number of seconds via Decompose and FormatParts.
func FormatRemaining(seconds int64) string {
	return FormatParts(Decompose(seconds))
}

// CardDisplay renders timers as text cards for non-interactive output.
type CardDisplay struct {
	Writer     io.Writer
	UseColor   bool
	Width      int
	Categories model.CategoryTable
}

// NewCardDisplay creates a new card display writing to stdout.
func NewCardDisplay(categories model.CategoryTable) *CardDisplay {
	return &CardDisplay{
		Writer:     os.Stdout,
		UseColor:   true,
		Width:      80,
		Categories: categories,
	}
}

// Styles for card display.
var (
	cardTitleStyle = lipgloss.NewStyle().
			Bold(true)

	blockStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F9FAFB"))

	unitStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280")) // Gray

	doneStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("#6B7280")) // Gray
)

// Block is one labeled unit shown on a card.
type Block struct {
	Value int64
	Unit  string
}

// Blocks returns the unit blocks for a card. Days appear only when > 0.
func Blocks(p Parts) []Block {
	var blocks []Block
	if p.Days > 0 {
		blocks = append(blocks, Block{Value: p.Days, Unit: "days"})
	}
	return append(blocks,
		Block{Value: p.Hours, Unit: "hours"},
		Block{Value: p.Minutes, Unit: "minutes"},
		Block{Value: p.Seconds, Unit: "seconds"},
	)
}

// RenderCard renders a single timer card.
func (cd *CardDisplay) RenderCard(t model.Timer) string {
	var sb strings.Builder

	color := cd.Categories.Lookup(t.Category)
	title := t.Title
	category := "[" + t.Category + "]"
	if cd.UseColor {
		titleStyle := cardTitleStyle
		if color != "" {
			titleStyle = titleStyle.Foreground(lipgloss.Color(color))
		}
		title = titleStyle.Render(title)
		category = unitStyle.Render(category)
	}
	sb.WriteString(fmt.Sprintf("#%d %s %s\n", t.ID, title, category))

	var cells []string
	for _, b := range Blocks(Decompose(t.TimeRemaining)) {
		value := fmt.Sprintf("%2d", b.Value)
		unit := b.Unit
		if cd.UseColor {
			value = blockStyle.Render(value)
			unit = unitStyle.Render(unit)
		}
		cells = append(cells, value+" "+unit)
	}
	sb.WriteString("   ")
	sb.WriteString(strings.Join(cells, "  "))

	if !t.IsRunning {
		status := "  (done)"
		if cd.UseColor {
			status = doneStyle.Render(status)
		}
		sb.WriteString(status)
	}

	return sb.String()
}

// RenderBoard renders every timer card separated by a rule sized to Width.
func (cd *CardDisplay) RenderBoard(timers []model.Timer) string {
	if len(timers) == 0 {
		return "No timers.\n"
	}

	width := cd.Width
	if width <= 0 || width > 80 {
		width = 80
	}
	rule := strings.Repeat("─", width)
	if cd.UseColor {
		rule = unitStyle.Render(rule)
	}

	var sb strings.Builder
	for _, t := range timers {
		sb.WriteString(cd.RenderCard(t))
		sb.WriteString("\n")
		sb.WriteString(rule)
		sb.WriteString("\n")
	}
	return sb.String()
}

// ClearScreen clears the terminal screen.
func (cd *CardDisplay) ClearScreen() {
	fmt.Fprint(cd.Writer, "\033[H\033[2J")
}

// Print writes the rendered board to the display writer.
func (cd *CardDisplay) Print(timers []model.Timer) {
	fmt.Fprint(cd.Writer, cd.RenderBoard(timers))
}
