package output

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/countdown/internal/model"
	"github.com/manav03panchal/countdown/internal/timer"
)

// Styles for CLI output.
var (
	colorPrimary = lipgloss.Color("#7C3AED") // Purple
	colorMuted   = lipgloss.Color("#6B7280") // Gray
	colorWarning = lipgloss.Color("#F59E0B") // Yellow
	colorSuccess = lipgloss.Color("#10B981") // Green

	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorWarning)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleBold = lipgloss.NewStyle().
			Bold(true)
)

// CLIFormatter provides CLI-specific formatting.
type CLIFormatter struct {
	*Formatter
}

// NewCLIFormatter creates a new CLI formatter.
func NewCLIFormatter(f *Formatter) *CLIFormatter {
	return &CLIFormatter{Formatter: f}
}

func (c *CLIFormatter) render(style lipgloss.Style, text string) string {
	if c.IsColorEnabled() {
		return style.Render(text)
	}
	return text
}

// Title prints a title.
func (c *CLIFormatter) Title(text string) {
	c.Println(c.render(styleTitle, text))
}

// Success prints a success message.
func (c *CLIFormatter) Success(text string) {
	c.Println(c.render(styleSuccess, "✓ "+text))
}

// Warning prints a warning message.
func (c *CLIFormatter) Warning(text string) {
	c.Println(c.render(styleWarning, "⚠ "+text))
}

// Muted prints muted text.
func (c *CLIFormatter) Muted(text string) {
	c.Println(c.render(styleMuted, text))
}

// CategoryName renders a category label in its table color.
func (c *CLIFormatter) CategoryName(name, color string) string {
	if color == "" || !c.IsColorEnabled() {
		return name
	}
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(color)).Render(name)
}

// PrintCategories prints the category table with swatches.
func (c *CLIFormatter) PrintCategories(table model.CategoryTable) {
	if len(table) == 0 {
		c.Muted("No categories configured.")
		return
	}

	c.Title("Categories")
	rows := make([]TableRow, 0, len(table))
	for _, cat := range table {
		color := cat.Color
		if color == "" {
			color = "(default)"
		}
		rows = append(rows, TableRow{Columns: []string{c.CategoryName(cat.Name, cat.Color), color}})
	}
	c.PrintTable([]string{"NAME", "COLOR"}, rows)
}

// PrintSplit prints a seconds count broken into days, hours, minutes and seconds.
func (c *CLIFormatter) PrintSplit(seconds int64) {
	p := timer.Decompose(seconds)
	if c.Format == FormatPlain {
		c.Printf("%d %d %d %d\n", p.Days, p.Hours, p.Minutes, p.Seconds)
		return
	}
	c.Printf("%s = %s\n", c.render(styleBold, strconv.FormatInt(seconds, 10)+"s"), timer.FormatParts(p))
	c.Muted(fmt.Sprintf("%d days, %d hours, %d minutes, %d seconds", p.Days, p.Hours, p.Minutes, p.Seconds))
}

// PrintTimers prints a one-shot table of timers.
func (c *CLIFormatter) PrintTimers(timers []model.Timer, categories model.CategoryTable, now time.Time) {
	if len(timers) == 0 {
		c.Muted("No timers.")
		return
	}

	rows := make([]TableRow, 0, len(timers))
	for _, t := range timers {
		status := "running"
		if !t.IsRunning {
			status = "done"
		}
		rows = append(rows, TableRow{Columns: []string{
			strconv.FormatUint(t.ID, 10),
			t.Title,
			c.CategoryName(t.Category, categories.Lookup(t.Category)),
			timer.FormatRemaining(t.TimeRemaining),
			FormatTarget(t.Target),
			FormatRelative(t.Target, now),
			ProgressBar(Elapsed(t, now), 10),
			status,
		}})
	}
	c.PrintTable([]string{"ID", "TITLE", "CATEGORY", "REMAINING", "TARGET", "WHEN", "PROGRESS", "STATUS"}, rows)
}

// Elapsed returns how much of a timer's span has passed, as a percentage.
func Elapsed(t model.Timer, now time.Time) float64 {
	span := t.Target.Sub(t.CreatedAt)
	if span <= 0 || t.TimeRemaining == 0 {
		return 100
	}
	return float64(now.Sub(t.CreatedAt)) / float64(span) * 100
}

// ProgressBar creates a simple progress bar.
func ProgressBar(percentage float64, width int) string {
	if percentage > 100 {
		percentage = 100
	}
	if percentage < 0 {
		percentage = 0
	}

	filled := int(float64(width) * percentage / 100)
	empty := width - filled

	return strings.Repeat("█", filled) + strings.Repeat("░", empty)
}

// TableRow is one row for PrintTable.
type TableRow struct {
	Columns []string
}

// PrintTable prints a simple table.
func (c *CLIFormatter) PrintTable(headers []string, rows []TableRow) {
	if len(rows) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, col := range row.Columns {
			if i < len(widths) && lipgloss.Width(col) > widths[i] {
				widths[i] = lipgloss.Width(col)
			}
		}
	}

	pad := func(s string, w int) string {
		return s + strings.Repeat(" ", w-lipgloss.Width(s)) + "  "
	}

	var headerLine strings.Builder
	for i, h := range headers {
		headerLine.WriteString(pad(h, widths[i]))
	}
	c.Println(c.render(styleBold, strings.TrimRight(headerLine.String(), " ")))

	var sep strings.Builder
	for _, w := range widths {
		sep.WriteString(strings.Repeat("─", w) + "  ")
	}
	c.Println(strings.TrimRight(sep.String(), " "))

	for _, row := range rows {
		var rowLine strings.Builder
		for i, col := range row.Columns {
			if i < len(widths) {
				rowLine.WriteString(pad(col, widths[i]))
			}
		}
		c.Println(strings.TrimRight(rowLine.String(), " "))
	}
}
