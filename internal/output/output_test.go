package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/countdown/internal/model"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func testTimers() []model.Timer {
	return []model.Timer{
		{
			ID: 1, Title: "Call", Category: "Meeting",
			Target: testNow.Add(5 * time.Minute), TimeRemaining: 300, IsRunning: true,
			CreatedAt: testNow,
		},
		{
			ID: 2, Title: "Cake", Category: "Food",
			Target: testNow.Add(-time.Hour), TimeRemaining: 0, IsRunning: false,
			CreatedAt: testNow.Add(-2 * time.Hour),
		},
	}
}

// =============================================================================
// Formatter Tests
// =============================================================================

func TestNewFormatter(t *testing.T) {
	f := NewFormatter()
	assert.NotNil(t, f)
	assert.Equal(t, FormatCLI, f.Format)
	assert.Equal(t, ColorAuto, f.ColorMode)
	assert.False(t, f.IsJSON())
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"cli", "json", "plain"} {
		f, err := ParseFormat(s)
		require.NoError(t, err)
		assert.Equal(t, Format(s), f)
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)

	m, err := ParseColorMode("never")
	require.NoError(t, err)
	assert.Equal(t, ColorNever, m)
	_, err = ParseColorMode("sometimes")
	assert.Error(t, err)
}

func TestFormatterIsColorEnabled(t *testing.T) {
	t.Run("color_always", func(t *testing.T) {
		f := &Formatter{ColorMode: ColorAlways}
		assert.True(t, f.IsColorEnabled())
	})

	t.Run("color_never", func(t *testing.T) {
		f := &Formatter{ColorMode: ColorNever}
		assert.False(t, f.IsColorEnabled())
	})

	t.Run("plain_disables_color", func(t *testing.T) {
		f := &Formatter{Format: FormatPlain, ColorMode: ColorAlways}
		assert.False(t, f.IsColorEnabled())
	})

	t.Run("color_auto_non_terminal", func(t *testing.T) {
		var buf bytes.Buffer
		f := &Formatter{Writer: &buf, ColorMode: ColorAuto}
		assert.False(t, f.IsColorEnabled())
	})
}

func TestFormatterPrint(t *testing.T) {
	var buf bytes.Buffer
	f := &Formatter{Writer: &buf}

	f.Print("a")
	f.Println("b")
	f.Printf("%d", 3)
	assert.Equal(t, "ab\n3", buf.String())
}

func TestFormatTarget(t *testing.T) {
	assert.Equal(t, "2026-12-24 18:00:00", FormatTarget(time.Date(2026, 12, 24, 18, 0, 0, 0, time.Local)))
}

func TestFormatRelative(t *testing.T) {
	assert.Equal(t, "3 days from now", FormatRelative(testNow.Add(72*time.Hour), testNow))
	assert.Equal(t, "5 minutes from now", FormatRelative(testNow.Add(5*time.Minute), testNow))
	assert.Equal(t, "2 hours ago", FormatRelative(testNow.Add(-2*time.Hour), testNow))
}

// =============================================================================
// CLI Formatter Tests
// =============================================================================

func newTestCLI(format Format) (*CLIFormatter, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewCLIFormatter(&Formatter{Writer: &buf, Format: format, ColorMode: ColorNever}), &buf
}

func TestCLIMessages(t *testing.T) {
	cli, buf := newTestCLI(FormatCLI)

	cli.Success("added")
	cli.Warning("careful")
	cli.Muted("quiet")
	cli.Title("Heading")

	assert.Equal(t, "✓ added\n⚠ careful\nquiet\nHeading\n", buf.String())
}

func TestCategoryName(t *testing.T) {
	cli, _ := newTestCLI(FormatCLI)
	assert.Equal(t, "Meeting", cli.CategoryName("Meeting", "#3B82F6"))
	assert.Equal(t, "Holiday", cli.CategoryName("Holiday", ""))

	colored := NewCLIFormatter(&Formatter{Writer: &bytes.Buffer{}, Format: FormatCLI, ColorMode: ColorAlways})
	assert.Contains(t, colored.CategoryName("Meeting", "#3B82F6"), "Meeting")
}

func TestCLIPrintCategories(t *testing.T) {
	cli, buf := newTestCLI(FormatCLI)

	cli.PrintCategories(model.CategoryTable{
		{Name: "Meeting", Color: "#3B82F6"},
		{Name: "Other"},
	})

	out := buf.String()
	assert.Contains(t, out, "Categories")
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "Meeting  #3B82F6")
	assert.Contains(t, out, "(default)")

	buf.Reset()
	cli.PrintCategories(nil)
	assert.Equal(t, "No categories configured.\n", buf.String())
}

func TestCLIPrintSplit(t *testing.T) {
	t.Run("cli", func(t *testing.T) {
		cli, buf := newTestCLI(FormatCLI)
		cli.PrintSplit(90061)
		assert.Equal(t, "90061s = 1d 01:01:01\n1 days, 1 hours, 1 minutes, 1 seconds\n", buf.String())
	})

	t.Run("plain", func(t *testing.T) {
		cli, buf := newTestCLI(FormatPlain)
		cli.PrintSplit(3661)
		assert.Equal(t, "0 1 1 1\n", buf.String())
	})
}

func TestCLIPrintTimers(t *testing.T) {
	cli, buf := newTestCLI(FormatCLI)

	cli.PrintTimers(testTimers(), model.DefaultCategories(), testNow)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.Contains(t, lines[2], "Call")
	assert.Contains(t, lines[2], "00:05:00")
	assert.Contains(t, lines[2], FormatTarget(testNow.Add(5*time.Minute)))
	assert.Contains(t, lines[2], "5 minutes from now")
	assert.Contains(t, lines[2], "running")
	assert.Contains(t, lines[3], "done")
	assert.Contains(t, lines[3], "██████████")

	buf.Reset()
	cli.PrintTimers(nil, nil, testNow)
	assert.Equal(t, "No timers.\n", buf.String())
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "░░░░", ProgressBar(0, 4))
	assert.Equal(t, "██░░", ProgressBar(50, 4))
	assert.Equal(t, "████", ProgressBar(150, 4))
	assert.Equal(t, "░░░░", ProgressBar(-5, 4))
}

func TestElapsed(t *testing.T) {
	tm := model.Timer{CreatedAt: testNow, Target: testNow.Add(10 * time.Second), TimeRemaining: 5}
	assert.InDelta(t, 50.0, Elapsed(tm, testNow.Add(5*time.Second)), 0.001)

	tm.TimeRemaining = 0
	assert.Equal(t, 100.0, Elapsed(tm, testNow))
}

// =============================================================================
// JSON Formatter Tests
// =============================================================================

func newTestJSON() (*JSONFormatter, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewJSONFormatter(&Formatter{Writer: &buf, Format: FormatJSON}), &buf
}

func TestJSONPrintTimers(t *testing.T) {
	j, buf := newTestJSON()

	require.NoError(t, j.PrintTimers(testTimers(), model.DefaultCategories(), testNow))

	var resp TimersResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, 2, resp.TotalCount)
	assert.Equal(t, 1, resp.RunningCount)
	require.Len(t, resp.Timers, 2)

	call := resp.Timers[0]
	assert.Equal(t, uint64(1), call.ID)
	assert.Equal(t, "#3B82F6", call.Color)
	assert.Equal(t, int64(300), call.TimeRemaining)
	assert.Equal(t, PartsOutput{Minutes: 5}, call.Remaining)
	assert.Equal(t, "00:05:00", call.Display)
	assert.Equal(t, "5 minutes from now", call.TargetRelative)

	cake := resp.Timers[1]
	assert.Empty(t, cake.Color, "unknown category has no color")
	assert.False(t, cake.IsRunning)
}

func TestJSONPrintCategories(t *testing.T) {
	j, buf := newTestJSON()

	require.NoError(t, j.PrintCategories(nil))
	assert.JSONEq(t, `{"categories":[]}`, buf.String())

	buf.Reset()
	require.NoError(t, j.PrintCategories(model.CategoryTable{{Name: "Meeting", Color: "#3B82F6"}}))
	assert.JSONEq(t, `{"categories":[{"name":"Meeting","color":"#3B82F6"}]}`, buf.String())
}

func TestJSONPrintSplit(t *testing.T) {
	j, buf := newTestJSON()

	require.NoError(t, j.PrintSplit(90061))
	assert.JSONEq(t, `{
		"seconds": 90061,
		"parts": {"days": 1, "hours": 1, "minutes": 1, "seconds": 1},
		"display": "1d 01:01:01"
	}`, buf.String())
}

func TestJSONPrintError(t *testing.T) {
	j, buf := newTestJSON()

	require.NoError(t, j.PrintError("bad target", "try +5m"))
	assert.JSONEq(t, `{"status":"error","error":"bad target","suggestion":"try +5m"}`, buf.String())
}
