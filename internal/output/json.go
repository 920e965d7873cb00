package output

import (
	"time"

	"github.com/manav03panchal/countdown/internal/model"
	"github.com/manav03panchal/countdown/internal/timer"
)

// JSONFormatter provides JSON-specific formatting.
type JSONFormatter struct {
	*Formatter
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(f *Formatter) *JSONFormatter {
	return &JSONFormatter{Formatter: f}
}

// PartsOutput is a decomposed remaining time.
type PartsOutput struct {
	Days    int64 `json:"days"`
	Hours   int64 `json:"hours"`
	Minutes int64 `json:"minutes"`
	Seconds int64 `json:"seconds"`
}

// NewPartsOutput converts timer.Parts for JSON output.
func NewPartsOutput(p timer.Parts) PartsOutput {
	return PartsOutput{Days: p.Days, Hours: p.Hours, Minutes: p.Minutes, Seconds: p.Seconds}
}

// TimerOutput represents a timer in JSON output.
type TimerOutput struct {
	ID             uint64      `json:"id"`
	Title          string      `json:"title"`
	Category       string      `json:"category"`
	Color          string      `json:"color,omitempty"`
	Target         string      `json:"target"`
	TargetRelative string      `json:"target_relative"`
	TimeRemaining  int64       `json:"time_remaining"`
	Remaining      PartsOutput `json:"remaining"`
	Display        string      `json:"display"`
	IsRunning      bool        `json:"is_running"`
	CreatedAt      string      `json:"created_at"`
}

// NewTimerOutput creates a TimerOutput from a Timer.
func NewTimerOutput(t model.Timer, categories model.CategoryTable, now time.Time) *TimerOutput {
	parts := timer.Decompose(t.TimeRemaining)
	return &TimerOutput{
		ID:             t.ID,
		Title:          t.Title,
		Category:       t.Category,
		Color:          categories.Lookup(t.Category),
		Target:         t.Target.Format(time.RFC3339),
		TargetRelative: FormatRelative(t.Target, now),
		TimeRemaining:  t.TimeRemaining,
		Remaining:      NewPartsOutput(parts),
		Display:        timer.FormatParts(parts),
		IsRunning:      t.IsRunning,
		CreatedAt:      t.CreatedAt.Format(time.RFC3339),
	}
}

// TimersResponse represents a timer list in JSON.
type TimersResponse struct {
	Timers       []*TimerOutput `json:"timers"`
	TotalCount   int            `json:"total_count"`
	RunningCount int            `json:"running_count"`
}

// NewTimersResponse builds a TimersResponse.
func NewTimersResponse(timers []model.Timer, categories model.CategoryTable, now time.Time) *TimersResponse {
	resp := &TimersResponse{
		Timers:     make([]*TimerOutput, 0, len(timers)),
		TotalCount: len(timers),
	}
	for _, t := range timers {
		resp.Timers = append(resp.Timers, NewTimerOutput(t, categories, now))
		if t.IsRunning {
			resp.RunningCount++
		}
	}
	return resp
}

// CategoriesResponse represents the category table in JSON.
type CategoriesResponse struct {
	Categories []model.Category `json:"categories"`
}

// SplitResponse represents the split command output in JSON.
type SplitResponse struct {
	Seconds int64       `json:"seconds"`
	Parts   PartsOutput `json:"parts"`
	Display string      `json:"display"`
}

// ErrorResponse represents an error in JSON.
type ErrorResponse struct {
	Status     string `json:"status"`
	Error      string `json:"error"`
	Suggestion string `json:"suggestion,omitempty"`
}

// PrintTimers outputs timers as JSON.
func (j *JSONFormatter) PrintTimers(timers []model.Timer, categories model.CategoryTable, now time.Time) error {
	return j.JSON(NewTimersResponse(timers, categories, now))
}

// PrintCategories outputs the category table as JSON.
func (j *JSONFormatter) PrintCategories(table model.CategoryTable) error {
	cats := table
	if cats == nil {
		cats = model.CategoryTable{}
	}
	return j.JSON(CategoriesResponse{Categories: cats})
}

// PrintSplit outputs a decomposed seconds count as JSON.
func (j *JSONFormatter) PrintSplit(seconds int64) error {
	p := timer.Decompose(seconds)
	return j.JSON(SplitResponse{
		Seconds: p.Total(),
		Parts:   NewPartsOutput(p),
		Display: timer.FormatParts(p),
	})
}

// PrintError outputs an error as JSON.
func (j *JSONFormatter) PrintError(errMsg, suggestion string) error {
	return j.JSON(ErrorResponse{
		Status:     "error",
		Error:      errMsg,
		Suggestion: suggestion,
	})
}
