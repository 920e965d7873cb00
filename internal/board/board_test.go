package board

import (
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/countdown/internal/errors"
	"github.com/manav03panchal/countdown/internal/model"
	"github.com/manav03panchal/countdown/internal/storage"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func setupBoard(t *testing.T) (*Board, *fakeClock) {
	t.Helper()
	db, err := storage.Open(storage.Options{})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	clock := &fakeClock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	b := New(storage.NewTimerRepo(db),
		WithClock(clock.Now),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	return b, clock
}

func mustLen(t *testing.T, b *Board) int {
	t.Helper()
	n, err := b.Len()
	require.NoError(t, err)
	return n
}

// =============================================================================
// Add Tests
// =============================================================================

func TestAddIncompleteInput(t *testing.T) {
	b, _ := setupBoard(t)

	tests := []struct {
		name                     string
		title, category, target string
	}{
		{"empty_title", "", "Meeting", "+5m"},
		{"blank_title", "   ", "Meeting", "+5m"},
		{"empty_category", "Call", "", "+5m"},
		{"empty_target", "Call", "Meeting", ""},
		{"all_empty", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := b.Add(tt.title, tt.category, tt.target)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, errors.ErrIncompleteInput)
			assert.Equal(t, 0, mustLen(t, b))
		})
	}
}

func TestAddCreatesRunningTimer(t *testing.T) {
	b, clock := setupBoard(t)

	got, err := b.Add("  Call ", "Meeting", "+5s")
	require.NoError(t, err)

	assert.Equal(t, uint64(1), got.ID)
	assert.Equal(t, "Call", got.Title)
	assert.Equal(t, "Meeting", got.Category)
	assert.Equal(t, clock.Now().Add(5*time.Second), got.Target)
	assert.Equal(t, int64(5), got.TimeRemaining)
	assert.True(t, got.IsRunning)
	assert.Equal(t, 1, mustLen(t, b))

	stored, err := b.Get(got.ID)
	require.NoError(t, err)
	assert.Equal(t, got.Title, stored.Title)
}

func TestAddDateTimeLocal(t *testing.T) {
	b, _ := setupBoard(t)

	got, err := b.Add("Party", "Birthday", "2026-03-02T12:00")
	require.NoError(t, err)
	assert.Equal(t, int64(86400), got.TimeRemaining)
}

func TestAddRejectsBadInput(t *testing.T) {
	b, _ := setupBoard(t)

	t.Run("invalid_target", func(t *testing.T) {
		_, err := b.Add("Call", "Meeting", "+5x")
		assert.ErrorIs(t, err, errors.ErrInvalidTarget)
		assert.True(t, errors.IsUserError(err))
	})

	t.Run("title_too_long", func(t *testing.T) {
		_, err := b.Add(strings.Repeat("a", 201), "Meeting", "+5m")
		assert.ErrorIs(t, err, errors.ErrTitleTooLong)
	})

	assert.Equal(t, 0, mustLen(t, b))
}

func TestAddPastTarget(t *testing.T) {
	b, _ := setupBoard(t)

	got, err := b.Add("Missed", "Reminder", "2020-01-01T00:00")
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.TimeRemaining)
	assert.True(t, got.IsRunning)

	finished, err := b.Tick()
	require.NoError(t, err)
	require.Len(t, finished, 1)
	assert.Equal(t, got.ID, finished[0].ID)
	assert.False(t, finished[0].IsRunning)
}

func TestAddUnknownCategory(t *testing.T) {
	b, _ := setupBoard(t)

	got, err := b.Add("Lunch", "Food", "+1h")
	require.NoError(t, err)
	assert.Equal(t, "Food", got.Category)
}

// =============================================================================
// Tick Tests
// =============================================================================

func TestTickScenario(t *testing.T) {
	b, clock := setupBoard(t)

	added, err := b.Add("Call", "Meeting", "+5s")
	require.NoError(t, err)

	for want := int64(4); want > 0; want-- {
		clock.Advance(time.Second)
		finished, err := b.Tick()
		require.NoError(t, err)
		assert.Empty(t, finished)

		got, err := b.Get(added.ID)
		require.NoError(t, err)
		assert.Equal(t, want, got.TimeRemaining)
		assert.True(t, got.IsRunning)
	}

	clock.Advance(time.Second)
	finished, err := b.Tick()
	require.NoError(t, err)
	require.Len(t, finished, 1)
	assert.Equal(t, "Call", finished[0].Title)

	got, err := b.Get(added.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.TimeRemaining)
	assert.False(t, got.IsRunning)
	assert.True(t, CanRemove(*got, RemovalPolicy{}))
}

func TestTickAfterFinishIsNoop(t *testing.T) {
	b, clock := setupBoard(t)

	_, err := b.Add("Call", "Meeting", "+1s")
	require.NoError(t, err)

	clock.Advance(2 * time.Second)
	finished, err := b.Tick()
	require.NoError(t, err)
	require.Len(t, finished, 1)

	before, err := b.Snapshot()
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		clock.Advance(time.Second)
		finished, err := b.Tick()
		require.NoError(t, err)
		assert.Empty(t, finished)
	}

	after, err := b.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestTickNeverIncreases(t *testing.T) {
	b, clock := setupBoard(t)

	_, err := b.Add("A", "Meeting", "+10s")
	require.NoError(t, err)
	_, err = b.Add("B", "Birthday", "+3s")
	require.NoError(t, err)

	prev := map[uint64]int64{}
	for i := 0; i < 15; i++ {
		clock.Advance(700 * time.Millisecond)
		_, err := b.Tick()
		require.NoError(t, err)

		timers, err := b.Snapshot()
		require.NoError(t, err)
		for _, tm := range timers {
			assert.GreaterOrEqual(t, tm.TimeRemaining, int64(0))
			if p, ok := prev[tm.ID]; ok {
				assert.LessOrEqual(t, tm.TimeRemaining, p)
			}
			prev[tm.ID] = tm.TimeRemaining
		}
	}

	running, err := b.Running()
	require.NoError(t, err)
	assert.Equal(t, 0, running)
}

func TestTickEmptyBoard(t *testing.T) {
	b, _ := setupBoard(t)

	finished, err := b.Tick()
	require.NoError(t, err)
	assert.Empty(t, finished)
}

// =============================================================================
// Remove Tests
// =============================================================================

func TestRemoveKeepsOthers(t *testing.T) {
	b, _ := setupBoard(t)

	a, err := b.Add("A", "Meeting", "+1m")
	require.NoError(t, err)
	mid, err := b.Add("B", "Birthday", "+2m")
	require.NoError(t, err)
	c, err := b.Add("C", "Reminder", "+3m")
	require.NoError(t, err)

	removed, err := b.Remove(mid.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	timers, err := b.Snapshot()
	require.NoError(t, err)
	require.Len(t, timers, 2)
	assert.Equal(t, *a, timers[0])
	assert.Equal(t, *c, timers[1])

	d, err := b.Add("D", "Meeting", "+4m")
	require.NoError(t, err)
	assert.Equal(t, uint64(4), d.ID, "ids are never reused")
}

func TestRemoveAbsent(t *testing.T) {
	b, _ := setupBoard(t)

	_, err := b.Add("A", "Meeting", "+1m")
	require.NoError(t, err)

	removed, err := b.Remove(99)
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Equal(t, 1, mustLen(t, b))
}

func TestRemoveWhileRunning(t *testing.T) {
	b, _ := setupBoard(t)

	a, err := b.Add("A", "Meeting", "+1h")
	require.NoError(t, err)

	removed, err := b.Remove(a.ID)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, 0, mustLen(t, b))
}

func TestBoardLogsOperations(t *testing.T) {
	db, err := storage.Open(storage.Options{})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	var logs strings.Builder
	clock := &fakeClock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	b := New(storage.NewTimerRepo(db),
		WithClock(clock.Now),
		WithLogger(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))))

	tm, err := b.Add("A", "Meeting", "+1s")
	require.NoError(t, err)
	clock.Advance(time.Second)
	_, err = b.Tick()
	require.NoError(t, err)
	_, err = b.Remove(tm.ID)
	require.NoError(t, err)

	out := logs.String()
	assert.Contains(t, out, "op=add")
	assert.Contains(t, out, "op=tick")
	assert.Contains(t, out, "op=remove")
	assert.Contains(t, out, "timer finished")
}

func TestGetMissing(t *testing.T) {
	b, _ := setupBoard(t)

	_, err := b.Get(42)
	assert.ErrorIs(t, err, errors.ErrTimerNotFound)
}

// =============================================================================
// Gate and Seed Tests
// =============================================================================

func TestCanRemove(t *testing.T) {
	tests := []struct {
		name   string
		timer  model.Timer
		policy RemovalPolicy
		want   bool
	}{
		{"running_default", model.Timer{TimeRemaining: 10, IsRunning: true}, RemovalPolicy{}, false},
		{"zero_default", model.Timer{TimeRemaining: 0, IsRunning: true}, RemovalPolicy{}, true},
		{"finished_default", model.Timer{TimeRemaining: 0, IsRunning: false}, RemovalPolicy{}, true},
		{"running_allowed", model.Timer{TimeRemaining: 10, IsRunning: true}, RemovalPolicy{AllowWhileRunning: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanRemove(tt.timer, tt.policy))
		})
	}
}

func TestParseSpec(t *testing.T) {
	title, category, target, err := ParseSpec(" Call | Meeting | +5m ")
	require.NoError(t, err)
	assert.Equal(t, "Call", title)
	assert.Equal(t, "Meeting", category)
	assert.Equal(t, "+5m", target)

	for _, bad := range []string{"", "Call", "Call|Meeting", "a|b|c|d"} {
		_, _, _, err := ParseSpec(bad)
		assert.ErrorIs(t, err, errors.ErrInvalidSpec, bad)
	}
}

func TestSeed(t *testing.T) {
	b, _ := setupBoard(t)

	added, err := b.Seed([]string{"Call|Meeting|+5m", "Cake|Birthday|+1d"})
	require.NoError(t, err)
	require.Len(t, added, 2)
	assert.Equal(t, uint64(1), added[0].ID)
	assert.Equal(t, uint64(2), added[1].ID)

	added, err = b.Seed([]string{"Ok|Reminder|+1m", "broken", "Never|Meeting|+1m"})
	assert.ErrorIs(t, err, errors.ErrInvalidSpec)
	assert.Len(t, added, 1)
	assert.Equal(t, 3, mustLen(t, b))
}
