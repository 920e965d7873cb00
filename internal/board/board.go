// Package board manages the set of live countdown timers.
//
// A Board owns the timer collection and is the only writer to it. One shared
// Tick recomputes every running timer; the view and the headless watcher both
// drive the same Board.
package board

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/manav03panchal/countdown/internal/errors"
	"github.com/manav03panchal/countdown/internal/logging"
	"github.com/manav03panchal/countdown/internal/model"
	"github.com/manav03panchal/countdown/internal/parser"
	"github.com/manav03panchal/countdown/internal/storage"
	"github.com/manav03panchal/countdown/internal/timer"
	"github.com/manav03panchal/countdown/internal/validate"
)

// Board holds the timer collection.
type Board struct {
	mu     sync.Mutex
	repo   *storage.TimerRepo
	now    func() time.Time
	logger *slog.Logger
}

// Option configures a Board.
type Option func(*Board)

// WithClock replaces the wall clock. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(b *Board) {
		b.now = now
	}
}

// WithLogger sets the logger used for board events.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Board) {
		b.logger = logger
	}
}

// New creates a Board over the given repository.
func New(repo *storage.TimerRepo, opts ...Option) *Board {
	b := &Board{
		repo:   repo,
		now:    time.Now,
		logger: logging.Logger(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Now returns the board's current time.
func (b *Board) Now() time.Time {
	return b.now()
}

// Add creates a running timer from raw form values.
//
// If any value is blank the collection is left unchanged and an error wrapping
// ErrIncompleteInput is returned. The view treats that case as a no-op.
func (b *Board) Add(title, category, target string) (*model.Timer, error) {
	if !validate.Complete(title, category, target) {
		return nil, errors.NewUserError("Title, category and target are required",
			"Fill in every field before adding a timer").WithCause(errors.ErrIncompleteInput)
	}

	title = validate.SanitizeTitle(title)
	if err := validate.Title(title); err != nil {
		return nil, err
	}
	category = strings.TrimSpace(category)
	if err := validate.Category(category); err != nil {
		return nil, err
	}

	now := b.now()
	logging.LogOperation(b.logger, "add", "target", target)
	at, err := parser.ParseTarget(target, now)
	if err != nil {
		if pe, ok := err.(*parser.TimeParseError); ok {
			return nil, pe.ToUserError()
		}
		return nil, err
	}

	t := &model.Timer{
		Title:         title,
		Category:      category,
		Target:        at,
		TimeRemaining: timer.SecondsRemaining(at, now),
		IsRunning:     true,
		CreatedAt:     now,
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.repo.Create(t); err != nil {
		return nil, errors.NewSystemErrorWithOp("add", "failed to store timer", err)
	}

	b.logger.Info("timer added",
		logging.KeyTimerID, t.ID,
		logging.KeyCategory, t.Category,
		logging.KeyRemaining, t.TimeRemaining)

	return t, nil
}

// Remove deletes the timer with the given id. It reports false when no such
// timer exists. Removal here is unconditional; the view applies CanRemove.
func (b *Board) Remove(id uint64) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	logging.LogOperation(b.logger, "remove", logging.KeyTimerID, id)
	removed, err := b.repo.Delete(id)
	if err != nil {
		return false, errors.NewSystemErrorWithOp("remove", "failed to delete timer", err)
	}
	if removed {
		b.logger.Info("timer removed", logging.KeyTimerID, id)
	}
	return removed, nil
}

// Tick recomputes every running timer against the current time in a single
// transaction. A timer that reaches zero stops running. Tick returns the
// timers that finished during this call.
func (b *Board) Tick() ([]model.Timer, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	var finished []model.Timer
	running := 0

	err := b.repo.UpdateEach(func(t *model.Timer) bool {
		if !t.IsRunning {
			return false
		}
		remaining := timer.SecondsRemaining(t.Target, now)
		changed := remaining != t.TimeRemaining
		t.TimeRemaining = remaining
		if remaining == 0 {
			t.IsRunning = false
			finished = append(finished, *t)
			return true
		}
		running++
		return changed
	})
	if err != nil {
		return nil, errors.NewSystemErrorWithOp("tick", "failed to update timers", err)
	}

	for _, t := range finished {
		b.logger.Info("timer finished", logging.KeyTimerID, t.ID, logging.KeyCategory, t.Category)
	}
	logging.LogOperation(b.logger, "tick", logging.KeyCount, running)

	return finished, nil
}

// Snapshot returns every timer in creation order.
func (b *Board) Snapshot() ([]model.Timer, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	list, err := b.repo.List()
	if err != nil {
		return nil, errors.NewSystemErrorWithOp("snapshot", "failed to list timers", err)
	}

	timers := make([]model.Timer, 0, len(list))
	for _, t := range list {
		timers = append(timers, *t)
	}
	return timers, nil
}

// Len returns the number of timers held.
func (b *Board) Len() (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	n, err := b.repo.Count()
	if err != nil {
		return 0, errors.NewSystemErrorWithOp("count", "failed to count timers", err)
	}
	return n, nil
}

// Running returns how many timers are still counting down.
func (b *Board) Running() (int, error) {
	timers, err := b.Snapshot()
	if err != nil {
		return 0, err
	}
	n := 0
	for _, t := range timers {
		if t.IsRunning {
			n++
		}
	}
	return n, nil
}

// Get returns the timer with the given id, or ErrTimerNotFound.
func (b *Board) Get(id uint64) (*model.Timer, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	t, err := b.repo.Get(id)
	if err != nil {
		if storage.IsErrKeyNotFound(err) {
			return nil, errors.ErrTimerNotFound
		}
		return nil, errors.NewSystemErrorWithOp("get", "failed to read timer", err)
	}
	return t, nil
}
