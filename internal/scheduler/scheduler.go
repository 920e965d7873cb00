// Package scheduler drives the shared countdown tick for headless mode.
//
// A single cron entry fires every interval and runs one job. All timers are
// recomputed by that one job, never by a per-timer schedule.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/manav03panchal/countdown/internal/logging"
)

// Scheduler runs one job on a fixed interval using cron.
type Scheduler struct {
	mu       sync.Mutex
	cron     *cron.Cron
	entry    cron.EntryID
	interval time.Duration
	debug    bool
	logger   *slog.Logger
}

// NewScheduler creates a scheduler for the given tick interval.
// Cron rounds intervals below one second up to one second.
func NewScheduler(interval time.Duration) *Scheduler {
	return &Scheduler{
		interval: interval,
		logger:   logging.Logger(),
	}
}

// SetDebug enables debug logging of each schedule change.
func (s *Scheduler) SetDebug(debug bool) {
	s.debug = debug
}

// Interval returns the configured tick interval.
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Start schedules job every interval. A previous schedule is stopped first,
// so at most one tick entry exists. A tick that is still running when the
// next one fires is skipped.
func (s *Scheduler) Start(job func()) error {
	if s.interval <= 0 {
		return fmt.Errorf("tick interval must be positive, got %v", s.interval)
	}

	s.Stop()

	s.mu.Lock()
	defer s.mu.Unlock()

	c := cron.New(
		cron.WithSeconds(),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)
	id, err := c.AddFunc("@every "+s.interval.String(), job)
	if err != nil {
		return fmt.Errorf("failed to add tick: %w", err)
	}
	c.Start()

	s.cron = c
	s.entry = id

	if s.debug {
		s.logger.Debug("scheduler started", logging.KeyOperation, "tick", "interval", s.interval.String())
	}
	return nil
}

// Stop removes the schedule and waits for a running job to finish.
// It is safe to call when nothing is scheduled.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	c := s.cron
	s.cron = nil
	s.entry = 0
	s.mu.Unlock()

	if c == nil {
		return
	}
	ctx := c.Stop()
	<-ctx.Done()

	if s.debug {
		s.logger.Debug("scheduler stopped")
	}
}

// Run starts job and blocks until ctx is cancelled, then stops.
func (s *Scheduler) Run(ctx context.Context, job func()) error {
	if err := s.Start(job); err != nil {
		return err
	}
	<-ctx.Done()
	s.Stop()
	return nil
}

// Entries returns the active cron entries.
func (s *Scheduler) Entries() []cron.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron == nil {
		return nil
	}
	return s.cron.Entries()
}
