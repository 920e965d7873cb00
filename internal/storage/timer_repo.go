package storage

import (
	"time"

	"github.com/manav03panchal/countdown/internal/model"
)

// TimerRepo provides operations for Timer entities.
type TimerRepo struct {
	db *DB
}

// NewTimerRepo creates a new timer repository.
func NewTimerRepo(db *DB) *TimerRepo {
	return &TimerRepo{db: db}
}

func newTimer() *model.Timer {
	return &model.Timer{}
}

// Create assigns the next sequence id and stores the timer.
func (r *TimerRepo) Create(timer *model.Timer) error {
	id, err := r.db.NextID()
	if err != nil {
		return err
	}
	timer.ID = id
	timer.Key = model.GenerateTimerKey(id)
	if timer.CreatedAt.IsZero() {
		timer.CreatedAt = time.Now()
	}
	return r.db.Set(timer)
}

// Get retrieves a timer by id.
func (r *TimerRepo) Get(id uint64) (*model.Timer, error) {
	timer := newTimer()
	if err := r.db.Get(model.GenerateTimerKey(id), timer); err != nil {
		return nil, err
	}
	return timer, nil
}

// List retrieves all timers in creation order.
func (r *TimerRepo) List() ([]*model.Timer, error) {
	return GetAllByPrefix(r.db, model.PrefixTimer+":", newTimer)
}

// Count returns the number of stored timers.
func (r *TimerRepo) Count() (int, error) {
	keys, err := r.db.ListByPrefix(model.PrefixTimer + ":")
	return len(keys), err
}

// Delete removes a timer by id and reports whether it existed.
func (r *TimerRepo) Delete(id uint64) (bool, error) {
	return r.db.Delete(model.GenerateTimerKey(id))
}

// UpdateEach applies fn to every timer in one transaction. Timers for which
// fn returns true are written back.
func (r *TimerRepo) UpdateEach(fn func(*model.Timer) bool) error {
	return UpdateAllByPrefix(r.db, model.PrefixTimer+":", newTimer, fn)
}
