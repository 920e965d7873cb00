package model

import (
	"fmt"
	"time"
)

// Timer is a single named countdown toward a target instant.
type Timer struct {
	Key           string    `json:"key"`
	ID            uint64    `json:"id"`
	Title         string    `json:"title"`
	Category      string    `json:"category"`
	Target        time.Time `json:"target"`
	TimeRemaining int64     `json:"time_remaining"` // seconds, never negative
	IsRunning     bool      `json:"is_running"`
	CreatedAt     time.Time `json:"created_at"`
}

// SetKey sets the database key for this timer.
func (t *Timer) SetKey(key string) {
	t.Key = key
}

// GetKey returns the database key for this timer.
func (t *Timer) GetKey() string {
	return t.Key
}

// IsFinished returns true once the countdown has reached zero.
func (t *Timer) IsFinished() bool {
	return t.TimeRemaining == 0
}

// GenerateTimerKey returns the database key for a timer id.
// Ids are zero-padded so lexical key order matches creation order.
func GenerateTimerKey(id uint64) string {
	return fmt.Sprintf("%s:%020d", PrefixTimer, id)
}
