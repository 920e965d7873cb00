package board

import "github.com/manav03panchal/countdown/internal/model"

// RemovalPolicy controls when the view offers the remove action.
type RemovalPolicy struct {
	// AllowWhileRunning enables removal before the countdown reaches zero.
	AllowWhileRunning bool
}

// CanRemove reports whether the remove action is enabled for t.
// By default only timers with no time left can be removed.
func CanRemove(t model.Timer, policy RemovalPolicy) bool {
	return policy.AllowWhileRunning || t.IsFinished()
}
