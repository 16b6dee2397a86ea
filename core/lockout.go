// Login lockout state machine. Pure time arithmetic; the persisted
// attempt counter lives on the user document and the service layer does
// the reads and writes.
package core

import "time"

const (
	// LockoutThreshold is the number of failed attempts that locks an account.
	LockoutThreshold = 5

	// LockoutWindow is how long an account stays locked, measured from the
	// last failed attempt.
	LockoutWindow = 30 * time.Minute
)

// LockoutState classifies an account's attempt counter at a point in time.
type LockoutState int

const (
	// LockoutOpen: under the threshold, the password may be checked.
	LockoutOpen LockoutState = iota
	// LockoutActive: at or over the threshold and still inside the window.
	LockoutActive
	// LockoutExpired: at or over the threshold but the window has passed;
	// the counter must be reset before the password is checked.
	LockoutExpired
)

// LockoutDecision is the result of evaluating an account's lockout state.
type LockoutDecision struct {
	State LockoutState
	// RemainingMinutes is the cooldown left, rounded up to whole minutes.
	// Only meaningful when State is LockoutActive.
	RemainingMinutes int
}

// EvaluateLockout decides whether a login attempt may proceed.
// attempts is the persisted failed-attempt count, lastAttempt the persisted
// timestamp of the most recent attempt (zero time means never).
func EvaluateLockout(attempts int, lastAttempt time.Time, now time.Time) LockoutDecision {
	if attempts < LockoutThreshold {
		return LockoutDecision{State: LockoutOpen}
	}

	lockoutEnd := lastAttempt.Add(LockoutWindow)
	if now.Before(lockoutEnd) {
		remaining := lockoutEnd.Sub(now)
		// Ceiling in whole minutes so "29m01s left" reports 30.
		mins := int((remaining + time.Minute - 1) / time.Minute)
		return LockoutDecision{State: LockoutActive, RemainingMinutes: mins}
	}
	return LockoutDecision{State: LockoutExpired}
}
