package service

import "time"

const (
	// MaxFailedLogins consecutive failures lock the account.
	MaxFailedLogins = 5
	// LockoutWindow is the fixed cool-down after the lockout triggers.
	LockoutWindow = 15 * time.Minute
)

// IsLocked reports whether the account is inside its cool-down window.
func IsLocked(lockedUntil *time.Time, now time.Time) bool {
	return lockedUntil != nil && now.Before(*lockedUntil)
}

// NextLockoutState returns the failure counter and lock timestamp after one
// more failed attempt. The counter resets when the lock triggers so the
// next window starts clean.
func NextLockoutState(failedLogins int, now time.Time) (int, *time.Time) {
	failedLogins++
	if failedLogins >= MaxFailedLogins {
		until := now.Add(LockoutWindow)
		return 0, &until
	}
	return failedLogins, nil
}
