// Package account holds the pure login-eligibility and lockout rules for
// user accounts. The functions here evaluate snapshots and return new
// state; persistence belongs to the caller.
package account

import "time"

const (
	RoleUser      = "user"
	RoleJobSeeker = "job-seeker"
	RoleJobPoster = "job-poster"
	RoleAdmin     = "admin"
)

const (
	ApprovalPending  = "pending"
	ApprovalApproved = "approved"
	ApprovalRejected = "rejected"
)

const (
	// MaxLoginAttempts is the consecutive-failure count that locks an account.
	MaxLoginAttempts = 5
	// LockDuration is how long a lock lasts. Unlocking is purely
	// time-based; there is no explicit unlock.
	LockDuration = 2 * time.Hour
)

// State is a read-only snapshot of the account attributes that gate login.
type State struct {
	Role                string
	AdminApprovalStatus string
	IsActive            bool
	LoginAttempts       int
	LockUntil           *time.Time
}

// Locked reports whether the account is under an active time-based lock.
func (s State) Locked(now time.Time) bool {
	return s.LockUntil != nil && s.LockUntil.After(now)
}

// ValidRole reports whether r is one of the defined account roles.
func ValidRole(r string) bool {
	switch r {
	case RoleUser, RoleJobSeeker, RoleJobPoster, RoleAdmin:
		return true
	}
	return false
}
