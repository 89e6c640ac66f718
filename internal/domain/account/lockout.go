package account

import "time"

// RecordFailedAttempt returns the state after one failed login.
//
// Transitions:
//   - a lock that has already expired restarts the counter at 1 and
//     clears the lock;
//   - otherwise the counter increments, and reaching MaxLoginAttempts
//     while unlocked sets LockUntil to now + LockDuration.
//
// A failure while a lock is still active increments the counter but does
// not extend LockUntil.
func RecordFailedAttempt(s State, now time.Time) State {
	if s.LockUntil != nil && s.LockUntil.Before(now) {
		s.LoginAttempts = 1
		s.LockUntil = nil
		return s
	}

	alreadyLocked := s.Locked(now)
	s.LoginAttempts++

	if s.LoginAttempts >= MaxLoginAttempts && !alreadyLocked {
		until := now.Add(LockDuration)
		s.LockUntil = &until
	}
	return s
}

// RecordSuccessfulAttempt clears the failure counter and any lock.
func RecordSuccessfulAttempt(s State) State {
	s.LoginAttempts = 0
	s.LockUntil = nil
	return s
}
