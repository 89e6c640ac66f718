package account

import (
	"testing"
	"time"
)

func TestRecordFailedAttempt_LocksAtThreshold(t *testing.T) {
	now := time.Now()
	s := State{Role: RoleUser, IsActive: true}

	for i := 0; i < MaxLoginAttempts-1; i++ {
		s = RecordFailedAttempt(s, now)
		if s.LockUntil != nil {
			t.Fatalf("locked early at attempt %d", i+1)
		}
	}

	s = RecordFailedAttempt(s, now)
	if s.LoginAttempts != MaxLoginAttempts {
		t.Fatalf("expected %d attempts, got %d", MaxLoginAttempts, s.LoginAttempts)
	}
	if s.LockUntil == nil {
		t.Fatalf("expected lock at threshold")
	}
	if !s.LockUntil.Equal(now.Add(LockDuration)) {
		t.Fatalf("expected lock until now+%s, got %v", LockDuration, s.LockUntil)
	}
}

func TestRecordFailedAttempt_NoExtensionWhileLocked(t *testing.T) {
	now := time.Now()
	s := State{Role: RoleUser, IsActive: true}
	for i := 0; i < MaxLoginAttempts; i++ {
		s = RecordFailedAttempt(s, now)
	}
	lockedUntil := *s.LockUntil

	s = RecordFailedAttempt(s, now.Add(time.Minute))
	if s.LoginAttempts != MaxLoginAttempts+1 {
		t.Fatalf("expected counter to keep incrementing, got %d", s.LoginAttempts)
	}
	if !s.LockUntil.Equal(lockedUntil) {
		t.Fatalf("lock was extended: %v -> %v", lockedUntil, s.LockUntil)
	}
}

func TestRecordFailedAttempt_ExpiredLockRestartsCounter(t *testing.T) {
	now := time.Now()
	expired := now.Add(-time.Minute)
	s := State{Role: RoleUser, IsActive: true, LoginAttempts: 7, LockUntil: &expired}

	s = RecordFailedAttempt(s, now)
	if s.LoginAttempts != 1 {
		t.Fatalf("expected counter restart at 1, got %d", s.LoginAttempts)
	}
	if s.LockUntil != nil {
		t.Fatalf("expected lock cleared, got %v", s.LockUntil)
	}
}

func TestRecordSuccessfulAttempt_ClearsEverything(t *testing.T) {
	now := time.Now()
	lockUntil := now.Add(time.Hour)
	s := State{Role: RoleUser, IsActive: true, LoginAttempts: 3, LockUntil: &lockUntil}

	s = RecordSuccessfulAttempt(s)
	if s.LoginAttempts != 0 || s.LockUntil != nil {
		t.Fatalf("expected cleared state, got attempts=%d lock=%v", s.LoginAttempts, s.LockUntil)
	}
}
