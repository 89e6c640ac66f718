package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/help-yourself-test/help-yourself/internal/domain/account"
	"github.com/help-yourself-test/help-yourself/internal/domain/user"
)

type mockUserRepo struct {
	users map[uuid.UUID]user.User
	err   error
}

func newMockUserRepo(seed ...user.User) *mockUserRepo {
	m := &mockUserRepo{users: make(map[uuid.UUID]user.User)}
	for _, u := range seed {
		m.users[u.ID] = u
	}
	return m
}

func (m *mockUserRepo) CreateUser(_ context.Context, u user.User) error {
	if m.err != nil {
		return m.err
	}
	m.users[u.ID] = u
	return nil
}

func (m *mockUserRepo) GetUserByID(_ context.Context, id uuid.UUID) (user.User, error) {
	if m.err != nil {
		return user.User{}, m.err
	}
	u, ok := m.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetUserByEmail(_ context.Context, email string) (user.User, error) {
	if m.err != nil {
		return user.User{}, m.err
	}
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, err := m.GetUserByEmail(ctx, email)
	if errors.Is(err, user.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (m *mockUserRepo) UpdateUser(_ context.Context, u user.User) error {
	if _, ok := m.users[u.ID]; !ok {
		return user.ErrNotFound
	}
	m.users[u.ID] = u
	return nil
}

func (m *mockUserRepo) UpdateLoginState(_ context.Context, id uuid.UUID, attempts int, lockUntil, lastLogin *time.Time) error {
	u, ok := m.users[id]
	if !ok {
		return user.ErrNotFound
	}
	u.LoginAttempts = attempts
	u.LockUntil = lockUntil
	if lastLogin != nil {
		u.LastLogin = lastLogin
	}
	m.users[id] = u
	return nil
}

func (m *mockUserRepo) UpdateSkills(_ context.Context, id uuid.UUID, skills []string) error {
	u, ok := m.users[id]
	if !ok {
		return user.ErrNotFound
	}
	u.Skills = skills
	m.users[id] = u
	return nil
}

func (m *mockUserRepo) ListUsers(context.Context) ([]user.User, error) {
	out := make([]user.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}

func (m *mockUserRepo) ListPendingApprovals(context.Context) ([]user.User, error) {
	out := make([]user.User, 0)
	for _, u := range m.users {
		if u.AdminApprovalStatus == account.ApprovalPending {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *mockUserRepo) SetApproval(_ context.Context, id uuid.UUID, role, status string) (user.User, error) {
	u, ok := m.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	u.Role = role
	u.AdminApprovalStatus = status
	m.users[id] = u
	return u, nil
}

func (m *mockUserRepo) SetActive(_ context.Context, id uuid.UUID, active bool) (user.User, error) {
	u, ok := m.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	u.IsActive = active
	m.users[id] = u
	return u, nil
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return string(h)
}

func seedUser(t *testing.T, password string) user.User {
	t.Helper()
	return user.User{
		ID:           uuid.New(),
		FirstName:    "Dana",
		Email:        "dana@example.com",
		PasswordHash: hashOf(t, password),
		Role:         account.RoleJobSeeker,
		IsActive:     true,
	}
}

func serviceAt(repo user.Repository, now time.Time) *Service {
	s := NewService(repo)
	s.now = func() time.Time { return now }
	return s
}

func TestRegister_DefaultRoleIsJobSeeker(t *testing.T) {
	repo := newMockUserRepo()
	s := NewService(repo)

	u, err := s.Register(context.Background(), RegisterInput{
		FirstName: "Dana",
		Email:     "Dana@Example.com",
		Password:  "s3cretpass",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if u.Email != "dana@example.com" {
		t.Fatalf("expected normalized email, got %q", u.Email)
	}
	if u.Role != account.RoleJobSeeker {
		t.Fatalf("expected job-seeker role, got %q", u.Role)
	}
	if u.PasswordHash != "" {
		t.Fatalf("expected password hash stripped from result")
	}
}

func TestRegister_AdminRequestStaysPending(t *testing.T) {
	repo := newMockUserRepo()
	s := NewService(repo)

	u, err := s.Register(context.Background(), RegisterInput{
		FirstName: "Ada",
		Email:     "ada@example.com",
		Password:  "s3cretpass",
		Role:      account.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if u.Role != account.RoleJobSeeker {
		t.Fatalf("admin must not be granted at registration, got role %q", u.Role)
	}
	if u.RequestedRole != account.RoleAdmin {
		t.Fatalf("expected requested_role=admin, got %q", u.RequestedRole)
	}
	if u.AdminApprovalStatus != account.ApprovalPending {
		t.Fatalf("expected pending approval, got %q", u.AdminApprovalStatus)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	existing := seedUser(t, "s3cretpass")
	repo := newMockUserRepo(existing)
	s := NewService(repo)

	_, err := s.Register(context.Background(), RegisterInput{
		FirstName: "Other",
		Email:     existing.Email,
		Password:  "s3cretpass",
	})
	if !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestRegister_ShortPassword(t *testing.T) {
	s := NewService(newMockUserRepo())
	_, err := s.Register(context.Background(), RegisterInput{
		FirstName: "Dana",
		Email:     "dana@example.com",
		Password:  "short",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestLogin_Success_ResetsCounterAndSetsLastLogin(t *testing.T) {
	u := seedUser(t, "s3cretpass")
	u.LoginAttempts = 3
	repo := newMockUserRepo(u)
	now := time.Now()
	s := serviceAt(repo, now)

	got, err := s.Login(context.Background(), LoginInput{Email: u.Email, Password: "s3cretpass"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.LoginAttempts != 0 {
		t.Fatalf("expected attempts reset, got %d", got.LoginAttempts)
	}
	stored := repo.users[u.ID]
	if stored.LoginAttempts != 0 || stored.LockUntil != nil {
		t.Fatalf("expected persisted reset, got attempts=%d lock=%v", stored.LoginAttempts, stored.LockUntil)
	}
	if stored.LastLogin == nil || !stored.LastLogin.Equal(now) {
		t.Fatalf("expected last_login=%v, got %v", now, stored.LastLogin)
	}
}

func TestLogin_WrongPassword_CountsTowardLockout(t *testing.T) {
	u := seedUser(t, "s3cretpass")
	repo := newMockUserRepo(u)
	now := time.Now()
	s := serviceAt(repo, now)

	for i := 1; i <= account.MaxLoginAttempts-1; i++ {
		_, err := s.Login(context.Background(), LoginInput{Email: u.Email, Password: "wrong"})
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("attempt %d: expected ErrInvalidCredentials, got %v", i, err)
		}
		if got := repo.users[u.ID].LoginAttempts; got != i {
			t.Fatalf("attempt %d: expected %d persisted attempts, got %d", i, i, got)
		}
	}

	// The fifth failure locks for the full duration.
	_, err := s.Login(context.Background(), LoginInput{Email: u.Email, Password: "wrong"})
	if !errors.Is(err, ErrAccountLocked) {
		t.Fatalf("expected ErrAccountLocked on threshold, got %v", err)
	}
	stored := repo.users[u.ID]
	if stored.LockUntil == nil || !stored.LockUntil.Equal(now.Add(account.LockDuration)) {
		t.Fatalf("expected lock until %v, got %v", now.Add(account.LockDuration), stored.LockUntil)
	}
}

func TestLogin_LockedAccountRejectedBeforePasswordCheck(t *testing.T) {
	u := seedUser(t, "s3cretpass")
	until := time.Now().Add(time.Hour)
	u.LoginAttempts = account.MaxLoginAttempts
	u.LockUntil = &until
	repo := newMockUserRepo(u)
	s := NewService(repo)

	// Even the correct password is rejected while locked.
	_, err := s.Login(context.Background(), LoginInput{Email: u.Email, Password: "s3cretpass"})
	if !errors.Is(err, ErrAccountLocked) {
		t.Fatalf("expected ErrAccountLocked, got %v", err)
	}
}

func TestLogin_ExpiredLockIsIgnored(t *testing.T) {
	u := seedUser(t, "s3cretpass")
	until := time.Now().Add(-time.Minute)
	u.LoginAttempts = account.MaxLoginAttempts
	u.LockUntil = &until
	repo := newMockUserRepo(u)
	s := NewService(repo)

	got, err := s.Login(context.Background(), LoginInput{Email: u.Email, Password: "s3cretpass"})
	if err != nil {
		t.Fatalf("expected login after lock expiry, got %v", err)
	}
	if got.LockUntil != nil || got.LoginAttempts != 0 {
		t.Fatalf("expected cleared lock state, got attempts=%d lock=%v", got.LoginAttempts, got.LockUntil)
	}
}

func TestLogin_DeactivatedAccount(t *testing.T) {
	u := seedUser(t, "s3cretpass")
	u.IsActive = false
	repo := newMockUserRepo(u)
	s := NewService(repo)

	_, err := s.Login(context.Background(), LoginInput{Email: u.Email, Password: "s3cretpass"})
	if !errors.Is(err, ErrAccountDeactivated) {
		t.Fatalf("expected ErrAccountDeactivated, got %v", err)
	}
}

func TestLogin_AdminPortalGates(t *testing.T) {
	seeker := seedUser(t, "s3cretpass")

	unapproved := seedUser(t, "s3cretpass")
	unapproved.ID = uuid.New()
	unapproved.Email = "admin@example.com"
	unapproved.Role = account.RoleAdmin
	unapproved.AdminApprovalStatus = account.ApprovalPending

	repo := newMockUserRepo(seeker, unapproved)
	s := NewService(repo)

	_, err := s.Login(context.Background(), LoginInput{Email: seeker.Email, Password: "s3cretpass", Role: account.RoleAdmin})
	if !errors.Is(err, ErrAdminRoleRequired) {
		t.Fatalf("expected ErrAdminRoleRequired, got %v", err)
	}

	_, err = s.Login(context.Background(), LoginInput{Email: unapproved.Email, Password: "s3cretpass", Role: account.RoleAdmin})
	if !errors.Is(err, ErrAdminNotApproved) {
		t.Fatalf("expected ErrAdminNotApproved, got %v", err)
	}

	// The same accounts may still use the regular portal.
	if _, err := s.Login(context.Background(), LoginInput{Email: seeker.Email, Password: "s3cretpass"}); err != nil {
		t.Fatalf("regular login should pass, got %v", err)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	s := NewService(newMockUserRepo())
	_, err := s.Login(context.Background(), LoginInput{Email: "nobody@example.com", Password: "whatever"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
