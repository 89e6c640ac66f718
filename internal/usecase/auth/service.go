// Package auth implements registration and credential verification,
// including the failed-attempt lockout and the admin approval workflow.
package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/help-yourself-test/help-yourself/internal/domain/account"
	"github.com/help-yourself-test/help-yourself/internal/domain/user"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidInput           = errors.New("invalid input")
	ErrInvalidRole            = errors.New("invalid role")
	ErrAccountLocked          = errors.New(account.ReasonAccountLocked)
	ErrAccountDeactivated     = errors.New(account.ReasonAccountDeactivated)
	ErrAdminRoleRequired      = errors.New(account.ReasonAdminRoleRequired)
	ErrAdminNotApproved       = errors.New(account.ReasonAdminNotApproved)
	ErrInternal               = errors.New("internal error")
)

type RegisterInput struct {
	FirstName   string
	LastName    string
	Email       string
	Password    string
	PhoneNumber string
	Role        string
	Skills      []string
}

type LoginInput struct {
	Email    string
	Password string
	// Role is the portal the user is signing in to. Only "admin" changes
	// the outcome: it adds the admin role and approval gates.
	Role string
}

type Service struct {
	users user.Repository
	now   func() time.Time
}

func NewService(users user.Repository) *Service {
	return &Service{users: users, now: time.Now}
}

// Register creates an account. Requesting the admin role does not grant
// it: the account is created as a job seeker with a pending admin
// approval request that an existing admin must decide.
func (s *Service) Register(ctx context.Context, in RegisterInput) (user.User, error) {
	email := normalizeEmail(in.Email)
	if email == "" || strings.TrimSpace(in.FirstName) == "" {
		return user.User{}, ErrInvalidInput
	}
	if len(strings.TrimSpace(in.Password)) < 8 {
		return user.User{}, ErrInvalidInput
	}

	role := strings.TrimSpace(strings.ToLower(in.Role))
	if role == "" {
		role = account.RoleJobSeeker
	}
	if !account.ValidRole(role) {
		return user.User{}, ErrInvalidRole
	}

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return user.User{}, ErrInternal
	}
	if exists {
		return user.User{}, ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, ErrInternal
	}

	u := user.User{
		ID:           uuid.New(),
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Email:        email,
		PasswordHash: string(hash),
		PhoneNumber:  strings.TrimSpace(in.PhoneNumber),
		Role:         role,
		IsActive:     true,
		Skills:       cleanSkills(in.Skills),
	}
	if role == account.RoleAdmin {
		u.Role = account.RoleJobSeeker
		u.RequestedRole = account.RoleAdmin
		u.AdminApprovalStatus = account.ApprovalPending
	}

	if err := s.users.CreateUser(ctx, u); err != nil {
		exists, exErr := s.users.ExistsByEmail(ctx, email)
		if exErr == nil && exists {
			return user.User{}, ErrEmailAlreadyRegistered
		}
		return user.User{}, ErrInternal
	}

	created, err := s.users.GetUserByID(ctx, u.ID)
	if err != nil {
		return user.User{}, ErrInternal
	}
	return sanitizeUser(created), nil
}

// Login verifies credentials behind the account gates. The gates run
// before the password check so a locked or deactivated account learns
// nothing about whether the password was right. A wrong password counts
// toward the lockout threshold; a right one resets it.
func (s *Service) Login(ctx context.Context, in LoginInput) (user.User, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return user.User{}, ErrInvalidCredentials
	}

	u, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrInvalidCredentials
		}
		return user.User{}, ErrInternal
	}

	now := s.now()
	decision := account.CanLogin(u.AccountState(), strings.TrimSpace(strings.ToLower(in.Role)), now)
	if !decision.Allowed {
		return user.User{}, gateError(decision.Reasons[0])
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		next := account.RecordFailedAttempt(u.AccountState(), now)
		if perr := s.users.UpdateLoginState(ctx, u.ID, next.LoginAttempts, next.LockUntil, nil); perr != nil {
			return user.User{}, ErrInternal
		}
		if next.Locked(now) {
			return user.User{}, ErrAccountLocked
		}
		return user.User{}, ErrInvalidCredentials
	}

	next := account.RecordSuccessfulAttempt(u.AccountState())
	lastLogin := now
	if err := s.users.UpdateLoginState(ctx, u.ID, next.LoginAttempts, next.LockUntil, &lastLogin); err != nil {
		return user.User{}, ErrInternal
	}

	u.ApplyAccountState(next)
	u.LastLogin = &lastLogin
	return sanitizeUser(u), nil
}

func gateError(reason string) error {
	switch reason {
	case account.ReasonAdminRoleRequired:
		return ErrAdminRoleRequired
	case account.ReasonAdminNotApproved:
		return ErrAdminNotApproved
	case account.ReasonAccountLocked:
		return ErrAccountLocked
	case account.ReasonAccountDeactivated:
		return ErrAccountDeactivated
	default:
		return ErrInvalidCredentials
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func cleanSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

func sanitizeUser(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
