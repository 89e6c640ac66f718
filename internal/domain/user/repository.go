package user

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("user not found")

type Repository interface {
	CreateUser(ctx context.Context, u User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (User, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdateUser(ctx context.Context, u User) error

	// UpdateLoginState persists only the lockout counters and last-login
	// timestamp, so a failed attempt never touches profile fields.
	UpdateLoginState(ctx context.Context, id uuid.UUID, attempts int, lockUntil, lastLogin *time.Time) error

	UpdateSkills(ctx context.Context, id uuid.UUID, skills []string) error

	ListUsers(ctx context.Context) ([]User, error)
	ListPendingApprovals(ctx context.Context) ([]User, error)
	SetApproval(ctx context.Context, id uuid.UUID, role, status string) (User, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) (User, error)
}
