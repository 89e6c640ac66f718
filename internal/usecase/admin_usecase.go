package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/help-yourself-test/help-yourself/internal/domain/account"
	"github.com/help-yourself-test/help-yourself/internal/domain/user"
	"github.com/help-yourself-test/help-yourself/internal/ws"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrNoPendingApproval = errors.New("no pending admin approval request")
)

// UserStatus is the diagnostic view of one account: the raw attributes
// plus the login decision the auth service would make right now.
type UserStatus struct {
	User     user.User        `json:"user"`
	Decision account.Decision `json:"decision"`
	Locked   bool             `json:"locked"`
}

type AdminUsecase interface {
	ListUsers(ctx context.Context) ([]user.User, error)
	PendingApprovals(ctx context.Context) ([]user.User, error)
	DecideApproval(ctx context.Context, id uuid.UUID, approve bool) (user.User, error)
	SetUserActive(ctx context.Context, id uuid.UUID, active bool) (user.User, error)
	UserStatus(ctx context.Context, email string) (UserStatus, error)
}

type Admin struct {
	users  user.Repository
	logger *log.Logger
	now    func() time.Time
}

func NewAdminUsecase(users user.Repository, logger *log.Logger) *Admin {
	return &Admin{users: users, logger: logger, now: time.Now}
}

func (u *Admin) ListUsers(ctx context.Context) ([]user.User, error) {
	list, err := u.users.ListUsers(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return sanitizeUsers(list), nil
}

func (u *Admin) PendingApprovals(ctx context.Context) ([]user.User, error) {
	list, err := u.users.ListPendingApprovals(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return sanitizeUsers(list), nil
}

// DecideApproval resolves a pending admin role request. Approval grants
// the admin role; rejection keeps the current role and only marks the
// request rejected.
func (u *Admin) DecideApproval(ctx context.Context, id uuid.UUID, approve bool) (user.User, error) {
	if id == uuid.Nil {
		return user.User{}, ErrUserNotFound
	}

	target, err := u.users.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrUserNotFound
		}
		return user.User{}, ErrInternal
	}
	if target.RequestedRole != account.RoleAdmin || target.AdminApprovalStatus != account.ApprovalPending {
		return user.User{}, ErrNoPendingApproval
	}

	role := target.Role
	status := account.ApprovalRejected
	if approve {
		role = account.RoleAdmin
		status = account.ApprovalApproved
	}

	updated, err := u.users.SetApproval(ctx, id, role, status)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrUserNotFound
		}
		return user.User{}, ErrInternal
	}

	if u.logger != nil {
		u.logger.Printf("admin | approval decided user=%s approve=%t", id, approve)
	}
	ws.NotifyApprovalDecided(updated, approve)
	return sanitizeUser(updated), nil
}

func (u *Admin) SetUserActive(ctx context.Context, id uuid.UUID, active bool) (user.User, error) {
	if id == uuid.Nil {
		return user.User{}, ErrUserNotFound
	}

	updated, err := u.users.SetActive(ctx, id, active)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrUserNotFound
		}
		return user.User{}, ErrInternal
	}
	if u.logger != nil {
		u.logger.Printf("admin | active flag set user=%s active=%t", id, active)
	}
	return sanitizeUser(updated), nil
}

// UserStatus answers "why can't this person log in" without attempting a
// login. The decision accumulates every violated gate, evaluated for the
// user's own role.
func (u *Admin) UserStatus(ctx context.Context, email string) (UserStatus, error) {
	usr, err := u.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return UserStatus{}, ErrUserNotFound
		}
		return UserStatus{}, ErrInternal
	}

	now := u.now()
	state := usr.AccountState()
	return UserStatus{
		User:     sanitizeUser(usr),
		Decision: account.CanLogin(state, usr.Role, now),
		Locked:   state.Locked(now),
	}, nil
}

func sanitizeUser(u user.User) user.User {
	u.PasswordHash = ""
	return u
}

func sanitizeUsers(list []user.User) []user.User {
	out := make([]user.User, 0, len(list))
	for _, u := range list {
		out = append(out, sanitizeUser(u))
	}
	return out
}
