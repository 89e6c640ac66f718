package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/help-yourself-test/help-yourself/internal/domain/account"
	"github.com/help-yourself-test/help-yourself/internal/domain/user"
)

func pendingAdminRequest() user.User {
	return user.User{
		ID:                  uuid.New(),
		FirstName:           "Ada",
		Email:               "ada@example.com",
		Role:                account.RoleJobSeeker,
		RequestedRole:       account.RoleAdmin,
		AdminApprovalStatus: account.ApprovalPending,
		IsActive:            true,
	}
}

func TestAdmin_DecideApproval_Approve(t *testing.T) {
	req := pendingAdminRequest()
	repo := newMockUserRepo(req)
	uc := NewAdminUsecase(repo, nil)

	updated, err := uc.DecideApproval(context.Background(), req.ID, true)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if updated.Role != account.RoleAdmin {
		t.Fatalf("expected admin role granted, got %q", updated.Role)
	}
	if updated.AdminApprovalStatus != account.ApprovalApproved {
		t.Fatalf("expected approved status, got %q", updated.AdminApprovalStatus)
	}
}

func TestAdmin_DecideApproval_RejectKeepsRole(t *testing.T) {
	req := pendingAdminRequest()
	repo := newMockUserRepo(req)
	uc := NewAdminUsecase(repo, nil)

	updated, err := uc.DecideApproval(context.Background(), req.ID, false)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if updated.Role != account.RoleJobSeeker {
		t.Fatalf("rejection must not change role, got %q", updated.Role)
	}
	if updated.AdminApprovalStatus != account.ApprovalRejected {
		t.Fatalf("expected rejected status, got %q", updated.AdminApprovalStatus)
	}
}

func TestAdmin_DecideApproval_NoPendingRequest(t *testing.T) {
	plain := user.User{ID: uuid.New(), Email: "dana@example.com", Role: account.RoleJobSeeker, IsActive: true}
	uc := NewAdminUsecase(newMockUserRepo(plain), nil)

	if _, err := uc.DecideApproval(context.Background(), plain.ID, true); !errors.Is(err, ErrNoPendingApproval) {
		t.Fatalf("expected ErrNoPendingApproval, got %v", err)
	}
	if _, err := uc.DecideApproval(context.Background(), uuid.New(), true); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAdmin_UserStatus_AccumulatesReasons(t *testing.T) {
	until := time.Now().Add(time.Hour)
	u := user.User{
		ID:                  uuid.New(),
		Email:               "ada@example.com",
		Role:                account.RoleAdmin,
		AdminApprovalStatus: account.ApprovalPending,
		IsActive:            false,
		LoginAttempts:       account.MaxLoginAttempts,
		LockUntil:           &until,
	}
	uc := NewAdminUsecase(newMockUserRepo(u), nil)

	status, err := uc.UserStatus(context.Background(), u.Email)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if status.Decision.Allowed {
		t.Fatalf("expected login denied")
	}
	want := []string{
		account.ReasonAdminNotApproved,
		account.ReasonAccountLocked,
		account.ReasonAccountDeactivated,
	}
	if len(status.Decision.Reasons) != len(want) {
		t.Fatalf("expected reasons %v, got %v", want, status.Decision.Reasons)
	}
	for i, r := range want {
		if status.Decision.Reasons[i] != r {
			t.Fatalf("reason %d: expected %q, got %q", i, r, status.Decision.Reasons[i])
		}
	}
	if !status.Locked {
		t.Fatalf("expected locked flag set")
	}
	if status.User.PasswordHash != "" {
		t.Fatalf("expected password hash stripped")
	}
}

func TestAdmin_UserStatus_HealthyAccount(t *testing.T) {
	u := user.User{ID: uuid.New(), Email: "dana@example.com", Role: account.RoleJobSeeker, IsActive: true}
	uc := NewAdminUsecase(newMockUserRepo(u), nil)

	status, err := uc.UserStatus(context.Background(), u.Email)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !status.Decision.Allowed || len(status.Decision.Reasons) != 0 {
		t.Fatalf("expected clean decision, got %+v", status.Decision)
	}
}

func TestAdmin_SetUserActive(t *testing.T) {
	u := user.User{ID: uuid.New(), Email: "dana@example.com", IsActive: true}
	repo := newMockUserRepo(u)
	uc := NewAdminUsecase(repo, nil)

	updated, err := uc.SetUserActive(context.Background(), u.ID, false)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if updated.IsActive {
		t.Fatalf("expected deactivated user")
	}
	if repo.users[u.ID].IsActive {
		t.Fatalf("expected persisted deactivation")
	}
}
