package user

import (
	"time"

	"github.com/google/uuid"

	"github.com/help-yourself-test/help-yourself/internal/domain/account"
)

type User struct {
	ID                  uuid.UUID  `json:"id"`
	FirstName           string     `json:"first_name"`
	LastName            string     `json:"last_name"`
	Email               string     `json:"email"`
	PasswordHash        string     `json:"-"`
	PhoneNumber         string     `json:"phone_number,omitempty"`
	Role                string     `json:"role"`
	RequestedRole       string     `json:"requested_role,omitempty"`
	AdminApprovalStatus string     `json:"admin_approval_status,omitempty"`
	IsActive            bool       `json:"is_active"`
	IsVerified          bool       `json:"is_verified"`
	Skills              []string   `json:"skills"`
	LastLogin           *time.Time `json:"last_login,omitempty"`
	LoginAttempts       int        `json:"-"`
	LockUntil           *time.Time `json:"-"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// AccountState projects the attributes the account rules evaluate.
func (u User) AccountState() account.State {
	return account.State{
		Role:                u.Role,
		AdminApprovalStatus: u.AdminApprovalStatus,
		IsActive:            u.IsActive,
		LoginAttempts:       u.LoginAttempts,
		LockUntil:           u.LockUntil,
	}
}

// ApplyAccountState writes a transitioned lockout state back onto the user.
func (u *User) ApplyAccountState(s account.State) {
	u.LoginAttempts = s.LoginAttempts
	u.LockUntil = s.LockUntil
}

func (u User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
