// Package seeder bootstraps the first approved admin account so the
// approval workflow has an approver on a fresh database.
package seeder

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/help-yourself-test/help-yourself/internal/config"
	"github.com/help-yourself-test/help-yourself/internal/domain/account"
	"github.com/help-yourself-test/help-yourself/internal/domain/user"
)

var errWeakSeedPassword = errors.New("admin seed password too short")

// EnsureAdmin creates the configured admin account if it does not exist.
// A blank seed email disables seeding.
func EnsureAdmin(ctx context.Context, users user.Repository, cfg config.AdminSeedConfig, logger *log.Logger) error {
	email := strings.ToLower(strings.TrimSpace(cfg.Email))
	if email == "" {
		return nil
	}
	if len(strings.TrimSpace(cfg.Password)) < 8 {
		return errWeakSeedPassword
	}

	exists, err := users.ExistsByEmail(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), 12)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	u := user.User{
		ID:                  uuid.New(),
		FirstName:           orDefault(cfg.FirstName, "Admin"),
		LastName:            orDefault(cfg.LastName, "User"),
		Email:               email,
		PasswordHash:        string(hash),
		Role:                account.RoleAdmin,
		AdminApprovalStatus: account.ApprovalApproved,
		IsActive:            true,
		IsVerified:          true,
		Skills:              []string{},
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := users.CreateUser(ctx, u); err != nil {
		return err
	}
	if logger != nil {
		logger.Printf("seeder | admin account created email=%s", email)
	}
	return nil
}

func orDefault(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}
