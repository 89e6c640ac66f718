package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/help-yourself-test/help-yourself/internal/domain/user"
)

type UpdateProfileInput struct {
	FirstName   string
	LastName    string
	PhoneNumber string
}

type UserUsecase interface {
	GetMe(ctx context.Context, id uuid.UUID) (user.User, error)
	UpdateMe(ctx context.Context, id uuid.UUID, in UpdateProfileInput) (user.User, error)
	UpdateSkills(ctx context.Context, id uuid.UUID, skills []string) (user.User, error)
}

type Users struct {
	users  user.Repository
	cache  Cache
	logger *log.Logger
}

func NewUserUsecase(users user.Repository, cache Cache, logger *log.Logger) *Users {
	return &Users{users: users, cache: cache, logger: logger}
}

func (u *Users) GetMe(ctx context.Context, id uuid.UUID) (user.User, error) {
	if id == uuid.Nil {
		return user.User{}, ErrUnauthorized
	}

	usr, err := u.users.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrUserNotFound
		}
		return user.User{}, ErrInternal
	}
	return sanitizeUser(usr), nil
}

func (u *Users) UpdateMe(ctx context.Context, id uuid.UUID, in UpdateProfileInput) (user.User, error) {
	if id == uuid.Nil {
		return user.User{}, ErrUnauthorized
	}
	firstName := strings.TrimSpace(in.FirstName)
	if firstName == "" {
		return user.User{}, ErrInvalidInput
	}

	usr, err := u.users.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrUserNotFound
		}
		return user.User{}, ErrInternal
	}

	usr.FirstName = firstName
	usr.LastName = strings.TrimSpace(in.LastName)
	usr.PhoneNumber = strings.TrimSpace(in.PhoneNumber)

	if err := u.users.UpdateUser(ctx, usr); err != nil {
		return user.User{}, ErrInternal
	}
	return sanitizeUser(usr), nil
}

// UpdateSkills replaces the skill profile and drops every cached match
// report derived from the old one.
func (u *Users) UpdateSkills(ctx context.Context, id uuid.UUID, skills []string) (user.User, error) {
	if id == uuid.Nil {
		return user.User{}, ErrUnauthorized
	}

	cleaned := cleanList(skills)
	if err := u.users.UpdateSkills(ctx, id, cleaned); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrUserNotFound
		}
		return user.User{}, ErrInternal
	}

	if u.cache != nil {
		if err := u.cache.InvalidateMatchesForUser(ctx, id); err != nil && u.logger != nil {
			u.logger.Printf("users | match cache invalidation failed user=%s err=%v", id, err)
		}
	}

	usr, err := u.users.GetUserByID(ctx, id)
	if err != nil {
		return user.User{}, ErrInternal
	}
	return sanitizeUser(usr), nil
}
