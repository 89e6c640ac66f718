package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/help-yourself-test/help-yourself/internal/database"
	"github.com/help-yourself-test/help-yourself/internal/domain/account"
	"github.com/help-yourself-test/help-yourself/internal/domain/user"
)

const userColumns = `id, first_name, last_name, email, password_hash, phone_number,
	role, requested_role, admin_approval_status, is_active, is_verified, skills,
	last_login, login_attempts, lock_until, created_at, updated_at`

type PostgresUserRepository struct {
	db database.DB
}

func NewPostgresUserRepository(db database.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) CreateUser(ctx context.Context, u user.User) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO users (id, first_name, last_name, email, password_hash, phone_number,
			role, requested_role, admin_approval_status, is_active, is_verified, skills,
			created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, now(), now())`,
		u.ID, u.FirstName, u.LastName, u.Email, u.PasswordHash, u.PhoneNumber,
		u.Role, u.RequestedRole, u.AdminApprovalStatus, u.IsActive, u.IsVerified, skillsOrEmpty(u.Skills),
	)
	return err
}

func (r *PostgresUserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *PostgresUserRepository) GetUserByEmail(ctx context.Context, email string) (user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (r *PostgresUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresUserRepository) UpdateUser(ctx context.Context, u user.User) error {
	rowsAffected, err := r.db.Exec(ctx,
		`UPDATE users
		 SET first_name = $1, last_name = $2, email = $3, password_hash = $4,
		     phone_number = $5, role = $6, requested_role = $7,
		     admin_approval_status = $8, is_active = $9, is_verified = $10,
		     updated_at = now()
		 WHERE id = $11`,
		u.FirstName, u.LastName, u.Email, u.PasswordHash,
		u.PhoneNumber, u.Role, u.RequestedRole,
		u.AdminApprovalStatus, u.IsActive, u.IsVerified,
		u.ID,
	)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return user.ErrNotFound
	}
	return nil
}

func (r *PostgresUserRepository) UpdateLoginState(ctx context.Context, id uuid.UUID, attempts int, lockUntil, lastLogin *time.Time) error {
	rowsAffected, err := r.db.Exec(ctx,
		`UPDATE users
		 SET login_attempts = $1, lock_until = $2,
		     last_login = COALESCE($3, last_login),
		     updated_at = now()
		 WHERE id = $4`,
		attempts, lockUntil, lastLogin, id,
	)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return user.ErrNotFound
	}
	return nil
}

func (r *PostgresUserRepository) UpdateSkills(ctx context.Context, id uuid.UUID, skills []string) error {
	rowsAffected, err := r.db.Exec(ctx,
		`UPDATE users SET skills = $1, updated_at = now() WHERE id = $2`,
		skillsOrEmpty(skills), id,
	)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return user.ErrNotFound
	}
	return nil
}

func (r *PostgresUserRepository) ListUsers(ctx context.Context) ([]user.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectUsers(rows)
}

func (r *PostgresUserRepository) ListPendingApprovals(ctx context.Context) ([]user.User, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+userColumns+` FROM users WHERE admin_approval_status = $1 ORDER BY created_at DESC`,
		account.ApprovalPending,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectUsers(rows)
}

func (r *PostgresUserRepository) SetApproval(ctx context.Context, id uuid.UUID, role, status string) (user.User, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE users
		 SET role = $1, admin_approval_status = $2, updated_at = now()
		 WHERE id = $3
		 RETURNING `+userColumns,
		role, status, id,
	)
	return scanUser(row)
}

func (r *PostgresUserRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) (user.User, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE users SET is_active = $1, updated_at = now() WHERE id = $2 RETURNING `+userColumns,
		active, id,
	)
	return scanUser(row)
}

func collectUsers(rows database.Rows) ([]user.User, error) {
	out := make([]user.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanUser(row database.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &u.PhoneNumber,
		&u.Role, &u.RequestedRole, &u.AdminApprovalStatus, &u.IsActive, &u.IsVerified, &u.Skills,
		&u.LastLogin, &u.LoginAttempts, &u.LockUntil, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}

func skillsOrEmpty(skills []string) []string {
	if skills == nil {
		return []string{}
	}
	return skills
}
