package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/help-yourself-test/help-yourself/internal/database"
	"github.com/help-yourself-test/help-yourself/internal/domain/job"
)

const jobColumns = `id, title, company, location, job_type, work_mode, experience,
	salary_min, salary_max, salary_currency, description, requirements, skills, benefits,
	application_deadline, expiry_date, status, contact_email, is_active, views,
	applications, created_by, created_at, updated_at`

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) CreateJob(ctx context.Context, j job.Job) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO jobs (id, title, company, location, job_type, work_mode, experience,
			salary_min, salary_max, salary_currency, description, requirements, skills, benefits,
			application_deadline, expiry_date, status, contact_email, is_active, created_by,
			created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, now(), now())`,
		j.ID, j.Title, j.Company, j.Location, j.JobType, j.WorkMode, j.Experience,
		j.Salary.Min, j.Salary.Max, j.Salary.Currency, j.Description,
		textsOrEmpty(j.Requirements), textsOrEmpty(j.Skills), textsOrEmpty(j.Benefits),
		j.ApplicationDeadline, j.ExpiryDate, j.Status, j.ContactEmail, j.IsActive, j.CreatedBy,
	)
	return err
}

func (r *PostgresJobRepository) GetJobByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	return scanJob(row)
}

func (r *PostgresJobRepository) UpdateJob(ctx context.Context, j job.Job) error {
	rowsAffected, err := r.db.Exec(ctx,
		`UPDATE jobs
		 SET title = $1, company = $2, location = $3, job_type = $4, work_mode = $5,
		     experience = $6, salary_min = $7, salary_max = $8, salary_currency = $9,
		     description = $10, requirements = $11, skills = $12, benefits = $13,
		     application_deadline = $14, expiry_date = $15, status = $16,
		     contact_email = $17, is_active = $18, updated_at = now()
		 WHERE id = $19`,
		j.Title, j.Company, j.Location, j.JobType, j.WorkMode,
		j.Experience, j.Salary.Min, j.Salary.Max, j.Salary.Currency,
		j.Description, textsOrEmpty(j.Requirements), textsOrEmpty(j.Skills), textsOrEmpty(j.Benefits),
		j.ApplicationDeadline, j.ExpiryDate, j.Status,
		j.ContactEmail, j.IsActive, j.ID,
	)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return job.ErrNotFound
	}
	return nil
}

func (r *PostgresJobRepository) DeleteJob(ctx context.Context, id uuid.UUID) error {
	rowsAffected, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return job.ErrNotFound
	}
	return nil
}

func (r *PostgresJobRepository) ListJobs(ctx context.Context, f job.ListFilter) ([]job.Job, error) {
	where, args := jobFilterClause(f)

	query := `SELECT ` + jobColumns + ` FROM jobs ` + where + ` ORDER BY created_at DESC`
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += ` LIMIT $` + strconv.Itoa(len(args))
	}
	if f.Offset > 0 {
		args = append(args, f.Offset)
		query += ` OFFSET $` + strconv.Itoa(len(args))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresJobRepository) CountJobs(ctx context.Context, f job.ListFilter) (int, error) {
	where, args := jobFilterClause(f)

	var total int
	row := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs `+where, args...)
	if err := row.Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *PostgresJobRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `UPDATE jobs SET views = views + 1 WHERE id = $1`, id)
	return err
}

func (r *PostgresJobRepository) MarkExpired(ctx context.Context, now time.Time) (int64, error) {
	return r.db.Exec(ctx,
		`UPDATE jobs
		 SET status = $1, is_active = FALSE, updated_at = now()
		 WHERE expiry_date <= $2 AND status = $3`,
		job.StatusExpired, now, job.StatusActive,
	)
}

func jobFilterClause(f job.ListFilter) (string, []any) {
	conds := []string{"is_active = TRUE"}
	args := make([]any, 0, 4)

	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, strings.ReplaceAll(cond, "?", "$"+strconv.Itoa(len(args))))
	}

	if f.JobType != "" {
		add("job_type = ?", strings.ToLower(f.JobType))
	}
	if f.WorkMode != "" {
		add("work_mode = ?", strings.ToLower(f.WorkMode))
	}
	if f.Location != "" {
		add("location ILIKE ?", "%"+f.Location+"%")
	}
	if f.Search != "" {
		add("(title ILIKE ? OR company ILIKE ? OR description ILIKE ?)", "%"+f.Search+"%")
		// Reuse the same argument for all three columns.
		idx := "$" + strconv.Itoa(len(args))
		conds[len(conds)-1] = "(title ILIKE " + idx + " OR company ILIKE " + idx + " OR description ILIKE " + idx + ")"
	}

	return "WHERE " + strings.Join(conds, " AND "), args
}

func scanJob(row database.Row) (job.Job, error) {
	var j job.Job
	err := row.Scan(
		&j.ID, &j.Title, &j.Company, &j.Location, &j.JobType, &j.WorkMode, &j.Experience,
		&j.Salary.Min, &j.Salary.Max, &j.Salary.Currency, &j.Description,
		&j.Requirements, &j.Skills, &j.Benefits,
		&j.ApplicationDeadline, &j.ExpiryDate, &j.Status, &j.ContactEmail, &j.IsActive, &j.Views,
		&j.Applications, &j.CreatedBy, &j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}

func textsOrEmpty(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
