package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/help-yourself-test/help-yourself/internal/domain/account"
	"github.com/help-yourself-test/help-yourself/internal/domain/job"
)

const (
	defaultJobListLimit = 20
	maxJobListLimit     = 100
	defaultJobLifetime  = 30 * 24 * time.Hour
)

type JobInput struct {
	Title               string
	Company             string
	Location            string
	JobType             string
	WorkMode            string
	Experience          string
	SalaryMin           int64
	SalaryMax           int64
	SalaryCurrency      string
	Description         string
	Requirements        []string
	Skills              []string
	Benefits            []string
	ApplicationDeadline *time.Time
	ExpiryDate          *time.Time
	ContactEmail        string
}

type JobListPage struct {
	Jobs   []job.Job `json:"jobs"`
	Total  int       `json:"total"`
	Limit  int       `json:"limit"`
	Offset int       `json:"offset"`
}

type JobUsecase interface {
	ListJobs(ctx context.Context, f job.ListFilter) (JobListPage, error)
	GetJob(ctx context.Context, id uuid.UUID) (job.Job, error)
	CreateJob(ctx context.Context, creatorID uuid.UUID, role string, in JobInput) (job.Job, error)
	UpdateJob(ctx context.Context, actorID uuid.UUID, role string, id uuid.UUID, in JobInput) (job.Job, error)
	DeleteJob(ctx context.Context, actorID uuid.UUID, role string, id uuid.UUID) error
}

type Jobs struct {
	jobs   job.Repository
	cache  Cache
	logger *log.Logger
	now    func() time.Time
}

func NewJobUsecase(jobs job.Repository, cache Cache, logger *log.Logger) *Jobs {
	return &Jobs{jobs: jobs, cache: cache, logger: logger, now: time.Now}
}

// ListJobs pages the active postings. Expiry is swept lazily on read:
// anything past its expiry date flips to expired before the page is
// built, so listings never serve stale postings.
func (u *Jobs) ListJobs(ctx context.Context, f job.ListFilter) (JobListPage, error) {
	if f.Limit == 0 {
		f.Limit = defaultJobListLimit
	}
	if f.Limit < 0 || f.Limit > maxJobListLimit || f.Offset < 0 {
		return JobListPage{}, ErrInvalidInput
	}

	if n, err := u.jobs.MarkExpired(ctx, u.now()); err != nil {
		if u.logger != nil {
			u.logger.Printf("jobs | expiry sweep failed err=%v", err)
		}
	} else if n > 0 {
		if u.logger != nil {
			u.logger.Printf("jobs | expiry sweep expired=%d", n)
		}
		if u.cache != nil {
			_ = u.cache.InvalidateJobLists(ctx)
		}
	}

	key := JobListCacheKey(f)
	if u.cache != nil {
		var cached JobListPage
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	items, err := u.jobs.ListJobs(ctx, f)
	if err != nil {
		return JobListPage{}, ErrInternal
	}
	total, err := u.jobs.CountJobs(ctx, f)
	if err != nil {
		return JobListPage{}, ErrInternal
	}

	page := JobListPage{Jobs: items, Total: total, Limit: f.Limit, Offset: f.Offset}
	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, page, jobListCacheTTL); err != nil && u.logger != nil {
			u.logger.Printf("jobs | cache write failed key=%s err=%v", key, err)
		}
	}
	return page, nil
}

// GetJob returns one posting and counts the view. The counter write is
// best effort.
func (u *Jobs) GetJob(ctx context.Context, id uuid.UUID) (job.Job, error) {
	if id == uuid.Nil {
		return job.Job{}, ErrJobNotFound
	}

	j, err := u.jobs.GetJobByID(ctx, id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, ErrInternal
	}

	if err := u.jobs.IncrementViews(ctx, id); err != nil {
		if u.logger != nil {
			u.logger.Printf("jobs | view count failed id=%s err=%v", id, err)
		}
	} else {
		j.Views++
	}
	return j, nil
}

func (u *Jobs) CreateJob(ctx context.Context, creatorID uuid.UUID, role string, in JobInput) (job.Job, error) {
	if creatorID == uuid.Nil {
		return job.Job{}, ErrUnauthorized
	}
	if !canManageJobs(role) {
		return job.Job{}, ErrForbidden
	}
	if err := validateJobInput(in); err != nil {
		return job.Job{}, err
	}

	now := u.now()
	j := jobFromInput(in, now)
	j.ID = uuid.New()
	j.Status = job.StatusActive
	j.IsActive = true
	j.CreatedBy = creatorID

	if err := u.jobs.CreateJob(ctx, j); err != nil {
		return job.Job{}, ErrInternal
	}
	if u.cache != nil {
		_ = u.cache.InvalidateJobLists(ctx)
	}

	created, err := u.jobs.GetJobByID(ctx, j.ID)
	if err != nil {
		return job.Job{}, ErrInternal
	}
	return created, nil
}

// UpdateJob replaces the mutable fields of a posting. Only the creator
// or an admin may touch it.
func (u *Jobs) UpdateJob(ctx context.Context, actorID uuid.UUID, role string, id uuid.UUID, in JobInput) (job.Job, error) {
	existing, err := u.authorizeJobWrite(ctx, actorID, role, id)
	if err != nil {
		return job.Job{}, err
	}
	if err := validateJobInput(in); err != nil {
		return job.Job{}, err
	}

	j := jobFromInput(in, u.now())
	j.ID = existing.ID
	j.Status = existing.Status
	j.IsActive = existing.IsActive
	j.CreatedBy = existing.CreatedBy

	if err := u.jobs.UpdateJob(ctx, j); err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, ErrInternal
	}
	if u.cache != nil {
		_ = u.cache.InvalidateJob(ctx, id)
	}

	updated, err := u.jobs.GetJobByID(ctx, id)
	if err != nil {
		return job.Job{}, ErrInternal
	}
	return updated, nil
}

func (u *Jobs) DeleteJob(ctx context.Context, actorID uuid.UUID, role string, id uuid.UUID) error {
	if _, err := u.authorizeJobWrite(ctx, actorID, role, id); err != nil {
		return err
	}

	if err := u.jobs.DeleteJob(ctx, id); err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return ErrJobNotFound
		}
		return ErrInternal
	}
	if u.cache != nil {
		_ = u.cache.InvalidateJob(ctx, id)
	}
	return nil
}

func (u *Jobs) authorizeJobWrite(ctx context.Context, actorID uuid.UUID, role string, id uuid.UUID) (job.Job, error) {
	if actorID == uuid.Nil {
		return job.Job{}, ErrUnauthorized
	}
	if id == uuid.Nil {
		return job.Job{}, ErrJobNotFound
	}

	existing, err := u.jobs.GetJobByID(ctx, id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, ErrInternal
	}
	if existing.CreatedBy != actorID && role != account.RoleAdmin {
		return job.Job{}, ErrForbidden
	}
	return existing, nil
}

func canManageJobs(role string) bool {
	return role == account.RoleJobPoster || role == account.RoleAdmin
}

func validateJobInput(in JobInput) error {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Company) == "" {
		return ErrInvalidInput
	}
	if strings.TrimSpace(in.Description) == "" {
		return ErrInvalidInput
	}
	if !job.ValidJobType(strings.ToLower(in.JobType)) {
		return ErrInvalidInput
	}
	if !job.ValidWorkMode(strings.ToLower(in.WorkMode)) {
		return ErrInvalidInput
	}
	if in.Experience != "" && !job.ValidExperience(strings.ToLower(in.Experience)) {
		return ErrInvalidInput
	}
	if in.SalaryMin < 0 || in.SalaryMax < 0 {
		return ErrInvalidInput
	}
	if in.SalaryMax > 0 && in.SalaryMin > in.SalaryMax {
		return ErrInvalidInput
	}
	return nil
}

func jobFromInput(in JobInput, now time.Time) job.Job {
	expiry := now.Add(defaultJobLifetime)
	if in.ExpiryDate != nil && in.ExpiryDate.After(now) {
		expiry = *in.ExpiryDate
	}

	currency := strings.ToUpper(strings.TrimSpace(in.SalaryCurrency))
	if currency == "" {
		currency = "USD"
	}

	return job.Job{
		Title:      strings.TrimSpace(in.Title),
		Company:    strings.TrimSpace(in.Company),
		Location:   strings.TrimSpace(in.Location),
		JobType:    strings.ToLower(strings.TrimSpace(in.JobType)),
		WorkMode:   strings.ToLower(strings.TrimSpace(in.WorkMode)),
		Experience: strings.ToLower(strings.TrimSpace(in.Experience)),
		Salary: job.Salary{
			Min:      in.SalaryMin,
			Max:      in.SalaryMax,
			Currency: currency,
		},
		Description:         strings.TrimSpace(in.Description),
		Requirements:        cleanList(in.Requirements),
		Skills:              cleanList(in.Skills),
		Benefits:            cleanList(in.Benefits),
		ApplicationDeadline: in.ApplicationDeadline,
		ExpiryDate:          expiry,
		ContactEmail:        strings.ToLower(strings.TrimSpace(in.ContactEmail)),
	}
}

func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		it = strings.TrimSpace(it)
		if it == "" {
			continue
		}
		out = append(out, it)
	}
	return out
}
