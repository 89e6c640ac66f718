package job

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("job not found")

// ListFilter narrows and pages the public job listing. Location and
// Search are case-insensitive substring filters.
type ListFilter struct {
	JobType  string
	WorkMode string
	Location string
	Search   string
	Limit    int
	Offset   int
}

type Repository interface {
	CreateJob(ctx context.Context, j Job) error
	GetJobByID(ctx context.Context, id uuid.UUID) (Job, error)
	UpdateJob(ctx context.Context, j Job) error
	DeleteJob(ctx context.Context, id uuid.UUID) error

	ListJobs(ctx context.Context, f ListFilter) ([]Job, error)
	CountJobs(ctx context.Context, f ListFilter) (int, error)

	IncrementViews(ctx context.Context, id uuid.UUID) error

	// MarkExpired flips still-active jobs whose expiry date has passed to
	// the expired status and returns how many rows changed.
	MarkExpired(ctx context.Context, now time.Time) (int64, error)
}
