package usecase

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/help-yourself-test/help-yourself/internal/domain/job"
)

// Cache is the slice of the Redis wrapper the usecases need. A nil-safe
// implementation is expected: callers treat every error as a miss.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	InvalidateMatchesForUser(ctx context.Context, userID uuid.UUID) error
	InvalidateJob(ctx context.Context, jobID uuid.UUID) error
	InvalidateJobLists(ctx context.Context) error
}

const (
	matchCacheTTL   = 10 * time.Minute
	jobListCacheTTL = 2 * time.Minute
)

// MatchCacheKey must stay in step with the invalidation patterns the
// Redis wrapper deletes by.
func MatchCacheKey(userID, jobID uuid.UUID) string {
	return "match:" + userID.String() + ":" + jobID.String()
}

func JobListCacheKey(f job.ListFilter) string {
	parts := []string{
		"jobs:list",
		strings.ToLower(f.JobType),
		strings.ToLower(f.WorkMode),
		strings.ToLower(f.Location),
		strings.ToLower(f.Search),
		strconv.Itoa(f.Limit),
		strconv.Itoa(f.Offset),
	}
	return strings.Join(parts, ":")
}
