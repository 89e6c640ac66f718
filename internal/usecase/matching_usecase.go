package usecase

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	"github.com/help-yourself-test/help-yourself/internal/domain/job"
	"github.com/help-yourself-test/help-yourself/internal/domain/skillmatch"
	"github.com/help-yourself-test/help-yourself/internal/domain/user"
)

var ErrJobNotFound = errors.New("job not found")

// MatchSummary is the engine output bundle: the raw match, its level
// band, and learning recommendations for the gaps.
type MatchSummary struct {
	Match           skillmatch.Result           `json:"match"`
	Level           skillmatch.Level            `json:"level"`
	Recommendations []skillmatch.Recommendation `json:"recommendations"`
}

// MatchReport is a summary tied to a specific job posting.
type MatchReport struct {
	JobID    uuid.UUID `json:"job_id"`
	JobTitle string    `json:"job_title"`
	Company  string    `json:"company"`
	MatchSummary
}

type MatchingUsecase interface {
	CalculateMatch(ctx context.Context, userID, jobID uuid.UUID) (MatchReport, error)
	Preview(candidateSkills, requiredSkills []string) MatchSummary
}

type Matching struct {
	users  user.Repository
	jobs   job.Repository
	cache  Cache
	logger *log.Logger
}

func NewMatchingUsecase(users user.Repository, jobs job.Repository, cache Cache, logger *log.Logger) *Matching {
	return &Matching{users: users, jobs: jobs, cache: cache, logger: logger}
}

// CalculateMatch scores the user's skill profile against one job's
// required skills. An empty profile is not an error: it scores zero with
// every required skill missing.
func (u *Matching) CalculateMatch(ctx context.Context, userID, jobID uuid.UUID) (MatchReport, error) {
	if userID == uuid.Nil {
		return MatchReport{}, ErrUnauthorized
	}
	if jobID == uuid.Nil {
		return MatchReport{}, ErrJobNotFound
	}

	key := MatchCacheKey(userID, jobID)
	if u.cache != nil {
		var cached MatchReport
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	j, err := u.jobs.GetJobByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return MatchReport{}, ErrJobNotFound
		}
		return MatchReport{}, ErrInternal
	}

	usr, err := u.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return MatchReport{}, ErrUnauthorized
		}
		return MatchReport{}, ErrInternal
	}

	report := MatchReport{
		JobID:        j.ID,
		JobTitle:     j.Title,
		Company:      j.Company,
		MatchSummary: summarize(usr.Skills, j.Skills),
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, report, matchCacheTTL); err != nil && u.logger != nil {
			u.logger.Printf("matching | cache write failed key=%s err=%v", key, err)
		}
	}
	return report, nil
}

// Preview runs the engine on ad-hoc skill lists without touching storage.
func (u *Matching) Preview(candidateSkills, requiredSkills []string) MatchSummary {
	return summarize(candidateSkills, requiredSkills)
}

func summarize(candidateSkills, requiredSkills []string) MatchSummary {
	res := skillmatch.ComputeMatch(candidateSkills, requiredSkills)
	return MatchSummary{
		Match:           res,
		Level:           skillmatch.ClassifyLevel(res.Percentage),
		Recommendations: skillmatch.Recommend(res.MissingSkills),
	}
}
