package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/help-yourself-test/help-yourself/internal/domain/account"
	"github.com/help-yourself-test/help-yourself/internal/domain/job"
	"github.com/help-yourself-test/help-yourself/internal/domain/skillmatch"
	"github.com/help-yourself-test/help-yourself/internal/domain/user"
)

func TestMatching_CalculateMatch_Success(t *testing.T) {
	usr := user.User{
		ID:     uuid.New(),
		Email:  "dana@example.com",
		Role:   account.RoleJobSeeker,
		Skills: []string{"JavaScript", "CSS", "Python"},
	}
	posting := job.Job{
		ID:      uuid.New(),
		Title:   "Frontend Developer",
		Company: "Acme",
		Skills:  []string{"javascript", "react", "css", "sql"},
	}

	uc := NewMatchingUsecase(newMockUserRepo(usr), newMockJobRepo(posting), nil, nil)

	report, err := uc.CalculateMatch(context.Background(), usr.ID, posting.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if report.JobID != posting.ID || report.JobTitle != "Frontend Developer" {
		t.Fatalf("unexpected job binding: %+v", report)
	}
	if report.Match.Percentage != 50 {
		t.Fatalf("expected 50%%, got %d", report.Match.Percentage)
	}
	if report.Level.Level != skillmatch.LevelModerate {
		t.Fatalf("expected moderate level, got %q", report.Level.Level)
	}
	if len(report.Recommendations) != len(report.Match.MissingSkills) {
		t.Fatalf("expected one recommendation per gap, got %d for %d gaps",
			len(report.Recommendations), len(report.Match.MissingSkills))
	}
}

func TestMatching_CalculateMatch_EmptyProfileScoresZero(t *testing.T) {
	usr := user.User{ID: uuid.New(), Email: "dana@example.com"}
	posting := job.Job{ID: uuid.New(), Title: "Dev", Company: "Acme", Skills: []string{"go", "sql"}}

	uc := NewMatchingUsecase(newMockUserRepo(usr), newMockJobRepo(posting), nil, nil)

	report, err := uc.CalculateMatch(context.Background(), usr.ID, posting.ID)
	if err != nil {
		t.Fatalf("empty profile must not error, got %v", err)
	}
	if report.Match.Percentage != 0 {
		t.Fatalf("expected 0%%, got %d", report.Match.Percentage)
	}
	if len(report.Match.MissingSkills) != 2 {
		t.Fatalf("expected every required skill missing, got %v", report.Match.MissingSkills)
	}
}

func TestMatching_CalculateMatch_JobNotFound(t *testing.T) {
	usr := user.User{ID: uuid.New()}
	uc := NewMatchingUsecase(newMockUserRepo(usr), newMockJobRepo(), nil, nil)

	_, err := uc.CalculateMatch(context.Background(), usr.ID, uuid.New())
	if !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestMatching_CalculateMatch_NilIDs(t *testing.T) {
	uc := NewMatchingUsecase(newMockUserRepo(), newMockJobRepo(), nil, nil)

	if _, err := uc.CalculateMatch(context.Background(), uuid.Nil, uuid.New()); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for nil user, got %v", err)
	}
	if _, err := uc.CalculateMatch(context.Background(), uuid.New(), uuid.Nil); !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound for nil job, got %v", err)
	}
}

func TestMatching_Preview(t *testing.T) {
	uc := NewMatchingUsecase(newMockUserRepo(), newMockJobRepo(), nil, nil)

	sum := uc.Preview([]string{"js"}, []string{"JavaScript", "Docker"})
	if sum.Match.Percentage != 50 {
		t.Fatalf("expected 50%% via synonym, got %d", sum.Match.Percentage)
	}
	if len(sum.Recommendations) != 1 || sum.Recommendations[0].Skill != "docker" {
		t.Fatalf("expected docker recommendation, got %+v", sum.Recommendations)
	}
}
