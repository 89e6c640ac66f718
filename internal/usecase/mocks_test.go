package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/help-yourself-test/help-yourself/internal/domain/account"
	"github.com/help-yourself-test/help-yourself/internal/domain/job"
	"github.com/help-yourself-test/help-yourself/internal/domain/user"
)

type mockUserRepo struct {
	users map[uuid.UUID]user.User
	err   error
}

func newMockUserRepo(seed ...user.User) *mockUserRepo {
	m := &mockUserRepo{users: make(map[uuid.UUID]user.User)}
	for _, u := range seed {
		m.users[u.ID] = u
	}
	return m
}

func (m *mockUserRepo) CreateUser(_ context.Context, u user.User) error {
	if m.err != nil {
		return m.err
	}
	m.users[u.ID] = u
	return nil
}

func (m *mockUserRepo) GetUserByID(_ context.Context, id uuid.UUID) (user.User, error) {
	if m.err != nil {
		return user.User{}, m.err
	}
	u, ok := m.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetUserByEmail(_ context.Context, email string) (user.User, error) {
	if m.err != nil {
		return user.User{}, m.err
	}
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := m.GetUserByEmail(ctx, email)
	if err == nil {
		return true, nil
	}
	return false, nil
}

func (m *mockUserRepo) UpdateUser(_ context.Context, u user.User) error {
	if _, ok := m.users[u.ID]; !ok {
		return user.ErrNotFound
	}
	m.users[u.ID] = u
	return nil
}

func (m *mockUserRepo) UpdateLoginState(_ context.Context, id uuid.UUID, attempts int, lockUntil, lastLogin *time.Time) error {
	u, ok := m.users[id]
	if !ok {
		return user.ErrNotFound
	}
	u.LoginAttempts = attempts
	u.LockUntil = lockUntil
	if lastLogin != nil {
		u.LastLogin = lastLogin
	}
	m.users[id] = u
	return nil
}

func (m *mockUserRepo) UpdateSkills(_ context.Context, id uuid.UUID, skills []string) error {
	u, ok := m.users[id]
	if !ok {
		return user.ErrNotFound
	}
	u.Skills = skills
	m.users[id] = u
	return nil
}

func (m *mockUserRepo) ListUsers(context.Context) ([]user.User, error) {
	out := make([]user.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}

func (m *mockUserRepo) ListPendingApprovals(context.Context) ([]user.User, error) {
	out := make([]user.User, 0)
	for _, u := range m.users {
		if u.AdminApprovalStatus == account.ApprovalPending {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *mockUserRepo) SetApproval(_ context.Context, id uuid.UUID, role, status string) (user.User, error) {
	u, ok := m.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	u.Role = role
	u.AdminApprovalStatus = status
	m.users[id] = u
	return u, nil
}

func (m *mockUserRepo) SetActive(_ context.Context, id uuid.UUID, active bool) (user.User, error) {
	u, ok := m.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	u.IsActive = active
	m.users[id] = u
	return u, nil
}

type mockJobRepo struct {
	jobs       map[uuid.UUID]job.Job
	expired    int64
	viewCounts map[uuid.UUID]int
	err        error
}

func newMockJobRepo(seed ...job.Job) *mockJobRepo {
	m := &mockJobRepo{jobs: make(map[uuid.UUID]job.Job), viewCounts: make(map[uuid.UUID]int)}
	for _, j := range seed {
		m.jobs[j.ID] = j
	}
	return m
}

func (m *mockJobRepo) CreateJob(_ context.Context, j job.Job) error {
	if m.err != nil {
		return m.err
	}
	m.jobs[j.ID] = j
	return nil
}

func (m *mockJobRepo) GetJobByID(_ context.Context, id uuid.UUID) (job.Job, error) {
	if m.err != nil {
		return job.Job{}, m.err
	}
	j, ok := m.jobs[id]
	if !ok {
		return job.Job{}, job.ErrNotFound
	}
	return j, nil
}

func (m *mockJobRepo) UpdateJob(_ context.Context, j job.Job) error {
	if _, ok := m.jobs[j.ID]; !ok {
		return job.ErrNotFound
	}
	m.jobs[j.ID] = j
	return nil
}

func (m *mockJobRepo) DeleteJob(_ context.Context, id uuid.UUID) error {
	if _, ok := m.jobs[id]; !ok {
		return job.ErrNotFound
	}
	delete(m.jobs, id)
	return nil
}

func (m *mockJobRepo) ListJobs(_ context.Context, _ job.ListFilter) ([]job.Job, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]job.Job, 0, len(m.jobs))
	for _, j := range m.jobs {
		out = append(out, j)
	}
	return out, nil
}

func (m *mockJobRepo) CountJobs(_ context.Context, _ job.ListFilter) (int, error) {
	return len(m.jobs), nil
}

func (m *mockJobRepo) IncrementViews(_ context.Context, id uuid.UUID) error {
	m.viewCounts[id]++
	return nil
}

func (m *mockJobRepo) MarkExpired(_ context.Context, _ time.Time) (int64, error) {
	return m.expired, nil
}
