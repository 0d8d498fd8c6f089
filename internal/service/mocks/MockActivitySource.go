package mocks

import (
	context "context"
	time "time"

	models "gitlab-activity-dashboard/internal/models"

	mock "github.com/stretchr/testify/mock"
)

type MockActivitySource struct {
	mock.Mock
}

func (m *MockActivitySource) GetActiveUsers(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockActivitySource) GetUserEvents(ctx context.Context, userID int, after, before *time.Time) ([]models.Event, error) {
	args := m.Called(ctx, userID, after, before)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Event), args.Error(1)
}

func (m *MockActivitySource) GetProjects(ctx context.Context) ([]models.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Project), args.Error(1)
}

func (m *MockActivitySource) GetProjectCommits(ctx context.Context, projectID int, since, until *time.Time) ([]models.Commit, error) {
	args := m.Called(ctx, projectID, since, until)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Commit), args.Error(1)
}
