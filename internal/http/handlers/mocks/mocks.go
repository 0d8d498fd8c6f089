package mocks

import (
	context "context"
	time "time"

	gitlab "gitlab-activity-dashboard/internal/gitlab"
	api "gitlab-activity-dashboard/internal/http/api"
	models "gitlab-activity-dashboard/internal/models"

	mock "github.com/stretchr/testify/mock"
)

type MockSyncService struct {
	mock.Mock
}

func (m *MockSyncService) Sync(ctx context.Context, cfg gitlab.Config, since, until *time.Time, withCommits bool) (*api.SyncResponse, error) {
	args := m.Called(ctx, cfg, since, until, withCommits)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.SyncResponse), args.Error(1)
}

type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) GetDashboardStats(ctx context.Context, since, until time.Time) (*models.DashboardStats, error) {
	args := m.Called(ctx, since, until)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DashboardStats), args.Error(1)
}

type MockActivityService struct {
	mock.Mock
}

func (m *MockActivityService) GetUsers(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockActivityService) GetEvents(ctx context.Context, userID *int, since, until *time.Time) ([]models.Event, error) {
	args := m.Called(ctx, userID, since, until)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Event), args.Error(1)
}

func (m *MockActivityService) GetProjects(ctx context.Context) ([]models.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Project), args.Error(1)
}
