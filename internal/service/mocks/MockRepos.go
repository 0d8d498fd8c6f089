package mocks

import (
	context "context"
	time "time"

	models "gitlab-activity-dashboard/internal/models"

	mock "github.com/stretchr/testify/mock"
)

type MockUserSaver struct {
	mock.Mock
}

func (m *MockUserSaver) Save(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type MockEventSaver struct {
	mock.Mock
}

func (m *MockEventSaver) Save(ctx context.Context, event *models.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockProjectSaver struct {
	mock.Mock
}

func (m *MockProjectSaver) Save(ctx context.Context, project *models.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

type MockCommitSaver struct {
	mock.Mock
}

func (m *MockCommitSaver) Save(ctx context.Context, commit *models.Commit) error {
	args := m.Called(ctx, commit)
	return args.Error(0)
}

type MockUserProvider struct {
	mock.Mock
}

func (m *MockUserProvider) GetAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

type MockEventProvider struct {
	mock.Mock
}

func (m *MockEventProvider) Get(ctx context.Context, since, until *time.Time) ([]models.Event, error) {
	args := m.Called(ctx, since, until)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Event), args.Error(1)
}
