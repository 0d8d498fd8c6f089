package activity

import (
	"context"
	"time"

	"gitlab-activity-dashboard/internal/models"
)

type UserProvider interface {
	GetAll(ctx context.Context) ([]models.User, error)
}

type EventProvider interface {
	Get(ctx context.Context, since, until *time.Time) ([]models.Event, error)
	GetByUser(ctx context.Context, userID int, since, until *time.Time) ([]models.Event, error)
}

type ProjectProvider interface {
	GetAll(ctx context.Context) ([]models.Project, error)
}

// ActivityService exposes the mirrored rows to the read endpoints.
type ActivityService struct {
	userProvider    UserProvider
	eventProvider   EventProvider
	projectProvider ProjectProvider
}

func NewActivityService(userProvider UserProvider, eventProvider EventProvider, projectProvider ProjectProvider) *ActivityService {
	return &ActivityService{
		userProvider:    userProvider,
		eventProvider:   eventProvider,
		projectProvider: projectProvider,
	}
}

func (s *ActivityService) GetUsers(ctx context.Context) ([]models.User, error) {
	return s.userProvider.GetAll(ctx)
}

// GetEvents returns events in range, scoped to one user when userID is set.
func (s *ActivityService) GetEvents(ctx context.Context, userID *int, since, until *time.Time) ([]models.Event, error) {
	if userID != nil {
		return s.eventProvider.GetByUser(ctx, *userID, since, until)
	}
	return s.eventProvider.Get(ctx, since, until)
}

func (s *ActivityService) GetProjects(ctx context.Context) ([]models.Project, error) {
	return s.projectProvider.GetAll(ctx)
}
