package stats

import (
	"context"
	"time"

	"gitlab-activity-dashboard/internal/models"
	"gitlab-activity-dashboard/internal/service"
)

type UserProvider interface {
	GetAll(ctx context.Context) ([]models.User, error)
}

type EventProvider interface {
	Get(ctx context.Context, since, until *time.Time) ([]models.Event, error)
}

type StatsService struct {
	trm           service.TransactionManager
	userProvider  UserProvider
	eventProvider EventProvider
}

func NewStatsService(trm service.TransactionManager, userProvider UserProvider, eventProvider EventProvider) *StatsService {
	return &StatsService{
		trm:           trm,
		userProvider:  userProvider,
		eventProvider: eventProvider,
	}
}

// GetDashboardStats reads users and in-range events from the store and runs
// the aggregation over them. Both reads happen in one transaction so the
// stats are computed over a consistent snapshot.
func (s *StatsService) GetDashboardStats(ctx context.Context, since, until time.Time) (*models.DashboardStats, error) {
	var result models.DashboardStats

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		users, err := s.userProvider.GetAll(ctx)
		if err != nil {
			return err
		}

		events, err := s.eventProvider.Get(ctx, &since, &until)
		if err != nil {
			return err
		}

		result = ComputeDashboardStats(events, users, since, until)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}
