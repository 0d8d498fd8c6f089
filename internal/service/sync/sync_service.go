package sync

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gitlab-activity-dashboard/internal/gitlab"
	"gitlab-activity-dashboard/internal/http/api"
	"gitlab-activity-dashboard/internal/models"
	"gitlab-activity-dashboard/internal/service"

	"golang.org/x/sync/errgroup"
)

// ActivitySource is the remote side of a sync, normally the GitLab client.
type ActivitySource interface {
	GetActiveUsers(ctx context.Context) ([]models.User, error)
	GetUserEvents(ctx context.Context, userID int, after, before *time.Time) ([]models.Event, error)
	GetProjects(ctx context.Context) ([]models.Project, error)
	GetProjectCommits(ctx context.Context, projectID int, since, until *time.Time) ([]models.Commit, error)
}

// SourceFactory builds a source for one sync run; connection parameters
// arrive with each request, so the client cannot be constructed up front.
type SourceFactory func(cfg gitlab.Config) ActivitySource

type UserSaver interface {
	Save(ctx context.Context, user *models.User) error
}

type EventSaver interface {
	Save(ctx context.Context, event *models.Event) error
}

type ProjectSaver interface {
	Save(ctx context.Context, project *models.Project) error
}

type CommitSaver interface {
	Save(ctx context.Context, commit *models.Commit) error
}

type SyncService struct {
	log        *slog.Logger
	trm        service.TransactionManager
	newSource  SourceFactory
	users      UserSaver
	events     EventSaver
	projects   ProjectSaver
	commits    CommitSaver
	fetchLimit int
}

func NewSyncService(
	log *slog.Logger,
	trm service.TransactionManager,
	newSource SourceFactory,
	users UserSaver,
	events EventSaver,
	projects ProjectSaver,
	commits CommitSaver,
	fetchLimit int,
) *SyncService {
	if fetchLimit < 1 {
		fetchLimit = 1
	}
	return &SyncService{
		log:        log,
		trm:        trm,
		newSource:  newSource,
		users:      users,
		events:     events,
		projects:   projects,
		commits:    commits,
		fetchLimit: fetchLimit,
	}
}

// Sync mirrors users, their events, projects and optionally commits from
// GitLab into the store. Each batch is persisted in its own transaction:
// a failure aborts the run but keeps batches that already landed.
func (s *SyncService) Sync(ctx context.Context, cfg gitlab.Config, since, until *time.Time, withCommits bool) (*api.SyncResponse, error) {
	src := s.newSource(cfg)

	users, err := src.GetActiveUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching users: %w", err)
	}

	if err := s.saveUsers(ctx, users); err != nil {
		return nil, err
	}
	s.log.Info("synced users", slog.Int("count", len(users)))

	// Per-user event fetches are independent, so they fan out with bounded
	// concurrency. Ordering does not matter: aggregation only ever sees the
	// store after all batches are in.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.fetchLimit)
	for _, u := range users {
		g.Go(func() error {
			events, err := src.GetUserEvents(gctx, u.ID, since, until)
			if err != nil {
				return fmt.Errorf("fetching events for user %d: %w", u.ID, err)
			}
			return s.saveEvents(gctx, events)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	projects, err := src.GetProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching projects: %w", err)
	}
	if err := s.saveProjects(ctx, projects); err != nil {
		return nil, err
	}
	s.log.Info("synced projects", slog.Int("count", len(projects)))

	if withCommits {
		cg, cctx := errgroup.WithContext(ctx)
		cg.SetLimit(s.fetchLimit)
		for _, p := range projects {
			cg.Go(func() error {
				commits, err := src.GetProjectCommits(cctx, p.ID, since, until)
				if err != nil {
					return fmt.Errorf("fetching commits for project %d: %w", p.ID, err)
				}
				return s.saveCommits(cctx, commits)
			})
		}
		if err := cg.Wait(); err != nil {
			return nil, err
		}
	}

	return &api.SyncResponse{
		Success:    true,
		Message:    "Data synced successfully",
		UsersCount: len(users),
	}, nil
}

func (s *SyncService) saveUsers(ctx context.Context, users []models.User) error {
	return s.trm.Do(ctx, func(ctx context.Context) error {
		for _, u := range users {
			if err := s.users.Save(ctx, &u); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *SyncService) saveEvents(ctx context.Context, events []models.Event) error {
	return s.trm.Do(ctx, func(ctx context.Context) error {
		for _, e := range events {
			if err := s.events.Save(ctx, &e); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *SyncService) saveProjects(ctx context.Context, projects []models.Project) error {
	return s.trm.Do(ctx, func(ctx context.Context) error {
		for _, p := range projects {
			if err := s.projects.Save(ctx, &p); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *SyncService) saveCommits(ctx context.Context, commits []models.Commit) error {
	return s.trm.Do(ctx, func(ctx context.Context) error {
		for _, c := range commits {
			if err := s.commits.Save(ctx, &c); err != nil {
				return err
			}
		}
		return nil
	})
}
