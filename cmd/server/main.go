package main

import (
	"log/slog"
	"net/http"
	"os"

	"gitlab-activity-dashboard/internal/database"
	"gitlab-activity-dashboard/internal/gitlab"
	"gitlab-activity-dashboard/internal/http/handlers"
	activityh "gitlab-activity-dashboard/internal/http/handlers/activity"
	statsh "gitlab-activity-dashboard/internal/http/handlers/stats"
	synch "gitlab-activity-dashboard/internal/http/handlers/sync"
	mw "gitlab-activity-dashboard/internal/http/middleware"
	"gitlab-activity-dashboard/internal/lib/config"
	"gitlab-activity-dashboard/internal/lib/sl"
	repo "gitlab-activity-dashboard/internal/repository"
	"gitlab-activity-dashboard/internal/service/activity"
	"gitlab-activity-dashboard/internal/service/stats"
	syncsvc "gitlab-activity-dashboard/internal/service/sync"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	envLocal = "local"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)
	log.Info("Starting GitLab Activity Dashboard", slog.String("env", cfg.Env))

	dsn := os.Getenv("DATABASE_URL")
	db, err := database.Connect(dsn)
	if err != nil {
		slog.Error("failed to establish connection with database", sl.Err(err))
		os.Exit(1)
	}

	if err := database.RunMigrations(db); err != nil {
		slog.Error("failed to run migrations", sl.Err(err))
		os.Exit(1)
	}

	trManager := manager.Must(trmsqlx.NewDefaultFactory(db))

	userRepo := repo.NewUserRepo(db, trmsqlx.DefaultCtxGetter)
	eventRepo := repo.NewEventRepo(db, trmsqlx.DefaultCtxGetter)
	projectRepo := repo.NewProjectRepo(db, trmsqlx.DefaultCtxGetter)
	commitRepo := repo.NewCommitRepo(db, trmsqlx.DefaultCtxGetter)

	newSource := func(cfg gitlab.Config) syncsvc.ActivitySource {
		return gitlab.NewClient(cfg)
	}

	syncService := syncsvc.NewSyncService(
		log, trManager, newSource,
		userRepo, eventRepo, projectRepo, commitRepo,
		cfg.Sync.FetchConcurrency,
	)
	statsService := stats.NewStatsService(trManager, userRepo, eventRepo)
	activityService := activity.NewActivityService(userRepo, eventRepo, projectRepo)

	syncHandler := synch.NewSyncHandler(log, syncService)
	statsHandler := statsh.NewStatsHandler(log, statsService)
	activityHandler := activityh.NewActivityHandler(log, activityService)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mw.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	log.Info("starting http server", slog.String("address", cfg.HTTPServer.Address))

	router.Get("/health", handlers.Healthcheck())

	router.Route("/api", func(r chi.Router) {
		r.Post("/sync", syncHandler.Sync)
		r.Get("/users", activityHandler.GetUsers)
		r.Get("/events", activityHandler.GetEvents)
		r.Get("/projects", activityHandler.GetProjects)
		r.Get("/stats", statsHandler.GetStats)
	})

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	if err := srv.ListenAndServe(); err != nil {
		log.Error("failed to start http server", sl.Err(err))
		os.Exit(1)
	}

	log.Error("http server stopped")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger
	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	}
	return log
}
