// Seed fills the database with demo users, projects and push events so the
// dashboard renders without a reachable GitLab instance.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"gitlab-activity-dashboard/internal/database"
	"gitlab-activity-dashboard/internal/lib/sl"
	"gitlab-activity-dashboard/internal/models"
	repo "gitlab-activity-dashboard/internal/repository"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
)

var demoUsers = []models.User{
	{ID: 1, Username: "john.doe", Name: "John Doe"},
	{ID: 2, Username: "jane.smith", Name: "Jane Smith"},
	{ID: 3, Username: "bob.wilson", Name: "Bob Wilson"},
	{ID: 4, Username: "alice.johnson", Name: "Alice Johnson"},
	{ID: 5, Username: "charlie.brown", Name: "Charlie Brown"},
	{ID: 6, Username: "diana.prince", Name: "Diana Prince"},
	{ID: 7, Username: "edward.chen", Name: "Edward Chen"},
	{ID: 8, Username: "fiona.garcia", Name: "Fiona Garcia"},
}

var demoProjects = []string{
	"frontend-app",
	"backend-api",
	"mobile-app",
	"infrastructure",
	"documentation",
	"shared-libs",
}

func main() {
	days := flag.Int("days", 30, "how many days of history to generate")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, nil))

	db, err := database.Connect(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Error("failed to establish connection with database", sl.Err(err))
		os.Exit(1)
	}

	if err := database.RunMigrations(db); err != nil {
		log.Error("failed to run migrations", sl.Err(err))
		os.Exit(1)
	}

	userRepo := repo.NewUserRepo(db, trmsqlx.DefaultCtxGetter)
	eventRepo := repo.NewEventRepo(db, trmsqlx.DefaultCtxGetter)
	projectRepo := repo.NewProjectRepo(db, trmsqlx.DefaultCtxGetter)

	ctx := context.Background()

	for i := range demoUsers {
		u := demoUsers[i]
		u.State = "active"
		u.AvatarURL = fmt.Sprintf("https://www.gravatar.com/avatar/%d?d=identicon", u.ID)
		if err := userRepo.Save(ctx, &u); err != nil {
			log.Error("failed to save user", sl.Err(err))
			os.Exit(1)
		}
	}

	for i, name := range demoProjects {
		p := models.Project{
			ID:                i + 1,
			Name:              name,
			NameWithNamespace: "demo / " + name,
			Path:              name,
			PathWithNamespace: "demo/" + name,
			WebURL:            "https://gitlab.example.com/demo/" + name,
		}
		if err := projectRepo.Save(ctx, &p); err != nil {
			log.Error("failed to save project", sl.Err(err))
			os.Exit(1)
		}
	}

	eventID := int64(1)
	now := time.Now()
	var total int
	for i := *days - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)

		// Quieter weekends, like a real team.
		eventsToday := rand.IntN(8) + 4
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			eventsToday = rand.IntN(3)
		}

		for range eventsToday {
			user := demoUsers[rand.IntN(len(demoUsers))]
			projectIdx := rand.IntN(len(demoProjects))
			title := demoProjects[projectIdx]

			e := models.Event{
				ID:          eventID,
				ProjectID:   projectIdx + 1,
				ActionName:  models.ActionPushed,
				AuthorID:    user.ID,
				TargetTitle: &title,
				CreatedAt:   withBusinessHour(day),
				PushData: &models.PushData{
					CommitCount: rand.IntN(5) + 1,
					Action:      "pushed",
					RefType:     "branch",
					Ref:         "main",
				},
			}
			if err := eventRepo.Save(ctx, &e); err != nil {
				log.Error("failed to save event", sl.Err(err))
				os.Exit(1)
			}
			eventID++
			total++
		}
	}

	log.Info("demo data seeded",
		slog.Int("users", len(demoUsers)),
		slog.Int("projects", len(demoProjects)),
		slog.Int("events", total),
	)
}

// withBusinessHour places the timestamp inside 9:00-18:00 most of the time.
func withBusinessHour(day time.Time) time.Time {
	hour := rand.IntN(24)
	if rand.IntN(4) != 0 {
		hour = 9 + rand.IntN(9)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hour, rand.IntN(60), rand.IntN(60), 0, time.Local)
}
