package stats

import (
	"sort"
	"time"

	"gitlab-activity-dashboard/internal/models"
)

const topN = 10

// IsPushEvent reports whether an event is a commit-producing push.
func IsPushEvent(e models.Event) bool {
	return e.ActionName == models.ActionPushed && e.PushData != nil
}

// CommitCountOf returns the event's commit count, 0 when the push payload
// is absent.
func CommitCountOf(e models.Event) int {
	if e.PushData == nil {
		return 0
	}
	return e.PushData.CommitCount
}

// ProjectLabelOf returns the event's target title used as the project
// breakdown key, or "" when the event carries none.
func ProjectLabelOf(e models.Event) string {
	if e.TargetTitle == nil {
		return ""
	}
	return *e.TargetTitle
}

// AggregateByUser produces one UserActivity per input user, in input order.
// Users without any events are included with zero totals. Events are grouped
// by author id in a single pass rather than rescanned per user.
//
// Addition/deletion totals stay 0: commit-level line counts are never joined
// into the event-based aggregation path.
func AggregateByUser(events []models.Event, users []models.User) []models.UserActivity {
	byAuthor := make(map[int][]models.Event, len(users))
	for _, e := range events {
		byAuthor[e.AuthorID] = append(byAuthor[e.AuthorID], e)
	}

	activities := make([]models.UserActivity, 0, len(users))
	for _, u := range users {
		ua := models.UserActivity{
			User:   u,
			Events: byAuthor[u.ID],
		}
		if ua.Events == nil {
			ua.Events = []models.Event{}
		}
		for _, e := range ua.Events {
			if IsPushEvent(e) {
				ua.TotalCommits += CommitCountOf(e)
			}
		}
		activities = append(activities, ua)
	}

	return activities
}

// BucketResult accumulates push commit counts into the time and grouping
// buckets the dashboard charts are built from.
type BucketResult struct {
	ByDay       map[string]int
	ByHour      [24]int
	ByDayOfWeek [7]int
	ByProject   map[string]int
	ByUser      map[int]int
	// TotalCommits is the authoritative grand total, accumulated
	// independently of the per-user sums.
	TotalCommits int
}

// BucketEvents buckets every push-like event's commit count by calendar day,
// hour of day and weekday (Sunday = 0), plus per-project and per-user totals.
//
// The day key is the UTC date of the timestamp while hour and weekday are
// taken in server-local time. The dashboard has always reported the two this
// way; unifying them would reattribute near-midnight pushes, so the mismatch
// is kept.
func BucketEvents(events []models.Event) BucketResult {
	res := BucketResult{
		ByDay:     make(map[string]int),
		ByProject: make(map[string]int),
		ByUser:    make(map[int]int),
	}

	for _, e := range events {
		if !IsPushEvent(e) {
			continue
		}

		count := CommitCountOf(e)
		dateKey := e.CreatedAt.UTC().Format("2006-01-02")
		local := e.CreatedAt.Local()

		res.ByDay[dateKey] += count
		res.ByHour[local.Hour()] += count
		res.ByDayOfWeek[int(local.Weekday())] += count
		res.TotalCommits += count

		if label := ProjectLabelOf(e); label != "" {
			res.ByProject[label] += count
		}
		res.ByUser[e.AuthorID] += count
	}

	return res
}

// CountWorkdays counts Monday-through-Friday days between since and until,
// both endpoints inclusive. A reversed range yields 0.
func CountWorkdays(since, until time.Time) int {
	workdays := 0
	for d := since; !d.After(until); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			workdays++
		}
	}
	return workdays
}

// BuildStats assembles the final dashboard structure from the partial
// aggregates. Only users that produced at least one push-like event in range
// are ranked; ties keep their input order.
func BuildStats(activities []models.UserActivity, bucket BucketResult, workdays int) models.DashboardStats {
	var avg float64
	if workdays > 0 {
		avg = float64(bucket.TotalCommits) / float64(workdays)
	}

	contributors := make([]models.Contributor, 0, len(bucket.ByUser))
	for _, a := range activities {
		if _, pushed := bucket.ByUser[a.User.ID]; !pushed {
			continue
		}
		contributors = append(contributors, models.Contributor{
			User:    a.User,
			Commits: a.TotalCommits,
		})
	}
	sort.SliceStable(contributors, func(i, j int) bool {
		return contributors[i].Commits > contributors[j].Commits
	})
	if len(contributors) > topN {
		contributors = contributors[:topN]
	}

	breakdown := make([]models.ProjectCommits, 0, len(bucket.ByProject))
	for project, commits := range bucket.ByProject {
		breakdown = append(breakdown, models.ProjectCommits{
			Project: project,
			Commits: commits,
		})
	}
	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Commits > breakdown[j].Commits
	})
	if len(breakdown) > topN {
		breakdown = breakdown[:topN]
	}

	return models.DashboardStats{
		TotalUsers:           len(activities),
		TotalCommits:         bucket.TotalCommits,
		TotalAdditions:       0,
		TotalDeletions:       0,
		AvgCommitsPerWorkday: avg,
		CommitsByDay:         bucket.ByDay,
		CommitsByHour:        bucket.ByHour[:],
		CommitsByDayOfWeek:   bucket.ByDayOfWeek[:],
		TopContributors:      contributors,
		ProjectBreakdown:     breakdown,
	}
}

// ComputeDashboardStats runs the whole aggregation over already-fetched
// collections: per-user grouping, time bucketing, workday normalization
// and ranking.
func ComputeDashboardStats(events []models.Event, users []models.User, since, until time.Time) models.DashboardStats {
	activities := AggregateByUser(events, users)
	bucket := BucketEvents(events)
	workdays := CountWorkdays(since, until)
	return BuildStats(activities, bucket, workdays)
}
