package models

// UserActivity is built fresh per request and never persisted.
type UserActivity struct {
	User           User    `json:"user"`
	Events         []Event `json:"events"`
	TotalCommits   int     `json:"totalCommits"`
	TotalAdditions int     `json:"totalAdditions"`
	TotalDeletions int     `json:"totalDeletions"`
}

type Contributor struct {
	User    User `json:"user"`
	Commits int  `json:"commits"`
}

type ProjectCommits struct {
	Project string `json:"project"`
	Commits int    `json:"commits"`
}

// DashboardStats is the aggregation output returned by GET /stats.
// Field names match what the dashboard frontend expects.
type DashboardStats struct {
	TotalUsers           int              `json:"totalUsers"`
	TotalCommits         int              `json:"totalCommits"`
	TotalAdditions       int              `json:"totalAdditions"`
	TotalDeletions       int              `json:"totalDeletions"`
	AvgCommitsPerWorkday float64          `json:"avgCommitsPerWorkday"`
	CommitsByDay         map[string]int   `json:"commitsByDay"`
	CommitsByHour        []int            `json:"commitsByHour"`
	CommitsByDayOfWeek   []int            `json:"commitsByDayOfWeek"`
	TopContributors      []Contributor    `json:"topContributors"`
	ProjectBreakdown     []ProjectCommits `json:"projectBreakdown"`
}
