package models

import (
	"time"
)

type Commit struct {
	ID             string    `db:"id" json:"id"`
	ShortID        string    `db:"short_id" json:"short_id"`
	Title          string    `db:"title" json:"title"`
	Message        string    `db:"message" json:"message"`
	AuthorName     string    `db:"author_name" json:"author_name"`
	AuthorEmail    string    `db:"author_email" json:"author_email"`
	AuthoredDate   time.Time `db:"authored_date" json:"authored_date"`
	CommitterName  string    `db:"committer_name" json:"committer_name"`
	CommitterEmail string    `db:"committer_email" json:"committer_email"`
	CommittedDate  time.Time `db:"committed_date" json:"committed_date"`
	WebURL         string    `db:"web_url" json:"web_url"`
	Additions      int       `db:"additions" json:"additions"`
	Deletions      int       `db:"deletions" json:"deletions"`
	Total          int       `db:"total" json:"total"`
	ProjectID      int       `db:"project_id" json:"project_id"`
}
