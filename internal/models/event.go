package models

import (
	"time"
)

// ActionPushed is the only action that contributes to commit statistics.
const ActionPushed = "pushed to"

type PushData struct {
	CommitCount int     `json:"commit_count"`
	Action      string  `json:"action"`
	RefType     string  `json:"ref_type"`
	Ref         string  `json:"ref"`
	CommitFrom  *string `json:"commit_from"`
	CommitTo    *string `json:"commit_to"`
}

type Event struct {
	ID          int64     `json:"id"`
	ProjectID   int       `json:"project_id"`
	ActionName  string    `json:"action_name"`
	TargetID    *int64    `json:"target_id"`
	TargetType  *string   `json:"target_type"`
	AuthorID    int       `json:"author_id"`
	TargetTitle *string   `json:"target_title"`
	CreatedAt   time.Time `json:"created_at"`
	PushData    *PushData `json:"push_data,omitempty"`
}
