package models

import (
	"time"
)

type Project struct {
	ID                int        `db:"id" json:"id"`
	Name              string     `db:"name" json:"name"`
	NameWithNamespace string     `db:"name_with_namespace" json:"name_with_namespace"`
	Path              string     `db:"path" json:"path"`
	PathWithNamespace string     `db:"path_with_namespace" json:"path_with_namespace"`
	WebURL            string     `db:"web_url" json:"web_url"`
	AvatarURL         *string    `db:"avatar_url" json:"avatar_url"`
	CreatedAt         *time.Time `db:"created_at" json:"created_at,omitempty"`
	UpdatedAt         *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}
