package models

import (
	"time"
)

type User struct {
	ID        int        `db:"id" json:"id"`
	Username  string     `db:"username" json:"username"`
	Name      string     `db:"name" json:"name"`
	State     string     `db:"state" json:"state"`
	AvatarURL string     `db:"avatar_url" json:"avatar_url"`
	WebURL    string     `db:"web_url" json:"web_url"`
	Email     string     `db:"email" json:"email,omitempty"`
	CreatedAt *time.Time `db:"created_at" json:"created_at,omitempty"`
	UpdatedAt *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}
