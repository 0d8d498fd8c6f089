package api

// SyncRequest carries the GitLab connection parameters for one sync run.
// The private token is forwarded to GitLab as-is; it is never stored.
type SyncRequest struct {
	BaseURL      string `json:"base_url"      validate:"required,url"`
	PrivateToken string `json:"private_token" validate:"required"`
	GroupID      string `json:"group_id,omitempty"`
	ProjectID    string `json:"project_id,omitempty"`
	Since        string `json:"since,omitempty"`
	Until        string `json:"until,omitempty"`
	WithCommits  bool   `json:"with_commits,omitempty"`
}

type SyncResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	UsersCount int    `json:"usersCount"`
}
