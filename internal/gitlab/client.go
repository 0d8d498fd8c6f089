// Package gitlab is a minimal typed client for the handful of GitLab REST
// endpoints the dashboard mirrors: users, per-user events, projects and
// repository commits. All list endpoints are paginated; fetches are capped
// at maxPages so a misbehaving instance cannot stall a sync forever.
package gitlab

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"gitlab-activity-dashboard/internal/models"
)

const (
	maxPages = 100
	perPage  = 100
)

type Config struct {
	BaseURL      string
	PrivateToken string
	GroupID      string
	ProjectID    string
}

type Client struct {
	http    *http.Client
	baseURL string
	token   string
	groupID string
	// projectID limits project discovery to a single configured project.
	projectID string
}

func NewClient(cfg Config) *Client {
	return &Client{
		http:      &http.Client{Timeout: 30 * time.Second},
		baseURL:   strings.TrimSuffix(cfg.BaseURL, "/") + "/api/v4",
		token:     cfg.PrivateToken,
		groupID:   cfg.GroupID,
		projectID: cfg.ProjectID,
	}
}

// GetActiveUsers lists group members when a group is configured, instance
// users otherwise, keeping only users in the "active" state.
func (c *Client) GetActiveUsers(ctx context.Context) ([]models.User, error) {
	path := "/users"
	if c.groupID != "" {
		path = "/groups/" + url.PathEscape(c.groupID) + "/members"
	}

	params := url.Values{}
	params.Set("state", "active")

	all, err := getPaged[models.User](ctx, c, path, params)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, len(all))
	for _, u := range all {
		if u.State == "active" {
			users = append(users, u)
		}
	}

	return users, nil
}

// GetUserEvents fetches a user's activity events, optionally bounded by
// date-only after/before parameters the way the events API expects.
func (c *Client) GetUserEvents(ctx context.Context, userID int, after, before *time.Time) ([]models.Event, error) {
	params := url.Values{}
	if after != nil {
		params.Set("after", after.UTC().Format("2006-01-02"))
	}
	if before != nil {
		params.Set("before", before.UTC().Format("2006-01-02"))
	}

	return getPaged[models.Event](ctx, c, "/users/"+strconv.Itoa(userID)+"/events", params)
}

// GetProjects resolves the configured scope: group projects, a single
// project, or all projects the token holder is a member of.
func (c *Client) GetProjects(ctx context.Context) ([]models.Project, error) {
	if c.projectID != "" {
		var project models.Project
		if err := c.getJSON(ctx, "/projects/"+url.PathEscape(c.projectID), nil, &project); err != nil {
			return nil, err
		}
		return []models.Project{project}, nil
	}

	if c.groupID != "" {
		return getPaged[models.Project](ctx, c, "/groups/"+url.PathEscape(c.groupID)+"/projects", nil)
	}

	params := url.Values{}
	params.Set("membership", "true")
	return getPaged[models.Project](ctx, c, "/projects", params)
}

// commitPayload mirrors the repository commits API shape, which nests
// line counts under "stats".
type commitPayload struct {
	ID             string    `json:"id"`
	ShortID        string    `json:"short_id"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	AuthorName     string    `json:"author_name"`
	AuthorEmail    string    `json:"author_email"`
	AuthoredDate   time.Time `json:"authored_date"`
	CommitterName  string    `json:"committer_name"`
	CommitterEmail string    `json:"committer_email"`
	CommittedDate  time.Time `json:"committed_date"`
	WebURL         string    `json:"web_url"`
	Stats          *struct {
		Additions int `json:"additions"`
		Deletions int `json:"deletions"`
		Total     int `json:"total"`
	} `json:"stats"`
}

// GetProjectCommits fetches a project's commits with line statistics.
func (c *Client) GetProjectCommits(ctx context.Context, projectID int, since, until *time.Time) ([]models.Commit, error) {
	params := url.Values{}
	params.Set("with_stats", "true")
	if since != nil {
		params.Set("since", since.UTC().Format(time.RFC3339))
	}
	if until != nil {
		params.Set("until", until.UTC().Format(time.RFC3339))
	}

	path := "/projects/" + strconv.Itoa(projectID) + "/repository/commits"
	payloads, err := getPaged[commitPayload](ctx, c, path, params)
	if err != nil {
		return nil, err
	}

	commits := make([]models.Commit, 0, len(payloads))
	for _, p := range payloads {
		commit := models.Commit{
			ID:             p.ID,
			ShortID:        p.ShortID,
			Title:          p.Title,
			Message:        p.Message,
			AuthorName:     p.AuthorName,
			AuthorEmail:    p.AuthorEmail,
			AuthoredDate:   p.AuthoredDate,
			CommitterName:  p.CommitterName,
			CommitterEmail: p.CommitterEmail,
			CommittedDate:  p.CommittedDate,
			WebURL:         p.WebURL,
			ProjectID:      projectID,
		}
		if p.Stats != nil {
			commit.Additions = p.Stats.Additions
			commit.Deletions = p.Stats.Deletions
			commit.Total = p.Stats.Total
		}
		commits = append(commits, commit)
	}

	return commits, nil
}

// getPaged walks a list endpoint page by page until a short page or the
// page cap. Truncation past the cap is deliberate policy, not an error.
func getPaged[T any](ctx context.Context, c *Client, path string, params url.Values) ([]T, error) {
	var items []T

	for page := 1; page <= maxPages; page++ {
		pageParams := url.Values{}
		for k, v := range params {
			pageParams[k] = v
		}
		pageParams.Set("page", strconv.Itoa(page))
		pageParams.Set("per_page", strconv.Itoa(perPage))

		var pageItems []T
		if err := c.getJSON(ctx, path, pageParams, &pageItems); err != nil {
			return nil, err
		}

		items = append(items, pageItems...)
		if len(pageItems) < perPage {
			break
		}
	}

	return items, nil
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("gitlab: GET %s: %w", path, err)
	}
	if params != nil {
		req.URL.RawQuery = params.Encode()
	}
	req.Header.Set("PRIVATE-TOKEN", c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("gitlab: GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("gitlab: GET %s: unexpected status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("gitlab: GET %s: decoding response: %w", path, err)
	}

	return nil
}
