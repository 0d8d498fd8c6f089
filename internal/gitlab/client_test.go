package gitlab_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"gitlab-activity-dashboard/internal/gitlab"
	"gitlab-activity-dashboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_GetActiveUsers_PaginatesAndFilters(t *testing.T) {
	var pagesServed []int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v4/users", r.URL.Path)
		require.Equal(t, "token-123", r.Header.Get("PRIVATE-TOKEN"))

		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))
		require.Equal(t, 100, perPage)
		pagesServed = append(pagesServed, page)

		var users []models.User
		switch page {
		case 1:
			for i := 1; i <= perPage; i++ {
				users = append(users, models.User{ID: i, Username: fmt.Sprintf("user%d", i), State: "active"})
			}
		case 2:
			users = []models.User{
				{ID: 101, Username: "active-one", State: "active"},
				{ID: 102, Username: "blocked-one", State: "blocked"},
			}
		}
		json.NewEncoder(w).Encode(users)
	}))
	defer srv.Close()

	client := gitlab.NewClient(gitlab.Config{BaseURL: srv.URL, PrivateToken: "token-123"})
	users, err := client.GetActiveUsers(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, pagesServed, "short page stops pagination")
	assert.Len(t, users, 101, "blocked users are filtered out")
}

func TestClient_GetActiveUsers_GroupScope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v4/groups/42/members", r.URL.Path)
		json.NewEncoder(w).Encode([]models.User{{ID: 1, State: "active"}})
	}))
	defer srv.Close()

	client := gitlab.NewClient(gitlab.Config{BaseURL: srv.URL, PrivateToken: "t", GroupID: "42"})
	users, err := client.GetActiveUsers(context.Background())

	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestClient_GetUserEvents_ParsesPushData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v4/users/7/events", r.URL.Path)
		assert.Equal(t, "2024-01-01", r.URL.Query().Get("after"))
		assert.Equal(t, "2024-01-31", r.URL.Query().Get("before"))

		fmt.Fprint(w, `[
			{
				"id": 555,
				"project_id": 3,
				"action_name": "pushed to",
				"author_id": 7,
				"target_title": null,
				"created_at": "2024-01-15T10:30:00Z",
				"push_data": {
					"commit_count": 4,
					"action": "pushed",
					"ref_type": "branch",
					"ref": "main",
					"commit_from": "aaa",
					"commit_to": "bbb"
				}
			},
			{
				"id": 556,
				"project_id": 3,
				"action_name": "commented on",
				"author_id": 7,
				"target_title": "some note",
				"created_at": "2024-01-16T09:00:00Z"
			}
		]`)
	}))
	defer srv.Close()

	client := gitlab.NewClient(gitlab.Config{BaseURL: srv.URL, PrivateToken: "t"})
	after := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	before := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	events, err := client.GetUserEvents(context.Background(), 7, &after, &before)

	require.NoError(t, err)
	require.Len(t, events, 2)

	push := events[0]
	assert.Equal(t, int64(555), push.ID)
	assert.Equal(t, "pushed to", push.ActionName)
	require.NotNil(t, push.PushData)
	assert.Equal(t, 4, push.PushData.CommitCount)
	assert.Nil(t, push.TargetTitle)

	note := events[1]
	assert.Nil(t, note.PushData)
	require.NotNil(t, note.TargetTitle)
	assert.Equal(t, "some note", *note.TargetTitle)
}

func TestClient_GetProjects_SingleProjectScope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v4/projects/99", r.URL.Path)
		json.NewEncoder(w).Encode(models.Project{ID: 99, Name: "solo"})
	}))
	defer srv.Close()

	client := gitlab.NewClient(gitlab.Config{BaseURL: srv.URL, PrivateToken: "t", ProjectID: "99"})
	projects, err := client.GetProjects(context.Background())

	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "solo", projects[0].Name)
}

func TestClient_GetProjectCommits_FlattensStats(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v4/projects/3/repository/commits", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("with_stats"))

		fmt.Fprint(w, `[
			{
				"id": "deadbeef",
				"short_id": "dead",
				"title": "fix things",
				"authored_date": "2024-01-10T08:00:00Z",
				"committed_date": "2024-01-10T08:05:00Z",
				"stats": {"additions": 12, "deletions": 3, "total": 15}
			},
			{
				"id": "cafebabe",
				"short_id": "cafe",
				"title": "no stats on this one",
				"authored_date": "2024-01-11T08:00:00Z",
				"committed_date": "2024-01-11T08:05:00Z"
			}
		]`)
	}))
	defer srv.Close()

	client := gitlab.NewClient(gitlab.Config{BaseURL: srv.URL, PrivateToken: "t"})
	commits, err := client.GetProjectCommits(context.Background(), 3, nil, nil)

	require.NoError(t, err)
	require.Len(t, commits, 2)

	assert.Equal(t, "deadbeef", commits[0].ID)
	assert.Equal(t, 12, commits[0].Additions)
	assert.Equal(t, 3, commits[0].Deletions)
	assert.Equal(t, 15, commits[0].Total)
	assert.Equal(t, 3, commits[0].ProjectID)

	assert.Zero(t, commits[1].Additions)
	assert.Zero(t, commits[1].Deletions)
}

func TestClient_NonOKStatusIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := gitlab.NewClient(gitlab.Config{BaseURL: srv.URL, PrivateToken: "bad"})
	_, err := client.GetActiveUsers(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestClient_StopsAtPageCap(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		// always a full page: without the cap this would loop forever
		users := make([]models.User, 100)
		for i := range users {
			users[i] = models.User{ID: requests*1000 + i, State: "active"}
		}
		json.NewEncoder(w).Encode(users)
	}))
	defer srv.Close()

	client := gitlab.NewClient(gitlab.Config{BaseURL: srv.URL, PrivateToken: "t"})
	users, err := client.GetActiveUsers(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 100, requests)
	assert.Len(t, users, 100*100)
}
