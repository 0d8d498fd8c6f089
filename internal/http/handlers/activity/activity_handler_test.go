package activity_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gitlab-activity-dashboard/internal/http/api"
	"gitlab-activity-dashboard/internal/http/handlers"
	"gitlab-activity-dashboard/internal/http/handlers/activity"
	"gitlab-activity-dashboard/internal/http/handlers/mocks"
	"gitlab-activity-dashboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestActivityHandler_GetUsers_Success(t *testing.T) {
	mockService := &mocks.MockActivityService{}
	mockService.Test(t)
	h := activity.NewActivityHandler(handlers.NewLogger(), mockService)

	users := []models.User{
		{ID: 1, Username: "alice", Name: "Alice"},
		{ID: 2, Username: "bob", Name: "Bob"},
	}
	mockService.On("GetUsers", mock.Anything).Return(users, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	w := httptest.NewRecorder()

	h.GetUsers(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var got []models.User
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Equal(t, users, got)
}

func TestActivityHandler_GetEvents_AllFilters(t *testing.T) {
	mockService := &mocks.MockActivityService{}
	mockService.Test(t)
	h := activity.NewActivityHandler(handlers.NewLogger(), mockService)

	userID := 7
	since := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	mockService.On("GetEvents", mock.Anything, &userID, &since, &until).
		Return([]models.Event{}, nil).
		Once()

	req := httptest.NewRequest(http.MethodGet, "/api/events?user_id=7&since=2024-01-01&until=2024-01-31", nil)
	w := httptest.NewRecorder()

	h.GetEvents(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestActivityHandler_GetEvents_BadUserID(t *testing.T) {
	mockService := &mocks.MockActivityService{}
	mockService.Test(t)
	h := activity.NewActivityHandler(handlers.NewLogger(), mockService)

	req := httptest.NewRequest(http.MethodGet, "/api/events?user_id=bob", nil)
	w := httptest.NewRecorder()

	h.GetEvents(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrBadRequest, resp.Error.Code)
	mockService.AssertNotCalled(t, "GetEvents")
}

func TestActivityHandler_GetProjects_ServiceError(t *testing.T) {
	mockService := &mocks.MockActivityService{}
	mockService.Test(t)
	h := activity.NewActivityHandler(handlers.NewLogger(), mockService)

	mockService.On("GetProjects", mock.Anything).Return(nil, errors.New("db down")).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	w := httptest.NewRecorder()

	h.GetProjects(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrInternalErr, resp.Error.Code)
}
