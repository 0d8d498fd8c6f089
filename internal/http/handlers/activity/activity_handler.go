package activity

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"gitlab-activity-dashboard/internal/http/api"
	"gitlab-activity-dashboard/internal/lib"
	"gitlab-activity-dashboard/internal/lib/sl"
	"gitlab-activity-dashboard/internal/models"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type activityService interface {
	GetUsers(ctx context.Context) ([]models.User, error)
	GetEvents(ctx context.Context, userID *int, since, until *time.Time) ([]models.Event, error)
	GetProjects(ctx context.Context) ([]models.Project, error)
}

type ActivityHandler struct {
	log     *slog.Logger
	service activityService
}

func NewActivityHandler(log *slog.Logger, s activityService) *ActivityHandler {
	return &ActivityHandler{
		log:     log,
		service: s,
	}
}

func (h *ActivityHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.activity.GetUsers"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	users, err := h.service.GetUsers(r.Context())
	if err != nil {
		log.Error("error while retrieving users", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, users)
}

func (h *ActivityHandler) GetEvents(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.activity.GetEvents"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var userID *int
	if raw := r.URL.Query().Get("user_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, api.Error(api.ErrBadRequest, "user_id must be an integer"))
			return
		}
		userID = &id
	}

	var since, until *time.Time
	if raw := r.URL.Query().Get("since"); raw != "" {
		t, err := lib.ParseDate(raw)
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, api.Error(api.ErrBadRequest, "since must be an RFC3339 timestamp or YYYY-MM-DD date"))
			return
		}
		since = &t
	}
	if raw := r.URL.Query().Get("until"); raw != "" {
		t, err := lib.ParseDate(raw)
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, api.Error(api.ErrBadRequest, "until must be an RFC3339 timestamp or YYYY-MM-DD date"))
			return
		}
		until = &t
	}

	events, err := h.service.GetEvents(r.Context(), userID, since, until)
	if err != nil {
		log.Error("error while retrieving events", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, events)
}

func (h *ActivityHandler) GetProjects(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.activity.GetProjects"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	projects, err := h.service.GetProjects(r.Context())
	if err != nil {
		log.Error("error while retrieving projects", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, projects)
}
