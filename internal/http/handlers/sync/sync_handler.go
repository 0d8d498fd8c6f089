package sync

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"gitlab-activity-dashboard/internal/gitlab"
	"gitlab-activity-dashboard/internal/http/api"
	"gitlab-activity-dashboard/internal/lib"
	"gitlab-activity-dashboard/internal/lib/sl"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type syncService interface {
	Sync(ctx context.Context, cfg gitlab.Config, since, until *time.Time, withCommits bool) (*api.SyncResponse, error)
}

type SyncHandler struct {
	log     *slog.Logger
	service syncService
}

func NewSyncHandler(log *slog.Logger, s syncService) *SyncHandler {
	return &SyncHandler{
		log:     log,
		service: s,
	}
}

func (h *SyncHandler) Sync(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.sync.Sync"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	var input api.SyncRequest
	if err := render.DecodeJSON(r.Body, &input); err != nil {
		log.Error("failed to decode request body", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "bad request"))
		return
	}

	if err := validator.New().Struct(input); err != nil {
		validateError := err.(validator.ValidationErrors)

		log.Error("invalid request", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.ValidationError(validateError))
		return
	}

	var since, until *time.Time
	if input.Since != "" {
		t, err := lib.ParseDate(input.Since)
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, api.Error(api.ErrBadRequest, "since must be an RFC3339 timestamp or YYYY-MM-DD date"))
			return
		}
		since = &t
	}
	if input.Until != "" {
		t, err := lib.ParseDate(input.Until)
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, api.Error(api.ErrBadRequest, "until must be an RFC3339 timestamp or YYYY-MM-DD date"))
			return
		}
		until = &t
	}

	cfg := gitlab.Config{
		BaseURL:      input.BaseURL,
		PrivateToken: input.PrivateToken,
		GroupID:      input.GroupID,
		ProjectID:    input.ProjectID,
	}

	resp, err := h.service.Sync(ctx, cfg, since, until, input.WithCommits)
	if err != nil {
		log.Error("sync failed", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.Error(api.ErrCodeSyncFailed, "failed to sync data from GitLab"))
		return
	}

	log.Info("sync finished", slog.Int("users_count", resp.UsersCount))
	render.JSON(w, r, resp)
}
