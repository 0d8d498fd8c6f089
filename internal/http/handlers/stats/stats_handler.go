package stats

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"gitlab-activity-dashboard/internal/http/api"
	"gitlab-activity-dashboard/internal/lib"
	"gitlab-activity-dashboard/internal/lib/sl"
	"gitlab-activity-dashboard/internal/models"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

// defaultWindow is the stats range when the request has no bounds.
const defaultWindow = 30 * 24 * time.Hour

type statsService interface {
	GetDashboardStats(ctx context.Context, since, until time.Time) (*models.DashboardStats, error)
}

type StatsHandler struct {
	log     *slog.Logger
	service statsService
}

func NewStatsHandler(log *slog.Logger, s statsService) *StatsHandler {
	return &StatsHandler{
		log:     log,
		service: s,
	}
}

func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.stats.GetStats"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	until := time.Now()
	since := until.Add(-defaultWindow)

	if raw := r.URL.Query().Get("since"); raw != "" {
		t, err := lib.ParseDate(raw)
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, api.Error(api.ErrBadRequest, "since must be an RFC3339 timestamp or YYYY-MM-DD date"))
			return
		}
		since = t
	}
	if raw := r.URL.Query().Get("until"); raw != "" {
		t, err := lib.ParseDate(raw)
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, api.Error(api.ErrBadRequest, "until must be an RFC3339 timestamp or YYYY-MM-DD date"))
			return
		}
		until = t
	}

	resp, err := h.service.GetDashboardStats(ctx, since, until)
	if err != nil {
		log.Error("error while calculating statistics", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, resp)
}
