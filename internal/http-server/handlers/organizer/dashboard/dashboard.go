package dashboard

import (
	"context"
	"log/slog"
	"net/http"

	"eventCatalog/internal/lib/api/response"
	"eventCatalog/internal/lib/logger/sl"
	"eventCatalog/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type StatsResponse struct {
	response.Response
	Stats models.DashboardStats `json:"stats"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=StatsProvider
type StatsProvider interface {
	DashboardStats(ctx context.Context, organizerID string) (models.DashboardStats, error)
}

func New(log *slog.Logger, stats StatsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.organizer.dashboard.New"

		log = log.With(slog.String("op", op))

		organizerID := chi.URLParam(r, "id")
		if organizerID == "" {
			log.Error("organizer id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("organizer id is required"))
			return
		}

		log = log.With(slog.String("organizer_id", organizerID))

		s, err := stats.DashboardStats(r.Context(), organizerID)
		if err != nil {
			log.Error("failed to get dashboard stats", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get dashboard stats"))
			return
		}

		log.Info("dashboard stats retrieved successfully")

		render.JSON(w, r, StatsResponse{
			Response: response.OK(),
			Stats:    s,
		})
	}
}
