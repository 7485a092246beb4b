package organizerEvents

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

type EventsResponse struct {
	response.Response
	Events []models.Event `json:"events"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=OrganizerEventsProvider
type OrganizerEventsProvider interface {
	LoadMine(ctx context.Context) error
	GetEventsByOrganizer(organizerID string) []models.Event
}

func New(log *slog.Logger, events OrganizerEventsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.organizer.organizerEvents.New"

		log = log.With(slog.String("op", op))

		organizerID := chi.URLParam(r, "id")
		if organizerID == "" {
			log.Error("organizer id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("organizer id is required"))
			return
		}

		log = log.With(slog.String("organizer_id", organizerID))

		if err := events.LoadMine(r.Context()); err != nil {
			log.Error("failed to refresh organizer events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get organizer events"))
			return
		}

		list := events.GetEventsByOrganizer(organizerID)

		log.Info("organizer events retrieved successfully", slog.Int("count", len(list)))

		render.JSON(w, r, EventsResponse{
			Response: response.OK(),
			Events:   list,
		})
	}
}
