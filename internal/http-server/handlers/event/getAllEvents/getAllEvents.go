package getAllEvents

import (
	"context"
	"log/slog"
	"net/http"

	"eventCatalog/internal/lib/api/response"
	"eventCatalog/internal/lib/logger/sl"
	"eventCatalog/internal/models"

	"github.com/go-chi/render"
)

type EventsResponse struct {
	response.Response
	Events []models.Event `json:"events"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventsProvider
type EventsProvider interface {
	LoadAll(ctx context.Context) error
	Events() []models.Event
}

func New(log *slog.Logger, events EventsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getAllEvents.New"

		log = log.With(slog.String("op", op))

		if err := events.LoadAll(r.Context()); err != nil {
			log.Error("failed to refresh events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get events"))
			return
		}

		list := events.Events()

		log.Info("events retrieved successfully", slog.Int("count", len(list)))

		responseOK(w, r, list)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, events []models.Event) {
	render.JSON(w, r, EventsResponse{
		Response: response.OK(),
		Events:   events,
	})
}
