package getEvent

import (
	"log/slog"
	"net/http"

	"eventCatalog/internal/lib/api/response"
	"eventCatalog/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type EventResponse struct {
	response.Response
	Event models.Event `json:"event"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventProvider
type EventProvider interface {
	GetEventByID(id string) (models.Event, bool)
}

func New(log *slog.Logger, events EventProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getEvent.New"

		log = log.With(slog.String("op", op))

		id := chi.URLParam(r, "id")
		if id == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		log = log.With(slog.String("event_id", id))

		ev, ok := events.GetEventByID(id)
		if !ok {
			log.Info("event not found")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("event not found"))
			return
		}

		log.Info("event retrieved successfully")

		responseOK(w, r, ev)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, ev models.Event) {
	render.JSON(w, r, EventResponse{
		Response: response.OK(),
		Event:    ev,
	})
}
