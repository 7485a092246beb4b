package createEvent

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"eventCatalog/internal/catalog"
	"eventCatalog/internal/lib/api/response"
	"eventCatalog/internal/lib/logger/sl"
	"eventCatalog/internal/models"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type EventRequest struct {
	Title         string   `json:"title" validate:"required"`
	Description   string   `json:"description"`
	Date          string   `json:"date" validate:"required"`
	Time          string   `json:"time"`
	Location      string   `json:"location"`
	Category      string   `json:"category"`
	Tags          []string `json:"tags"`
	Capacity      int      `json:"capacity" validate:"required,gt=0"`
	Price         float64  `json:"price" validate:"gte=0"`
	OrganizerID   string   `json:"organizer_id" validate:"required"`
	OrganizerName string   `json:"organizer_name"`
	Image         string   `json:"image,omitempty"`
}

type EventResponse struct {
	response.Response
	Event models.Event `json:"event"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventAdder
type EventAdder interface {
	AddEvent(ctx context.Context, draft models.EventDraft) (models.Event, error)
}

func New(log *slog.Logger, events EventAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.createEvent.New"

		log = log.With(slog.String("op", op))

		var req EventRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		draft := models.EventDraft{
			Title:         req.Title,
			Description:   req.Description,
			Date:          req.Date,
			Time:          req.Time,
			Location:      req.Location,
			Category:      models.ClassifyCategory(req.Category),
			Tags:          req.Tags,
			Capacity:      req.Capacity,
			Price:         req.Price,
			OrganizerID:   req.OrganizerID,
			OrganizerName: req.OrganizerName,
			Image:         req.Image,
		}

		ev, err := events.AddEvent(r.Context(), draft)
		if err != nil {
			log.Error("failed to add event", sl.Err(err))

			if errors.Is(err, catalog.ErrValidation) {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid event"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to add event"))

			return
		}

		log.Info("event added", slog.String("id", ev.ID))

		responseOK(w, r, ev)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, ev models.Event) {
	render.JSON(w, r, EventResponse{
		Response: response.OK(),
		Event:    ev,
	})
}
