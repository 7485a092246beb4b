package updateEvent

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"eventCatalog/internal/catalog"
	"eventCatalog/internal/lib/api/response"
	"eventCatalog/internal/lib/logger/sl"
	"eventCatalog/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type UpdateRequest struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Date        *string   `json:"date,omitempty"`
	Time        *string   `json:"time,omitempty"`
	Location    *string   `json:"location,omitempty"`
	Category    *string   `json:"category,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
	Capacity    *int      `json:"capacity,omitempty"`
	Price       *float64  `json:"price,omitempty"`
	Image       *string   `json:"image,omitempty"`
}

type UpdateResponse struct {
	response.Response
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventUpdater
type EventUpdater interface {
	UpdateEvent(ctx context.Context, id string, patch models.EventPatch) error
}

func New(log *slog.Logger, events EventUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.updateEvent.New"

		log = log.With(slog.String("op", op))

		id := chi.URLParam(r, "id")
		if id == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		log = log.With(slog.String("event_id", id))

		var req UpdateRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		patch := models.EventPatch{
			Title:       req.Title,
			Description: req.Description,
			Date:        req.Date,
			Time:        req.Time,
			Location:    req.Location,
			Tags:        req.Tags,
			Capacity:    req.Capacity,
			Price:       req.Price,
			Image:       req.Image,
		}
		if req.Category != nil {
			category := models.ClassifyCategory(*req.Category)
			patch.Category = &category
		}

		if err = events.UpdateEvent(r.Context(), id, patch); err != nil {
			log.Error("failed to update event", sl.Err(err))

			if errors.Is(err, catalog.ErrValidation) {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid event update"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update event"))

			return
		}

		log.Info("event updated")

		render.JSON(w, r, UpdateResponse{
			Response: response.OK(),
		})
	}
}
