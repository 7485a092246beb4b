package registerEvent

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"eventCatalog/internal/lib/api/response"
	"eventCatalog/internal/lib/logger/sl"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type RegisterRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

type RegisterResponse struct {
	response.Response
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventRegistrar
type EventRegistrar interface {
	RegisterForEvent(ctx context.Context, eventID, userID string) (bool, error)
}

func New(log *slog.Logger, registrar EventRegistrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.registerEvent.New"

		log = log.With(slog.String("op", op))

		eventID := chi.URLParam(r, "id")
		if eventID == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		log = log.With(slog.String("event_id", eventID))

		var req RegisterRequest

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
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		ok, err := registrar.RegisterForEvent(r.Context(), eventID, req.UserID)
		if err != nil {
			log.Error("failed to register for event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to register for event"))
			return
		}

		if !ok {
			log.Info("registration refused", slog.String("user_id", req.UserID))
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, response.Error("event is full or user is already registered"))
			return
		}

		log.Info("registered for event successfully", slog.String("user_id", req.UserID))

		responseOK(w, r)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, RegisterResponse{
		Response: response.OK(),
	})
}
