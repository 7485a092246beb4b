package myRegistrations

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

type RegistrationsResponse struct {
	response.Response
	Registrations []models.Registration `json:"registrations"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RegistrationsProvider
type RegistrationsProvider interface {
	LoadMyRegistrations(ctx context.Context) error
	GetUserRegistrations(userID string) []models.Registration
}

func New(log *slog.Logger, registrations RegistrationsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.registration.myRegistrations.New"

		log = log.With(slog.String("op", op))

		userID := chi.URLParam(r, "id")
		if userID == "" {
			log.Error("user id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("user id is required"))
			return
		}

		log = log.With(slog.String("user_id", userID))

		if err := registrations.LoadMyRegistrations(r.Context()); err != nil {
			log.Error("failed to refresh registrations", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get registrations"))
			return
		}

		regs := registrations.GetUserRegistrations(userID)

		log.Info("registrations retrieved successfully", slog.Int("count", len(regs)))

		responseOK(w, r, regs)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, regs []models.Registration) {
	render.JSON(w, r, RegistrationsResponse{
		Response:      response.OK(),
		Registrations: regs,
	})
}
