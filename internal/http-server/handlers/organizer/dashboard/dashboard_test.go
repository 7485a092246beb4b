package dashboard

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventCatalog/internal/http-server/handlers/organizer/dashboard/mocks"
	"eventCatalog/internal/lib/logger/handlers/slogdiscard"
	"eventCatalog/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDashboardHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	stats := models.DashboardStats{
		TotalEvents:        4,
		TotalRegistrations: 37,
		UpcomingEvents:     2,
		RecentEvents: []models.Event{
			{ID: "e1", Title: "Latest", OrganizerID: "org-1"},
		},
	}

	t.Run("Success", func(t *testing.T) {
		t.Parallel()

		statsMock := mocks.NewStatsProvider(t)
		statsMock.On("DashboardStats", mock.Anything, "org-1").Return(stats, nil)

		handler := New(logger, statsMock)

		router := chi.NewRouter()
		router.Get("/organizers/{id}/dashboard", handler)

		req, err := http.NewRequest(http.MethodGet, "/organizers/org-1/dashboard", nil)
		require.NoError(t, err)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp StatsResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

		assert.Equal(t, "OK", resp.Status)
		assert.Equal(t, stats, resp.Stats)
	})

	t.Run("Stats failure", func(t *testing.T) {
		t.Parallel()

		statsMock := mocks.NewStatsProvider(t)
		statsMock.On("DashboardStats", mock.Anything, "org-1").
			Return(models.DashboardStats{}, errors.New("backend unavailable"))

		handler := New(logger, statsMock)

		router := chi.NewRouter()
		router.Get("/organizers/{id}/dashboard", handler)

		req, err := http.NewRequest(http.MethodGet, "/organizers/org-1/dashboard", nil)
		require.NoError(t, err)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"status":"Error","error":"failed to get dashboard stats"}`, rr.Body.String())
	})
}
