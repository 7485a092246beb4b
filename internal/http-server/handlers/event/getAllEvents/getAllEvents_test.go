package getAllEvents

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventCatalog/internal/http-server/handlers/event/getAllEvents/mocks"
	"eventCatalog/internal/lib/logger/handlers/slogdiscard"
	"eventCatalog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetAllEventsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	stored := []models.Event{
		{ID: "e1", Title: "Go Meetup", Status: models.StatusUpcoming},
		{ID: "e2", Title: "Jazz Night", Status: models.StatusOngoing},
	}

	t.Run("Success", func(t *testing.T) {
		t.Parallel()

		providerMock := mocks.NewEventsProvider(t)
		providerMock.On("LoadAll", mock.Anything).Return(nil)
		providerMock.On("Events").Return(stored)

		handler := New(logger, providerMock)

		req, err := http.NewRequest(http.MethodGet, "/events", nil)
		require.NoError(t, err)

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp EventsResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

		assert.Equal(t, "OK", resp.Status)
		assert.Equal(t, stored, resp.Events)
	})

	t.Run("Refresh failure", func(t *testing.T) {
		t.Parallel()

		providerMock := mocks.NewEventsProvider(t)
		providerMock.On("LoadAll", mock.Anything).Return(errors.New("backend unavailable"))

		handler := New(logger, providerMock)

		req, err := http.NewRequest(http.MethodGet, "/events", nil)
		require.NoError(t, err)

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		require.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"status":"Error","error":"failed to get events"}`, rr.Body.String())
	})
}
