package getEvent

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventCatalog/internal/http-server/handlers/event/getEvent/mocks"
	"eventCatalog/internal/lib/logger/handlers/slogdiscard"
	"eventCatalog/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	storedEvent := models.Event{
		ID:            "e1",
		Title:         "Go Meetup",
		Date:          "2026-10-01",
		Location:      "Moscow",
		Category:      models.CategoryMeetup,
		Capacity:      50,
		Registered:    12,
		OrganizerID:   "org1",
		OrganizerName: "Go Community",
		Status:        models.StatusUpcoming,
	}

	testCases := []struct {
		name           string
		eventID        string
		mockSetup      func(m *mocks.EventProvider)
		expectedStatus int
		expectedError  string
	}{
		{
			name:    "Success",
			eventID: "e1",
			mockSetup: func(m *mocks.EventProvider) {
				m.On("GetEventByID", "e1").Return(storedEvent, true)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:    "Not found",
			eventID: "missing",
			mockSetup: func(m *mocks.EventProvider) {
				m.On("GetEventByID", "missing").Return(models.Event{}, false)
			},
			expectedStatus: http.StatusNotFound,
			expectedError:  "event not found",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			providerMock := mocks.NewEventProvider(t)
			tc.mockSetup(providerMock)

			handler := New(logger, providerMock)

			router := chi.NewRouter()
			router.Get("/events/{id}", handler)

			req, err := http.NewRequest(http.MethodGet, "/events/"+tc.eventID, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			var resp EventResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

			if tc.expectedError != "" {
				assert.Equal(t, tc.expectedError, resp.Error)
				return
			}

			assert.Equal(t, "OK", resp.Status)
			assert.Equal(t, storedEvent, resp.Event)
		})
	}
}
