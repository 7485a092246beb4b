package createEvent

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventCatalog/internal/http-server/handlers/event/createEvent/mocks"
	"eventCatalog/internal/lib/logger/handlers/slogdiscard"
	"eventCatalog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	validBody := `{
		"title": "Go Meetup",
		"date": "2025-09-01",
		"time": "18:00",
		"location": "Berlin",
		"category": "Meetup",
		"capacity": 50,
		"price": 10,
		"organizer_id": "org-1",
		"organizer_name": "Org One"
	}`

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.EventAdder)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			requestBody: validBody,
			mockSetup: func(m *mocks.EventAdder) {
				m.On("AddEvent", mock.Anything, mock.MatchedBy(func(d models.EventDraft) bool {
					return d.Title == "Go Meetup" && d.Category == models.CategoryMeetup && d.Capacity == 50
				})).Return(models.Event{ID: "e1", Title: "Go Meetup", Status: models.StatusUpcoming}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"id":"e1"`)
			},
		},
		{
			name:           "Invalid JSON",
			requestBody:    `invalid json`,
			mockSetup:      func(m *mocks.EventAdder) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:           "Missing title",
			requestBody:    `{"date": "2025-09-01", "capacity": 50, "organizer_id": "org-1"}`,
			mockSetup:      func(m *mocks.EventAdder) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Title")
			},
		},
		{
			name:           "Zero capacity",
			requestBody:    `{"title": "X", "date": "2025-09-01", "capacity": 0, "organizer_id": "org-1"}`,
			mockSetup:      func(m *mocks.EventAdder) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Capacity")
			},
		},
		{
			name:        "Store failure",
			requestBody: validBody,
			mockSetup: func(m *mocks.EventAdder) {
				m.On("AddEvent", mock.Anything, mock.Anything).
					Return(models.Event{}, errors.New("remote unavailable"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to add event"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			adderMock := mocks.NewEventAdder(t)
			tc.mockSetup(adderMock)

			handler := New(logger, adderMock)

			req, err := http.NewRequest(http.MethodPost, "/events", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}

func TestUnknownCategoryFallsBack(t *testing.T) {
	t.Parallel()

	adderMock := mocks.NewEventAdder(t)
	adderMock.On("AddEvent", mock.Anything, mock.MatchedBy(func(d models.EventDraft) bool {
		return d.Category == models.CategoryOther
	})).Return(models.Event{ID: "e1"}, nil)

	handler := New(slogdiscard.NewDiscardLogger(), adderMock)

	body := `{"title": "X", "date": "2025-09-01", "capacity": 5, "organizer_id": "org-1", "category": "hackathon"}`

	req, err := http.NewRequest(http.MethodPost, "/events", bytes.NewBufferString(body))
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp EventResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "OK", resp.Status)
}
