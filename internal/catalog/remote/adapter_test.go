package remote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventCatalog/internal/lib/logger/handlers/slogdiscard"
	"eventCatalog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticToken string

func (t staticToken) Token() string { return string(t) }

func newTestAdapter(t *testing.T, handler http.HandlerFunc) *Adapter {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return New(slogdiscard.NewDiscardLogger(), srv.URL, 5*time.Second, staticToken("test-token"), 100)
}

func TestListAllEventsDecoding(t *testing.T) {
	t.Parallel()

	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/user/get-all-events", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{
				"_id": "e1",
				"title": "Go Conference",
				"description": "annual gathering",
				"date": "2099-09-01T00:00:00.000Z",
				"time": "09:00",
				"location": "Amsterdam",
				"category": "Conference",
				"price": 50,
				"organizer": {"_id": "org-1", "name": "Org One", "email": "org@example.com"},
				"resisteredUsers": ["u1", "u2", "u3"]
			},
			{
				"_id": "e2",
				"title": "Mystery Meetup",
				"description": "",
				"date": "2001-01-01T00:00:00.000Z",
				"time": "",
				"location": "Berlin",
				"category": "hackathon",
				"price": 0,
				"organizer": "org-2",
				"resisteredUsers": []
			}
		]`))
	})

	events, err := adapter.ListAllEvents(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 2)

	first := events[0]
	assert.Equal(t, "e1", first.ID)
	assert.Equal(t, "Go Conference", first.Title)
	assert.Equal(t, "2099-09-01", first.Date, "timestamp reduced to date")
	assert.Equal(t, models.CategoryConference, first.Category, "category classified case-insensitively")
	assert.Equal(t, 3, first.Registered)
	assert.Equal(t, 103, first.Capacity, "capacity is registered count plus the offset")
	assert.Equal(t, "org-1", first.OrganizerID)
	assert.Equal(t, "Org One", first.OrganizerName)
	assert.Equal(t, models.StatusUpcoming, first.Status)

	// Bare-id organizer shape.
	second := events[1]
	assert.Equal(t, "org-2", second.OrganizerID)
	assert.Equal(t, "Organizer", second.OrganizerName, "fallback name when the backend sends only an id")
	assert.Equal(t, models.CategoryOther, second.Category, "unknown category falls back to other")
	assert.Equal(t, 0, second.Registered)
	assert.Equal(t, 100, second.Capacity)
	assert.Equal(t, models.StatusCompleted, second.Status)
}

func TestOrganizerRefRejectsOtherShapes(t *testing.T) {
	t.Parallel()

	var ref organizerRef
	err := json.Unmarshal([]byte(`42`), &ref)
	assert.Error(t, err)
}

func TestRegisterForEvent(t *testing.T) {
	t.Parallel()

	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/user/register-event", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "e1", body["eventId"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message": "registered"}`))
	})

	err := adapter.RegisterForEvent(context.Background(), "e1")
	assert.NoError(t, err)
}

func TestRegisterForEventRejected(t *testing.T) {
	t.Parallel()

	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message": "already registered for this event"}`))
	})

	err := adapter.RegisterForEvent(context.Background(), "e1")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "already registered for this event", apiErr.Message, "backend message preserved")
}

func TestCreateEventMultipart(t *testing.T) {
	t.Parallel()

	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/organizer/create-event", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "Go Conference", r.FormValue("title"))
		assert.Equal(t, "2099-09-01", r.FormValue("date"))
		assert.Equal(t, "conference", r.FormValue("category"))
		assert.Equal(t, "50", r.FormValue("price"))

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "banner.png", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"message": "created",
			"event": {
				"_id": "e-new",
				"title": "Go Conference",
				"date": "2099-09-01T00:00:00.000Z",
				"time": "09:00",
				"location": "Amsterdam",
				"category": "conference",
				"price": 50,
				"organizer": "org-1",
				"resisteredUsers": []
			}
		}`))
	})

	draft := models.EventDraft{
		Title:       "Go Conference",
		Description: "annual gathering",
		Date:        "2099-09-01",
		Time:        "09:00",
		Location:    "Amsterdam",
		Category:    models.CategoryConference,
		Capacity:    100,
		Price:       50,
		OrganizerID: "org-1",
		Upload:      &models.ImageUpload{Name: "banner.png", Content: []byte("png-bytes")},
	}

	ev, err := adapter.CreateEvent(context.Background(), draft)
	require.NoError(t, err)
	assert.Equal(t, "e-new", ev.ID)
	assert.Equal(t, models.StatusUpcoming, ev.Status)
}

func TestUpdateEventSendsOnlyPatchedFields(t *testing.T) {
	t.Parallel()

	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v1/organizer/update-event", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "e1", r.FormValue("eventId"))
		assert.Equal(t, "New Title", r.FormValue("title"))
		assert.NotContains(t, r.MultipartForm.Value, "location", "untouched fields stay out of the form")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"message": "updated",
			"event": {"_id": "e1", "title": "New Title", "date": "2099-09-01T00:00:00.000Z", "organizer": "org-1", "resisteredUsers": []}
		}`))
	})

	title := "New Title"

	ev, err := adapter.UpdateEvent(context.Background(), "e1", models.EventPatch{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "New Title", ev.Title)
}

func TestDeleteEvent(t *testing.T) {
	t.Parallel()

	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v1/organizer/delete-event/e1", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message": "deleted"}`))
	})

	assert.NoError(t, adapter.DeleteEvent(context.Background(), "e1"))
}

func TestDashboardStats(t *testing.T) {
	t.Parallel()

	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/organizer/dashboard", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"totalEvents": 4,
			"totalRegistrations": 37,
			"upcomingEvents": 2,
			"recentEvents": [{"_id": "e1", "title": "Latest", "date": "2099-09-01T00:00:00.000Z", "organizer": "org-1", "resisteredUsers": ["u1"]}]
		}`))
	})

	stats, err := adapter.DashboardStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, stats.TotalEvents)
	assert.Equal(t, 37, stats.TotalRegistrations)
	assert.Equal(t, 2, stats.UpcomingEvents)
	require.Len(t, stats.RecentEvents, 1)
	assert.Equal(t, "e1", stats.RecentEvents[0].ID)
	assert.Equal(t, 1, stats.RecentEvents[0].Registered)
}

func TestTransportFailure(t *testing.T) {
	t.Parallel()

	// Никто не слушает на этом порту.
	adapter := New(slogdiscard.NewDiscardLogger(), "http://127.0.0.1:1", 500*time.Millisecond, staticToken(""), 100)

	_, err := adapter.ListAllEvents(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr), "transport failures are not API errors")
}

func TestErrorMessageFallback(t *testing.T) {
	t.Parallel()

	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`not json at all`))
	})

	err := adapter.DeleteEvent(context.Background(), "e1")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), apiErr.Message)
}
