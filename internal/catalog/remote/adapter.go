package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"eventCatalog/internal/models"
)

// TokenSource supplies the bearer credential for outgoing calls. The
// session package implements it.
type TokenSource interface {
	Token() string
}

// APIError is an application-level rejection from the backend, as opposed
// to a transport failure. The backend's message is preserved verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("remote rejected: %s (status %d)", e.Message, e.StatusCode)
}

// Adapter translates between the entity model and the backend's wire shape.
// It keeps no durable state of its own; consistency comes from the catalog
// store reloading collections after every mutating call.
type Adapter struct {
	log            *slog.Logger
	client         *http.Client
	baseURL        string
	tokens         TokenSource
	capacityOffset int
}

func New(log *slog.Logger, baseURL string, timeout time.Duration, tokens TokenSource, capacityOffset int) *Adapter {
	return &Adapter{
		log:            log,
		client:         &http.Client{Timeout: timeout},
		baseURL:        baseURL,
		tokens:         tokens,
		capacityOffset: capacityOffset,
	}
}

func (a *Adapter) newRequest(ctx context.Context, method, endpoint string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+endpoint, body)
	if err != nil {
		return nil, err
	}

	if token := a.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req, nil
}

// do runs the request and decodes the response body into out (when out is
// non-nil). Non-2xx responses become an *APIError carrying the backend's
// message; anything below that level is a transport failure.
func (a *Adapter) do(req *http.Request, out interface{}) error {
	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var apiResp struct {
			Message string `json:"message"`
		}
		if err = json.NewDecoder(resp.Body).Decode(&apiResp); err != nil || apiResp.Message == "" {
			apiResp.Message = http.StatusText(resp.StatusCode)
		}

		return &APIError{StatusCode: resp.StatusCode, Message: apiResp.Message}
	}

	if out == nil {
		return nil
	}

	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

func (a *Adapter) listEvents(ctx context.Context, op, endpoint string) ([]models.Event, error) {
	req, err := a.newRequest(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var backendEvents []backendEvent
	if err = a.do(req, &backendEvents); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	a.log.Debug("events fetched",
		slog.String("op", op),
		slog.Int("count", len(backendEvents)),
	)

	return a.toModels(backendEvents), nil
}

func (a *Adapter) ListAllEvents(ctx context.Context) ([]models.Event, error) {
	return a.listEvents(ctx, "remote.ListAllEvents", "/api/v1/user/get-all-events")
}

// ListMyEvents returns the events owned by the credential's organizer
// identity; scoping happens server-side.
func (a *Adapter) ListMyEvents(ctx context.Context) ([]models.Event, error) {
	return a.listEvents(ctx, "remote.ListMyEvents", "/api/v1/organizer/organizer-all-events")
}

// ListMyRegistrations returns the events the credential's user is
// registered for.
func (a *Adapter) ListMyRegistrations(ctx context.Context) ([]models.Event, error) {
	return a.listEvents(ctx, "remote.ListMyRegistrations", "/api/v1/user/get-registered-event")
}

func (a *Adapter) CreateEvent(ctx context.Context, draft models.EventDraft) (models.Event, error) {
	const op = "remote.CreateEvent"

	body, contentType, err := encodeDraftForm(draft)
	if err != nil {
		return models.Event{}, fmt.Errorf("%s: %w", op, err)
	}

	req, err := a.newRequest(ctx, http.MethodPost, "/api/v1/organizer/create-event", body)
	if err != nil {
		return models.Event{}, fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Content-Type", contentType)

	var apiResp struct {
		Message string       `json:"message"`
		Event   backendEvent `json:"event"`
	}
	if err = a.do(req, &apiResp); err != nil {
		return models.Event{}, fmt.Errorf("%s: %w", op, err)
	}

	return a.toModel(apiResp.Event, time.Now()), nil
}

func (a *Adapter) UpdateEvent(ctx context.Context, id string, patch models.EventPatch) (models.Event, error) {
	const op = "remote.UpdateEvent"

	body, contentType, err := encodePatchForm(id, patch)
	if err != nil {
		return models.Event{}, fmt.Errorf("%s: %w", op, err)
	}

	req, err := a.newRequest(ctx, http.MethodPut, "/api/v1/organizer/update-event", body)
	if err != nil {
		return models.Event{}, fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Content-Type", contentType)

	var apiResp struct {
		Message string       `json:"message"`
		Event   backendEvent `json:"event"`
	}
	if err = a.do(req, &apiResp); err != nil {
		return models.Event{}, fmt.Errorf("%s: %w", op, err)
	}

	return a.toModel(apiResp.Event, time.Now()), nil
}

func (a *Adapter) DeleteEvent(ctx context.Context, id string) error {
	const op = "remote.DeleteEvent"

	req, err := a.newRequest(ctx, http.MethodDelete, "/api/v1/organizer/delete-event/"+id, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err = a.do(req, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// RegisterForEvent claims a spot for the credential's user. No local
// capacity pre-check happens here: the backend is the sole arbiter and its
// verdict comes back as an *APIError when it refuses.
func (a *Adapter) RegisterForEvent(ctx context.Context, eventID string) error {
	const op = "remote.RegisterForEvent"

	payload, err := json.Marshal(map[string]string{"eventId": eventID})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	req, err := a.newRequest(ctx, http.MethodPost, "/api/v1/user/register-event", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")

	if err = a.do(req, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (a *Adapter) DashboardStats(ctx context.Context) (models.DashboardStats, error) {
	const op = "remote.DashboardStats"

	req, err := a.newRequest(ctx, http.MethodGet, "/api/v1/organizer/dashboard", nil)
	if err != nil {
		return models.DashboardStats{}, fmt.Errorf("%s: %w", op, err)
	}

	var apiResp struct {
		TotalEvents        int            `json:"totalEvents"`
		TotalRegistrations int            `json:"totalRegistrations"`
		UpcomingEvents     int            `json:"upcomingEvents"`
		RecentEvents       []backendEvent `json:"recentEvents"`
	}
	if err = a.do(req, &apiResp); err != nil {
		return models.DashboardStats{}, fmt.Errorf("%s: %w", op, err)
	}

	return models.DashboardStats{
		TotalEvents:        apiResp.TotalEvents,
		TotalRegistrations: apiResp.TotalRegistrations,
		UpcomingEvents:     apiResp.UpcomingEvents,
		RecentEvents:       a.toModels(apiResp.RecentEvents),
	}, nil
}

func encodeDraftForm(draft models.EventDraft) (io.Reader, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	fields := map[string]string{
		"title":       draft.Title,
		"description": draft.Description,
		"date":        draft.Date,
		"time":        draft.Time,
		"location":    draft.Location,
		"category":    string(draft.Category),
		"price":       strconv.FormatFloat(draft.Price, 'f', -1, 64),
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, "", err
		}
	}

	if err := writeImagePart(w, draft.Upload); err != nil {
		return nil, "", err
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}

	return buf, w.FormDataContentType(), nil
}

func encodePatchForm(id string, patch models.EventPatch) (io.Reader, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	if err := w.WriteField("eventId", id); err != nil {
		return nil, "", err
	}

	fields := map[string]*string{
		"title":       patch.Title,
		"description": patch.Description,
		"date":        patch.Date,
		"time":        patch.Time,
		"location":    patch.Location,
	}
	for name, value := range fields {
		if value == nil {
			continue
		}
		if err := w.WriteField(name, *value); err != nil {
			return nil, "", err
		}
	}

	if patch.Category != nil {
		if err := w.WriteField("category", string(*patch.Category)); err != nil {
			return nil, "", err
		}
	}
	if patch.Price != nil {
		if err := w.WriteField("price", strconv.FormatFloat(*patch.Price, 'f', -1, 64)); err != nil {
			return nil, "", err
		}
	}

	if err := writeImagePart(w, patch.Upload); err != nil {
		return nil, "", err
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}

	return buf, w.FormDataContentType(), nil
}

func writeImagePart(w *multipart.Writer, upload *models.ImageUpload) error {
	if upload == nil {
		return nil
	}

	part, err := w.CreateFormFile("image", upload.Name)
	if err != nil {
		return err
	}

	_, err = part.Write(upload.Content)

	return err
}
