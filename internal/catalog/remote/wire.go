package remote

import (
	"encoding/json"
	"fmt"
	"time"

	"eventCatalog/internal/models"
)

// backendEvent is the remote service's event shape. Field names follow the
// backend schema exactly, including its spelling of resisteredUsers.
type backendEvent struct {
	ID              string       `json:"_id"`
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	Date            string       `json:"date"`
	Time            string       `json:"time"`
	Location        string       `json:"location"`
	Category        string       `json:"category"`
	Price           float64      `json:"price"`
	Image           string       `json:"image,omitempty"`
	Organizer       organizerRef `json:"organizer"`
	RegisteredUsers []string     `json:"resisteredUsers"`
}

// organizerRef handles the two shapes the backend sends for the organizer
// field: a bare id string, or an embedded user object.
type organizerRef struct {
	ID       string
	Name     string
	Email    string
	Embedded bool
}

func (o *organizerRef) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		*o = organizerRef{ID: id}
		return nil
	}

	var obj struct {
		ID    string `json:"_id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("organizer is neither an id nor an object: %w", err)
	}

	*o = organizerRef{ID: obj.ID, Name: obj.Name, Email: obj.Email, Embedded: true}

	return nil
}

const fallbackOrganizerName = "Organizer"

// toModel converts a backend event into the catalog's entity model.
//
// The backend does not report capacity; it is synthesized as the current
// registration count plus a fixed offset, so under remote mode capacity is
// an estimate, not the exact bound the local engine enforces.
func (a *Adapter) toModel(be backendEvent, now time.Time) models.Event {
	registered := len(be.RegisteredUsers)

	name := be.Organizer.Name
	if name == "" {
		name = fallbackOrganizerName
	}

	date := normalizeDate(be.Date)

	return models.Event{
		ID:            be.ID,
		Title:         be.Title,
		Description:   be.Description,
		Date:          date,
		Time:          be.Time,
		Location:      be.Location,
		Category:      models.ClassifyCategory(be.Category),
		Tags:          []string{},
		Capacity:      registered + a.capacityOffset,
		Registered:    registered,
		Price:         be.Price,
		OrganizerID:   be.Organizer.ID,
		OrganizerName: name,
		Status:        models.DeriveStatus(date, now),
		Image:         be.Image,
	}
}

func (a *Adapter) toModels(bes []backendEvent) []models.Event {
	now := time.Now()

	events := make([]models.Event, 0, len(bes))
	for _, be := range bes {
		events = append(events, a.toModel(be, now))
	}

	return events
}

// normalizeDate reduces the backend's timestamp-style dates to the catalog's
// YYYY-MM-DD form. Anything unparseable passes through untouched.
func normalizeDate(raw string) string {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.Format("2006-01-02")
	}

	return raw
}
