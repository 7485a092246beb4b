package local

import (
	"time"

	"eventCatalog/internal/models"

	"github.com/google/uuid"
)

// Collections is the pair of slices the catalog store owns. The engine is
// handed a *Collections per call and never retains it.
type Collections struct {
	Events        []models.Event
	Registrations []models.Registration
}

// Engine performs fully-optimistic mutations against in-memory collections.
// Every operation is synchronous; the caller is responsible for holding the
// store lock around a call, which makes each check-then-act atomic.
type Engine struct {
	now   func() time.Time
	newID func() string
}

func NewEngine() *Engine {
	return &Engine{
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// NewEngineWith injects the clock and id source. Used in tests.
func NewEngineWith(now func() time.Time, newID func() string) *Engine {
	return &Engine{now: now, newID: newID}
}

// Create appends a new event built from the draft. Registered starts at
// zero and status at upcoming regardless of what the draft says.
func (e *Engine) Create(c *Collections, draft models.EventDraft) models.Event {
	ev := models.Event{
		ID:            e.newID(),
		Title:         draft.Title,
		Description:   draft.Description,
		Date:          draft.Date,
		Time:          draft.Time,
		Location:      draft.Location,
		Category:      draft.Category,
		Tags:          draft.Tags,
		Capacity:      draft.Capacity,
		Registered:    0,
		Price:         draft.Price,
		OrganizerID:   draft.OrganizerID,
		OrganizerName: draft.OrganizerName,
		Status:        models.StatusUpcoming,
		Image:         draft.Image,
	}

	c.Events = append(c.Events, ev)

	return ev
}

// Update merges the patch into the matching event. A missing id is a
// silent no-op so the command stays idempotent.
func (e *Engine) Update(c *Collections, id string, patch models.EventPatch) {
	for i := range c.Events {
		if c.Events[i].ID == id {
			patch.Apply(&c.Events[i])
			return
		}
	}
}

// Delete removes the event and soft-cancels every registration that
// references it. Registrations are never physically removed.
func (e *Engine) Delete(c *Collections, id string) {
	idx := -1
	for i := range c.Events {
		if c.Events[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}

	c.Events = append(c.Events[:idx], c.Events[idx+1:]...)

	for i := range c.Registrations {
		if c.Registrations[i].EventID == id {
			c.Registrations[i].Status = models.RegistrationCancelled
		}
	}
}

// Register claims a spot for the user. Returns false without mutating
// anything if the event is unknown, full, or the user already holds an
// active registration. On success the registered count moves by exactly 1.
func (e *Engine) Register(c *Collections, eventID, userID string) bool {
	idx := -1
	for i := range c.Events {
		if c.Events[i].ID == eventID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}

	if c.Events[idx].Registered >= c.Events[idx].Capacity {
		return false
	}

	if c.IsRegistered(eventID, userID) {
		return false
	}

	c.Registrations = append(c.Registrations, models.Registration{
		ID:           e.newID(),
		EventID:      eventID,
		UserID:       userID,
		RegisteredAt: e.now(),
		Status:       models.RegistrationConfirmed,
	})
	c.Events[idx].Registered++

	return true
}

// Cancel releases the user's active registration for the event. No-op when
// none exists. The registered count is clamped at zero so a cancel can
// never drive it negative, even against inconsistent state.
func (e *Engine) Cancel(c *Collections, eventID, userID string) {
	cancelled := false
	for i := range c.Registrations {
		r := &c.Registrations[i]
		if r.EventID == eventID && r.UserID == userID && r.Active() {
			r.Status = models.RegistrationCancelled
			cancelled = true
		}
	}
	if !cancelled {
		return
	}

	for i := range c.Events {
		if c.Events[i].ID == eventID {
			if c.Events[i].Registered > 0 {
				c.Events[i].Registered--
			}
			return
		}
	}
}

// RefreshStatuses re-derives each event's lifecycle status from the clock.
// Cancelled events stay cancelled.
func (e *Engine) RefreshStatuses(c *Collections) {
	now := e.now()
	for i := range c.Events {
		if c.Events[i].Status == models.StatusCancelled {
			continue
		}
		c.Events[i].Status = models.DeriveStatus(c.Events[i].Date, now)
	}
}
