package local

import (
	"time"

	"eventCatalog/internal/models"
)

// Queries are pure reads over the current collections, in insertion order.

func (c *Collections) EventByID(id string) (models.Event, bool) {
	for _, ev := range c.Events {
		if ev.ID == id {
			return ev, true
		}
	}

	return models.Event{}, false
}

func (c *Collections) EventsByOrganizer(organizerID string) []models.Event {
	var events []models.Event
	for _, ev := range c.Events {
		if ev.OrganizerID == organizerID {
			events = append(events, ev)
		}
	}

	return events
}

// RegistrationsByUser returns the user's active registrations only.
func (c *Collections) RegistrationsByUser(userID string) []models.Registration {
	var regs []models.Registration
	for _, r := range c.Registrations {
		if r.UserID == userID && r.Active() {
			regs = append(regs, r)
		}
	}

	return regs
}

func (c *Collections) IsRegistered(eventID, userID string) bool {
	for _, r := range c.Registrations {
		if r.EventID == eventID && r.UserID == userID && r.Active() {
			return true
		}
	}

	return false
}

// Stats summarizes an organizer's events the way the remote dashboard
// endpoint does: totals, upcoming count, and up to five newest events.
func (c *Collections) Stats(organizerID string, now time.Time) models.DashboardStats {
	events := c.EventsByOrganizer(organizerID)

	stats := models.DashboardStats{
		TotalEvents: len(events),
	}

	byID := make(map[string]struct{}, len(events))
	for _, ev := range events {
		byID[ev.ID] = struct{}{}
		if models.DeriveStatus(ev.Date, now) == models.StatusUpcoming {
			stats.UpcomingEvents++
		}
	}

	for _, r := range c.Registrations {
		if _, ok := byID[r.EventID]; ok && r.Active() {
			stats.TotalRegistrations++
		}
	}

	// Newest first, capped at five.
	for i := len(events) - 1; i >= 0 && len(stats.RecentEvents) < 5; i-- {
		stats.RecentEvents = append(stats.RecentEvents, events[i])
	}

	return stats
}
