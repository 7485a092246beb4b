package models

import (
	"strings"
	"time"
)

type EventCategory string

const (
	CategoryConference EventCategory = "conference"
	CategoryWorkshop   EventCategory = "workshop"
	CategoryMeetup     EventCategory = "meetup"
	CategorySeminar    EventCategory = "seminar"
	CategoryWebinar    EventCategory = "webinar"
	CategorySocial     EventCategory = "social"
	CategoryOther      EventCategory = "other"
)

// ClassifyCategory maps a raw category string to a known category,
// case-insensitively. Anything unrecognized becomes CategoryOther.
func ClassifyCategory(raw string) EventCategory {
	switch EventCategory(strings.ToLower(strings.TrimSpace(raw))) {
	case CategoryConference:
		return CategoryConference
	case CategoryWorkshop:
		return CategoryWorkshop
	case CategoryMeetup:
		return CategoryMeetup
	case CategorySeminar:
		return CategorySeminar
	case CategoryWebinar:
		return CategoryWebinar
	case CategorySocial:
		return CategorySocial
	default:
		return CategoryOther
	}
}

type EventStatus string

const (
	StatusUpcoming  EventStatus = "upcoming"
	StatusOngoing   EventStatus = "ongoing"
	StatusCompleted EventStatus = "completed"
	StatusCancelled EventStatus = "cancelled"
)

type Event struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	Date          string        `json:"date"`
	Time          string        `json:"time"`
	Location      string        `json:"location"`
	Category      EventCategory `json:"category"`
	Tags          []string      `json:"tags"`
	Capacity      int           `json:"capacity"`
	Registered    int           `json:"registered"`
	Price         float64       `json:"price"`
	OrganizerID   string        `json:"organizer_id"`
	OrganizerName string        `json:"organizer_name"`
	Status        EventStatus   `json:"status"`
	Image         string        `json:"image,omitempty"`
}

const dateLayout = "2006-01-02"

// DeriveStatus computes an event's lifecycle status from its date relative
// to now. Dates are opaque caller strings; an unparseable date is treated
// as not-yet-started. Day granularity: the event's day itself is ongoing.
// Cancellation is an explicit organizer action, never derived here.
func DeriveStatus(date string, now time.Time) EventStatus {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return StatusUpcoming
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	switch {
	case d.After(today):
		return StatusUpcoming
	case d.Equal(today):
		return StatusOngoing
	default:
		return StatusCompleted
	}
}
