package models

// ImageUpload carries raw image bytes for the remote service's multipart
// endpoints. Not part of any JSON contract.
type ImageUpload struct {
	Name    string
	Content []byte
}

type EventDraft struct {
	Title         string        `json:"title" validate:"required"`
	Description   string        `json:"description"`
	Date          string        `json:"date" validate:"required"`
	Time          string        `json:"time"`
	Location      string        `json:"location"`
	Category      EventCategory `json:"category"`
	Tags          []string      `json:"tags"`
	Capacity      int           `json:"capacity" validate:"required,gt=0"`
	Price         float64       `json:"price" validate:"gte=0"`
	OrganizerID   string        `json:"organizer_id" validate:"required"`
	OrganizerName string        `json:"organizer_name"`
	Image         string        `json:"image,omitempty"`
	Upload        *ImageUpload  `json:"-"`
}

// EventPatch is a partial update: nil fields are left untouched.
type EventPatch struct {
	Title       *string        `json:"title,omitempty"`
	Description *string        `json:"description,omitempty"`
	Date        *string        `json:"date,omitempty"`
	Time        *string        `json:"time,omitempty"`
	Location    *string        `json:"location,omitempty"`
	Category    *EventCategory `json:"category,omitempty"`
	Tags        *[]string      `json:"tags,omitempty"`
	Capacity    *int           `json:"capacity,omitempty" validate:"omitempty,gt=0"`
	Price       *float64       `json:"price,omitempty" validate:"omitempty,gte=0"`
	Image       *string        `json:"image,omitempty"`
	Upload      *ImageUpload   `json:"-"`
}

func (p EventPatch) Apply(e *Event) {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.Time != nil {
		e.Time = *p.Time
	}
	if p.Location != nil {
		e.Location = *p.Location
	}
	if p.Category != nil {
		e.Category = *p.Category
	}
	if p.Tags != nil {
		e.Tags = *p.Tags
	}
	if p.Capacity != nil {
		e.Capacity = *p.Capacity
	}
	if p.Price != nil {
		e.Price = *p.Price
	}
	if p.Image != nil {
		e.Image = *p.Image
	}
}
