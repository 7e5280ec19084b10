package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type EventStatus string

const (
	EventDraft     EventStatus = "draft"
	EventPublished EventStatus = "published"
)

func (s EventStatus) Valid() bool {
	return s == EventDraft || s == EventPublished
}

type Event struct {
	ID            uuid.UUID
	Title         string
	Description   string
	StartsAt      time.Time
	Location      string
	Capacity      *int
	Price         decimal.Decimal
	ImageURL      *string
	Status        EventStatus
	CreatedBy     uuid.UUID
	OrganizerName string
	Categories    []Category
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (e *Event) IsFree() bool {
	return !e.Price.IsPositive()
}

func (e *Event) AcceptsRegistrations() bool {
	return e.Status == EventPublished
}

// HasRoomFor reports whether one more registration fits next to the
// registered ones. A nil capacity is unbounded.
func (e *Event) HasRoomFor(registered int) bool {
	return e.Capacity == nil || registered < *e.Capacity
}

type EventDetail struct {
	Event           Event
	RegisteredCount int
}

// AvailableSeats is nil for unbounded events.
func (d *EventDetail) AvailableSeats() *int {
	if d.Event.Capacity == nil {
		return nil
	}
	left := *d.Event.Capacity - d.RegisteredCount
	if left < 0 {
		left = 0
	}
	return &left
}

type EventFilter struct {
	Search   string
	Category string
	From     *time.Time
	To       *time.Time
	Limit    int
}

type CreateEventInput struct {
	Title       string
	Description string
	StartsAt    time.Time
	Location    string
	Capacity    *int
	Price       decimal.Decimal
	ImageURL    *string
	CategoryIDs []uuid.UUID
	CreatedBy   uuid.UUID
}

// UpdateEventInput carries a partial update; nil fields are left untouched.
// A non-nil CategoryIDs replaces the whole category set.
type UpdateEventInput struct {
	Title       *string
	Description *string
	StartsAt    *time.Time
	Location    *string
	Capacity    *int
	Price       *decimal.Decimal
	ImageURL    *string
	Status      *EventStatus
	CategoryIDs *[]uuid.UUID

	// ClearCapacity makes the event unlimited. It wins over Capacity.
	ClearCapacity bool
}

func (in UpdateEventInput) Apply(e *Event) {
	if in.Title != nil {
		e.Title = *in.Title
	}
	if in.Description != nil {
		e.Description = *in.Description
	}
	if in.StartsAt != nil {
		e.StartsAt = in.StartsAt.UTC()
	}
	if in.Location != nil {
		e.Location = *in.Location
	}
	if in.Capacity != nil {
		c := *in.Capacity
		e.Capacity = &c
	}
	if in.ClearCapacity {
		e.Capacity = nil
	}
	if in.Price != nil {
		e.Price = *in.Price
	}
	if in.ImageURL != nil {
		u := *in.ImageURL
		e.ImageURL = &u
	}
	if in.Status != nil {
		e.Status = *in.Status
	}
	if in.CategoryIDs != nil {
		cats := make([]Category, 0, len(*in.CategoryIDs))
		for _, id := range *in.CategoryIDs {
			cats = append(cats, Category{ID: id, Kind: CategoryEvent})
		}
		e.Categories = cats
	}
}
