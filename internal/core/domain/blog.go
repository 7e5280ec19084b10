package domain

import (
	"time"

	"github.com/google/uuid"
)

type BlogStatus string

const (
	BlogDraft     BlogStatus = "draft"
	BlogPublished BlogStatus = "published"
)

func (s BlogStatus) Valid() bool {
	return s == BlogDraft || s == BlogPublished
}

type Blog struct {
	ID         uuid.UUID
	Title      string
	Content    string
	ImageURL   *string
	Status     BlogStatus
	CreatedBy  uuid.UUID
	Categories []Category
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type BlogFilter struct {
	CategoryID    *uuid.UUID
	PublishedOnly bool
}

type BlogInput struct {
	Title       *string
	Content     *string
	ImageURL    *string
	Status      *BlogStatus
	CategoryIDs *[]uuid.UUID
}
