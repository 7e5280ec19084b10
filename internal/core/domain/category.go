package domain

import (
	"time"

	"github.com/google/uuid"
)

type CategoryKind string

const (
	CategoryEvent CategoryKind = "event"
	CategoryBlog  CategoryKind = "blog"
)

func (k CategoryKind) Valid() bool {
	return k == CategoryEvent || k == CategoryBlog
}

type Category struct {
	ID        uuid.UUID
	Kind      CategoryKind
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func CategoryIDs(cats []Category) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(cats))
	for _, c := range cats {
		ids = append(ids, c.ID)
	}
	return ids
}
