package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/srgjo27/campus_event/internal/core/domain"
)

type Notifier interface {
	NotifyPaymentConfirmed(ctx context.Context, detail *domain.RegistrationDetail) error
	NotifyWelcome(ctx context.Context, user *domain.User) error
	NotifyPasswordReset(ctx context.Context, user *domain.User, token string) error
}

type FileStore interface {
	// Save persists the upload under folder and returns its public URL.
	Save(ctx context.Context, folder string, upload domain.Upload) (string, error)
	Delete(ctx context.Context, url string) error
}

// EventCache holds published event details. A miss is (nil, nil).
type EventCache interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.EventDetail, error)
	Set(ctx context.Context, detail *domain.EventDetail) error
	Invalidate(ctx context.Context, id uuid.UUID) error
}

type TokenManager interface {
	IssueAccess(actor domain.Actor) (string, error)
	ParseAccess(token string) (domain.Actor, error)
	IssueReset(userID uuid.UUID) (string, error)
	ParseReset(token string) (uuid.UUID, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
