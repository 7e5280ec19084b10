package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/srgjo27/campus_event/internal/core/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	// Delete removes the user together with everything that hangs off it.
	Delete(ctx context.Context, id uuid.UUID) error
}

type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	// GetByID returns the event regardless of its status.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	// GetPublishedDetail returns a published event with its registered count.
	GetPublishedDetail(ctx context.Context, id uuid.UUID) (*domain.EventDetail, error)
	ListPublished(ctx context.Context, filter domain.EventFilter) ([]domain.Event, error)
	Update(ctx context.Context, event *domain.Event, replaceCategories bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type RegistrationRepository interface {
	// Register atomically checks the event, duplicate and capacity rules
	// and inserts the registration.
	Register(ctx context.Context, eventID, userID uuid.UUID, now time.Time) (*domain.Registration, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Registration, error)
	GetDetail(ctx context.Context, id uuid.UUID) (*domain.RegistrationDetail, error)
	// SubmitProof applies the proof only while the payment is still open and
	// the registration belongs to userID.
	SubmitProof(ctx context.Context, id, userID uuid.UUID, proofURL string, notes *string, now time.Time) (*domain.Registration, error)
	// Confirm completes the payment only while it is still open.
	Confirm(ctx context.Context, id, adminID uuid.UUID, now time.Time) (*domain.Registration, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.RegistrationDetail, error)
	ListByPaymentStatus(ctx context.Context, status domain.PaymentStatus) ([]domain.RegistrationDetail, error)
}

type ReportRepository interface {
	Sales(ctx context.Context, filter domain.SalesFilter) ([]domain.SalesLine, error)
	EventSummary(ctx context.Context) ([]domain.EventReportLine, error)
}

type BlogRepository interface {
	Create(ctx context.Context, blog *domain.Blog) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Blog, error)
	List(ctx context.Context, filter domain.BlogFilter) ([]domain.Blog, error)
	Update(ctx context.Context, blog *domain.Blog, replaceCategories bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	GetByID(ctx context.Context, kind domain.CategoryKind, id uuid.UUID) (*domain.Category, error)
	// FindByIDs returns the categories of the given kind among ids; missing
	// ids are simply absent from the result.
	FindByIDs(ctx context.Context, kind domain.CategoryKind, ids []uuid.UUID) ([]domain.Category, error)
	List(ctx context.Context, kind domain.CategoryKind) ([]domain.Category, error)
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, kind domain.CategoryKind, id uuid.UUID) error
}
