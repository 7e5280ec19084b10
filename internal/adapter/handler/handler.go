package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/srgjo27/campus_event/internal/core/domain"
	"github.com/srgjo27/campus_event/internal/core/services"
)

type AuthSvc interface {
	Register(ctx context.Context, in services.RegisterUserInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type EventSvc interface {
	List(ctx context.Context, filter domain.EventFilter) ([]domain.Event, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.EventDetail, error)
	Create(ctx context.Context, in domain.CreateEventInput) (*domain.Event, error)
	Update(ctx context.Context, id uuid.UUID, in domain.UpdateEventInput) (*domain.Event, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type RegistrationSvc interface {
	Register(ctx context.Context, eventID, userID uuid.UUID) (*domain.Registration, error)
	ListMine(ctx context.Context, userID uuid.UUID) ([]domain.RegistrationDetail, error)
}

type PaymentSvc interface {
	SubmitProof(ctx context.Context, in services.SubmitProofInput) (*domain.Registration, error)
	ConfirmPayment(ctx context.Context, registrationID, adminID uuid.UUID) (*domain.Registration, error)
	ListMine(ctx context.Context, userID uuid.UUID) ([]domain.RegistrationDetail, error)
	ListPending(ctx context.Context) ([]domain.RegistrationDetail, error)
}

type ReportSvc interface {
	Sales(ctx context.Context, filter domain.SalesFilter) (*domain.SalesReport, error)
	Events(ctx context.Context) ([]domain.EventReportLine, error)
}

type UserSvc interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	GetWithRegistrations(ctx context.Context, id uuid.UUID) (*domain.UserWithRegistrations, error)
	Update(ctx context.Context, id uuid.UUID, in domain.UserUpdate) (*domain.User, error)
	ChangePassword(ctx context.Context, id uuid.UUID, current, next string) error
	ChangeRole(ctx context.Context, id uuid.UUID, role domain.Role) (*domain.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type BlogSvc interface {
	ListPublished(ctx context.Context, categoryID *uuid.UUID) ([]domain.Blog, error)
	GetPublished(ctx context.Context, id uuid.UUID) (*domain.Blog, error)
	Create(ctx context.Context, authorID uuid.UUID, in domain.BlogInput) (*domain.Blog, error)
	Update(ctx context.Context, id uuid.UUID, in domain.BlogInput) (*domain.Blog, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type CategorySvc interface {
	List(ctx context.Context, kind domain.CategoryKind) ([]domain.Category, error)
	Get(ctx context.Context, kind domain.CategoryKind, id uuid.UUID) (*domain.Category, error)
	Create(ctx context.Context, kind domain.CategoryKind, name string) (*domain.Category, error)
	Rename(ctx context.Context, kind domain.CategoryKind, id uuid.UUID, name string) (*domain.Category, error)
	Delete(ctx context.Context, kind domain.CategoryKind, id uuid.UUID) error
}

type Services struct {
	Auth          AuthSvc
	Events        EventSvc
	Registrations RegistrationSvc
	Payments      PaymentSvc
	Reports       ReportSvc
	Users         UserSvc
	Blogs         BlogSvc
	Categories    CategorySvc
}

type Handler struct {
	svc Services
	log zerolog.Logger
}

func NewHandler(svc Services, log zerolog.Logger) *Handler {
	return &Handler{svc: svc, log: log.With().Str("component", "http").Logger()}
}
