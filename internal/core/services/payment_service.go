package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/srgjo27/campus_event/internal/core/domain"
	"github.com/srgjo27/campus_event/internal/core/ports"
)

// notifyTimeout bounds the post-commit notification, which outlives the
// request context.
const notifyTimeout = 15 * time.Second

type SubmitProofInput struct {
	RegistrationID uuid.UUID
	UserID         uuid.UUID
	Proof          *domain.Upload
	Notes          *string
}

type PaymentService struct {
	regRepo  ports.RegistrationRepository
	files    ports.FileStore
	notifier ports.Notifier
	log      zerolog.Logger
	now      func() time.Time
}

func NewPaymentService(regRepo ports.RegistrationRepository, files ports.FileStore, notifier ports.Notifier, log zerolog.Logger) *PaymentService {
	return &PaymentService{
		regRepo:  regRepo,
		files:    files,
		notifier: notifier,
		log:      log.With().Str("component", "payment_service").Logger(),
		now:      time.Now,
	}
}

func (s *PaymentService) SubmitProof(ctx context.Context, in SubmitProofInput) (*domain.Registration, error) {
	if err := validateProof(in.Proof); err != nil {
		return nil, err
	}

	reg, err := s.regRepo.GetByID(ctx, in.RegistrationID)
	if err != nil {
		return nil, err
	}

	if reg.UserID != in.UserID {
		return nil, domain.ErrRegistrationNotFound
	}

	if !reg.PaymentStatus.CanSubmitProof() {
		return nil, domain.ErrAlreadyCompleted
	}

	url, err := s.files.Save(ctx, domain.ProofFolder, *in.Proof)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return nil, err
		}
		return nil, dependency("store payment proof", err)
	}

	updated, err := s.regRepo.SubmitProof(ctx, reg.ID, in.UserID, url, cleanNotes(in.Notes), s.now())
	if err != nil {
		s.discard(ctx, url)
		return nil, err
	}

	if reg.PaymentProofURL != nil && *reg.PaymentProofURL != url {
		s.discard(ctx, *reg.PaymentProofURL)
	}

	s.log.Info().
		Str("registration_id", reg.ID.String()).
		Str("user_id", in.UserID.String()).
		Msg("payment proof submitted")

	return updated, nil
}

func (s *PaymentService) ConfirmPayment(ctx context.Context, registrationID, adminID uuid.UUID) (*domain.Registration, error) {
	reg, err := s.regRepo.Confirm(ctx, registrationID, adminID, s.now())
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("registration_id", reg.ID.String()).
		Str("admin_id", adminID.String()).
		Msg("payment confirmed")

	s.notifyConfirmed(ctx, reg.ID)

	return reg, nil
}

func (s *PaymentService) ListMine(ctx context.Context, userID uuid.UUID) ([]domain.RegistrationDetail, error) {
	return s.regRepo.ListByUser(ctx, userID)
}

func (s *PaymentService) ListPending(ctx context.Context) ([]domain.RegistrationDetail, error) {
	return s.regRepo.ListByPaymentStatus(ctx, domain.PaymentPendingConfirmation)
}

// notifyConfirmed runs after the confirmation is committed. Its failures are
// logged and never change the outcome of the confirmation. A client that goes
// away after the commit does not cancel it.
func (s *PaymentService) notifyConfirmed(ctx context.Context, registrationID uuid.UUID) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
	defer cancel()

	logger := s.log.With().
		Str("registration_id", registrationID.String()).
		Str("kind", string(domain.KindDependencyFailure)).
		Logger()

	detail, err := s.regRepo.GetDetail(ctx, registrationID)
	if err != nil {
		logger.Error().Err(err).Msg("failed to load registration for notification")
		return
	}

	if err := s.notifier.NotifyPaymentConfirmed(ctx, detail); err != nil {
		logger.Error().Err(err).Str("email", detail.UserEmail).Msg("failed to send payment confirmation")
	}
}

func (s *PaymentService) discard(ctx context.Context, url string) {
	if err := s.files.Delete(ctx, url); err != nil {
		s.log.Warn().Err(err).Str("url", url).Msg("failed to delete payment proof")
	}
}

func validateProof(proof *domain.Upload) error {
	if proof == nil || len(proof.Data) == 0 {
		return invalid("payment proof is required")
	}

	if proof.Size() > domain.MaxProofSize {
		return invalid("payment proof exceeds %d bytes", domain.MaxProofSize)
	}

	mt := mimetype.Detect(proof.Data)
	if !mimetype.EqualsAny(mt.String(), domain.AllowedProofTypes...) {
		return invalid("unsupported payment proof type %s", mt.String())
	}

	return nil
}

func cleanNotes(notes *string) *string {
	if notes == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*notes)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}
