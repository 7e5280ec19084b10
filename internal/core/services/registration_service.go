package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/srgjo27/campus_event/internal/core/domain"
	"github.com/srgjo27/campus_event/internal/core/ports"
)

type RegistrationService struct {
	regRepo ports.RegistrationRepository
	cache   ports.EventCache
	log     zerolog.Logger
	now     func() time.Time
}

// NewRegistrationService builds the service. cache may be nil.
func NewRegistrationService(regRepo ports.RegistrationRepository, cache ports.EventCache, log zerolog.Logger) *RegistrationService {
	return &RegistrationService{
		regRepo: regRepo,
		cache:   cache,
		log:     log.With().Str("component", "registration_service").Logger(),
		now:     time.Now,
	}
}

func (s *RegistrationService) Register(ctx context.Context, eventID, userID uuid.UUID) (*domain.Registration, error) {
	reg, err := s.regRepo.Register(ctx, eventID, userID, s.now())
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, eventID); err != nil {
			s.log.Warn().Err(err).Str("event_id", eventID.String()).Msg("failed to invalidate event cache")
		}
	}

	s.log.Info().
		Str("registration_id", reg.ID.String()).
		Str("event_id", eventID.String()).
		Str("user_id", userID.String()).
		Str("payment_status", string(reg.PaymentStatus)).
		Msg("registration created")

	return reg, nil
}

func (s *RegistrationService) ListMine(ctx context.Context, userID uuid.UUID) ([]domain.RegistrationDetail, error) {
	return s.regRepo.ListByUser(ctx, userID)
}
