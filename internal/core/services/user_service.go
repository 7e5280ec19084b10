package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/srgjo27/campus_event/internal/core/domain"
	"github.com/srgjo27/campus_event/internal/core/ports"
)

type UserService struct {
	users   ports.UserRepository
	regRepo ports.RegistrationRepository
	hasher  ports.PasswordHasher
	log     zerolog.Logger
	now     func() time.Time
}

func NewUserService(users ports.UserRepository, regRepo ports.RegistrationRepository, hasher ports.PasswordHasher, log zerolog.Logger) *UserService {
	return &UserService{
		users:   users,
		regRepo: regRepo,
		hasher:  hasher,
		log:     log.With().Str("component", "user_service").Logger(),
		now:     time.Now,
	}
}

func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	if users == nil {
		users = []domain.User{}
	}

	return users, nil
}

func (s *UserService) GetWithRegistrations(ctx context.Context, id uuid.UUID) (*domain.UserWithRegistrations, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	regs, err := s.regRepo.ListByUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if regs == nil {
		regs = []domain.RegistrationDetail{}
	}

	return &domain.UserWithRegistrations{User: *user, Registrations: regs}, nil
}

// Update changes name and/or email. Email uniqueness is enforced by the
// repository.
func (s *UserService) Update(ctx context.Context, id uuid.UUID, in domain.UserUpdate) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, invalid("name must not be empty")
		}
		user.Name = name
	}

	if in.Email != nil {
		email, err := normalizeEmail(*in.Email)
		if err != nil {
			return nil, err
		}
		user.Email = email
	}

	user.UpdatedAt = s.now().UTC()

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *UserService) ChangePassword(ctx context.Context, id uuid.UUID, current, next string) error {
	if err := validatePassword(next); err != nil {
		return err
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.hasher.Compare(user.PasswordHash, current); err != nil {
		return invalid("current password is incorrect")
	}

	hash, err := s.hasher.Hash(next)
	if err != nil {
		return err
	}

	user.PasswordHash = hash
	user.UpdatedAt = s.now().UTC()

	return s.users.Update(ctx, user)
}

func (s *UserService) ChangeRole(ctx context.Context, id uuid.UUID, role domain.Role) (*domain.User, error) {
	if !role.Valid() {
		return nil, invalid("unknown role %q", role)
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Role = role
	user.UpdatedAt = s.now().UTC()

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", id.String()).Str("role", string(role)).Msg("user role changed")

	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("user_id", id.String()).Msg("user deleted")

	return nil
}
