package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/srgjo27/campus_event/internal/core/domain"
	"github.com/srgjo27/campus_event/internal/core/ports/mocks"
	"github.com/srgjo27/campus_event/internal/core/services"
	"github.com/srgjo27/campus_event/internal/platform/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(t *testing.T) (*services.AuthService, *mocks.UserRepository, *mocks.TokenManager, *mocks.Notifier) {
	users := mocks.NewUserRepository(t)
	tokens := mocks.NewTokenManager(t)
	notifier := mocks.NewNotifier(t)

	return services.NewAuthService(users, tokens, auth.NewBcryptHasher(bcrypt.MinCost), notifier, zerolog.Nop()), users, tokens, notifier
}

func hashed(t *testing.T, password string) string {
	h, err := auth.NewBcryptHasher(bcrypt.MinCost).Hash(password)
	require.NoError(t, err)
	return h
}

func TestAuthRegister_Success(t *testing.T) {
	service, users, _, notifier := newAuthService(t)
	ctx := context.Background()

	users.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
		return u.Email == "budi@campus.ac.id" && u.Role == domain.RoleMahasiswa && u.PasswordHash != "secret1"
	})).Return(nil)
	notifier.On("NotifyWelcome", ctx, mock.AnythingOfType("*domain.User")).Return(errors.New("mail api down"))

	user, err := service.Register(ctx, services.RegisterUserInput{Name: "Budi", Email: " Budi@Campus.ac.id ", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, "budi@campus.ac.id", user.Email)
}

func TestAuthRegister_Fail_Validation(t *testing.T) {
	tests := []services.RegisterUserInput{
		{Name: "", Email: "a@b.co", Password: "secret1"},
		{Name: "A", Email: "not-an-email", Password: "secret1"},
		{Name: "A", Email: "a@b.co", Password: "123"},
	}

	for _, in := range tests {
		service, _, _, _ := newAuthService(t)

		_, err := service.Register(context.Background(), in)

		assert.ErrorIs(t, err, domain.ErrValidation)
	}
}

func TestAuthRegister_Fail_EmailTaken(t *testing.T) {
	service, users, _, _ := newAuthService(t)
	ctx := context.Background()

	users.On("Create", ctx, mock.Anything).Return(domain.ErrEmailTaken)

	_, err := service.Register(ctx, services.RegisterUserInput{Name: "A", Email: "a@b.co", Password: "secret1"})

	assert.Equal(t, domain.KindConflict, domain.KindOf(err))
}

func TestLogin_Success(t *testing.T) {
	service, users, tokens, _ := newAuthService(t)
	ctx := context.Background()

	user := &domain.User{ID: uuid.New(), Email: "a@b.co", PasswordHash: hashed(t, "secret1"), Role: domain.RoleAdmin}

	users.On("GetByEmail", ctx, "a@b.co").Return(user, nil)
	tokens.On("IssueAccess", domain.Actor{UserID: user.ID, Role: domain.RoleAdmin}).Return("jwt-token", nil)

	token, got, err := service.Login(ctx, "A@b.co", "secret1")

	require.NoError(t, err)
	assert.Equal(t, "jwt-token", token)
	assert.Equal(t, user.ID, got.ID)
}

func TestLogin_Fail_InvalidCredentials(t *testing.T) {
	service, users, _, _ := newAuthService(t)
	ctx := context.Background()

	users.On("GetByEmail", ctx, "ghost@b.co").Return(nil, domain.ErrUserNotFound)
	users.On("GetByEmail", ctx, "a@b.co").Return(&domain.User{PasswordHash: hashed(t, "secret1")}, nil)

	_, _, err := service.Login(ctx, "ghost@b.co", "secret1")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, _, err = service.Login(ctx, "a@b.co", "wrong-password")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestForgotPassword_StoresTokenAndSendsEmail(t *testing.T) {
	service, users, tokens, notifier := newAuthService(t)
	ctx := context.Background()

	user := &domain.User{ID: uuid.New(), Email: "a@b.co"}

	users.On("GetByEmail", ctx, "a@b.co").Return(user, nil)
	tokens.On("IssueReset", user.ID).Return("reset-token", nil)
	users.On("Update", ctx, mock.MatchedBy(func(u *domain.User) bool {
		return u.ResetToken != nil && *u.ResetToken == "reset-token"
	})).Return(nil)
	notifier.On("NotifyPasswordReset", ctx, user, "reset-token").Return(nil)

	assert.NoError(t, service.ForgotPassword(ctx, "a@b.co"))
}

func TestForgotPassword_UnknownEmailIsNotFound(t *testing.T) {
	service, users, _, _ := newAuthService(t)
	ctx := context.Background()

	users.On("GetByEmail", ctx, "ghost@b.co").Return(nil, domain.ErrUserNotFound)

	err := service.ForgotPassword(ctx, "ghost@b.co")

	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

func TestResetPassword_Success(t *testing.T) {
	service, users, tokens, _ := newAuthService(t)
	ctx := context.Background()

	stored := "reset-token"
	user := &domain.User{ID: uuid.New(), ResetToken: &stored, PasswordHash: hashed(t, "old-secret")}

	tokens.On("ParseReset", "reset-token").Return(user.ID, nil)
	users.On("GetByID", ctx, user.ID).Return(user, nil)
	users.On("Update", ctx, mock.MatchedBy(func(u *domain.User) bool {
		return u.ResetToken == nil && bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("new-secret")) == nil
	})).Return(nil)

	assert.NoError(t, service.ResetPassword(ctx, "reset-token", "new-secret"))
}

func TestResetPassword_Fail_TokenNotCurrent(t *testing.T) {
	service, users, tokens, _ := newAuthService(t)
	ctx := context.Background()

	newer := "newer-token"
	user := &domain.User{ID: uuid.New(), ResetToken: &newer}

	tokens.On("ParseReset", "older-token").Return(user.ID, nil)
	users.On("GetByID", ctx, user.ID).Return(user, nil)

	err := service.ResetPassword(ctx, "older-token", "new-secret")

	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}
