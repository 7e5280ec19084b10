package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/srgjo27/campus_event/internal/core/domain"
)

const (
	purposeAccess = "access"
	purposeReset  = "reset"
)

type claims struct {
	Role    domain.Role `json:"role,omitempty"`
	Purpose string      `json:"purpose"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies HS256 tokens. Access and reset tokens
// share the secret but are not interchangeable.
type TokenManager struct {
	secret    []byte
	accessTTL time.Duration
	resetTTL  time.Duration
	now       func() time.Time
}

func NewTokenManager(secret string, accessTTL, resetTTL time.Duration) *TokenManager {
	return &TokenManager{
		secret:    []byte(secret),
		accessTTL: accessTTL,
		resetTTL:  resetTTL,
		now:       time.Now,
	}
}

func (m *TokenManager) IssueAccess(actor domain.Actor) (string, error) {
	return m.sign(actor.UserID, actor.Role, purposeAccess, m.accessTTL)
}

func (m *TokenManager) ParseAccess(token string) (domain.Actor, error) {
	c, err := m.parse(token, purposeAccess)
	if err != nil {
		return domain.Actor{}, err
	}

	if !c.Role.Valid() {
		return domain.Actor{}, domain.ErrInvalidToken
	}

	id, err := uuid.Parse(c.Subject)
	if err != nil {
		return domain.Actor{}, domain.ErrInvalidToken
	}

	return domain.Actor{UserID: id, Role: c.Role}, nil
}

func (m *TokenManager) IssueReset(userID uuid.UUID) (string, error) {
	return m.sign(userID, "", purposeReset, m.resetTTL)
}

func (m *TokenManager) ParseReset(token string) (uuid.UUID, error) {
	c, err := m.parse(token, purposeReset)
	if err != nil {
		return uuid.Nil, err
	}

	id, err := uuid.Parse(c.Subject)
	if err != nil {
		return uuid.Nil, domain.ErrInvalidToken
	}

	return id, nil
}

func (m *TokenManager) sign(userID uuid.UUID, role domain.Role, purpose string, ttl time.Duration) (string, error) {
	now := m.now()
	c := claims{
		Role:    role,
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

func (m *TokenManager) parse(token, purpose string) (*claims, error) {
	var c claims
	_, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) || errors.Is(err, jwt.ErrTokenSignatureInvalid) || errors.Is(err, jwt.ErrTokenMalformed) {
			return nil, domain.ErrInvalidToken
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}

	if c.Purpose != purpose {
		return nil, domain.ErrInvalidToken
	}

	return &c, nil
}
