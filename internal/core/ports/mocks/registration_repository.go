package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/srgjo27/campus_event/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

type RegistrationRepository struct {
	mock.Mock
}

func (_m *RegistrationRepository) Register(ctx context.Context, eventID, userID uuid.UUID, now time.Time) (*domain.Registration, error) {
	ret := _m.Called(ctx, eventID, userID, now)

	var r0 *domain.Registration
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Registration)
	}
	return r0, ret.Error(1)
}

func (_m *RegistrationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Registration, error) {
	ret := _m.Called(ctx, id)

	var r0 *domain.Registration
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Registration)
	}
	return r0, ret.Error(1)
}

func (_m *RegistrationRepository) GetDetail(ctx context.Context, id uuid.UUID) (*domain.RegistrationDetail, error) {
	ret := _m.Called(ctx, id)

	var r0 *domain.RegistrationDetail
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.RegistrationDetail)
	}
	return r0, ret.Error(1)
}

func (_m *RegistrationRepository) SubmitProof(ctx context.Context, id, userID uuid.UUID, proofURL string, notes *string, now time.Time) (*domain.Registration, error) {
	ret := _m.Called(ctx, id, userID, proofURL, notes, now)

	var r0 *domain.Registration
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Registration)
	}
	return r0, ret.Error(1)
}

func (_m *RegistrationRepository) Confirm(ctx context.Context, id, adminID uuid.UUID, now time.Time) (*domain.Registration, error) {
	ret := _m.Called(ctx, id, adminID, now)

	var r0 *domain.Registration
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Registration)
	}
	return r0, ret.Error(1)
}

func (_m *RegistrationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.RegistrationDetail, error) {
	ret := _m.Called(ctx, userID)

	var r0 []domain.RegistrationDetail
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.RegistrationDetail)
	}
	return r0, ret.Error(1)
}

func (_m *RegistrationRepository) ListByPaymentStatus(ctx context.Context, status domain.PaymentStatus) ([]domain.RegistrationDetail, error) {
	ret := _m.Called(ctx, status)

	var r0 []domain.RegistrationDetail
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.RegistrationDetail)
	}
	return r0, ret.Error(1)
}

func NewRegistrationRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *RegistrationRepository {
	m := &RegistrationRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
