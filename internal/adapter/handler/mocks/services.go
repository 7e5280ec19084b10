package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/srgjo27/campus_event/internal/core/domain"
	"github.com/srgjo27/campus_event/internal/core/services"
	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

type AuthSvc struct {
	mock.Mock
}

func (_m *AuthSvc) Register(ctx context.Context, in services.RegisterUserInput) (*domain.User, error) {
	ret := _m.Called(ctx, in)

	var r0 *domain.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.User)
	}
	return r0, ret.Error(1)
}

func (_m *AuthSvc) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	ret := _m.Called(ctx, email, password)

	var r1 *domain.User
	if ret.Get(1) != nil {
		r1 = ret.Get(1).(*domain.User)
	}
	return ret.String(0), r1, ret.Error(2)
}

func (_m *AuthSvc) ForgotPassword(ctx context.Context, email string) error {
	return _m.Called(ctx, email).Error(0)
}

func (_m *AuthSvc) ResetPassword(ctx context.Context, token, newPassword string) error {
	return _m.Called(ctx, token, newPassword).Error(0)
}

func NewAuthSvc(t testingT) *AuthSvc {
	m := &AuthSvc{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type EventSvc struct {
	mock.Mock
}

func (_m *EventSvc) List(ctx context.Context, filter domain.EventFilter) ([]domain.Event, error) {
	ret := _m.Called(ctx, filter)

	var r0 []domain.Event
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Event)
	}
	return r0, ret.Error(1)
}

func (_m *EventSvc) Get(ctx context.Context, id uuid.UUID) (*domain.EventDetail, error) {
	ret := _m.Called(ctx, id)

	var r0 *domain.EventDetail
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.EventDetail)
	}
	return r0, ret.Error(1)
}

func (_m *EventSvc) Create(ctx context.Context, in domain.CreateEventInput) (*domain.Event, error) {
	ret := _m.Called(ctx, in)

	var r0 *domain.Event
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Event)
	}
	return r0, ret.Error(1)
}

func (_m *EventSvc) Update(ctx context.Context, id uuid.UUID, in domain.UpdateEventInput) (*domain.Event, error) {
	ret := _m.Called(ctx, id, in)

	var r0 *domain.Event
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Event)
	}
	return r0, ret.Error(1)
}

func (_m *EventSvc) Delete(ctx context.Context, id uuid.UUID) error {
	return _m.Called(ctx, id).Error(0)
}

func NewEventSvc(t testingT) *EventSvc {
	m := &EventSvc{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type RegistrationSvc struct {
	mock.Mock
}

func (_m *RegistrationSvc) Register(ctx context.Context, eventID, userID uuid.UUID) (*domain.Registration, error) {
	ret := _m.Called(ctx, eventID, userID)

	var r0 *domain.Registration
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Registration)
	}
	return r0, ret.Error(1)
}

func (_m *RegistrationSvc) ListMine(ctx context.Context, userID uuid.UUID) ([]domain.RegistrationDetail, error) {
	ret := _m.Called(ctx, userID)

	var r0 []domain.RegistrationDetail
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.RegistrationDetail)
	}
	return r0, ret.Error(1)
}

func NewRegistrationSvc(t testingT) *RegistrationSvc {
	m := &RegistrationSvc{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type PaymentSvc struct {
	mock.Mock
}

func (_m *PaymentSvc) SubmitProof(ctx context.Context, in services.SubmitProofInput) (*domain.Registration, error) {
	ret := _m.Called(ctx, in)

	var r0 *domain.Registration
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Registration)
	}
	return r0, ret.Error(1)
}

func (_m *PaymentSvc) ConfirmPayment(ctx context.Context, registrationID, adminID uuid.UUID) (*domain.Registration, error) {
	ret := _m.Called(ctx, registrationID, adminID)

	var r0 *domain.Registration
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Registration)
	}
	return r0, ret.Error(1)
}

func (_m *PaymentSvc) ListMine(ctx context.Context, userID uuid.UUID) ([]domain.RegistrationDetail, error) {
	ret := _m.Called(ctx, userID)

	var r0 []domain.RegistrationDetail
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.RegistrationDetail)
	}
	return r0, ret.Error(1)
}

func (_m *PaymentSvc) ListPending(ctx context.Context) ([]domain.RegistrationDetail, error) {
	ret := _m.Called(ctx)

	var r0 []domain.RegistrationDetail
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.RegistrationDetail)
	}
	return r0, ret.Error(1)
}

func NewPaymentSvc(t testingT) *PaymentSvc {
	m := &PaymentSvc{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type ReportSvc struct {
	mock.Mock
}

func (_m *ReportSvc) Sales(ctx context.Context, filter domain.SalesFilter) (*domain.SalesReport, error) {
	ret := _m.Called(ctx, filter)

	var r0 *domain.SalesReport
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.SalesReport)
	}
	return r0, ret.Error(1)
}

func (_m *ReportSvc) Events(ctx context.Context) ([]domain.EventReportLine, error) {
	ret := _m.Called(ctx)

	var r0 []domain.EventReportLine
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.EventReportLine)
	}
	return r0, ret.Error(1)
}

func NewReportSvc(t testingT) *ReportSvc {
	m := &ReportSvc{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type CategorySvc struct {
	mock.Mock
}

func (_m *CategorySvc) List(ctx context.Context, kind domain.CategoryKind) ([]domain.Category, error) {
	ret := _m.Called(ctx, kind)

	var r0 []domain.Category
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Category)
	}
	return r0, ret.Error(1)
}

func (_m *CategorySvc) Get(ctx context.Context, kind domain.CategoryKind, id uuid.UUID) (*domain.Category, error) {
	ret := _m.Called(ctx, kind, id)

	var r0 *domain.Category
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Category)
	}
	return r0, ret.Error(1)
}

func (_m *CategorySvc) Create(ctx context.Context, kind domain.CategoryKind, name string) (*domain.Category, error) {
	ret := _m.Called(ctx, kind, name)

	var r0 *domain.Category
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Category)
	}
	return r0, ret.Error(1)
}

func (_m *CategorySvc) Rename(ctx context.Context, kind domain.CategoryKind, id uuid.UUID, name string) (*domain.Category, error) {
	ret := _m.Called(ctx, kind, id, name)

	var r0 *domain.Category
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Category)
	}
	return r0, ret.Error(1)
}

func (_m *CategorySvc) Delete(ctx context.Context, kind domain.CategoryKind, id uuid.UUID) error {
	return _m.Called(ctx, kind, id).Error(0)
}

func NewCategorySvc(t testingT) *CategorySvc {
	m := &CategorySvc{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
