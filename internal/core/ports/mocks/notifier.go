package mocks

import (
	"context"

	"github.com/srgjo27/campus_event/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

type Notifier struct {
	mock.Mock
}

func (_m *Notifier) NotifyPaymentConfirmed(ctx context.Context, detail *domain.RegistrationDetail) error {
	ret := _m.Called(ctx, detail)
	return ret.Error(0)
}

func (_m *Notifier) NotifyWelcome(ctx context.Context, user *domain.User) error {
	ret := _m.Called(ctx, user)
	return ret.Error(0)
}

func (_m *Notifier) NotifyPasswordReset(ctx context.Context, user *domain.User, token string) error {
	ret := _m.Called(ctx, user, token)
	return ret.Error(0)
}

func NewNotifier(t interface {
	mock.TestingT
	Cleanup(func())
}) *Notifier {
	m := &Notifier{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
