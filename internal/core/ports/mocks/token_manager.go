package mocks

import (
	"github.com/google/uuid"
	"github.com/srgjo27/campus_event/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

type TokenManager struct {
	mock.Mock
}

func (_m *TokenManager) IssueAccess(actor domain.Actor) (string, error) {
	ret := _m.Called(actor)
	return ret.String(0), ret.Error(1)
}

func (_m *TokenManager) ParseAccess(token string) (domain.Actor, error) {
	ret := _m.Called(token)

	var r0 domain.Actor
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(domain.Actor)
	}
	return r0, ret.Error(1)
}

func (_m *TokenManager) IssueReset(userID uuid.UUID) (string, error) {
	ret := _m.Called(userID)
	return ret.String(0), ret.Error(1)
}

func (_m *TokenManager) ParseReset(token string) (uuid.UUID, error) {
	ret := _m.Called(token)

	var r0 uuid.UUID
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(uuid.UUID)
	}
	return r0, ret.Error(1)
}

func NewTokenManager(t interface {
	mock.TestingT
	Cleanup(func())
}) *TokenManager {
	m := &TokenManager{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
