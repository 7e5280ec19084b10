package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/srgjo27/campus_event/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

type EventCache struct {
	mock.Mock
}

func (_m *EventCache) Get(ctx context.Context, id uuid.UUID) (*domain.EventDetail, error) {
	ret := _m.Called(ctx, id)

	var r0 *domain.EventDetail
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.EventDetail)
	}
	return r0, ret.Error(1)
}

func (_m *EventCache) Set(ctx context.Context, detail *domain.EventDetail) error {
	ret := _m.Called(ctx, detail)
	return ret.Error(0)
}

func (_m *EventCache) Invalidate(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

func NewEventCache(t interface {
	mock.TestingT
	Cleanup(func())
}) *EventCache {
	m := &EventCache{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
