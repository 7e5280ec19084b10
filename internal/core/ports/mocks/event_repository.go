package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/srgjo27/campus_event/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

type EventRepository struct {
	mock.Mock
}

func (_m *EventRepository) Create(ctx context.Context, event *domain.Event) error {
	ret := _m.Called(ctx, event)
	return ret.Error(0)
}

func (_m *EventRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	ret := _m.Called(ctx, id)

	var r0 *domain.Event
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Event)
	}
	return r0, ret.Error(1)
}

func (_m *EventRepository) GetPublishedDetail(ctx context.Context, id uuid.UUID) (*domain.EventDetail, error) {
	ret := _m.Called(ctx, id)

	var r0 *domain.EventDetail
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.EventDetail)
	}
	return r0, ret.Error(1)
}

func (_m *EventRepository) ListPublished(ctx context.Context, filter domain.EventFilter) ([]domain.Event, error) {
	ret := _m.Called(ctx, filter)

	var r0 []domain.Event
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Event)
	}
	return r0, ret.Error(1)
}

func (_m *EventRepository) Update(ctx context.Context, event *domain.Event, replaceCategories bool) error {
	ret := _m.Called(ctx, event, replaceCategories)
	return ret.Error(0)
}

func (_m *EventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

func NewEventRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *EventRepository {
	m := &EventRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
