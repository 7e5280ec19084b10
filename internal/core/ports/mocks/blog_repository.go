package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/srgjo27/campus_event/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

type BlogRepository struct {
	mock.Mock
}

func (_m *BlogRepository) Create(ctx context.Context, blog *domain.Blog) error {
	ret := _m.Called(ctx, blog)
	return ret.Error(0)
}

func (_m *BlogRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Blog, error) {
	ret := _m.Called(ctx, id)

	var r0 *domain.Blog
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Blog)
	}
	return r0, ret.Error(1)
}

func (_m *BlogRepository) List(ctx context.Context, filter domain.BlogFilter) ([]domain.Blog, error) {
	ret := _m.Called(ctx, filter)

	var r0 []domain.Blog
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Blog)
	}
	return r0, ret.Error(1)
}

func (_m *BlogRepository) Update(ctx context.Context, blog *domain.Blog, replaceCategories bool) error {
	ret := _m.Called(ctx, blog, replaceCategories)
	return ret.Error(0)
}

func (_m *BlogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

func NewBlogRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *BlogRepository {
	m := &BlogRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
