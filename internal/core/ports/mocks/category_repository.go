package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/srgjo27/campus_event/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

type CategoryRepository struct {
	mock.Mock
}

func (_m *CategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	ret := _m.Called(ctx, category)
	return ret.Error(0)
}

func (_m *CategoryRepository) GetByID(ctx context.Context, kind domain.CategoryKind, id uuid.UUID) (*domain.Category, error) {
	ret := _m.Called(ctx, kind, id)

	var r0 *domain.Category
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Category)
	}
	return r0, ret.Error(1)
}

func (_m *CategoryRepository) FindByIDs(ctx context.Context, kind domain.CategoryKind, ids []uuid.UUID) ([]domain.Category, error) {
	ret := _m.Called(ctx, kind, ids)

	var r0 []domain.Category
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Category)
	}
	return r0, ret.Error(1)
}

func (_m *CategoryRepository) List(ctx context.Context, kind domain.CategoryKind) ([]domain.Category, error) {
	ret := _m.Called(ctx, kind)

	var r0 []domain.Category
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Category)
	}
	return r0, ret.Error(1)
}

func (_m *CategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	ret := _m.Called(ctx, category)
	return ret.Error(0)
}

func (_m *CategoryRepository) Delete(ctx context.Context, kind domain.CategoryKind, id uuid.UUID) error {
	ret := _m.Called(ctx, kind, id)
	return ret.Error(0)
}

func NewCategoryRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *CategoryRepository {
	m := &CategoryRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
