package mocks

import (
	"context"

	"github.com/srgjo27/campus_event/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

type FileStore struct {
	mock.Mock
}

func (_m *FileStore) Save(ctx context.Context, folder string, upload domain.Upload) (string, error) {
	ret := _m.Called(ctx, folder, upload)
	return ret.String(0), ret.Error(1)
}

func (_m *FileStore) Delete(ctx context.Context, url string) error {
	ret := _m.Called(ctx, url)
	return ret.Error(0)
}

func NewFileStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *FileStore {
	m := &FileStore{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
