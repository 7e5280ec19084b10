package mocks

import (
	"context"

	"github.com/srgjo27/campus_event/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

type ReportRepository struct {
	mock.Mock
}

func (_m *ReportRepository) Sales(ctx context.Context, filter domain.SalesFilter) ([]domain.SalesLine, error) {
	ret := _m.Called(ctx, filter)

	var r0 []domain.SalesLine
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.SalesLine)
	}
	return r0, ret.Error(1)
}

func (_m *ReportRepository) EventSummary(ctx context.Context) ([]domain.EventReportLine, error) {
	ret := _m.Called(ctx)

	var r0 []domain.EventReportLine
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.EventReportLine)
	}
	return r0, ret.Error(1)
}

func NewReportRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *ReportRepository {
	m := &ReportRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
