package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/srgjo27/campus_event/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSales_FiltersCompletedInRange(t *testing.T) {
	db, mock := newMock(t)
	repo := NewReportRepository(db)

	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 31, 23, 59, 59, 0, time.UTC)
	paid := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(q("WHERE r.payment_status = $1") + ".*" + q("ORDER BY r.payment_date DESC")).
		WithArgs(domain.PaymentCompleted, from, to).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "name", "amount_paid", "payment_status", "payment_date"}).
			AddRow(uuid.NewString(), "Go Workshop", "Siti", "100000.00", "completed", paid))

	lines, err := repo.Sales(context.Background(), domain.SalesFilter{From: &from, To: &to})

	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "100000.00", lines[0].AmountPaid.StringFixed(2))
	assert.Equal(t, paid, lines[0].PaymentDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSales_OpenRangePassesNulls(t *testing.T) {
	db, mock := newMock(t)
	repo := NewReportRepository(db)

	mock.ExpectQuery(q("FROM event_registrations r")).
		WithArgs(domain.PaymentCompleted, nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "name", "amount_paid", "payment_status", "payment_date"}))

	lines, err := repo.Sales(context.Background(), domain.SalesFilter{})

	require.NoError(t, err)
	assert.Empty(t, lines)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventSummary_IncludesEventsWithoutRegistrations(t *testing.T) {
	db, mock := newMock(t)
	repo := NewReportRepository(db)

	starts := time.Date(2026, 11, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(q("LEFT JOIN event_registrations r ON r.event_id = e.id")).
		WithArgs(domain.PaymentCompleted).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "starts_at", "capacity", "count", "sum"}).
			AddRow(uuid.NewString(), "Seminar", starts, int64(100), int64(3), "150000.00").
			AddRow(uuid.NewString(), "Empty Talk", starts, nil, int64(0), "0"))

	lines, err := repo.EventSummary(context.Background())

	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, 3, lines[0].RegisteredUsers)
	assert.Equal(t, 100, *lines[0].Capacity)
	assert.Nil(t, lines[1].Capacity)
	assert.True(t, lines[1].TotalRevenue.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}
