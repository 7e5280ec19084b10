package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/srgjo27/campus_event/internal/core/domain"
)

type ReportRepository struct {
	db *sql.DB
}

func NewReportRepository(db *sql.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) Sales(ctx context.Context, filter domain.SalesFilter) ([]domain.SalesLine, error) {
	query := `
	SELECT r.id, e.title, u.name, r.amount_paid, r.payment_status, r.payment_date
	FROM event_registrations r
	JOIN events e ON e.id = r.event_id
	JOIN users u ON u.id = r.user_id
	WHERE r.payment_status = $1
		AND ($2::timestamptz IS NULL OR r.payment_date >= $2)
		AND ($3::timestamptz IS NULL OR r.payment_date <= $3)
	ORDER BY r.payment_date DESC
	`

	rows, err := r.db.QueryContext(ctx, query, domain.PaymentCompleted, filter.From, filter.To)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales: %w", err)
	}

	defer rows.Close()

	lines := []domain.SalesLine{}
	for rows.Next() {
		var l domain.SalesLine
		if err := rows.Scan(&l.RegistrationID, &l.EventTitle, &l.UserName, &l.AmountPaid, &l.PaymentStatus, &l.PaymentDate); err != nil {
			return nil, fmt.Errorf("failed to scan sales line: %w", err)
		}

		l.PaymentDate = l.PaymentDate.UTC()
		lines = append(lines, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sales: %w", err)
	}

	return lines, nil
}

// EventSummary reports every event, including those without registrations.
// Revenue only counts completed payments.
func (r *ReportRepository) EventSummary(ctx context.Context) ([]domain.EventReportLine, error) {
	query := `
	SELECT e.id, e.title, e.starts_at, e.capacity,
		COUNT(DISTINCT r.user_id),
		COALESCE(SUM(CASE WHEN r.payment_status = $1 THEN r.amount_paid ELSE 0 END), 0)
	FROM events e
	LEFT JOIN event_registrations r ON r.event_id = e.id
	GROUP BY e.id
	ORDER BY e.starts_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, domain.PaymentCompleted)
	if err != nil {
		return nil, fmt.Errorf("failed to query event report: %w", err)
	}

	defer rows.Close()

	lines := []domain.EventReportLine{}
	for rows.Next() {
		var l domain.EventReportLine
		var capacity sql.NullInt64
		if err := rows.Scan(&l.EventID, &l.Title, &l.StartsAt, &capacity, &l.RegisteredUsers, &l.TotalRevenue); err != nil {
			return nil, fmt.Errorf("failed to scan event report line: %w", err)
		}

		l.Capacity = nullInt(capacity)
		l.StartsAt = l.StartsAt.UTC()
		lines = append(lines, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate event report: %w", err)
	}

	return lines, nil
}
