package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/srgjo27/campus_event/internal/core/domain"
)

const registrationColumns = `r.id, r.event_id, r.user_id, r.status, r.payment_status, r.amount_paid,
	r.payment_proof_url, r.payment_notes, r.payment_date, r.payment_confirmed_at, r.confirmed_by,
	r.created_at, r.updated_at`

const registrationDetailQuery = `
	SELECT ` + registrationColumns + `,
		e.title, e.starts_at, e.location, u.name, u.email, cb.name
	FROM event_registrations r
	JOIN events e ON e.id = r.event_id
	JOIN users u ON u.id = r.user_id
	LEFT JOIN users cb ON cb.id = r.confirmed_by
	`

type RegistrationRepository struct {
	db *sql.DB
}

func NewRegistrationRepository(db *sql.DB) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

// Register runs the whole admission check under a row lock on the event, so
// concurrent registrations for one event are serialised. The unique
// constraint on (event_id, user_id) backs up the duplicate check.
func (r *RegistrationRepository) Register(ctx context.Context, eventID, userID uuid.UUID, now time.Time) (*domain.Registration, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback()

	event, err := lockEvent(ctx, tx, eventID)
	if err != nil {
		return nil, err
	}

	if !event.AcceptsRegistrations() {
		return nil, domain.ErrEventNotFound
	}

	var exists bool
	err = tx.QueryRowContext(ctx, `
	SELECT EXISTS (SELECT 1 FROM event_registrations WHERE event_id = $1 AND user_id = $2)
	`, eventID, userID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing registration: %w", err)
	}

	if exists {
		return nil, domain.ErrDuplicateRegistration
	}

	if event.Capacity != nil {
		var count int
		err = tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM event_registrations WHERE event_id = $1`, eventID).Scan(&count)
		if err != nil {
			return nil, fmt.Errorf("failed to count registrations: %w", err)
		}

		if !event.HasRoomFor(count) {
			return nil, domain.ErrCapacityExceeded
		}
	}

	reg := domain.NewRegistration(event, userID, now)

	query := `
	INSERT INTO event_registrations (id, event_id, user_id, status, payment_status, amount_paid, payment_date, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err = tx.ExecContext(ctx, query,
		reg.ID, reg.EventID, reg.UserID, reg.Status, reg.PaymentStatus,
		reg.AmountPaid, reg.PaymentDate, reg.CreatedAt, reg.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicateRegistration
		}
		return nil, fmt.Errorf("failed to insert registration: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return reg, nil
}

func lockEvent(ctx context.Context, tx *sql.Tx, eventID uuid.UUID) (*domain.Event, error) {
	query := `
	SELECT id, capacity, price, status
	FROM events
	WHERE id = $1
	FOR UPDATE
	`

	var event domain.Event
	var capacity sql.NullInt64

	err := tx.QueryRowContext(ctx, query, eventID).Scan(&event.ID, &capacity, &event.Price, &event.Status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to lock event: %w", err)
	}

	event.Capacity = nullInt(capacity)

	return &event, nil
}

func (r *RegistrationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Registration, error) {
	query := `SELECT ` + registrationColumns + ` FROM event_registrations r WHERE r.id = $1`

	reg, err := scanRegistration(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("failed to get registration: %w", err)
	}

	return reg, nil
}

func (r *RegistrationRepository) GetDetail(ctx context.Context, id uuid.UUID) (*domain.RegistrationDetail, error) {
	detail, err := scanRegistrationDetail(r.db.QueryRowContext(ctx, registrationDetailQuery+`WHERE r.id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("failed to get registration detail: %w", err)
	}

	return detail, nil
}

func (r *RegistrationRepository) SubmitProof(ctx context.Context, id, userID uuid.UUID, proofURL string, notes *string, now time.Time) (*domain.Registration, error) {
	query := `
	UPDATE event_registrations r
	SET payment_proof_url = $1,
		payment_notes = $2,
		payment_status = $3,
		updated_at = $4
	WHERE r.id = $5 AND r.user_id = $6 AND r.payment_status = ANY($7)
	RETURNING ` + registrationColumns

	reg, err := scanRegistration(r.db.QueryRowContext(ctx, query,
		proofURL, notes, domain.PaymentPendingConfirmation, now.UTC(),
		id, userID, statusList(domain.ProofSubmittableStatuses),
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, r.explainMiss(ctx, id, &userID)
		}
		return nil, fmt.Errorf("failed to submit payment proof: %w", err)
	}

	return reg, nil
}

func (r *RegistrationRepository) Confirm(ctx context.Context, id, adminID uuid.UUID, now time.Time) (*domain.Registration, error) {
	query := `
	UPDATE event_registrations r
	SET payment_status = $1,
		payment_date = $2,
		payment_confirmed_at = $2,
		confirmed_by = $3,
		updated_at = $2
	WHERE r.id = $4 AND r.payment_status = ANY($5)
	RETURNING ` + registrationColumns

	reg, err := scanRegistration(r.db.QueryRowContext(ctx, query,
		domain.PaymentCompleted, now.UTC(), adminID,
		id, statusList(domain.ConfirmableStatuses),
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, r.explainMiss(ctx, id, nil)
		}
		return nil, fmt.Errorf("failed to confirm payment: %w", err)
	}

	return reg, nil
}

// explainMiss tells why a conditional update touched no row. A registration
// owned by someone other than owner is reported as missing.
func (r *RegistrationRepository) explainMiss(ctx context.Context, id uuid.UUID, owner *uuid.UUID) error {
	var userID uuid.UUID
	var status domain.PaymentStatus

	err := r.db.QueryRowContext(ctx, `SELECT user_id, payment_status FROM event_registrations WHERE id = $1`, id).Scan(&userID, &status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrRegistrationNotFound
		}
		return fmt.Errorf("failed to reload registration: %w", err)
	}

	if owner != nil && userID != *owner {
		return domain.ErrRegistrationNotFound
	}

	return domain.ErrAlreadyCompleted
}

func (r *RegistrationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.RegistrationDetail, error) {
	return r.listDetails(ctx, registrationDetailQuery+`WHERE r.user_id = $1 ORDER BY r.created_at DESC`, userID)
}

func (r *RegistrationRepository) ListByPaymentStatus(ctx context.Context, status domain.PaymentStatus) ([]domain.RegistrationDetail, error) {
	return r.listDetails(ctx, registrationDetailQuery+`WHERE r.payment_status = $1 ORDER BY r.updated_at DESC`, status)
}

func (r *RegistrationRepository) listDetails(ctx context.Context, query string, args ...any) ([]domain.RegistrationDetail, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list registrations: %w", err)
	}

	defer rows.Close()

	details := []domain.RegistrationDetail{}
	for rows.Next() {
		d, err := scanRegistrationDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan registration: %w", err)
		}

		details = append(details, *d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate registrations: %w", err)
	}

	return details, nil
}

func scanRegistration(row rowScanner, extra ...any) (*domain.Registration, error) {
	var reg domain.Registration
	var (
		proofURL, notes          sql.NullString
		paymentDate, confirmedAt sql.NullTime
		confirmedBy              uuid.NullUUID
		amount                   decimal.Decimal
	)

	dest := []any{
		&reg.ID, &reg.EventID, &reg.UserID, &reg.Status, &reg.PaymentStatus, &amount,
		&proofURL, &notes, &paymentDate, &confirmedAt, &confirmedBy,
		&reg.CreatedAt, &reg.UpdatedAt,
	}

	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}

	reg.AmountPaid = amount
	reg.PaymentProofURL = nullString(proofURL)
	reg.PaymentNotes = nullString(notes)
	reg.PaymentDate = nullTime(paymentDate)
	reg.PaymentConfirmedAt = nullTime(confirmedAt)
	reg.ConfirmedBy = nullUUID(confirmedBy)
	reg.CreatedAt = reg.CreatedAt.UTC()
	reg.UpdatedAt = reg.UpdatedAt.UTC()

	return &reg, nil
}

func scanRegistrationDetail(row rowScanner) (*domain.RegistrationDetail, error) {
	var d domain.RegistrationDetail
	var confirmedByName sql.NullString

	reg, err := scanRegistration(row,
		&d.EventTitle, &d.EventStartsAt, &d.EventLocation, &d.UserName, &d.UserEmail, &confirmedByName,
	)
	if err != nil {
		return nil, err
	}

	d.Registration = *reg
	d.EventStartsAt = d.EventStartsAt.UTC()
	d.ConfirmedByName = nullString(confirmedByName)

	return &d, nil
}
