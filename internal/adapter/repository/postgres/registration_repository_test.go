package postgres

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/srgjo27/campus_event/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var registrationRowColumns = []string{
	"id", "event_id", "user_id", "status", "payment_status", "amount_paid",
	"payment_proof_url", "payment_notes", "payment_date", "payment_confirmed_at", "confirmed_by",
	"created_at", "updated_at",
}

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func q(s string) string { return regexp.QuoteMeta(s) }

func expectLockEvent(mock sqlmock.Sqlmock, eventID uuid.UUID, capacity any, price string, status domain.EventStatus) {
	mock.ExpectQuery(q("FROM events") + ".*" + q("FOR UPDATE")).
		WithArgs(eventID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "capacity", "price", "status"}).
			AddRow(eventID.String(), capacity, price, string(status)))
}

func TestRegister_InsertsUnderEventLock(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRegistrationRepository(db)

	ctx := context.Background()
	eventID, userID := uuid.New(), uuid.New()
	now := time.Date(2026, 10, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	expectLockEvent(mock, eventID, int64(3), "50000.00", domain.EventPublished)
	mock.ExpectQuery(q("SELECT EXISTS")).WithArgs(eventID, userID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery(q("SELECT COUNT(*) FROM event_registrations WHERE event_id = $1")).WithArgs(eventID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectExec(q("INSERT INTO event_registrations")).
		WithArgs(sqlmock.AnyArg(), eventID, userID, domain.RegistrationPending, domain.PaymentPending,
			sqlmock.AnyArg(), nil, now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	reg, err := repo.Register(ctx, eventID, userID, now)

	require.NoError(t, err)
	assert.Equal(t, "50000.00", reg.AmountPaid.StringFixed(2))
	assert.Equal(t, domain.PaymentPending, reg.PaymentStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegister_UnboundedFreeEventSkipsCount(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRegistrationRepository(db)

	ctx := context.Background()
	eventID, userID := uuid.New(), uuid.New()
	now := time.Now().UTC()

	mock.ExpectBegin()
	expectLockEvent(mock, eventID, nil, "0.00", domain.EventPublished)
	mock.ExpectQuery(q("SELECT EXISTS")).WithArgs(eventID, userID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec(q("INSERT INTO event_registrations")).
		WithArgs(sqlmock.AnyArg(), eventID, userID, domain.RegistrationPending, domain.PaymentCompleted,
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	reg, err := repo.Register(ctx, eventID, userID, now)

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentCompleted, reg.PaymentStatus)
	assert.NotNil(t, reg.PaymentDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegister_Fail_EventFull(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRegistrationRepository(db)

	eventID, userID := uuid.New(), uuid.New()

	mock.ExpectBegin()
	expectLockEvent(mock, eventID, int64(2), "10000", domain.EventPublished)
	mock.ExpectQuery(q("SELECT EXISTS")).WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery(q("SELECT COUNT(*)")).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectRollback()

	_, err := repo.Register(context.Background(), eventID, userID, time.Now())

	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegister_Fail_Duplicate(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRegistrationRepository(db)

	eventID, userID := uuid.New(), uuid.New()

	mock.ExpectBegin()
	expectLockEvent(mock, eventID, int64(10), "0", domain.EventPublished)
	mock.ExpectQuery(q("SELECT EXISTS")).WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	_, err := repo.Register(context.Background(), eventID, userID, time.Now())

	assert.ErrorIs(t, err, domain.ErrDuplicateRegistration)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegister_Fail_UniqueViolationIsDuplicate(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRegistrationRepository(db)

	eventID, userID := uuid.New(), uuid.New()

	mock.ExpectBegin()
	expectLockEvent(mock, eventID, nil, "0", domain.EventPublished)
	mock.ExpectQuery(q("SELECT EXISTS")).WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec(q("INSERT INTO event_registrations")).WillReturnError(&pq.Error{Code: "23505"})
	mock.ExpectRollback()

	_, err := repo.Register(context.Background(), eventID, userID, time.Now())

	assert.ErrorIs(t, err, domain.ErrDuplicateRegistration)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegister_Fail_MissingOrDraftEvent(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewRegistrationRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(q("FOR UPDATE")).WillReturnError(sql.ErrNoRows)
		mock.ExpectRollback()

		_, err := repo.Register(context.Background(), uuid.New(), uuid.New(), time.Now())

		assert.ErrorIs(t, err, domain.ErrEventNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("draft", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewRegistrationRepository(db)
		eventID := uuid.New()

		mock.ExpectBegin()
		expectLockEvent(mock, eventID, nil, "0", domain.EventDraft)
		mock.ExpectRollback()

		_, err := repo.Register(context.Background(), eventID, uuid.New(), time.Now())

		assert.ErrorIs(t, err, domain.ErrEventNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func registrationRow(id, userID uuid.UUID, status domain.PaymentStatus) *sqlmock.Rows {
	now := time.Now().UTC()
	return sqlmock.NewRows(registrationRowColumns).AddRow(
		id.String(), uuid.NewString(), userID.String(), "pending", string(status), "25000.00",
		"/uploads/payment-proofs/x.webp", nil, nil, nil, nil, now, now,
	)
}

func TestSubmitProof_ConditionalUpdate(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRegistrationRepository(db)

	id, userID := uuid.New(), uuid.New()

	mock.ExpectQuery(q("UPDATE event_registrations r") + ".*" + q("payment_status = ANY($7)")).
		WithArgs("/uploads/payment-proofs/x.webp", nil, domain.PaymentPendingConfirmation, sqlmock.AnyArg(),
			id, userID, sqlmock.AnyArg()).
		WillReturnRows(registrationRow(id, userID, domain.PaymentPendingConfirmation))

	reg, err := repo.SubmitProof(context.Background(), id, userID, "/uploads/payment-proofs/x.webp", nil, time.Now())

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPendingConfirmation, reg.PaymentStatus)
	assert.Equal(t, "/uploads/payment-proofs/x.webp", *reg.PaymentProofURL)
	assert.Nil(t, reg.PaymentNotes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitProof_MissExplained(t *testing.T) {
	tests := []struct {
		name   string
		owner  uuid.UUID
		status domain.PaymentStatus
		found  bool
		want   error
	}{
		{"missing", uuid.Nil, "", false, domain.ErrRegistrationNotFound},
		{"other owner", uuid.New(), domain.PaymentPending, true, domain.ErrRegistrationNotFound},
		{"completed", uuid.Nil, domain.PaymentCompleted, true, domain.ErrAlreadyCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMock(t)
			repo := NewRegistrationRepository(db)

			id, userID := uuid.New(), uuid.New()
			owner := tt.owner
			if owner == uuid.Nil {
				owner = userID
			}

			mock.ExpectQuery(q("UPDATE event_registrations r")).WillReturnRows(sqlmock.NewRows(registrationRowColumns))

			reload := mock.ExpectQuery(q("SELECT user_id, payment_status FROM event_registrations WHERE id = $1")).WithArgs(id)
			if tt.found {
				reload.WillReturnRows(sqlmock.NewRows([]string{"user_id", "payment_status"}).AddRow(owner.String(), string(tt.status)))
			} else {
				reload.WillReturnError(sql.ErrNoRows)
			}

			_, err := repo.SubmitProof(context.Background(), id, userID, "/u.webp", nil, time.Now())

			assert.ErrorIs(t, err, tt.want)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestConfirm_SetsCompletedAndConfirmer(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRegistrationRepository(db)

	id, adminID := uuid.New(), uuid.New()
	now := time.Date(2026, 10, 2, 8, 0, 0, 0, time.UTC)

	row := sqlmock.NewRows(registrationRowColumns).AddRow(
		id.String(), uuid.NewString(), uuid.NewString(), "pending", "completed", "25000.00",
		"/u.webp", "paid", now, now, adminID.String(), now, now,
	)

	mock.ExpectQuery(q("UPDATE event_registrations r") + ".*" + q("confirmed_by = $3")).
		WithArgs(domain.PaymentCompleted, now, adminID, id, sqlmock.AnyArg()).
		WillReturnRows(row)

	reg, err := repo.Confirm(context.Background(), id, adminID, now)

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentCompleted, reg.PaymentStatus)
	assert.Equal(t, adminID, *reg.ConfirmedBy)
	assert.Equal(t, now, *reg.PaymentDate)
	assert.Equal(t, "paid", *reg.PaymentNotes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConfirm_Fail_AlreadyCompleted(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRegistrationRepository(db)

	id := uuid.New()

	mock.ExpectQuery(q("UPDATE event_registrations r")).WillReturnRows(sqlmock.NewRows(registrationRowColumns))
	mock.ExpectQuery(q("SELECT user_id, payment_status")).WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "payment_status"}).AddRow(uuid.NewString(), "completed"))

	_, err := repo.Confirm(context.Background(), id, uuid.New(), time.Now())

	assert.ErrorIs(t, err, domain.ErrAlreadyCompleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRegistrationRepository(db)

	mock.ExpectQuery(q("FROM event_registrations r WHERE r.id = $1")).WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrRegistrationNotFound)
}

func TestGetByID_DriverErrorIsWrapped(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRegistrationRepository(db)

	boom := errors.New("connection reset")
	mock.ExpectQuery(q("FROM event_registrations r")).WillReturnError(boom)

	_, err := repo.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, domain.KindInternal, domain.KindOf(err))
}

func TestListByPaymentStatus_JoinsNames(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRegistrationRepository(db)

	now := time.Now().UTC()
	cols := append(append([]string{}, registrationRowColumns...), "title", "starts_at", "location", "name", "email", "name")
	rows := sqlmock.NewRows(cols).AddRow(
		uuid.NewString(), uuid.NewString(), uuid.NewString(), "pending", "pending_confirmation", "10000.00",
		"/u.webp", nil, nil, nil, nil, now, now,
		"Go Workshop", now, "Aula", "Siti", "siti@campus.ac.id", nil,
	)

	mock.ExpectQuery(q("LEFT JOIN users cb") + ".*" + q("WHERE r.payment_status = $1 ORDER BY r.updated_at DESC")).
		WithArgs(domain.PaymentPendingConfirmation).
		WillReturnRows(rows)

	got, err := repo.ListByPaymentStatus(context.Background(), domain.PaymentPendingConfirmation)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Siti", got[0].UserName)
	assert.Equal(t, "Go Workshop", got[0].EventTitle)
	assert.Nil(t, got[0].ConfirmedByName)
}
