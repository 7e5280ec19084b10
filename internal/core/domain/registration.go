package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RegistrationStatus string

const (
	RegistrationPending   RegistrationStatus = "pending"
	RegistrationConfirmed RegistrationStatus = "confirmed"
)

type PaymentStatus string

const (
	PaymentPending             PaymentStatus = "pending"
	PaymentPendingConfirmation PaymentStatus = "pending_confirmation"
	PaymentCompleted           PaymentStatus = "completed"
)

// Statuses from which a proof may be (re)submitted or a payment confirmed.
// Completed is terminal; there is no way back to pending.
var (
	ProofSubmittableStatuses = []PaymentStatus{PaymentPending, PaymentPendingConfirmation}
	ConfirmableStatuses      = []PaymentStatus{PaymentPending, PaymentPendingConfirmation}
)

func (s PaymentStatus) in(set []PaymentStatus) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

func (s PaymentStatus) CanSubmitProof() bool { return s.in(ProofSubmittableStatuses) }

func (s PaymentStatus) CanConfirm() bool { return s.in(ConfirmableStatuses) }

type Registration struct {
	ID                 uuid.UUID
	EventID            uuid.UUID
	UserID             uuid.UUID
	Status             RegistrationStatus
	PaymentStatus      PaymentStatus
	AmountPaid         decimal.Decimal
	PaymentProofURL    *string
	PaymentNotes       *string
	PaymentDate        *time.Time
	PaymentConfirmedAt *time.Time
	ConfirmedBy        *uuid.UUID
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewRegistration snapshots the event price. Free events are paid on the spot.
func NewRegistration(event *Event, userID uuid.UUID, now time.Time) *Registration {
	now = now.UTC()
	reg := &Registration{
		ID:            uuid.New(),
		EventID:       event.ID,
		UserID:        userID,
		Status:        RegistrationPending,
		PaymentStatus: PaymentPending,
		AmountPaid:    event.Price.Round(2),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if event.IsFree() {
		reg.PaymentStatus = PaymentCompleted
		reg.PaymentDate = &now
	}
	return reg
}

func (r *Registration) SubmitProof(proofURL string, notes *string, now time.Time) error {
	if !r.PaymentStatus.CanSubmitProof() {
		return ErrAlreadyCompleted
	}
	now = now.UTC()
	r.PaymentProofURL = &proofURL
	r.PaymentNotes = notes
	r.PaymentStatus = PaymentPendingConfirmation
	r.UpdatedAt = now
	return nil
}

func (r *Registration) Confirm(adminID uuid.UUID, now time.Time) error {
	if !r.PaymentStatus.CanConfirm() {
		return ErrAlreadyCompleted
	}
	now = now.UTC()
	r.PaymentStatus = PaymentCompleted
	r.PaymentDate = &now
	r.PaymentConfirmedAt = &now
	r.ConfirmedBy = &adminID
	r.UpdatedAt = now
	return nil
}

// RegistrationDetail is a registration joined with the names callers show
// next to it.
type RegistrationDetail struct {
	Registration    Registration
	EventTitle      string
	EventStartsAt   time.Time
	EventLocation   string
	UserName        string
	UserEmail       string
	ConfirmedByName *string
}
