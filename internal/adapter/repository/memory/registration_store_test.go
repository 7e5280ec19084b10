package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/srgjo27/campus_event/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEvent(capacity int, price int64) domain.Event {
	return domain.Event{
		ID:       uuid.New(),
		Title:    "Lomba Coding",
		Location: "Aula",
		Capacity: &capacity,
		Price:    decimal.NewFromInt(price),
		Status:   domain.EventPublished,
	}
}

func TestRegister_ConcurrentCapacity(t *testing.T) {
	store := NewRegistrationStore()
	event := newEvent(5, 10000)
	store.PutEvent(event)

	const attempts = 40

	var wg sync.WaitGroup
	var mu sync.Mutex
	results := map[error]int{}

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Register(context.Background(), event.ID, uuid.New(), time.Now())
			mu.Lock()
			results[err]++
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 5, results[nil])
	assert.Equal(t, attempts-5, results[domain.ErrCapacityExceeded])
	assert.Equal(t, 5, store.Count(event.ID))
}

func TestRegister_Rules(t *testing.T) {
	ctx := context.Background()
	store := NewRegistrationStore()

	event := newEvent(10, 0)
	draft := newEvent(10, 0)
	draft.Status = domain.EventDraft
	store.PutEvent(event)
	store.PutEvent(draft)

	userID := uuid.New()

	reg, err := store.Register(ctx, event.ID, userID, time.Now())
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentCompleted, reg.PaymentStatus)

	_, err = store.Register(ctx, event.ID, userID, time.Now())
	assert.ErrorIs(t, err, domain.ErrDuplicateRegistration)

	_, err = store.Register(ctx, draft.ID, userID, time.Now())
	assert.ErrorIs(t, err, domain.ErrEventNotFound)

	_, err = store.Register(ctx, uuid.New(), userID, time.Now())
	assert.ErrorIs(t, err, domain.ErrEventNotFound)

	assert.Equal(t, 1, store.Count(event.ID))
}

func TestSubmitProofAndConfirm(t *testing.T) {
	ctx := context.Background()
	store := NewRegistrationStore()

	event := newEvent(10, 50000)
	owner := domain.User{ID: uuid.New(), Name: "Budi", Email: "budi@kampus.ac.id"}
	admin := domain.User{ID: uuid.New(), Name: "Admin"}
	store.PutEvent(event)
	store.PutUser(owner)
	store.PutUser(admin)

	reg, err := store.Register(ctx, event.ID, owner.ID, time.Now())
	require.NoError(t, err)

	_, err = store.SubmitProof(ctx, reg.ID, uuid.New(), "/uploads/x.webp", nil, time.Now())
	assert.ErrorIs(t, err, domain.ErrRegistrationNotFound)

	updated, err := store.SubmitProof(ctx, reg.ID, owner.ID, "/uploads/x.webp", nil, time.Now())
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPendingConfirmation, updated.PaymentStatus)

	pending, err := store.ListByPaymentStatus(ctx, domain.PaymentPendingConfirmation)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "Budi", pending[0].UserName)

	confirmed, err := store.Confirm(ctx, reg.ID, admin.ID, time.Now())
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentCompleted, confirmed.PaymentStatus)

	_, err = store.Confirm(ctx, reg.ID, admin.ID, time.Now())
	assert.ErrorIs(t, err, domain.ErrAlreadyCompleted)

	detail, err := store.GetDetail(ctx, reg.ID)
	require.NoError(t, err)
	require.NotNil(t, detail.ConfirmedByName)
	assert.Equal(t, "Admin", *detail.ConfirmedByName)
	assert.Equal(t, event.Title, detail.EventTitle)
}

func TestReturnedRegistrationsAreCopies(t *testing.T) {
	ctx := context.Background()
	store := NewRegistrationStore()
	event := newEvent(10, 1000)
	store.PutEvent(event)

	reg, err := store.Register(ctx, event.ID, uuid.New(), time.Now())
	require.NoError(t, err)

	reg.PaymentStatus = domain.PaymentCompleted

	stored, err := store.GetByID(ctx, reg.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPending, stored.PaymentStatus)
}
