// Package memory keeps the registration ledger in process memory. It follows
// the same contract as the postgres repository and is used where a database
// is not available.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/srgjo27/campus_event/internal/core/domain"
)

type pair struct {
	eventID uuid.UUID
	userID  uuid.UUID
}

type RegistrationStore struct {
	mu     sync.RWMutex
	events map[uuid.UUID]domain.Event
	users  map[uuid.UUID]domain.User
	regs   map[uuid.UUID]*domain.Registration
	byPair map[pair]uuid.UUID
	counts map[uuid.UUID]int

	locksMu sync.Mutex
	locks   map[uuid.UUID]*sync.Mutex
}

func NewRegistrationStore() *RegistrationStore {
	return &RegistrationStore{
		events: make(map[uuid.UUID]domain.Event),
		users:  make(map[uuid.UUID]domain.User),
		regs:   make(map[uuid.UUID]*domain.Registration),
		byPair: make(map[pair]uuid.UUID),
		counts: make(map[uuid.UUID]int),
		locks:  make(map[uuid.UUID]*sync.Mutex),
	}
}

func (s *RegistrationStore) PutEvent(event domain.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[event.ID] = event
}

func (s *RegistrationStore) PutUser(user domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = user
}

// Count returns how many registrations the event holds.
func (s *RegistrationStore) Count(eventID uuid.UUID) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.counts[eventID]
}

func (s *RegistrationStore) eventLock(eventID uuid.UUID) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()

	l, ok := s.locks[eventID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[eventID] = l
	}
	return l
}

func (s *RegistrationStore) Register(ctx context.Context, eventID, userID uuid.UUID, now time.Time) (*domain.Registration, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// The event lock serialises registrations of one event; s.mu only guards
	// the maps.
	l := s.eventLock(eventID)
	l.Lock()
	defer l.Unlock()

	s.mu.RLock()
	event, ok := s.events[eventID]
	_, dup := s.byPair[pair{eventID, userID}]
	count := s.counts[eventID]
	s.mu.RUnlock()

	if !ok || !event.AcceptsRegistrations() {
		return nil, domain.ErrEventNotFound
	}

	if dup {
		return nil, domain.ErrDuplicateRegistration
	}

	if !event.HasRoomFor(count) {
		return nil, domain.ErrCapacityExceeded
	}

	reg := domain.NewRegistration(&event, userID, now)

	s.mu.Lock()
	s.regs[reg.ID] = reg
	s.byPair[pair{eventID, userID}] = reg.ID
	s.counts[eventID]++
	s.mu.Unlock()

	out := *reg
	return &out, nil
}

func (s *RegistrationStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Registration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reg, ok := s.regs[id]
	if !ok {
		return nil, domain.ErrRegistrationNotFound
	}

	out := *reg
	return &out, nil
}

func (s *RegistrationStore) GetDetail(ctx context.Context, id uuid.UUID) (*domain.RegistrationDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reg, ok := s.regs[id]
	if !ok {
		return nil, domain.ErrRegistrationNotFound
	}

	d := s.detail(reg)
	return &d, nil
}

func (s *RegistrationStore) SubmitProof(ctx context.Context, id, userID uuid.UUID, proofURL string, notes *string, now time.Time) (*domain.Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reg, ok := s.regs[id]
	if !ok || reg.UserID != userID {
		return nil, domain.ErrRegistrationNotFound
	}

	if err := reg.SubmitProof(proofURL, notes, now); err != nil {
		return nil, err
	}

	out := *reg
	return &out, nil
}

func (s *RegistrationStore) Confirm(ctx context.Context, id, adminID uuid.UUID, now time.Time) (*domain.Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reg, ok := s.regs[id]
	if !ok {
		return nil, domain.ErrRegistrationNotFound
	}

	if err := reg.Confirm(adminID, now); err != nil {
		return nil, err
	}

	out := *reg
	return &out, nil
}

func (s *RegistrationStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.RegistrationDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []domain.RegistrationDetail{}
	for _, reg := range s.regs {
		if reg.UserID == userID {
			out = append(out, s.detail(reg))
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Registration.CreatedAt.After(out[j].Registration.CreatedAt)
	})

	return out, nil
}

func (s *RegistrationStore) ListByPaymentStatus(ctx context.Context, status domain.PaymentStatus) ([]domain.RegistrationDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []domain.RegistrationDetail{}
	for _, reg := range s.regs {
		if reg.PaymentStatus == status {
			out = append(out, s.detail(reg))
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Registration.UpdatedAt.After(out[j].Registration.UpdatedAt)
	})

	return out, nil
}

// detail must be called with s.mu held.
func (s *RegistrationStore) detail(reg *domain.Registration) domain.RegistrationDetail {
	d := domain.RegistrationDetail{Registration: *reg}

	if e, ok := s.events[reg.EventID]; ok {
		d.EventTitle = e.Title
		d.EventStartsAt = e.StartsAt
		d.EventLocation = e.Location
	}

	if u, ok := s.users[reg.UserID]; ok {
		d.UserName = u.Name
		d.UserEmail = u.Email
	}

	if reg.ConfirmedBy != nil {
		if admin, ok := s.users[*reg.ConfirmedBy]; ok {
			name := admin.Name
			d.ConfirmedByName = &name
		}
	}

	return d
}
