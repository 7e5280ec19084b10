package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/srgjo27/campus_event/internal/core/domain"
	"github.com/srgjo27/campus_event/internal/core/ports"
)

const maxEventListLimit = 100

type EventService struct {
	eventRepo    ports.EventRepository
	categoryRepo ports.CategoryRepository
	cache        ports.EventCache
	log          zerolog.Logger
	now          func() time.Time
}

// NewEventService builds the service. cache may be nil.
func NewEventService(eventRepo ports.EventRepository, categoryRepo ports.CategoryRepository, cache ports.EventCache, log zerolog.Logger) *EventService {
	return &EventService{
		eventRepo:    eventRepo,
		categoryRepo: categoryRepo,
		cache:        cache,
		log:          log.With().Str("component", "event_service").Logger(),
		now:          time.Now,
	}
}

func (s *EventService) List(ctx context.Context, filter domain.EventFilter) ([]domain.Event, error) {
	if filter.Limit < 0 {
		return nil, invalid("limit must not be negative")
	}

	if filter.Limit == 0 || filter.Limit > maxEventListLimit {
		filter.Limit = maxEventListLimit
	}

	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return nil, invalid("from must not be after to")
	}

	filter.Search = strings.TrimSpace(filter.Search)
	filter.Category = strings.TrimSpace(filter.Category)

	events, err := s.eventRepo.ListPublished(ctx, filter)
	if err != nil {
		return nil, err
	}

	if events == nil {
		events = []domain.Event{}
	}

	return events, nil
}

func (s *EventService) Get(ctx context.Context, id uuid.UUID) (*domain.EventDetail, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, id)
		if err != nil {
			s.log.Warn().Err(err).Str("event_id", id.String()).Msg("event cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	detail, err := s.eventRepo.GetPublishedDetail(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, detail); err != nil {
			s.log.Warn().Err(err).Str("event_id", id.String()).Msg("event cache write failed")
		}
	}

	return detail, nil
}

func (s *EventService) Create(ctx context.Context, in domain.CreateEventInput) (*domain.Event, error) {
	now := s.now().UTC()
	event := &domain.Event{
		ID:          uuid.New(),
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		StartsAt:    in.StartsAt.UTC(),
		Location:    strings.TrimSpace(in.Location),
		Capacity:    in.Capacity,
		Price:       in.Price.Round(2),
		ImageURL:    in.ImageURL,
		Status:      domain.EventDraft,
		CreatedBy:   in.CreatedBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := validateEvent(event); err != nil {
		return nil, err
	}

	cats, err := s.resolveCategories(ctx, in.CategoryIDs)
	if err != nil {
		return nil, err
	}
	event.Categories = cats

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	s.log.Info().Str("event_id", event.ID.String()).Str("created_by", in.CreatedBy.String()).Msg("event created")

	return event, nil
}

func (s *EventService) Update(ctx context.Context, id uuid.UUID, in domain.UpdateEventInput) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	in.Apply(event)
	event.Price = event.Price.Round(2)
	event.UpdatedAt = s.now().UTC()

	if err := validateEvent(event); err != nil {
		return nil, err
	}

	replace := in.CategoryIDs != nil
	if replace {
		cats, err := s.resolveCategories(ctx, *in.CategoryIDs)
		if err != nil {
			return nil, err
		}
		event.Categories = cats
	}

	if err := s.eventRepo.Update(ctx, event, replace); err != nil {
		return nil, err
	}

	s.invalidate(ctx, id)

	return event, nil
}

func (s *EventService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, id)
	s.log.Info().Str("event_id", id.String()).Msg("event deleted")

	return nil
}

func (s *EventService) invalidate(ctx context.Context, id uuid.UUID) {
	if s.cache == nil {
		return
	}

	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.log.Warn().Err(err).Str("event_id", id.String()).Msg("failed to invalidate event cache")
	}
}

func (s *EventService) resolveCategories(ctx context.Context, ids []uuid.UUID) ([]domain.Category, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return []domain.Category{}, nil
	}

	cats, err := s.categoryRepo.FindByIDs(ctx, domain.CategoryEvent, ids)
	if err != nil {
		return nil, err
	}

	if len(cats) != len(ids) {
		return nil, invalid("unknown event category")
	}

	return cats, nil
}

func validateEvent(e *domain.Event) error {
	switch {
	case e.Title == "":
		return invalid("title is required")
	case e.Location == "":
		return invalid("location is required")
	case e.StartsAt.IsZero():
		return invalid("start time is required")
	case e.Capacity != nil && *e.Capacity <= 0:
		return invalid("capacity must be positive")
	case e.Price.IsNegative():
		return invalid("price must not be negative")
	case !e.Status.Valid():
		return invalid("unknown event status %q", e.Status)
	}

	return nil
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
