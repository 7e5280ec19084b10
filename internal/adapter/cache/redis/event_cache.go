package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/srgjo27/campus_event/internal/core/domain"
)

const eventKeyPrefix = "event:"

type EventCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewEventCache(client *redis.Client, ttl time.Duration) *EventCache {
	return &EventCache{client: client, ttl: ttl}
}

func eventKey(id uuid.UUID) string {
	return eventKeyPrefix + id.String()
}

// Get returns (nil, nil) on a miss.
func (c *EventCache) Get(ctx context.Context, id uuid.UUID) (*domain.EventDetail, error) {
	raw, err := c.client.Get(ctx, eventKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cached event: %w", err)
	}

	var detail domain.EventDetail
	if err := sonic.Unmarshal(raw, &detail); err != nil {
		return nil, fmt.Errorf("failed to decode cached event: %w", err)
	}

	return &detail, nil
}

func (c *EventCache) Set(ctx context.Context, detail *domain.EventDetail) error {
	raw, err := sonic.Marshal(detail)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}

	if err := c.client.Set(ctx, eventKey(detail.Event.ID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache event: %w", err)
	}

	return nil
}

func (c *EventCache) Invalidate(ctx context.Context, id uuid.UUID) error {
	if err := c.client.Del(ctx, eventKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate event: %w", err)
	}
	return nil
}
