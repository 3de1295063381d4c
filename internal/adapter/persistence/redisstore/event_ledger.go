package redisstore

import (
	"cleanlyquote/internal/usecase/interfaces"
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	eventKeyPrefix = "billing:event:"
	// DefaultEventTTL covers the provider's retry window for webhook deliveries.
	DefaultEventTTL = 72 * time.Hour
)

// EventLedger remembers processed billing event ids so the side effects of a
// redelivered event run once.
type EventLedger struct {
	client *redis.Client
	ttl    time.Duration
}

var _ interfaces.IEventLedger = (*EventLedger)(nil)

func NewEventLedger(client *redis.Client, ttl time.Duration) *EventLedger {
	if ttl <= 0 {
		ttl = DefaultEventTTL
	}
	return &EventLedger{client: client, ttl: ttl}
}

// MarkProcessed returns first=true only for the first caller with this id.
func (l *EventLedger) MarkProcessed(ctx context.Context, eventID string) (bool, error) {
	return l.client.SetNX(ctx, eventKeyPrefix+eventID, time.Now().UTC().Format(time.RFC3339), l.ttl).Result()
}
