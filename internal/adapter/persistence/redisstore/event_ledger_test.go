package redisstore

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestLedger(t *testing.T, ttl time.Duration) (*miniredis.Miniredis, *EventLedger) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, NewEventLedger(client, ttl)
}

func TestEventLedger_MarkProcessedOnce(t *testing.T) {
	mr, ledger := setupTestLedger(t, time.Hour)
	ctx := context.Background()

	first, err := ledger.MarkProcessed(ctx, "evt_1")
	require.NoError(t, err)
	assert.True(t, first)

	first, err = ledger.MarkProcessed(ctx, "evt_1")
	require.NoError(t, err)
	assert.False(t, first)

	first, err = ledger.MarkProcessed(ctx, "evt_2")
	require.NoError(t, err)
	assert.True(t, first)

	assert.True(t, mr.Exists("billing:event:evt_1"))
	assert.Equal(t, time.Hour, mr.TTL("billing:event:evt_1"))
}

func TestEventLedger_ExpiredIDIsFirstAgain(t *testing.T) {
	mr, ledger := setupTestLedger(t, time.Minute)
	ctx := context.Background()

	first, err := ledger.MarkProcessed(ctx, "evt_1")
	require.NoError(t, err)
	require.True(t, first)

	mr.FastForward(2 * time.Minute)

	first, err = ledger.MarkProcessed(ctx, "evt_1")
	require.NoError(t, err)
	assert.True(t, first)
}

func TestEventLedger_DefaultTTL(t *testing.T) {
	mr, ledger := setupTestLedger(t, 0)

	_, err := ledger.MarkProcessed(context.Background(), "evt_1")
	require.NoError(t, err)
	assert.Equal(t, DefaultEventTTL, mr.TTL("billing:event:evt_1"))
}

func TestEventLedger_Unavailable(t *testing.T) {
	mr, ledger := setupTestLedger(t, time.Hour)
	mr.Close()

	_, err := ledger.MarkProcessed(context.Background(), "evt_1")
	assert.Error(t, err)
}
