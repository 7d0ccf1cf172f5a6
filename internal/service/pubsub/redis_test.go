package pubsub

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelops/hotel-ops-api/internal/api/dto"
	"github.com/hotelops/hotel-ops-api/internal/domain"
	"github.com/hotelops/hotel-ops-api/pkg/logger"
)

func newTestPubSub() *RedisPubSub {
	return NewRedisPubSub(nil, logger.NewLogger("development"))
}

func orderMessage(t *testing.T, tenantID, orderID string) *redis.Message {
	t.Helper()
	payload, err := json.Marshal(dto.OrderEvent{
		Type:     dto.OrderEventCreated,
		TenantID: tenantID,
		Order:    domain.Order{ID: orderID, TenantID: tenantID},
	})
	require.NoError(t, err)
	return &redis.Message{Channel: channelPrefix + tenantID, Payload: string(payload)}
}

func TestConsumeDecodesAndDispatchesEvents(t *testing.T) {
	ps := newTestPubSub()
	ch := make(chan *redis.Message, 2)
	ch <- orderMessage(t, "tenant1", "order-1")
	ch <- orderMessage(t, "tenant1", "order-2")
	close(ch)

	var received []dto.OrderEvent
	ps.consume(context.Background(), channelPrefix+"tenant1", ch, func(event dto.OrderEvent) {
		received = append(received, event)
	})

	require.Len(t, received, 2)
	assert.Equal(t, "order-1", received[0].Order.ID)
	assert.Equal(t, "order-2", received[1].Order.ID)
}

func TestConsumeReturnsWhenSubscriptionChannelCloses(t *testing.T) {
	ps := newTestPubSub()
	ch := make(chan *redis.Message)

	done := make(chan struct{})
	go func() {
		defer close(done)
		ps.consume(context.Background(), channelPrefix+"tenant1", ch, func(dto.OrderEvent) {})
	}()

	close(ch)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("consume did not return after the subscription channel closed")
	}
}

func TestConsumeSkipsMalformedPayloads(t *testing.T) {
	ps := newTestPubSub()
	ch := make(chan *redis.Message, 2)
	ch <- &redis.Message{Channel: channelPrefix + "tenant1", Payload: "not-json"}
	ch <- orderMessage(t, "tenant1", "order-1")
	close(ch)

	var received []dto.OrderEvent
	ps.consume(context.Background(), channelPrefix+"tenant1", ch, func(event dto.OrderEvent) {
		received = append(received, event)
	})

	require.Len(t, received, 1)
	assert.Equal(t, "order-1", received[0].Order.ID)
}

func TestConsumeStopsOnContextCancel(t *testing.T) {
	ps := newTestPubSub()
	ch := make(chan *redis.Message)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		defer close(done)
		ps.consume(ctx, channelPrefix+"tenant1", ch, func(dto.OrderEvent) {})
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("consume did not return after context cancellation")
	}
}
