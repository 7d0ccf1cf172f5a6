package api

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelops/hotel-ops-api/internal/api/dto"
	"github.com/hotelops/hotel-ops-api/internal/domain"
	"github.com/hotelops/hotel-ops-api/internal/service/pubsub"
	"github.com/hotelops/hotel-ops-api/pkg/logger"
)

func newTestWebSocketHandler() *WebSocketHandler {
	log := logger.NewLogger("development")
	return NewWebSocketHandler(log, pubsub.NewRedisPubSub(nil, log))
}

// addTestClient places a client directly into the handler's maps, bypassing
// the connection upgrade that the register channel path assumes.
func addTestClient(h *WebSocketHandler, tenantID string, buffer int) *Client {
	client := &Client{
		tenantID: tenantID,
		send:     make(chan []byte, buffer),
	}
	h.mutex.Lock()
	h.clients[client] = true
	h.tenantClients[tenantID]++
	h.mutex.Unlock()
	return client
}

func TestHandlePubSubMessage_ConcurrentFanOutDropsSlowClients(t *testing.T) {
	h := newTestWebSocketHandler()
	go h.Start()
	defer h.Stop()

	const eventsPerTenant = 20

	slowA := addTestClient(h, "hotel-a", 0)
	fastA := addTestClient(h, "hotel-a", eventsPerTenant*2)
	slowB := addTestClient(h, "hotel-b", 0)
	fastB := addTestClient(h, "hotel-b", eventsPerTenant*2)

	// Per-tenant subscriptions deliver concurrently, so fan the events out
	// from separate goroutines the way the pub/sub callbacks would.
	var wg sync.WaitGroup
	for i := 0; i < eventsPerTenant; i++ {
		for _, tenantID := range []string{"hotel-a", "hotel-b"} {
			wg.Add(1)
			go func(tenantID string) {
				defer wg.Done()
				h.handlePubSubMessage(dto.OrderEvent{
					Type:     dto.OrderEventStatusChanged,
					TenantID: tenantID,
					Order:    domain.Order{ID: "order-1", TenantID: tenantID},
				})
			}(tenantID)
		}
	}
	wg.Wait()

	require.Eventually(t, func() bool {
		h.mutex.RLock()
		defer h.mutex.RUnlock()
		return !h.clients[slowA] && !h.clients[slowB]
	}, 2*time.Second, 10*time.Millisecond, "slow clients were not unregistered")

	h.mutex.RLock()
	assert.True(t, h.clients[fastA])
	assert.True(t, h.clients[fastB])
	assert.Equal(t, 1, h.tenantClients["hotel-a"])
	assert.Equal(t, 1, h.tenantClients["hotel-b"])
	h.mutex.RUnlock()

	// Dropped clients get their send channel closed by the unregister path.
	_, open := <-slowA.send
	assert.False(t, open)

	// Healthy clients received every event for their tenant, and only theirs.
	require.Len(t, fastA.send, eventsPerTenant)
	require.Len(t, fastB.send, eventsPerTenant)
	var event dto.OrderEvent
	require.NoError(t, json.Unmarshal(<-fastA.send, &event))
	assert.Equal(t, "hotel-a", event.TenantID)
}
