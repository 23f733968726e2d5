package ws

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(h *Hub, userID uuid.UUID) *Client {
	return &Client{hub: h, userID: userID, send: make(chan []byte, 4)}
}

func TestHub_BroadcastToUser(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	hub := NewHub(ctx)
	go hub.Run()

	target, other := uuid.New(), uuid.New()
	targetClient := newTestClient(hub, target)
	otherClient := newTestClient(hub, other)
	hub.Register(targetClient)
	hub.Register(otherClient)

	hub.BroadcastToUser(target, "rental.status_changed", map[string]string{"status": "finished"})

	select {
	case raw := <-targetClient.send:
		var event struct {
			Type string            `json:"type"`
			Data map[string]string `json:"data"`
		}
		require.NoError(t, json.Unmarshal(raw, &event))
		assert.Equal(t, "rental.status_changed", event.Type)
		assert.Equal(t, "finished", event.Data["status"])
	case <-time.After(time.Second):
		t.Fatal("event not delivered")
	}

	assert.Len(t, otherClient.send, 0)
}

func TestHub_Unregister(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	hub := NewHub(ctx)
	go hub.Run()

	userID := uuid.New()
	client := newTestClient(hub, userID)
	hub.Register(client)
	hub.Unregister(client)

	require.Eventually(t, func() bool { return hub.ConnectedClients(userID) == 0 }, time.Second, 10*time.Millisecond)
	_, open := <-client.send
	assert.False(t, open)
}

func TestHub_BroadcastAfterShutdownDoesNotBlock(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 64; i++ {
			hub.BroadcastToUser(uuid.New(), "report.status_changed", nil)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("broadcast blocked after shutdown")
	}
}
