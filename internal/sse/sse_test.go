package sse

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightsideapp/brightside-server/internal/store"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	return NewManager(slog.New(slog.DiscardHandler))
}

func TestFromChangeEvent(t *testing.T) {
	tests := []struct {
		entity, action string
		want           EventType
	}{
		{"business", "added", EventBusinessAdded},
		{"business", "updated", EventBusinessUpdated},
		{"review", "added", EventReviewAdded},
		{"bookmark", "added", EventBookmarkChanged},
		{"bookmark", "updated", EventBookmarkChanged},
		{"deal", "redeemed", EventDealRedeemed},
		{"session", "updated", EventSessionUpdated},
		{"unknown", "thing", EventDirectoryChanged},
	}
	for _, tt := range tests {
		event := FromChangeEvent(store.ChangeEvent{Entity: tt.entity, Action: tt.action, ID: "x"})
		assert.Equal(t, tt.want, event.Type, "%s.%s", tt.entity, tt.action)
		assert.Equal(t, "x", event.ID)
	}
}

func TestManager_EmitReachesClient(t *testing.T) {
	manager := newTestManager(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go manager.Start(ctx)

	client, err := manager.Connect()
	require.NoError(t, err)
	defer manager.Disconnect(client.ID)

	manager.Emit(store.ChangeEvent{Entity: "deal", Action: "redeemed", ID: "deal-1"})

	select {
	case event := <-client.EventChan:
		assert.Equal(t, EventDealRedeemed, event.Type)
		assert.Equal(t, "deal-1", event.ID)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestManager_EmitIgnoresUnknownPayload(t *testing.T) {
	manager := newTestManager(t)
	// Must not panic or enqueue anything.
	manager.Emit("not a change event")
	assert.Empty(t, manager.events)
}

func TestManager_Disconnect(t *testing.T) {
	manager := newTestManager(t)

	client, err := manager.Connect()
	require.NoError(t, err)
	assert.Equal(t, 1, manager.ClientCount())

	manager.Disconnect(client.ID)
	assert.Equal(t, 0, manager.ClientCount())

	// Double disconnect is safe.
	manager.Disconnect(client.ID)
}

func TestManager_Shutdown(t *testing.T) {
	manager := newTestManager(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go manager.Start(ctx)

	client, err := manager.Connect()
	require.NoError(t, err)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer shutdownCancel()
	require.NoError(t, manager.Shutdown(shutdownCtx))

	// Emit after shutdown is a no-op, not a panic.
	manager.Emit(store.ChangeEvent{Entity: "review", Action: "added"})

	select {
	case <-client.Done:
	case <-time.After(2 * time.Second):
		t.Fatal("client was not closed on shutdown")
	}
}
