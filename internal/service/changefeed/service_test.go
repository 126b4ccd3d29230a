package changefeed

import (
	"context"
	"testing"

	"github.com/raminfosys/erp-backend-go/internal/pkg/sse"
	"github.com/raminfosys/erp-backend-go/internal/pkg/storage"
	"github.com/raminfosys/erp-backend-go/internal/repository/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBroadcaster announces n foreign writes, then returns.
type fakeBroadcaster struct {
	n int
}

func (b fakeBroadcaster) Listen(ctx context.Context, fn func()) error {
	for i := 0; i < b.n; i++ {
		fn()
	}
	return nil
}

func TestService_Poll_PublishesOnForeignWrite(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemoryStorage()
	keys := kv.NewKeys(kv.DefaultKeyPrefix)
	hub := sse.NewHub()
	svc := NewService(kv.NewStore(mem, hub, keys), hub)
	events, cleanup := svc.Subscribe()
	defer cleanup()

	// Baseline, then an unchanged poll
	require.NoError(t, svc.Poll(ctx))
	require.NoError(t, svc.Poll(ctx))
	assert.Len(t, events, 0)

	// Another process writes through its own store, without this hub
	other := kv.NewStore(mem, nil, keys)
	require.NoError(t, other.SaveAll(ctx, other.Sync(ctx)))

	require.NoError(t, svc.Poll(ctx))
	require.Len(t, events, 1)
	assert.Equal(t, sse.EventChanged, (<-events).Event)

	require.NoError(t, svc.Poll(ctx))
	assert.Len(t, events, 0)
}

func TestService_Relay_Republishes(t *testing.T) {
	hub := sse.NewHub()
	svc := NewService(kv.NewStore(storage.NewMemoryStorage(), hub, kv.NewKeys(kv.DefaultKeyPrefix)), hub)
	events, cleanup := svc.Subscribe()
	defer cleanup()

	require.NoError(t, svc.Relay(context.Background(), fakeBroadcaster{n: 2}))

	assert.Len(t, events, 2)
}

func TestService_Snapshot_ReflectsLatestWrite(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemoryStorage()
	keys := kv.NewKeys(kv.DefaultKeyPrefix)
	svc := NewService(kv.NewStore(mem, nil, keys), sse.NewHub())

	other := kv.NewStore(mem, nil, keys)
	c := other.Sync(ctx)
	c.Announcements = nil
	require.NoError(t, other.SaveAll(ctx, c))

	snapshot := svc.Snapshot(ctx)
	assert.Empty(t, snapshot.Announcements)
	assert.Len(t, snapshot.Users, 3)
}
