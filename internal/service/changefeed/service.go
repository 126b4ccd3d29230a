// Package changefeed delivers the "something changed" signal to every
// observer of the store, whichever process wrote.
package changefeed

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/raminfosys/erp-backend-go/internal/pkg/sse"
	"github.com/raminfosys/erp-backend-go/internal/pkg/storage"
	"github.com/raminfosys/erp-backend-go/internal/repository/kv"
)

type Service struct {
	store *kv.Store
	hub   *sse.Hub

	mu       sync.Mutex
	observed string
}

func NewService(store *kv.Store, hub *sse.Hub) *Service {
	return &Service{
		store: store,
		hub:   hub,
	}
}

// Subscribe registers an observer. Events carry no payload; observers
// re-fetch state on every event.
func (s *Service) Subscribe() (<-chan sse.Event, func()) {
	return s.hub.Subscribe()
}

// Subscribers returns the number of open subscriptions.
func (s *Service) Subscribers() int {
	return s.hub.SubscriberCount()
}

// Snapshot reloads and returns all six collections from one sync.
func (s *Service) Snapshot(ctx context.Context) kv.Collections {
	return s.store.Sync(ctx)
}

// Poll compares the stored slots with the last observation and publishes a
// change event when they differ. The first call only records a baseline.
func (s *Service) Poll(ctx context.Context) error {
	fingerprint, err := s.store.Fingerprint(ctx)
	if err != nil {
		return fmt.Errorf("failed to fingerprint store: %w", err)
	}

	s.mu.Lock()
	previous := s.observed
	s.observed = fingerprint
	s.mu.Unlock()

	if previous != "" && previous != fingerprint {
		slog.Debug("Store changed since last poll")
		s.hub.NotifyChanged()
	}
	return nil
}

// Relay republishes writes announced by other processes until ctx is done.
func (s *Service) Relay(ctx context.Context, broadcaster storage.Broadcaster) error {
	slog.Info("Relaying store changes from other processes")
	return broadcaster.Listen(ctx, s.hub.NotifyChanged)
}
