package storage

import (
	"context"
	"sync"
)

// MemoryStorage is a process-local SlotStorage. Several store contexts may
// share one instance to behave like tabs over the same browser storage.
type MemoryStorage struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		slots: make(map[string][]byte),
	}
}

func (s *MemoryStorage) Read(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.slots[key]
	if !ok {
		return nil, ErrSlotNotFound
	}
	return append([]byte(nil), data...), nil
}

func (s *MemoryStorage) WriteAll(ctx context.Context, slots []Slot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, slot := range slots {
		s.slots[slot.Key] = append([]byte(nil), slot.Value...)
	}
	return nil
}
