package storage

import (
	"context"
	"errors"
)

// ErrSlotNotFound is returned by Read when nothing was ever written to a key.
var ErrSlotNotFound = errors.New("slot not found")

// Slot is one named block of serialized data.
type Slot struct {
	Key   string
	Value []byte
}

// SlotStorage is a persistent key/value store holding one serialized
// collection per key.
type SlotStorage interface {
	// Read returns the raw bytes stored under key, or ErrSlotNotFound
	Read(ctx context.Context, key string) ([]byte, error)

	// WriteAll overwrites every given slot
	WriteAll(ctx context.Context, slots []Slot) error
}

// Broadcaster is implemented by backends that other processes share. Listen
// blocks, calling fn whenever another process finished a WriteAll, until ctx
// is done.
type Broadcaster interface {
	Listen(ctx context.Context, fn func()) error
}
