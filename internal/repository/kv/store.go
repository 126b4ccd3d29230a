package kv

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/raminfosys/erp-backend-go/internal/domain/announcement"
	"github.com/raminfosys/erp-backend-go/internal/domain/attendance"
	"github.com/raminfosys/erp-backend-go/internal/domain/leave"
	"github.com/raminfosys/erp-backend-go/internal/domain/project"
	"github.com/raminfosys/erp-backend-go/internal/domain/task"
	"github.com/raminfosys/erp-backend-go/internal/domain/user"
	"github.com/raminfosys/erp-backend-go/internal/fixtures"
	"github.com/raminfosys/erp-backend-go/internal/pkg/sse"
	"github.com/raminfosys/erp-backend-go/internal/pkg/storage"
)

// DefaultKeyPrefix namespaces the six slots.
const DefaultKeyPrefix = "ram_"

// Collections is the whole data set. Slices keep stored order; new records
// are appended.
type Collections struct {
	Users         []user.User
	Tasks         []task.Task
	Leaves        []leave.LeaveRequest
	Attendance    []attendance.AttendanceRecord
	Projects      []project.Project
	Announcements []announcement.Announcement
}

// Keys names the slot of each collection.
type Keys struct {
	Users         string
	Tasks         string
	Leaves        string
	Attendance    string
	Projects      string
	Announcements string
}

func NewKeys(prefix string) Keys {
	return Keys{
		Users:         prefix + "users",
		Tasks:         prefix + "tasks",
		Leaves:        prefix + "leaves",
		Attendance:    prefix + "attendance",
		Projects:      prefix + "projects",
		Announcements: prefix + "announcements",
	}
}

// All lists the six keys in save order.
func (k Keys) All() []string {
	return []string{k.Users, k.Tasks, k.Leaves, k.Attendance, k.Projects, k.Announcements}
}

// Load decodes the slot at key. A missing, unreadable or malformed slot
// yields def; def is never written back.
func Load[T any](ctx context.Context, s storage.SlotStorage, key string, def T) T {
	value, err := load(ctx, s, key, def)
	if err != nil {
		slog.Warn("Slot unreadable, using default", "key", key, "error", err)
	}
	return value
}

// load is Load for writers: a missing or malformed slot still yields def,
// but a failed read is returned so nothing gets saved over the real data.
func load[T any](ctx context.Context, s storage.SlotStorage, key string, def T) (T, error) {
	data, err := s.Read(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrSlotNotFound) {
			return def, nil
		}
		return def, fmt.Errorf("failed to read slot %s: %w", key, err)
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		slog.Warn("Slot malformed, using default", "key", key, "error", err)
		return def, nil
	}
	return value, nil
}

// Store binds one execution context to a slot storage. Several Stores may
// share a storage; each one sees the others' writes on its next Sync.
//
// There is no locking between Sync and SaveAll: when two contexts interleave
// a reload-mutate-save cycle, the later SaveAll overwrites all six slots and
// the earlier context's change is lost.
type Store struct {
	storage storage.SlotStorage
	hub     *sse.Hub
	keys    Keys
}

// NewStore creates a store context. hub may be nil when nobody listens.
func NewStore(s storage.SlotStorage, hub *sse.Hub, keys Keys) *Store {
	return &Store{
		storage: s,
		hub:     hub,
		keys:    keys,
	}
}

// Keys returns the slot names this store reads and writes.
func (s *Store) Keys() Keys {
	return s.keys
}

// Sync reloads every collection from storage, falling back to the seed set
// per slot.
func (s *Store) Sync(ctx context.Context) Collections {
	return Collections{
		Users:         Load(ctx, s.storage, s.keys.Users, fixtures.Users()),
		Tasks:         Load(ctx, s.storage, s.keys.Tasks, fixtures.Tasks()),
		Leaves:        Load(ctx, s.storage, s.keys.Leaves, []leave.LeaveRequest{}),
		Attendance:    Load(ctx, s.storage, s.keys.Attendance, []attendance.AttendanceRecord{}),
		Projects:      Load(ctx, s.storage, s.keys.Projects, fixtures.Projects()),
		Announcements: Load(ctx, s.storage, s.keys.Announcements, fixtures.Announcements()),
	}
}

// SaveAll serializes and writes all six collections, whichever changed,
// then publishes one change event.
func (s *Store) SaveAll(ctx context.Context, c Collections) error {
	values := []interface{}{c.Users, c.Tasks, c.Leaves, c.Attendance, c.Projects, c.Announcements}
	keys := s.keys.All()

	slots := make([]storage.Slot, len(keys))
	for i, key := range keys {
		data, err := json.Marshal(values[i])
		if err != nil {
			return fmt.Errorf("failed to encode slot %s: %w", key, err)
		}
		slots[i] = storage.Slot{Key: key, Value: data}
	}

	if err := s.storage.WriteAll(ctx, slots); err != nil {
		return fmt.Errorf("failed to save collections: %w", err)
	}

	if s.hub != nil {
		s.hub.NotifyChanged()
	}
	return nil
}

// reload is Sync that fails when any slot cannot be read.
func (s *Store) reload(ctx context.Context) (Collections, error) {
	var c Collections
	var errs [6]error
	c.Users, errs[0] = load(ctx, s.storage, s.keys.Users, fixtures.Users())
	c.Tasks, errs[1] = load(ctx, s.storage, s.keys.Tasks, fixtures.Tasks())
	c.Leaves, errs[2] = load(ctx, s.storage, s.keys.Leaves, []leave.LeaveRequest{})
	c.Attendance, errs[3] = load(ctx, s.storage, s.keys.Attendance, []attendance.AttendanceRecord{})
	c.Projects, errs[4] = load(ctx, s.storage, s.keys.Projects, fixtures.Projects())
	c.Announcements, errs[5] = load(ctx, s.storage, s.keys.Announcements, fixtures.Announcements())
	return c, errors.Join(errs[:]...)
}

// Update runs one write operation: reload, let fn mutate, save everything.
// The reload happens once, at the start; nothing is re-read before the save.
// When a slot cannot be read, fn is not run and nothing is saved.
func (s *Store) Update(ctx context.Context, fn func(c *Collections) error) error {
	c, err := s.reload(ctx)
	if err != nil {
		return fmt.Errorf("failed to reload collections: %w", err)
	}
	if err := fn(&c); err != nil {
		return err
	}
	return s.SaveAll(ctx, c)
}

// Fingerprint hashes the raw contents of the six slots. It changes whenever
// any context writes different bytes.
func (s *Store) Fingerprint(ctx context.Context) (string, error) {
	h := sha256.New()
	for _, key := range s.keys.All() {
		data, err := s.storage.Read(ctx, key)
		switch {
		case errors.Is(err, storage.ErrSlotNotFound):
			fmt.Fprintf(h, "%s:absent;", key)
		case err != nil:
			return "", fmt.Errorf("failed to read slot %s: %w", key, err)
		default:
			fmt.Fprintf(h, "%s:%d:", key, len(data))
			h.Write(data)
		}
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
