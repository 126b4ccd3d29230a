package kv

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/raminfosys/erp-backend-go/internal/domain/leave"
	"github.com/raminfosys/erp-backend-go/internal/domain/user"
	"github.com/raminfosys/erp-backend-go/internal/fixtures"
	"github.com/raminfosys/erp-backend-go/internal/pkg/sse"
	"github.com/raminfosys/erp-backend-go/internal/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unreadableStorage fails every read and records writes.
type unreadableStorage struct {
	writes int
}

func (s *unreadableStorage) Read(ctx context.Context, key string) ([]byte, error) {
	return nil, errors.New("storage offline")
}

func (s *unreadableStorage) WriteAll(ctx context.Context, slots []storage.Slot) error {
	s.writes++
	return nil
}

func newTestStore(t *testing.T) (*Store, *storage.MemoryStorage) {
	t.Helper()
	mem := storage.NewMemoryStorage()
	return NewStore(mem, nil, NewKeys(DefaultKeyPrefix)), mem
}

func TestNewKeys_UsesPrefix(t *testing.T) {
	keys := NewKeys("ram_")
	assert.Equal(t, []string{
		"ram_users", "ram_tasks", "ram_leaves", "ram_attendance", "ram_projects", "ram_announcements",
	}, keys.All())
}

func TestStore_Sync_DefaultsWhenEmpty(t *testing.T) {
	ctx := context.Background()
	store, mem := newTestStore(t)

	c := store.Sync(ctx)

	assert.Equal(t, fixtures.Users(), c.Users)
	assert.Equal(t, fixtures.Tasks(), c.Tasks)
	assert.Equal(t, fixtures.Projects(), c.Projects)
	assert.Equal(t, fixtures.Announcements(), c.Announcements)
	assert.Empty(t, c.Leaves)
	assert.Empty(t, c.Attendance)

	// Defaults are never written back
	_, err := mem.Read(ctx, store.Keys().Users)
	assert.ErrorIs(t, err, storage.ErrSlotNotFound)
}

func TestStore_Sync_MalformedSlotFallsBack(t *testing.T) {
	ctx := context.Background()
	store, mem := newTestStore(t)
	require.NoError(t, mem.WriteAll(ctx, []storage.Slot{
		{Key: store.Keys().Users, Value: []byte(`{not json`)},
		{Key: store.Keys().Leaves, Value: []byte(`[{"id":"l1","status":"PENDING"}]`)},
	}))

	c := store.Sync(ctx)

	assert.Equal(t, fixtures.Users(), c.Users)
	require.Len(t, c.Leaves, 1)
	assert.Equal(t, "l1", c.Leaves[0].ID)

	raw, err := mem.Read(ctx, store.Keys().Users)
	require.NoError(t, err)
	assert.Equal(t, `{not json`, string(raw))
}

func TestStore_Sync_UnreadableStorageFallsBack(t *testing.T) {
	s := &unreadableStorage{}
	store := NewStore(s, nil, NewKeys(DefaultKeyPrefix))

	c := store.Sync(context.Background())

	assert.Equal(t, fixtures.Users(), c.Users)
	assert.Equal(t, 0, s.writes)
}

// flakyStorage fails reads of one key and counts writes.
type flakyStorage struct {
	storage.SlotStorage
	failKey string
	writes  int
}

func (s *flakyStorage) Read(ctx context.Context, key string) ([]byte, error) {
	if key == s.failKey {
		return nil, errors.New("connection reset")
	}
	return s.SlotStorage.Read(ctx, key)
}

func (s *flakyStorage) WriteAll(ctx context.Context, slots []storage.Slot) error {
	s.writes++
	return s.SlotStorage.WriteAll(ctx, slots)
}

func TestStore_Update_UnreadableSlotSavesNothing(t *testing.T) {
	ctx := context.Background()

	// Arrange
	mem := storage.NewMemoryStorage()
	seeded := NewStore(mem, nil, NewKeys(DefaultKeyPrefix))
	c := seeded.Sync(ctx)
	for i := 0; i < 50; i++ {
		c.Users = append(c.Users, user.User{ID: fmt.Sprintf("u%d", i), Name: "Employee"})
	}
	require.NoError(t, seeded.SaveAll(ctx, c))
	before, err := mem.Read(ctx, seeded.Keys().Users)
	require.NoError(t, err)

	flaky := &flakyStorage{SlotStorage: mem, failKey: seeded.Keys().Users}
	hub := sse.NewHub()
	events, cleanup := hub.Subscribe()
	defer cleanup()
	store := NewStore(flaky, hub, NewKeys(DefaultKeyPrefix))

	// Act
	called := false
	err = store.Update(ctx, func(c *Collections) error {
		called = true
		return nil
	})
	leaveErr := NewLeaveRepository(store).UpdateStatus(ctx, "nope", leave.StatusApproved)

	// Assert
	assert.Error(t, err)
	assert.Error(t, leaveErr)
	assert.False(t, called)
	assert.Equal(t, 0, flaky.writes)
	assert.Len(t, events, 0)

	after, err := mem.Read(ctx, seeded.Keys().Users)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Len(t, seeded.Sync(ctx).Users, len(fixtures.Users())+50)
}

func TestStore_Update_MissingSlotUsesDefault(t *testing.T) {
	ctx := context.Background()
	store, mem := newTestStore(t)

	require.NoError(t, store.Update(ctx, func(c *Collections) error { return nil }))

	raw, err := mem.Read(ctx, store.Keys().Users)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"Admin Director"`)
}

func TestStore_Sync_EmptyArrayIsNotDefaulted(t *testing.T) {
	ctx := context.Background()
	store, mem := newTestStore(t)
	require.NoError(t, mem.WriteAll(ctx, []storage.Slot{{Key: store.Keys().Users, Value: []byte(`[]`)}}))

	c := store.Sync(ctx)

	assert.NotNil(t, c.Users)
	assert.Empty(t, c.Users)
}

func TestStore_SaveAll_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	c := store.Sync(ctx)
	c.Leaves = append(c.Leaves, leave.LeaveRequest{
		ID: "l1", UserID: "3", UserName: "John Doe", StartDate: "2025-03-01", EndDate: "2025-03-02",
		Reason: "flu", Type: leave.TypeSick, Status: leave.StatusPending,
	})
	c.Users[0].Name = "Renamed"
	require.NoError(t, store.SaveAll(ctx, c))

	assert.Equal(t, c, store.Sync(ctx))
}

func TestStore_SaveAll_WritesEverySlot(t *testing.T) {
	ctx := context.Background()
	store, mem := newTestStore(t)

	require.NoError(t, store.SaveAll(ctx, store.Sync(ctx)))

	for _, key := range store.Keys().All() {
		_, err := mem.Read(ctx, key)
		assert.NoError(t, err, key)
	}
	raw, err := mem.Read(ctx, store.Keys().Attendance)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(raw))
}

func TestStore_SaveAll_PublishesOnce(t *testing.T) {
	ctx := context.Background()
	hub := sse.NewHub()
	events, cleanup := hub.Subscribe()
	defer cleanup()
	store := NewStore(storage.NewMemoryStorage(), hub, NewKeys(DefaultKeyPrefix))

	require.NoError(t, store.SaveAll(ctx, store.Sync(ctx)))

	require.Len(t, events, 1)
	assert.Equal(t, sse.EventChanged, (<-events).Event)
}

func TestStore_Update_ErrorSkipsSave(t *testing.T) {
	ctx := context.Background()
	store, mem := newTestStore(t)
	boom := errors.New("boom")

	err := store.Update(ctx, func(c *Collections) error {
		c.Users = nil
		return boom
	})

	assert.ErrorIs(t, err, boom)
	_, readErr := mem.Read(ctx, store.Keys().Users)
	assert.ErrorIs(t, readErr, storage.ErrSlotNotFound)
}

func TestStore_Sync_ReturnsIndependentCopies(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	first := store.Sync(ctx)
	first.Users[0].Name = "changed locally"
	first.Projects[0].Team[0] = "99"

	second := store.Sync(ctx)
	assert.Equal(t, fixtures.Users(), second.Users)
	assert.Equal(t, fixtures.Projects(), second.Projects)
}

func TestStore_Sync_SeesOtherContextWrites(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemoryStorage()
	keys := NewKeys(DefaultKeyPrefix)
	tabA := NewStore(mem, nil, keys)
	tabB := NewStore(mem, nil, keys)

	require.NoError(t, NewUserRepository(tabB).Update(ctx, "3", user.UpdateUserRequest{Name: strPtr("Johnny")}))

	got, err := NewUserRepository(tabA).GetByID(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, "Johnny", got.Name)
}

// Two contexts each reload at the start of an operation and save all six
// slots at the end. Whichever saves last wins, including over collections
// it never touched.
func TestStore_InterleavedWrites_LastSaveWins(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemoryStorage()
	keys := NewKeys(DefaultKeyPrefix)
	tabA := NewStore(mem, nil, keys)
	tabB := NewStore(mem, nil, keys)

	staleA := tabA.Sync(ctx)

	_, err := NewLeaveRepository(tabB).Create(ctx, leave.LeaveRequest{ID: "l1", UserID: "3", Status: leave.StatusPending})
	require.NoError(t, err)

	staleA.Users[0].Department = "Board"
	require.NoError(t, tabA.SaveAll(ctx, staleA))

	after := tabB.Sync(ctx)
	assert.Empty(t, after.Leaves, "B's leave request is overwritten by A's stale save")
	assert.Equal(t, "Board", after.Users[0].Department)
}

func TestStore_Fingerprint_ChangesOnWrite(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	before, err := store.Fingerprint(ctx)
	require.NoError(t, err)
	again, err := store.Fingerprint(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, again)

	require.NoError(t, store.SaveAll(ctx, store.Sync(ctx)))

	after, err := store.Fingerprint(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, before, after)
}

func TestStore_Fingerprint_ReadError(t *testing.T) {
	store := NewStore(&unreadableStorage{}, nil, NewKeys(DefaultKeyPrefix))

	_, err := store.Fingerprint(context.Background())
	assert.Error(t, err)
}

func strPtr(s string) *string { return &s }
