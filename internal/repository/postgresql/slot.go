package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/raminfosys/erp-backend-go/internal/pkg/database"
	"github.com/raminfosys/erp-backend-go/internal/pkg/storage"
)

const slotSchema = `
	CREATE TABLE IF NOT EXISTS erp_slots (
		key        TEXT PRIMARY KEY,
		value      BYTEA NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
`

// SlotRepository stores slots as rows of erp_slots and announces every
// WriteAll on a NOTIFY channel, tagged with this process's origin id.
type SlotRepository struct {
	db      *database.DB
	channel string
	origin  string
}

func NewSlotRepository(ctx context.Context, db *database.DB, channel string, origin string) (*SlotRepository, error) {
	if _, err := db.Exec(ctx, slotSchema); err != nil {
		return nil, fmt.Errorf("failed to create erp_slots table: %w", err)
	}

	return &SlotRepository{
		db:      db,
		channel: channel,
		origin:  origin,
	}, nil
}

// Read implements storage.SlotStorage.
func (r *SlotRepository) Read(ctx context.Context, key string) ([]byte, error) {
	q := GetQuerier(ctx, r.db)

	var value []byte
	err := q.QueryRow(ctx, `SELECT value FROM erp_slots WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrSlotNotFound
		}
		return nil, fmt.Errorf("failed to read slot %s: %w", key, err)
	}

	return value, nil
}

// WriteAll implements storage.SlotStorage. All slots land in one
// transaction and the notification is delivered on commit.
func (r *SlotRepository) WriteAll(ctx context.Context, slots []storage.Slot) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		txCtx := ContextWithTx(ctx, tx)
		for _, slot := range slots {
			if err := r.write(txCtx, slot); err != nil {
				return err
			}
		}

		if _, err := tx.Exec(ctx, `SELECT pg_notify($1, $2)`, r.channel, r.origin); err != nil {
			return fmt.Errorf("failed to notify %s: %w", r.channel, err)
		}
		return nil
	})
}

func (r *SlotRepository) write(ctx context.Context, slot storage.Slot) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		INSERT INTO erp_slots (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = NOW()
	`, slot.Key, slot.Value)
	if err != nil {
		return fmt.Errorf("failed to write slot %s: %w", slot.Key, err)
	}
	return nil
}

// Listen implements storage.Broadcaster. Notifications sent by this
// process are skipped: the local hub already published them.
func (r *SlotRepository) Listen(ctx context.Context, fn func()) error {
	conn, err := r.db.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire listen connection: %w", err)
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{r.channel}.Sanitize()); err != nil {
		return fmt.Errorf("failed to listen on %s: %w", r.channel, err)
	}

	for {
		n, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("wait for notification: %w", err)
		}
		if n.Payload == r.origin {
			continue
		}
		fn()
	}
}
