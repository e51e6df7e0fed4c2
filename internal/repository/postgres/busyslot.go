package postgres

import (
	"context"
	"fmt"

	"github.com/tarun4279/av-board-api/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	insertSlotQuery = `
INSERT INTO busy_slots(id, user_id, from_ts, to_ts, reason)
VALUES ($1, $2, $3, $4, $5)
RETURNING created_at`
	deleteSlotQuery = `DELETE FROM busy_slots WHERE id=$1 AND user_id=$2`
)

// CreateBusySlot stores a busy slot for an existing user. Interval order
// is validated upstream; the schema CHECK is the backstop.
func (p *Postgres) CreateBusySlot(ctx context.Context, slot entities.BusySlot) (*entities.BusySlot, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := p.userExists(ctx, tx, slot.UserID); err != nil {
		return nil, err
	}

	if err := tx.QueryRow(ctx, insertSlotQuery, slot.ID, slot.UserID, slot.From, slot.To, slot.Reason).
		Scan(&slot.CreatedAt); err != nil {
		p.log.Errorw("failed to insert busy slot", "error", err, "user_id", slot.UserID)
		return nil, fmt.Errorf("insert busy slot: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("busy slot created", "slot_id", slot.ID, "user_id", slot.UserID, "from", slot.From, "to", slot.To)
	return &slot, nil
}

// DeleteBusySlot removes a single busy slot owned by the user.
func (p *Postgres) DeleteBusySlot(ctx context.Context, userID, slotID string) error {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, deleteSlotQuery, slotID, userID)
	if err != nil {
		p.log.Errorw("failed to delete busy slot", "error", err, "slot_id", slotID)
		return fmt.Errorf("delete busy slot: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Distinguish a missing user from a missing slot.
		if err := p.userExists(ctx, tx, userID); err != nil {
			return err
		}
		return entities.ErrSlotNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	p.log.Infow("busy slot deleted", "slot_id", slotID, "user_id", userID)
	return nil
}
