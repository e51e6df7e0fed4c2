package domain

import (
	"context"
	"fmt"

	"github.com/tarun4279/av-board-api/internal/availability"
	"github.com/tarun4279/av-board-api/internal/entities"
	"github.com/tarun4279/av-board-api/pkg/ident"
)

// MarkBusy records a busy slot for a user. Bounds reuse the resolver's
// window rules: RFC3339 timestamps with from strictly before to.
func (u *Usecase) MarkBusy(ctx context.Context, userID, fromRaw, toRaw string, reason *string) (*entities.BusySlot, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if userID == "" {
		return nil, fmt.Errorf("%w: user_id is required", entities.ErrInvalidArgument)
	}
	w, err := availability.ParseWindow(fromRaw, toRaw)
	if err != nil {
		return nil, err
	}

	id, err := ident.Generate("slot")
	if err != nil {
		return nil, err
	}

	return u.repo.CreateBusySlot(ctx, entities.BusySlot{
		ID:     id,
		UserID: userID,
		From:   w.From,
		To:     w.To,
		Reason: reason,
	})
}

// RemoveBusySlot deletes one busy slot owned by the user.
func (u *Usecase) RemoveBusySlot(ctx context.Context, userID, slotID string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if userID == "" || slotID == "" {
		return fmt.Errorf("%w: missing required fields", entities.ErrInvalidArgument)
	}
	return u.repo.DeleteBusySlot(ctx, userID, slotID)
}
