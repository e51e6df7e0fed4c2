package domain

import (
	"context"

	"github.com/tarun4279/av-board-api/internal/availability"
	"github.com/tarun4279/av-board-api/internal/entities"
)

// FreeUsers resolves the availability query: users holding every required
// tag with no busy slot overlapping the window. Validation is fail-fast;
// no store access happens on malformed input. The tag filter runs inside
// the store's retrieval pass, the overlap predicate over the hydrated
// slots, which the response projection needs in full anyway.
func (u *Usecase) FreeUsers(ctx context.Context, fromRaw, toRaw string, rawTags []string) ([]entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	w, err := availability.ParseWindow(fromRaw, toRaw)
	if err != nil {
		return nil, err
	}
	tags := availability.NormalizeTags(rawTags)

	candidates, err := u.repo.ListUsersByTags(ctx, tags)
	if err != nil {
		return nil, err
	}

	free := availability.FreeUsers(candidates, w)
	u.log.Infow("availability resolved",
		"from", w.From, "to", w.To, "required_tags", tags,
		"candidates", len(candidates), "free", len(free),
	)
	return free, nil
}
