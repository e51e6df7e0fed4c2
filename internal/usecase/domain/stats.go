package domain

import (
	"context"

	"github.com/tarun4279/av-board-api/internal/entities"
)

// Stats returns directory-wide aggregates.
func (u *Usecase) Stats(ctx context.Context) (entities.DirectoryStats, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.Stats(ctx)
}
