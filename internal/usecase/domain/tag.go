package domain

import (
	"context"
	"fmt"

	"github.com/tarun4279/av-board-api/internal/availability"
	"github.com/tarun4279/av-board-api/internal/entities"
)

// AddTags attaches tags to a user, creating missing catalog entries.
func (u *Usecase) AddTags(ctx context.Context, userID string, rawTags []string) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if userID == "" {
		return nil, fmt.Errorf("%w: user_id is required", entities.ErrInvalidArgument)
	}
	tags := availability.NormalizeTags(rawTags)
	if len(tags) == 0 {
		return nil, fmt.Errorf("%w: tags are required", entities.ErrInvalidArgument)
	}
	return u.repo.AddUserTags(ctx, userID, tags)
}

// RemoveTags detaches tags by name; names the user does not hold are ignored.
func (u *Usecase) RemoveTags(ctx context.Context, userID string, rawTags []string) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if userID == "" {
		return nil, fmt.Errorf("%w: user_id is required", entities.ErrInvalidArgument)
	}
	tags := availability.NormalizeTags(rawTags)
	if len(tags) == 0 {
		return nil, fmt.Errorf("%w: tags are required", entities.ErrInvalidArgument)
	}
	return u.repo.RemoveUserTags(ctx, userID, tags)
}

// TagCatalog returns the global tag catalog with member counts.
func (u *Usecase) TagCatalog(ctx context.Context) ([]entities.TagStat, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.ListTags(ctx)
}
