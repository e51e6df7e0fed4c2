package usecase

import (
	"context"

	"github.com/tarun4279/av-board-api/internal/entities"
)

// UserUsecaseInterface abstracts user CRUD for the delivery layer.
type UserUsecaseInterface interface {
	CreateUser(ctx context.Context, in entities.NewUser) (*entities.User, error)
	User(ctx context.Context, userID string) (*entities.User, error)
	ListUsers(ctx context.Context) ([]entities.User, error)
	UpdateUser(ctx context.Context, userID string, patch entities.UserPatch) (*entities.User, error)
	DeleteUser(ctx context.Context, userID string) error
}

// TagUsecaseInterface abstracts tag membership operations.
type TagUsecaseInterface interface {
	AddTags(ctx context.Context, userID string, rawTags []string) (*entities.User, error)
	RemoveTags(ctx context.Context, userID string, rawTags []string) (*entities.User, error)
	TagCatalog(ctx context.Context) ([]entities.TagStat, error)
}

// BusySlotUsecaseInterface abstracts busy slot operations.
type BusySlotUsecaseInterface interface {
	MarkBusy(ctx context.Context, userID, fromRaw, toRaw string, reason *string) (*entities.BusySlot, error)
	RemoveBusySlot(ctx context.Context, userID, slotID string) error
}

// AvailabilityUsecaseInterface abstracts the availability resolver.
type AvailabilityUsecaseInterface interface {
	FreeUsers(ctx context.Context, fromRaw, toRaw string, rawTags []string) ([]entities.User, error)
}

// StatsUsecaseInterface abstracts statistics operations.
type StatsUsecaseInterface interface {
	Stats(ctx context.Context) (entities.DirectoryStats, error)
}
