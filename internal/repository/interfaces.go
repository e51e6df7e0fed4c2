// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"github.com/tarun4279/av-board-api/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// UserInterface exposes user CRUD operations.
type UserInterface interface {
	CreateUser(ctx context.Context, user entities.User, tags []string) (*entities.User, error)
	GetUser(ctx context.Context, userID string) (*entities.User, error)
	ListUsers(ctx context.Context) ([]entities.User, error)
	UpdateUser(ctx context.Context, userID string, patch entities.UserPatch) (*entities.User, error)
	DeleteUser(ctx context.Context, userID string) error
}

// TagInterface exposes tag membership mutation and the global catalog.
type TagInterface interface {
	AddUserTags(ctx context.Context, userID string, tags []string) (*entities.User, error)
	RemoveUserTags(ctx context.Context, userID string, tags []string) (*entities.User, error)
	ListTags(ctx context.Context) ([]entities.TagStat, error)
}

// BusySlotInterface exposes busy slot mutation.
type BusySlotInterface interface {
	CreateBusySlot(ctx context.Context, slot entities.BusySlot) (*entities.BusySlot, error)
	DeleteBusySlot(ctx context.Context, userID, slotID string) error
}

// AvailabilityInterface exposes the read pass feeding the resolver.
// ListUsersByTags returns users holding every required tag, hydrated
// with their full tag and busy slot sets; an empty tag set returns all
// users. Ordering is stable (creation time, then id).
type AvailabilityInterface interface {
	ListUsersByTags(ctx context.Context, requiredTags []string) ([]entities.User, error)
}

// StatsInterface exposes aggregated statistics operations.
type StatsInterface interface {
	Stats(ctx context.Context) (entities.DirectoryStats, error)
}
