// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrSlotNotFound is returned when a busy slot does not exist for the user.
	ErrSlotNotFound = errors.New("busy slot not found")
	// ErrEmailTaken signals a unique email conflict on create or update.
	ErrEmailTaken = errors.New("email taken")
)
