// Package entities contains core business entities.
package entities

import "time"

// BusySlot is a half-open interval [From, To) during which the owning
// user is unavailable. A user may hold any number of slots, including
// ones that overlap each other.
type BusySlot struct {
	ID        string
	UserID    string
	From      time.Time
	To        time.Time
	Reason    *string
	CreatedAt time.Time
}
