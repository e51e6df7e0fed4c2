// Package entities contains core business entities.
package entities

// DirectoryStats aggregates counters over users, tags and busy slots.
type DirectoryStats struct {
	Totals       Totals         `json:"totals"`
	ByTag        []TagStat      `json:"by_tag"`
	BusiestUsers []UserSlotStat `json:"busiest_users"`
}

// Totals holds directory-wide row counts.
type Totals struct {
	Users     int64 `json:"users"`
	Tags      int64 `json:"tags"`
	BusySlots int64 `json:"busy_slots"`
}

// TagStat is a catalog entry with the number of users holding the tag.
// The catalog keeps tags with zero members.
type TagStat struct {
	Name    string `json:"name"`
	Members int64  `json:"members"`
}

// UserSlotStat counts busy slots per user.
type UserSlotStat struct {
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	SlotCount int64  `json:"slot_count"`
}
