// Package entities contains core business entities.
package entities

import "time"

// User is a domain representation of a directory member with its
// tag associations and busy slots.
type User struct {
	ID        string
	Name      string
	Email     string
	Phone     *string
	Tags      []string
	BusySlots []BusySlot
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser carries the fields accepted on user registration.
type NewUser struct {
	Name  string
	Email string
	Phone *string
	Tags  []string
}

// UserPatch is a partial profile update. Nil fields are left untouched;
// a non-nil Tags replaces the whole association set.
type UserPatch struct {
	Name  *string
	Email *string
	Phone *string
	Tags  *[]string
}

// IsEmpty reports whether the patch changes nothing.
func (p UserPatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.Phone == nil && p.Tags == nil
}
