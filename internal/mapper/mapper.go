// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"github.com/tarun4279/av-board-api/internal/api"
	"github.com/tarun4279/av-board-api/internal/entities"
)

// ToAPIUser maps entities.User to its wire projection.
func ToAPIUser(u entities.User) api.UserView {
	tags := make([]string, len(u.Tags))
	copy(tags, u.Tags)

	slots := make([]api.BusySlotView, 0, len(u.BusySlots))
	for _, s := range u.BusySlots {
		slots = append(slots, ToAPIBusySlot(s))
	}

	return api.UserView{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Tags:      tags,
		BusySlots: slots,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// ToAPIUserList maps a slice of users to wire projections.
func ToAPIUserList(list []entities.User) []api.UserView {
	res := make([]api.UserView, 0, len(list))
	for _, u := range list {
		res = append(res, ToAPIUser(u))
	}
	return res
}

// ToAPIBusySlot maps entities.BusySlot to its wire projection.
func ToAPIBusySlot(s entities.BusySlot) api.BusySlotView {
	return api.BusySlotView{
		ID:        s.ID,
		From:      s.From,
		To:        s.To,
		Reason:    s.Reason,
		CreatedAt: s.CreatedAt,
	}
}

// FromAPICreateUser builds the registration input from the wire payload.
func FromAPICreateUser(src api.CreateUserRequest) entities.NewUser {
	return entities.NewUser{
		Name:  src.Name,
		Email: src.Email,
		Phone: src.Phone,
		Tags:  src.Tags,
	}
}

// FromAPIUpdateUser builds a partial patch from the wire payload.
func FromAPIUpdateUser(src api.UpdateUserRequest) entities.UserPatch {
	return entities.UserPatch{
		Name:  src.Name,
		Email: src.Email,
		Phone: src.Phone,
		Tags:  src.Tags,
	}
}
