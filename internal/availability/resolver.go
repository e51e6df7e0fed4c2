package availability

import "github.com/tarun4279/av-board-api/internal/entities"

// IsFree reports whether none of the user's busy slots overlaps the
// window. A user with no busy slots is free over every window.
func IsFree(u entities.User, w Window) bool {
	for _, s := range u.BusySlots {
		if w.Overlaps(s.From, s.To) {
			return false
		}
	}
	return true
}

// HasAllTags reports whether the user holds every required tag by exact
// name. An empty required set matches every user.
func HasAllTags(u entities.User, required []string) bool {
	if len(required) == 0 {
		return true
	}
	held := make(map[string]struct{}, len(u.Tags))
	for _, t := range u.Tags {
		held[t] = struct{}{}
	}
	for _, r := range required {
		if _, ok := held[r]; !ok {
			return false
		}
	}
	return true
}

// FreeUsers filters candidates down to those free over the window,
// preserving input order. The two resolver predicates are independent
// and commutative; callers may push either one into the store and apply
// the rest here without changing the result set.
func FreeUsers(candidates []entities.User, w Window) []entities.User {
	res := make([]entities.User, 0, len(candidates))
	for _, u := range candidates {
		if IsFree(u, w) {
			res = append(res, u)
		}
	}
	return res
}

// Resolve applies both predicates in process. The production path pushes
// the tag filter into the store query and only runs FreeUsers; Resolve
// exists for callers holding an unfiltered candidate set.
func Resolve(candidates []entities.User, w Window, requiredTags []string) []entities.User {
	res := make([]entities.User, 0, len(candidates))
	for _, u := range candidates {
		if HasAllTags(u, requiredTags) && IsFree(u, w) {
			res = append(res, u)
		}
	}
	return res
}
