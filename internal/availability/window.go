// Package availability implements the availability resolver core: the
// query window, the half-open interval overlap predicate, required-tag
// normalization and the predicates combining them.
package availability

import (
	"fmt"
	"time"

	"github.com/tarun4279/av-board-api/internal/entities"
)

// Window is a half-open query interval [From, To).
type Window struct {
	From time.Time
	To   time.Time
}

// NewWindow builds a window, requiring from to be strictly before to.
func NewWindow(from, to time.Time) (Window, error) {
	if !from.Before(to) {
		return Window{}, fmt.Errorf("%w: from must be before to", entities.ErrInvalidArgument)
	}
	return Window{From: from, To: to}, nil
}

// ParseWindow parses RFC3339 bounds and validates their order.
// Each parse failure names the offending field.
func ParseWindow(fromRaw, toRaw string) (Window, error) {
	from, err := time.Parse(time.RFC3339, fromRaw)
	if err != nil {
		return Window{}, fmt.Errorf("%w: from must be a valid RFC3339 timestamp", entities.ErrInvalidArgument)
	}
	to, err := time.Parse(time.RFC3339, toRaw)
	if err != nil {
		return Window{}, fmt.Errorf("%w: to must be a valid RFC3339 timestamp", entities.ErrInvalidArgument)
	}
	return NewWindow(from, to)
}

// Overlaps reports whether the half-open interval [from, to) intersects
// the window. Touching intervals do not overlap: [a,b) and [b,c) are
// disjoint.
func (w Window) Overlaps(from, to time.Time) bool {
	return from.Before(w.To) && w.From.Before(to)
}
