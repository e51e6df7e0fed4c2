package postgres

import (
	"context"
	"fmt"

	"github.com/tarun4279/av-board-api/internal/entities"
)

const (
	totalsQuery = `
SELECT (SELECT COUNT(*) FROM users),
       (SELECT COUNT(*) FROM tags),
       (SELECT COUNT(*) FROM busy_slots)`
	busiestUsersQuery = `
SELECT u.id, u.name, COUNT(b.id)
FROM users u
JOIN busy_slots b ON b.user_id = u.id
GROUP BY u.id, u.name
ORDER BY COUNT(b.id) DESC, u.id
LIMIT $1`
)

const busiestUsersLimit = 10

// Stats returns directory-wide aggregates: totals, members per tag and
// the users holding the most busy slots.
func (p *Postgres) Stats(ctx context.Context) (entities.DirectoryStats, error) {
	res := entities.DirectoryStats{}

	if err := p.db.QueryRow(ctx, totalsQuery).
		Scan(&res.Totals.Users, &res.Totals.Tags, &res.Totals.BusySlots); err != nil {
		return res, fmt.Errorf("stats totals: %w", err)
	}

	byTag, err := p.ListTags(ctx)
	if err != nil {
		return res, fmt.Errorf("stats by tag: %w", err)
	}
	res.ByTag = byTag

	rows, err := p.db.Query(ctx, busiestUsersQuery, busiestUsersLimit)
	if err != nil {
		return res, fmt.Errorf("stats busiest users: %w", err)
	}
	defer rows.Close()
	res.BusiestUsers = make([]entities.UserSlotStat, 0)
	for rows.Next() {
		var s entities.UserSlotStat
		if err := rows.Scan(&s.UserID, &s.Name, &s.SlotCount); err != nil {
			return res, fmt.Errorf("scan busiest user: %w", err)
		}
		res.BusiestUsers = append(res.BusiestUsers, s)
	}
	if err := rows.Err(); err != nil {
		return res, fmt.Errorf("iterate busiest users: %w", err)
	}

	return res, nil
}
