package postgres

import (
	"context"
	"fmt"

	"github.com/tarun4279/av-board-api/internal/entities"
)

const (
	// Tag intersection pushed into the retrieval pass: a user qualifies
	// when it holds as many of the required (distinct) tag names as the
	// required set contains. An empty set matches everyone.
	usersByTagsQuery = `
SELECT u.id, u.name, u.email, u.phone, u.created_at, u.updated_at
FROM users u
WHERE cardinality($1::text[]) = 0
   OR (SELECT COUNT(*)
       FROM user_tags ut
       JOIN tags t ON t.id = ut.tag_id
       WHERE ut.user_id = u.id AND t.name = ANY($1::text[])) = cardinality($1::text[])
ORDER BY u.created_at, u.id`
	batchTagsQuery = `
SELECT ut.user_id, t.name
FROM user_tags ut
JOIN tags t ON t.id = ut.tag_id
WHERE ut.user_id = ANY($1::text[])
ORDER BY t.name`
	batchSlotsQuery = `
SELECT id, user_id, from_ts, to_ts, reason, created_at
FROM busy_slots
WHERE user_id = ANY($1::text[])
ORDER BY from_ts, id`
)

// ListUsersByTags returns users holding every required tag, hydrated with
// their full tag and busy slot sets in two batch reads. Result order is
// stable: creation time, then id.
func (p *Postgres) ListUsersByTags(ctx context.Context, requiredTags []string) ([]entities.User, error) {
	if requiredTags == nil {
		requiredTags = []string{}
	}

	rows, err := p.db.Query(ctx, usersByTagsQuery, requiredTags)
	if err != nil {
		p.log.Errorw("failed to select users by tags", "error", err, "tags", requiredTags)
		return nil, fmt.Errorf("select users by tags: %w", err)
	}
	defer rows.Close()

	users := make([]entities.User, 0)
	index := make(map[string]int)
	ids := make([]string, 0)
	for rows.Next() {
		var u entities.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		u.Tags = make([]string, 0)
		u.BusySlots = make([]entities.BusySlot, 0)
		index[u.ID] = len(users)
		ids = append(ids, u.ID)
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}

	if len(users) == 0 {
		return users, nil
	}

	if err := p.hydrateTags(ctx, ids, index, users); err != nil {
		return nil, err
	}
	if err := p.hydrateSlots(ctx, ids, index, users); err != nil {
		return nil, err
	}
	return users, nil
}

func (p *Postgres) hydrateTags(ctx context.Context, ids []string, index map[string]int, users []entities.User) error {
	rows, err := p.db.Query(ctx, batchTagsQuery, ids)
	if err != nil {
		return fmt.Errorf("select user tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var userID, name string
		if err := rows.Scan(&userID, &name); err != nil {
			return fmt.Errorf("scan user tag: %w", err)
		}
		if i, ok := index[userID]; ok {
			users[i].Tags = append(users[i].Tags, name)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate user tags: %w", err)
	}
	return nil
}

func (p *Postgres) hydrateSlots(ctx context.Context, ids []string, index map[string]int, users []entities.User) error {
	rows, err := p.db.Query(ctx, batchSlotsQuery, ids)
	if err != nil {
		return fmt.Errorf("select busy slots: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var s entities.BusySlot
		if err := rows.Scan(&s.ID, &s.UserID, &s.From, &s.To, &s.Reason, &s.CreatedAt); err != nil {
			return fmt.Errorf("scan busy slot: %w", err)
		}
		if i, ok := index[s.UserID]; ok {
			users[i].BusySlots = append(users[i].BusySlots, s)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate busy slots: %w", err)
	}
	return nil
}
