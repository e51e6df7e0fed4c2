package postgres

import (
	"context"
	"fmt"

	"github.com/tarun4279/av-board-api/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	// DO UPDATE instead of DO NOTHING so RETURNING yields the id on conflict too.
	upsertTagQuery = `
INSERT INTO tags(name) VALUES ($1)
ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
RETURNING id`
	insertUserTagQuery = `INSERT INTO user_tags(user_id, tag_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`
	detachTagsQuery    = `
DELETE FROM user_tags ut
USING tags t
WHERE ut.tag_id = t.id AND ut.user_id = $1 AND t.name = ANY($2::text[])`
	tagCatalogQuery = `
SELECT t.name, COUNT(ut.user_id)
FROM tags t
LEFT JOIN user_tags ut ON ut.tag_id = t.id
GROUP BY t.name
ORDER BY t.name`
)

// AddUserTags attaches tags to a user, creating missing catalog entries.
func (p *Postgres) AddUserTags(ctx context.Context, userID string, tags []string) (*entities.User, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := p.userExists(ctx, tx, userID); err != nil {
		return nil, err
	}
	if err := p.attachTags(ctx, tx, userID, tags); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("tags attached", "user_id", userID, "tags", tags)
	return p.GetUser(ctx, userID)
}

// RemoveUserTags detaches tags by name. Detaching a tag the user does not
// hold is a no-op, and the catalog row is never deleted.
func (p *Postgres) RemoveUserTags(ctx context.Context, userID string, tags []string) (*entities.User, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := p.userExists(ctx, tx, userID); err != nil {
		return nil, err
	}
	if _, err := tx.Exec(ctx, detachTagsQuery, userID, tags); err != nil {
		p.log.Errorw("failed to detach tags", "error", err, "user_id", userID)
		return nil, fmt.Errorf("detach tags: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("tags detached", "user_id", userID, "tags", tags)
	return p.GetUser(ctx, userID)
}

// ListTags returns the global tag catalog with member counts, including
// tags no user currently holds.
func (p *Postgres) ListTags(ctx context.Context) ([]entities.TagStat, error) {
	rows, err := p.db.Query(ctx, tagCatalogQuery)
	if err != nil {
		return nil, fmt.Errorf("tag catalog: %w", err)
	}
	defer rows.Close()

	catalog := make([]entities.TagStat, 0)
	for rows.Next() {
		var t entities.TagStat
		if err := rows.Scan(&t.Name, &t.Members); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		catalog = append(catalog, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tags: %w", err)
	}
	return catalog, nil
}

func (p *Postgres) attachTags(ctx context.Context, tx pgx.Tx, userID string, tags []string) error {
	for _, name := range tags {
		var tagID int64
		if err := tx.QueryRow(ctx, upsertTagQuery, name).Scan(&tagID); err != nil {
			p.log.Errorw("failed to upsert tag", "error", err, "tag", name)
			return fmt.Errorf("upsert tag: %w", err)
		}
		if _, err := tx.Exec(ctx, insertUserTagQuery, userID, tagID); err != nil {
			return fmt.Errorf("attach tag: %w", err)
		}
	}
	return nil
}
