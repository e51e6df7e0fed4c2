package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/tarun4279/av-board-api/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	insertUserQuery = `INSERT INTO users(id, name, email, phone) VALUES ($1, $2, $3, $4)`
	selectUserQuery = `SELECT id, name, email, phone, created_at, updated_at FROM users WHERE id=$1`
	updateUserQuery = `
UPDATE users
SET name = COALESCE($2, name),
    email = COALESCE($3, email),
    phone = COALESCE($4, phone),
    updated_at = NOW()
WHERE id = $1`
	deleteUserQuery    = `DELETE FROM users WHERE id=$1`
	userExistsQuery    = `SELECT true FROM users WHERE id=$1`
	userTagsQuery      = `SELECT t.name FROM user_tags ut JOIN tags t ON t.id = ut.tag_id WHERE ut.user_id=$1 ORDER BY t.name`
	userSlotsQuery     = `SELECT id, from_ts, to_ts, reason, created_at FROM busy_slots WHERE user_id=$1 ORDER BY from_ts, id`
	clearUserTagsQuery = `DELETE FROM user_tags WHERE user_id=$1`
)

// uniqueViolationCode is the Postgres error code for unique constraint violations.
const uniqueViolationCode = "23505"

// CreateUser inserts a user and attaches its initial tag set in one transaction.
// A duplicate email is reported as entities.ErrEmailTaken, never reused.
func (p *Postgres) CreateUser(ctx context.Context, user entities.User, tags []string) (*entities.User, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, insertUserQuery, user.ID, user.Name, user.Email, user.Phone); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, entities.ErrEmailTaken
		}
		p.log.Errorw("failed to insert user", "error", err, "user_id", user.ID)
		return nil, fmt.Errorf("insert user: %w", err)
	}

	if err := p.attachTags(ctx, tx, user.ID, tags); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("user created", "user_id", user.ID, "tags", len(tags))
	return p.GetUser(ctx, user.ID)
}

// GetUser fetches a user with its tags and busy slots.
func (p *Postgres) GetUser(ctx context.Context, userID string) (*entities.User, error) {
	var u entities.User
	err := p.db.QueryRow(ctx, selectUserQuery, userID).
		Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if u.Tags, err = p.readUserTags(ctx, userID); err != nil {
		return nil, err
	}
	if u.BusySlots, err = p.readUserSlots(ctx, userID); err != nil {
		return nil, err
	}
	return &u, nil
}

// ListUsers returns every user with tags and busy slots.
func (p *Postgres) ListUsers(ctx context.Context) ([]entities.User, error) {
	return p.ListUsersByTags(ctx, nil)
}

// UpdateUser applies a partial profile update; a non-nil Tags patch
// replaces the association set. All writes share one transaction.
func (p *Postgres) UpdateUser(ctx context.Context, userID string, patch entities.UserPatch) (*entities.User, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, updateUserQuery, userID, patch.Name, patch.Email, patch.Phone)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, entities.ErrEmailTaken
		}
		p.log.Errorw("failed to update user", "error", err, "user_id", userID)
		return nil, fmt.Errorf("update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, entities.ErrUserNotFound
	}

	if patch.Tags != nil {
		if _, err := tx.Exec(ctx, clearUserTagsQuery, userID); err != nil {
			return nil, fmt.Errorf("clear user tags: %w", err)
		}
		if err := p.attachTags(ctx, tx, userID, *patch.Tags); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("user updated", "user_id", userID)
	return p.GetUser(ctx, userID)
}

// DeleteUser removes the user; tag associations and busy slots cascade.
func (p *Postgres) DeleteUser(ctx context.Context, userID string) error {
	tag, err := p.db.Exec(ctx, deleteUserQuery, userID)
	if err != nil {
		p.log.Errorw("failed to delete user", "error", err, "user_id", userID)
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrUserNotFound
	}

	p.log.Infow("user deleted", "user_id", userID)
	return nil
}

func (p *Postgres) readUserTags(ctx context.Context, userID string) ([]string, error) {
	rows, err := p.db.Query(ctx, userTagsQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("get user tags: %w", err)
	}
	defer rows.Close()

	tags := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan user tag: %w", err)
		}
		tags = append(tags, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user tags: %w", err)
	}
	return tags, nil
}

func (p *Postgres) readUserSlots(ctx context.Context, userID string) ([]entities.BusySlot, error) {
	rows, err := p.db.Query(ctx, userSlotsQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("get user slots: %w", err)
	}
	defer rows.Close()

	slots := make([]entities.BusySlot, 0)
	for rows.Next() {
		s := entities.BusySlot{UserID: userID}
		if err := rows.Scan(&s.ID, &s.From, &s.To, &s.Reason, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user slot: %w", err)
		}
		slots = append(slots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user slots: %w", err)
	}
	return slots, nil
}

func (p *Postgres) userExists(ctx context.Context, tx pgx.Tx, userID string) error {
	var ok bool
	if err := tx.QueryRow(ctx, userExistsQuery, userID).Scan(&ok); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.ErrUserNotFound
		}
		return fmt.Errorf("user lookup: %w", err)
	}
	return nil
}
