// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/danielhkuo/pollbox/models"
)

type PollStore struct {
	db *sql.DB
}

func NewPollStore(db *sql.DB) *PollStore {
	return &PollStore{db: db}
}

// Insert stores a new poll row. The caller assigns the ID and timestamps.
func (s *PollStore) Insert(ctx context.Context, p models.Poll) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO poll (id, title, description, owner_id, is_public, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, p.ID, p.Title, p.Description, p.OwnerID, p.IsPublic, p.ExpiresAt, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert poll: %w", err)
	}
	return nil
}

// Get returns the poll with the given ID, or ErrNotFound.
func (s *PollStore) Get(ctx context.Context, id string) (models.Poll, error) {
	var p models.Poll
	var expiresAt sql.NullTime
	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, description, owner_id, is_public, expires_at, created_at
		FROM poll
		WHERE id = $1
	`, id).Scan(&p.ID, &p.Title, &p.Description, &p.OwnerID, &p.IsPublic, &expiresAt, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return models.Poll{}, ErrNotFound
	}
	if err != nil {
		return models.Poll{}, fmt.Errorf("failed to query poll: %w", err)
	}
	if expiresAt.Valid {
		t := expiresAt.Time
		p.ExpiresAt = &t
	}
	return p, nil
}

// Update overwrites title and description only. Options and votes are
// untouched.
func (s *PollStore) Update(ctx context.Context, id, title, description string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE poll SET title = $1, description = $2 WHERE id = $3
	`, title, description, id)
	if err != nil {
		return fmt.Errorf("failed to update poll: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the poll row. Options and votes go with it via the
// schema's ON DELETE CASCADE.
func (s *PollStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM poll WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete poll: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ListOrderedByCreatedDesc returns public polls, newest first.
func (s *PollStore) ListOrderedByCreatedDesc(ctx context.Context) ([]models.Poll, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, description, owner_id, is_public, expires_at, created_at
		FROM poll
		WHERE is_public
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query polls: %w", err)
	}
	defer rows.Close()
	return scanPolls(rows)
}

// ListByOwner returns every poll owned by the given user, including
// private ones, newest first.
func (s *PollStore) ListByOwner(ctx context.Context, ownerID string) ([]models.Poll, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, description, owner_id, is_public, expires_at, created_at
		FROM poll
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query polls by owner: %w", err)
	}
	defer rows.Close()
	return scanPolls(rows)
}

func scanPolls(rows *sql.Rows) ([]models.Poll, error) {
	polls := []models.Poll{}
	for rows.Next() {
		var p models.Poll
		var expiresAt sql.NullTime
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.OwnerID, &p.IsPublic, &expiresAt, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan poll: %w", err)
		}
		if expiresAt.Valid {
			t := expiresAt.Time
			p.ExpiresAt = &t
		}
		polls = append(polls, p)
	}
	return polls, rows.Err()
}
