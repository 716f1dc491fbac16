// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/danielhkuo/pollbox/models"
)

// InsertResult tags the outcome of a vote insert. A uniqueness violation
// on (poll_id, voter_id) is a normal outcome, not a failure: it means the
// voter already has a vote on this poll.
type InsertResult int

const (
	Inserted InsertResult = iota
	AlreadyExists
)

type VoteStore struct {
	db *sql.DB
}

func NewVoteStore(db *sql.DB) *VoteStore {
	return &VoteStore{db: db}
}

// Insert records a vote. Concurrent inserts for the same (poll, voter)
// race on the unique constraint; exactly one wins and the rest observe
// AlreadyExists. No in-process locking is needed.
func (s *VoteStore) Insert(ctx context.Context, v models.Vote) (InsertResult, error) {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO vote (id, poll_id, option_id, voter_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, v.ID, v.PollID, v.OptionID, v.VoterID, v.CreatedAt)
	if err != nil {
		if IsUniqueViolation(err) {
			return AlreadyExists, nil
		}
		return 0, fmt.Errorf("failed to insert vote: %w", err)
	}
	return Inserted, nil
}

// CountsByPolls groups vote counts by poll and option for the given poll
// IDs: pollID -> optionID -> count. Polls or options with no votes are
// simply absent from the result.
func (s *VoteStore) CountsByPolls(ctx context.Context, pollIDs []string) (map[string]map[string]int, error) {
	counts := map[string]map[string]int{}
	if len(pollIDs) == 0 {
		return counts, nil
	}

	placeholders := ""
	args := make([]any, len(pollIDs))
	for i, id := range pollIDs {
		if i > 0 {
			placeholders += ", "
		}
		placeholders += fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT poll_id, option_id, COUNT(*)
		FROM vote
		WHERE poll_id IN (`+placeholders+`)
		GROUP BY poll_id, option_id
	`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to count votes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var pollID, optionID string
		var count int
		if err := rows.Scan(&pollID, &optionID, &count); err != nil {
			return nil, fmt.Errorf("failed to scan vote count: %w", err)
		}
		if counts[pollID] == nil {
			counts[pollID] = map[string]int{}
		}
		counts[pollID][optionID] = count
	}
	return counts, rows.Err()
}

// CountByPoll returns a poll's total vote count.
func (s *VoteStore) CountByPoll(ctx context.Context, pollID string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM vote WHERE poll_id = $1
	`, pollID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count votes: %w", err)
	}
	return count, nil
}
