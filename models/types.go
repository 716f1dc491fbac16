// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Outcome tags returned to the presentation layer after each mutation.
const (
	OutcomeCreated      = "created"
	OutcomeUpdated      = "updated"
	OutcomeDeleted      = "deleted"
	OutcomeVoted        = "voted"
	OutcomeAlreadyVoted = "already-voted"
)

// Request types

type CreatePollRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	IsPublic    *bool      `json:"is_public,omitempty"` // nil defaults to public
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	Options     []string   `json:"options"`
}

type UpdatePollRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type SubmitVoteRequest struct {
	OptionID string `json:"option_id"`
}

// Response types

type CreatePollResponse struct {
	Outcome string `json:"outcome"`
	PollID  string `json:"poll_id"`
}

type MutationResponse struct {
	Outcome string `json:"outcome"`
}

type VoteResponse struct {
	Outcome     string        `json:"outcome"`
	VotedOption string        `json:"voted_option"`
	TotalVotes  int           `json:"total_votes"`
	Results     []OptionTally `json:"results"`
}

type PollListItem struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	OwnerID        string    `json:"owner_id"`
	TotalVotes     int       `json:"total_votes"`
	CreatedAt      time.Time `json:"created_at"`
	CreatedAtHuman string    `json:"created_at_human"`
}

type PollListResponse struct {
	Polls []PollListItem `json:"polls"`
}

type PollDetailResponse struct {
	Poll           Poll          `json:"poll"`
	Results        []OptionTally `json:"results"`
	TotalVotes     int           `json:"total_votes"`
	CreatedAtHuman string        `json:"created_at_human"`
	IsOwner        bool          `json:"is_owner"`
}

// Domain types

type Poll struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	OwnerID     string     `json:"owner_id"`
	IsPublic    bool       `json:"is_public"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type Option struct {
	ID       string `json:"id"`
	PollID   string `json:"poll_id"`
	Text     string `json:"text"`
	Position int    `json:"position"`
}

type Vote struct {
	ID        string    `json:"id"`
	PollID    string    `json:"poll_id"`
	OptionID  string    `json:"option_id"`
	VoterID   string    `json:"-"` // Never expose in JSON
	CreatedAt time.Time `json:"created_at"`
}

// OptionTally is one row of an aggregate result, ordered by option position.
type OptionTally struct {
	OptionID   string  `json:"option_id"`
	Text       string  `json:"text"`
	VoteCount  int     `json:"vote_count"`
	Percentage float64 `json:"percentage"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
