// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"context"
	"errors"
	"time"

	"github.com/danielhkuo/pollbox/auth"
	"github.com/danielhkuo/pollbox/models"
	"github.com/danielhkuo/pollbox/store"
	"github.com/danielhkuo/pollbox/viewcache"
)

// VoteService executes vote submission.
type VoteService struct {
	polls   *store.PollStore
	options *store.OptionStore
	votes   *store.VoteStore
	cache   *viewcache.Cache
}

func NewVoteService(polls *store.PollStore, options *store.OptionStore, votes *store.VoteStore, cache *viewcache.Cache) *VoteService {
	return &VoteService{polls: polls, options: options, votes: votes, cache: cache}
}

// SubmitVote records one vote for requester on the given poll and option.
// Returns OutcomeVoted or OutcomeAlreadyVoted; the two are rendered
// identically downstream, so a duplicate submission never surfaces as an
// error to the voter.
//
// The option must belong to the poll: this is checked against the option
// set up front rather than left to the store's referential constraints.
func (s *VoteService) SubmitVote(ctx context.Context, pollID, optionID, requester string) (string, error) {
	if requester == "" {
		return "", ErrUnauthenticated
	}
	if pollID == "" {
		return "", validationErr("poll_id is required")
	}
	if optionID == "" {
		return "", validationErr("option_id is required")
	}

	poll, err := s.polls.Get(ctx, pollID)
	if errors.Is(err, store.ErrNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}

	if !poll.IsPublic && !IsOwner(poll, requester) {
		return "", ErrForbidden
	}

	if poll.ExpiresAt != nil && time.Now().After(*poll.ExpiresAt) {
		return "", ErrPollExpired
	}

	options, err := s.options.ListByPoll(ctx, pollID)
	if err != nil {
		return "", err
	}
	belongs := false
	for _, opt := range options {
		if opt.ID == optionID {
			belongs = true
			break
		}
	}
	if !belongs {
		return "", validationErr("option_id does not belong to this poll")
	}

	result, err := s.votes.Insert(ctx, models.Vote{
		ID:        auth.NewID(),
		PollID:    pollID,
		OptionID:  optionID,
		VoterID:   requester,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return "", err
	}

	s.cache.Invalidate(viewcache.ListingKey, viewcache.PollKey(pollID))

	if result == store.AlreadyExists {
		return models.OutcomeAlreadyVoted, nil
	}
	return models.OutcomeVoted, nil
}
