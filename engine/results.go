// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"context"
	"errors"
	"math"

	"github.com/danielhkuo/pollbox/models"
	"github.com/danielhkuo/pollbox/store"
)

// ResultsService computes aggregate tallies from raw vote rows.
type ResultsService struct {
	polls   *store.PollStore
	options *store.OptionStore
	votes   *store.VoteStore
}

func NewResultsService(polls *store.PollStore, options *store.OptionStore, votes *store.VoteStore) *ResultsService {
	return &ResultsService{polls: polls, options: options, votes: votes}
}

// Aggregate returns one tally per option, ordered by stored position, plus
// the poll's total vote count. Percentages are count/total rounded to one
// decimal place, and all zero when the poll has no votes. Pure read: every
// call is a fresh snapshot.
func (s *ResultsService) Aggregate(ctx context.Context, pollID string) ([]models.OptionTally, int, error) {
	if _, err := s.polls.Get(ctx, pollID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, 0, ErrNotFound
		}
		return nil, 0, err
	}

	options, err := s.options.ListByPoll(ctx, pollID)
	if err != nil {
		return nil, 0, err
	}

	counts, err := s.votes.CountsByPolls(ctx, []string{pollID})
	if err != nil {
		return nil, 0, err
	}
	byOption := counts[pollID]

	total := 0
	for _, count := range byOption {
		total += count
	}

	tallies := make([]models.OptionTally, len(options))
	for i, opt := range options {
		count := byOption[opt.ID]
		percentage := 0.0
		if total > 0 {
			percentage = math.Round(float64(count)/float64(total)*1000) / 10
		}
		tallies[i] = models.OptionTally{
			OptionID:   opt.ID,
			Text:       opt.Text,
			VoteCount:  count,
			Percentage: percentage,
		}
	}

	return tallies, total, nil
}
