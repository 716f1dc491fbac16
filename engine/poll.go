// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/danielhkuo/pollbox/auth"
	"github.com/danielhkuo/pollbox/models"
	"github.com/danielhkuo/pollbox/store"
	"github.com/danielhkuo/pollbox/viewcache"
)

// PollService executes poll lifecycle operations: create, update, delete.
type PollService struct {
	polls   *store.PollStore
	options *store.OptionStore
	cache   *viewcache.Cache
}

func NewPollService(polls *store.PollStore, options *store.OptionStore, cache *viewcache.Cache) *PollService {
	return &PollService{polls: polls, options: options, cache: cache}
}

// IsOwner is the single ownership predicate shared by every
// owner-gated path.
func IsOwner(poll models.Poll, requester string) bool {
	return requester != "" && poll.OwnerID == requester
}

// Create validates the request and inserts one poll row plus one option
// row per surviving option text. Option texts are trimmed and blanks
// dropped; positions are contiguous 0..n-1 over the survivors in their
// original relative order. If the option batch fails the poll row is
// removed again, so Create is all-or-nothing.
func (s *PollService) Create(ctx context.Context, req models.CreatePollRequest, requester string) (string, error) {
	if requester == "" {
		return "", ErrUnauthenticated
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return "", validationErr("title is required")
	}

	texts := make([]string, 0, len(req.Options))
	for _, raw := range req.Options {
		if text := strings.TrimSpace(raw); text != "" {
			texts = append(texts, text)
		}
	}
	if len(texts) < 2 {
		return "", validationErr("at least two options are required")
	}

	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	poll := models.Poll{
		ID:          auth.NewID(),
		Title:       title,
		Description: strings.TrimSpace(req.Description),
		OwnerID:     requester,
		IsPublic:    isPublic,
		ExpiresAt:   req.ExpiresAt,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.polls.Insert(ctx, poll); err != nil {
		return "", err
	}

	options := make([]models.Option, len(texts))
	for i, text := range texts {
		options[i] = models.Option{
			ID:       auth.NewID(),
			PollID:   poll.ID,
			Text:     text,
			Position: i,
		}
	}

	if err := s.options.InsertBatch(ctx, options); err != nil {
		// Compensating delete: without it the poll would survive as an
		// orphan with zero options.
		if delErr := s.polls.Delete(ctx, poll.ID); delErr != nil {
			slog.Error("failed to remove poll after option insert failure",
				"poll_id", poll.ID, "error", delErr)
		}
		return "", err
	}

	s.cache.Invalidate(viewcache.ListingKey)

	return poll.ID, nil
}

// Update overwrites a poll's title and description. Owner only.
func (s *PollService) Update(ctx context.Context, pollID string, req models.UpdatePollRequest, requester string) error {
	if requester == "" {
		return ErrUnauthenticated
	}
	if pollID == "" {
		return validationErr("poll_id is required")
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return validationErr("title is required")
	}

	poll, err := s.polls.Get(ctx, pollID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if !IsOwner(poll, requester) {
		return ErrForbidden
	}

	if err := s.polls.Update(ctx, pollID, title, strings.TrimSpace(req.Description)); err != nil {
		return err
	}

	s.cache.Invalidate(viewcache.ListingKey, viewcache.PollKey(pollID))

	return nil
}

// Delete removes a poll. Owner only. Options and votes are removed by the
// store's cascade, not by engine-issued deletes.
func (s *PollService) Delete(ctx context.Context, pollID, requester string) error {
	if requester == "" {
		return ErrUnauthenticated
	}
	if pollID == "" {
		return validationErr("poll_id is required")
	}

	poll, err := s.polls.Get(ctx, pollID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if !IsOwner(poll, requester) {
		return ErrForbidden
	}

	if err := s.polls.Delete(ctx, pollID); err != nil {
		return err
	}

	s.cache.Invalidate(viewcache.ListingKey, viewcache.PollKey(pollID))

	return nil
}
