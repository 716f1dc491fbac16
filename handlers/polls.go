// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/pollbox/auth"
	"github.com/danielhkuo/pollbox/cliparse"
	"github.com/danielhkuo/pollbox/engine"
	"github.com/danielhkuo/pollbox/middleware"
	"github.com/danielhkuo/pollbox/models"
	"github.com/danielhkuo/pollbox/store"
	"github.com/danielhkuo/pollbox/viewcache"
)

type PollHandler struct {
	svc   *engine.PollService
	polls *store.PollStore
	votes *store.VoteStore
	cache *viewcache.Cache
	cfg   cliparse.Config
}

func NewPollHandler(svc *engine.PollService, polls *store.PollStore, votes *store.VoteStore, cache *viewcache.Cache, cfg cliparse.Config) *PollHandler {
	return &PollHandler{svc: svc, polls: polls, votes: votes, cache: cache, cfg: cfg}
}

// CreatePoll handles POST /polls
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	requester, _ := auth.CurrentUser(r, h.cfg.SessionSalt)

	var req models.CreatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	pollID, err := h.svc.Create(r.Context(), req, requester)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	slog.Info("poll created", "poll_id", pollID, "owner", requester)

	middleware.JSONResponse(w, http.StatusCreated, models.CreatePollResponse{
		Outcome: models.OutcomeCreated,
		PollID:  pollID,
	})
}

// UpdatePoll handles PUT /polls/{id}
func (h *PollHandler) UpdatePoll(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	requester, _ := auth.CurrentUser(r, h.cfg.SessionSalt)

	var req models.UpdatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.svc.Update(r.Context(), pollID, req, requester); err != nil {
		writeEngineError(w, err)
		return
	}

	slog.Info("poll updated", "poll_id", pollID)

	middleware.JSONResponse(w, http.StatusOK, models.MutationResponse{
		Outcome: models.OutcomeUpdated,
	})
}

// DeletePoll handles DELETE /polls/{id}
func (h *PollHandler) DeletePoll(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	requester, _ := auth.CurrentUser(r, h.cfg.SessionSalt)

	if err := h.svc.Delete(r.Context(), pollID, requester); err != nil {
		writeEngineError(w, err)
		return
	}

	slog.Info("poll deleted", "poll_id", pollID)

	middleware.JSONResponse(w, http.StatusOK, models.MutationResponse{
		Outcome: models.OutcomeDeleted,
	})
}

// ListPolls handles GET /polls
// The public listing is served from the view cache when possible.
func (h *PollHandler) ListPolls(w http.ResponseWriter, r *http.Request) {
	if body, ok := h.cache.Get(viewcache.ListingKey); ok {
		middleware.RawJSONResponse(w, http.StatusOK, body)
		return
	}

	polls, err := h.polls.ListOrderedByCreatedDesc(r.Context())
	if err != nil {
		slog.Error("failed to list polls", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	response, err := h.buildListing(r, polls)
	if err != nil {
		slog.Error("failed to build poll listing", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	body, err := json.Marshal(response)
	if err != nil {
		slog.Error("failed to encode poll listing", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to encode response")
		return
	}
	h.cache.Set(viewcache.ListingKey, body)

	middleware.RawJSONResponse(w, http.StatusOK, body)
}

// MyPolls handles GET /polls/mine
// Returns the requester's own polls, private ones included. Never cached:
// the payload is per-user.
func (h *PollHandler) MyPolls(w http.ResponseWriter, r *http.Request) {
	requester, ok := auth.CurrentUser(r, h.cfg.SessionSalt)
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "You must be signed in")
		return
	}

	polls, err := h.polls.ListByOwner(r.Context(), requester)
	if err != nil {
		slog.Error("failed to list polls by owner", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	response, err := h.buildListing(r, polls)
	if err != nil {
		slog.Error("failed to build owner listing", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, response)
}

func (h *PollHandler) buildListing(r *http.Request, polls []models.Poll) (models.PollListResponse, error) {
	ids := make([]string, len(polls))
	for i, p := range polls {
		ids[i] = p.ID
	}

	counts, err := h.votes.CountsByPolls(r.Context(), ids)
	if err != nil {
		return models.PollListResponse{}, err
	}

	items := make([]models.PollListItem, len(polls))
	for i, p := range polls {
		total := 0
		for _, count := range counts[p.ID] {
			total += count
		}
		items[i] = models.PollListItem{
			ID:             p.ID,
			Title:          p.Title,
			Description:    p.Description,
			OwnerID:        p.OwnerID,
			TotalVotes:     total,
			CreatedAt:      p.CreatedAt,
			CreatedAtHuman: humanize.Time(p.CreatedAt),
		}
	}

	return models.PollListResponse{Polls: items}, nil
}
