// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"errors"
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

type ResultsHandler struct {
	results *engine.ResultsService
	polls   *store.PollStore
	cache   *viewcache.Cache
	cfg     cliparse.Config
}

func NewResultsHandler(results *engine.ResultsService, polls *store.PollStore, cache *viewcache.Cache, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{results: results, polls: polls, cache: cache, cfg: cfg}
}

// GetPoll handles GET /polls/{id}
// Returns the poll with its live aggregate tally. Private polls are
// visible to their owner only.
func (h *ResultsHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll_id is required")
		return
	}

	requester, signedIn := auth.CurrentUser(r, h.cfg.SessionSalt)

	poll, err := h.polls.Get(r.Context(), pollID)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}
	if err != nil {
		slog.Error("failed to query poll", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	isOwner := engine.IsOwner(poll, requester)

	if !poll.IsPublic && !isOwner {
		if !signedIn {
			middleware.ErrorResponse(w, http.StatusUnauthorized, "You must be signed in")
			return
		}
		middleware.ErrorResponse(w, http.StatusForbidden, "This poll is private")
		return
	}

	// The cached body carries is_owner=false, so it is only served to
	// non-owners; the owner always gets a fresh render.
	if !isOwner {
		if body, ok := h.cache.Get(viewcache.PollKey(pollID)); ok {
			middleware.RawJSONResponse(w, http.StatusOK, body)
			return
		}
	}

	tallies, total, err := h.results.Aggregate(r.Context(), pollID)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	response := models.PollDetailResponse{
		Poll:           poll,
		Results:        tallies,
		TotalVotes:     total,
		CreatedAtHuman: humanize.Time(poll.CreatedAt),
		IsOwner:        isOwner,
	}

	if !isOwner {
		body, err := json.Marshal(response)
		if err != nil {
			slog.Error("failed to encode poll detail", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to encode response")
			return
		}
		h.cache.Set(viewcache.PollKey(pollID), body)
		middleware.RawJSONResponse(w, http.StatusOK, body)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, response)
}
