// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/pollbox/auth"
	"github.com/danielhkuo/pollbox/cliparse"
	"github.com/danielhkuo/pollbox/engine"
	"github.com/danielhkuo/pollbox/middleware"
	"github.com/danielhkuo/pollbox/models"
)

type VotingHandler struct {
	svc     *engine.VoteService
	results *engine.ResultsService
	cfg     cliparse.Config
}

func NewVotingHandler(svc *engine.VoteService, results *engine.ResultsService, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{svc: svc, results: results, cfg: cfg}
}

// SubmitVote handles POST /polls/{id}/votes
// Anonymous voters are redirected to sign-in with a return path to the
// poll; this is a UX branch, not a rejected request.
func (h *VotingHandler) SubmitVote(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll_id is required")
		return
	}

	requester, ok := auth.CurrentUser(r, h.cfg.SessionSalt)
	if !ok {
		http.Redirect(w, r, "/auth/login?next=/polls/"+pollID, http.StatusSeeOther)
		return
	}

	var req models.SubmitVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	outcome, err := h.svc.SubmitVote(r.Context(), pollID, req.OptionID, requester)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	// "already-voted" is shown exactly like "voted": same status, same
	// results payload, only the outcome tag differs.
	tallies, total, err := h.results.Aggregate(r.Context(), pollID)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	slog.Info("vote submitted", "poll_id", pollID, "outcome", outcome)

	middleware.JSONResponse(w, http.StatusOK, models.VoteResponse{
		Outcome:     outcome,
		VotedOption: req.OptionID,
		TotalVotes:  total,
		Results:     tallies,
	})
}
