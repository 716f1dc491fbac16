// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/pollbox/engine"
	"github.com/danielhkuo/pollbox/middleware"
)

// writeEngineError maps the engine's error taxonomy onto HTTP statuses.
// Voting's anonymous-redirect branch is handled before the engine is
// called, so ErrUnauthenticated here is always a plain 401.
func writeEngineError(w http.ResponseWriter, err error) {
	var vErr *engine.ValidationError
	switch {
	case errors.As(err, &vErr):
		middleware.ErrorResponse(w, http.StatusBadRequest, vErr.Message)
	case errors.Is(err, engine.ErrUnauthenticated):
		middleware.ErrorResponse(w, http.StatusUnauthorized, "You must be signed in")
	case errors.Is(err, engine.ErrForbidden):
		middleware.ErrorResponse(w, http.StatusForbidden, "Only the poll owner may do that")
	case errors.Is(err, engine.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
	case errors.Is(err, engine.ErrPollExpired):
		middleware.ErrorResponse(w, http.StatusGone, "Poll has expired")
	default:
		slog.Error("store failure", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
	}
}
