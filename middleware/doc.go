// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

WithLogging wraps a handler and logs method, path, remote address, and
duration via slog:

	mux.HandleFunc("POST /polls", middleware.WithLogging(h.CreatePoll))

# JSON Helpers

JSONResponse encodes a value; RawJSONResponse writes a pre-encoded body
(used for cached views); ErrorResponse wraps a message in the standard
error envelope; ParseJSONBody decodes a request body.

# CORS

CORS wraps the whole mux and answers preflight OPTIONS requests.
*/
package middleware
