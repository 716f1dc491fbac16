// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Pollbox API.

# Handler Types

Each handler is a struct with its engine services and config injected:

  - PollHandler: poll lifecycle (create, update, delete) and listings
  - VotingHandler: vote submission
  - ResultsHandler: poll detail with aggregate tallies

# Poll Lifecycle

	POST /polls          → CreatePoll (authenticated; >= 2 options)
	PUT /polls/{id}      → UpdatePoll (owner only)
	DELETE /polls/{id}   → DeletePoll (owner only)
	GET /polls           → ListPolls (public polls, cached)
	GET /polls/mine      → MyPolls (authenticated, private included)

# Voting

	POST /polls/{id}/votes → SubmitVote

Anonymous requests get a 303 redirect to /auth/login?next=/polls/{id}
rather than an error. A duplicate vote responds exactly like a fresh
one - 200, current tally - with outcome "already-voted" instead of
"voted".

# Results

	GET /polls/{id} → GetPoll (poll, per-option counts and percentages)

# Error Mapping

Engine errors map to HTTP statuses in errors.go: validation 400,
unauthenticated 401, forbidden 403, not found 404, expired 410,
store failure 500.
*/
package handlers
