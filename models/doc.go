// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreatePollRequest: title, description, is_public, options
  - UpdatePollRequest: title, description
  - SubmitVoteRequest: option_id

# Response Types

Types for JSON responses:

  - CreatePollResponse: outcome, poll_id
  - MutationResponse: outcome
  - VoteResponse: outcome, voted_option, total_votes, results
  - PollListResponse: polls
  - PollDetailResponse: poll, results, total_votes, is_owner
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Poll: poll metadata, ownership, visibility, optional expiry
  - Option: one selectable answer with its display position
  - Vote: one user's choice of option within one poll
  - OptionTally: derived vote count and percentage for one option

# Outcome Tags

Every mutation reports a named outcome that the presentation layer renders
as a banner or redirect target:

	OutcomeCreated      = "created"
	OutcomeUpdated      = "updated"
	OutcomeDeleted      = "deleted"
	OutcomeVoted        = "voted"
	OutcomeAlreadyVoted = "already-voted"

"already-voted" is deliberately not part of the error vocabulary: a voter
who already has a vote on a poll is shown the same results view as one
whose vote was just recorded.
*/
package models
