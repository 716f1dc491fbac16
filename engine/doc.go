// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package engine holds the poll lifecycle and voting rules: everything with
an actual invariant to protect. HTTP concerns live in handlers; SQL lives
in store.

# Services

  - PollService: Create, Update, Delete with ownership gating
  - VoteService: SubmitVote with one-vote-per-user and liveness checks
  - ResultsService: Aggregate vote counts and percentages

Each is stateless between requests; concurrency control for duplicate
votes is delegated entirely to the vote table's unique constraint.

# Create Semantics

Option texts are trimmed and blanks dropped before validation, and at
least two must survive. Stored positions are always contiguous 0..n-1 in
the survivors' original relative order - gaps from removed blanks are not
preserved. The poll insert and the option batch are two store calls; if
the second fails, Create issues a compensating poll delete so no orphan
poll with zero options is left behind.

# Vote Semantics

SubmitVote returns an outcome tag, not a boolean: OutcomeVoted when the
insert lands, OutcomeAlreadyVoted when the (poll, voter) unique
constraint fires. Both are success to the caller. Expired polls are
rejected with ErrPollExpired before any insert is attempted, and the
submitted option is verified to belong to the submitted poll rather than
trusting store-side constraints to catch a mismatched pair.

# Errors

ValidationError, ErrUnauthenticated, ErrForbidden, ErrNotFound and
ErrPollExpired cover every non-store failure. Anything else is a wrapped
persistence error, propagated as-is with no retry.
*/
package engine
