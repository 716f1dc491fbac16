// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store provides SQL-backed access to the three durable collections:
polls, options, and votes.

# Stores

Each store wraps *sql.DB and works on both supported drivers:

	polls := store.NewPollStore(db)
	options := store.NewOptionStore(db)
	votes := store.NewVoteStore(db)

# Vote Insert Semantics

VoteStore.Insert returns a tagged result instead of a binary error:

	result, err := votes.Insert(ctx, vote)
	switch result {
	case store.Inserted:      // vote recorded
	case store.AlreadyExists: // voter already has a vote on this poll
	}

The (poll_id, voter_id) unique constraint is the only arbiter of the
one-vote-per-user rule; IsUniqueViolation distinguishes it from real
write failures using the driver's typed errors (pq code 23505, sqlite
SQLITE_CONSTRAINT_UNIQUE).

# Aggregation Reads

CountsByPolls returns pollID -> optionID -> count in one grouped query
for listing pages; CountByPoll is the single-poll convenience.
*/
package store
