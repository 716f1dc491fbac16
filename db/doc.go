// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections and schema creation.

# Opening a Connection

Open selects the driver by type:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

"postgres" uses lib/pq for production. "sqlite" uses modernc.org/sqlite
(pure Go, no cgo) for development and tests.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - poll: poll metadata, ownership, visibility, optional expiry
  - poll_option: options per poll with display position
  - vote: one vote per (poll, voter), enforced by a unique constraint

# Relationships

	poll 1──* poll_option
	poll 1──* vote
	poll_option 1──* vote

All foreign keys use ON DELETE CASCADE: deleting a poll removes its
options and votes without engine-issued child deletes.

# Constraints

Two uniqueness rules carry application invariants:

  - vote (poll_id, voter_id): at most one vote per user per poll
  - poll_option (poll_id, position): display positions unique within a poll
*/
package db
