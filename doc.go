// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Pollbox API server.

Pollbox lets registered users create polls with multiple options, share
them, and collect one vote per user per poll with live aggregate results.

# Starting the Server

The server reads configuration from a .env file, environment variables,
or CLI flags:

	DATABASE_URL=postgres://... SESSION_SALT=... go run main.go

Or with flags:

	go run main.go -p 3324 -t sqlite -d "file:pollbox.db" -session-salt "..."

# Configuration

Required settings:

  - DATABASE_URL (-d): database connection string
  - SESSION_SALT (-session-salt): secret shared with the identity provider

Optional settings:

  - PORT (-p): server port (default: 3324)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)

# Architecture

The server uses a layered architecture with dependency injection:

  - engine: poll lifecycle, voting, and aggregation rules (the core)
  - store: SQL access to the poll, option, and vote collections
  - handlers: HTTP request handlers
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: request/response and domain types
  - auth: session token verification (identity gate)
  - viewcache: cached listing/detail payloads
  - db: connection and schema creation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
