// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse parses server configuration from CLI flags with
environment variable fallbacks.

Flags:

  - -p: server port (env PORT, default 3324)
  - -d: database URL (env DATABASE_URL, required)
  - -t: database type, sqlite or postgres (env DATABASE_TYPE, default sqlite)
  - -session-salt: session token secret (env SESSION_SALT, required)

A .env file in the working directory is loaded by main before parsing,
via godotenv.
*/
package cliparse
