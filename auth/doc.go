// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth is the identity gate: it resolves a request to an
authenticated user ID, or to anonymous.

# Session Tokens

Session tokens are HMAC-SHA256 signed, shaped as

	base64url(userID) + "." + base64url(HMAC(userID, salt))

They are minted by the external identity provider, which shares
SESSION_SALT with this server. The server never issues tokens in
production; GenerateSessionToken exists for the provider side and for
tests.

	token := auth.GenerateSessionToken("user-1", salt)
	userID, err := auth.VerifySessionToken(token, salt)

# Resolving Requests

CurrentUser checks the Authorization header (Bearer scheme), then the
pollbox_session cookie:

	userID, ok := auth.CurrentUser(r, cfg.SessionSalt)

An invalid or missing credential resolves to anonymous (ok == false),
never to an error: whether anonymity is acceptable is the caller's call.

# ID Generation

NewID returns a UUIDv4 string for database row identifiers.
*/
package auth
