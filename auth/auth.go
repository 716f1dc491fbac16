// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// SessionCookie is the cookie name checked when no Authorization header is present.
const SessionCookie = "pollbox_session"

var ErrInvalidToken = errors.New("invalid session token")

// NewID returns a random identifier for a database row.
func NewID() string {
	return uuid.NewString()
}

// GenerateSessionToken creates a signed session token for a user.
// The token is minted by the identity provider, which shares the salt;
// the server only ever verifies.
func GenerateSessionToken(userID, salt string) string {
	payload := base64.RawURLEncoding.EncodeToString([]byte(userID))
	return payload + "." + sign(userID, salt)
}

// VerifySessionToken checks a token's signature and returns the user ID it
// was minted for.
func VerifySessionToken(token, salt string) (string, error) {
	payload, sig, ok := strings.Cut(token, ".")
	if !ok {
		return "", ErrInvalidToken
	}
	raw, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil || len(raw) == 0 {
		return "", ErrInvalidToken
	}
	userID := string(raw)
	if !hmac.Equal([]byte(sig), []byte(sign(userID, salt))) {
		return "", ErrInvalidToken
	}
	return userID, nil
}

// CurrentUser resolves the request to an authenticated user ID.
// Checks the Authorization header (Bearer scheme) first, then the session
// cookie. Returns false for anonymous or invalid credentials.
func CurrentUser(r *http.Request, salt string) (string, bool) {
	if h := r.Header.Get("Authorization"); h != "" {
		token, ok := strings.CutPrefix(h, "Bearer ")
		if !ok {
			return "", false
		}
		userID, err := VerifySessionToken(token, salt)
		if err != nil {
			return "", false
		}
		return userID, true
	}

	if c, err := r.Cookie(SessionCookie); err == nil {
		userID, err := VerifySessionToken(c.Value, salt)
		if err != nil {
			return "", false
		}
		return userID, true
	}

	return "", false
}

// SignedIn reports whether the request carries valid credentials.
func SignedIn(r *http.Request, salt string) bool {
	_, ok := CurrentUser(r, salt)
	return ok
}

func sign(userID, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(userID))
	return base64.RawURLEncoding.EncodeToString(h.Sum(nil))
}
