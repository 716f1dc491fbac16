// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const testSalt = "test-salt"

func TestSessionTokenRoundTrip(t *testing.T) {
	token := GenerateSessionToken("user-1", testSalt)

	userID, err := VerifySessionToken(token, testSalt)
	if err != nil {
		t.Fatalf("VerifySessionToken failed: %v", err)
	}
	if userID != "user-1" {
		t.Errorf("Expected user-1, got %q", userID)
	}
}

func TestVerifySessionTokenRejectsTampering(t *testing.T) {
	token := GenerateSessionToken("user-1", testSalt)

	tests := []struct {
		name  string
		token string
	}{
		{"wrong salt", GenerateSessionToken("user-1", "other-salt")},
		{"no separator", strings.ReplaceAll(token, ".", "")},
		{"swapped payload", "c3Bvb2ZlZA" + token[strings.Index(token, "."):]},
		{"truncated signature", token[:len(token)-4]},
		{"empty", ""},
		{"garbage payload", "!!!." + strings.SplitN(token, ".", 2)[1]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := VerifySessionToken(tt.token, testSalt); err == nil {
				t.Error("Expected verification to fail")
			}
		})
	}
}

func TestCurrentUser(t *testing.T) {
	token := GenerateSessionToken("user-1", testSalt)

	// Bearer header
	r := httptest.NewRequest("GET", "/polls", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	userID, ok := CurrentUser(r, testSalt)
	if !ok || userID != "user-1" {
		t.Errorf("Expected user-1 via header, got %q (%v)", userID, ok)
	}

	// Session cookie
	r = httptest.NewRequest("GET", "/polls", nil)
	r.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	userID, ok = CurrentUser(r, testSalt)
	if !ok || userID != "user-1" {
		t.Errorf("Expected user-1 via cookie, got %q (%v)", userID, ok)
	}

	// Anonymous
	r = httptest.NewRequest("GET", "/polls", nil)
	if _, ok := CurrentUser(r, testSalt); ok {
		t.Error("Expected anonymous without credentials")
	}
	if SignedIn(r, testSalt) {
		t.Error("Expected SignedIn false without credentials")
	}

	// Malformed scheme
	r = httptest.NewRequest("GET", "/polls", nil)
	r.Header.Set("Authorization", "Basic "+token)
	if _, ok := CurrentUser(r, testSalt); ok {
		t.Error("Expected anonymous for non-Bearer scheme")
	}

	// Tampered cookie
	r = httptest.NewRequest("GET", "/polls", nil)
	r.AddCookie(&http.Cookie{Name: SessionCookie, Value: token + "x"})
	if _, ok := CurrentUser(r, testSalt); ok {
		t.Error("Expected anonymous for tampered cookie")
	}
}

func TestNewIDUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewID()
		if id == "" {
			t.Fatal("Empty ID")
		}
		if seen[id] {
			t.Fatalf("Duplicate ID %s", id)
		}
		seen[id] = true
	}
}
