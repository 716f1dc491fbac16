// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/danielhkuo/pollbox/auth"
	"github.com/danielhkuo/pollbox/cliparse"
	"github.com/danielhkuo/pollbox/db"
)

// TestSessionSalt signs session tokens in tests.
const TestSessionSalt = "test-session-salt"

var dbCounter atomic.Int64

// SetupTestDB creates a fresh in-memory sqlite database with the full
// schema. Each call gets its own database, so tests are independent and
// need no running Postgres.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:pollbox_test_%d?mode=memory&cache=shared&_pragma=foreign_keys(1)",
		dbCounter.Add(1))
	conn, err := db.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3324,
		DatabaseURL:  "file:pollbox_test",
		DatabaseType: "sqlite",
		SessionSalt:  TestSessionSalt,
	}
}

// SessionFor returns a valid session token for a user, signed with the
// test salt.
func SessionFor(userID string) string {
	return auth.GenerateSessionToken(userID, TestSessionSalt)
}

// CreateTestPoll creates a public poll owned by ownerID and returns its ID
func CreateTestPoll(t *testing.T, conn *sql.DB, ownerID string) string {
	t.Helper()
	return insertPoll(t, conn, ownerID, true, nil)
}

// CreatePrivateTestPoll creates a private poll owned by ownerID
func CreatePrivateTestPoll(t *testing.T, conn *sql.DB, ownerID string) string {
	t.Helper()
	return insertPoll(t, conn, ownerID, false, nil)
}

// ExpirePoll backdates a poll's expiration so its voting window is closed
func ExpirePoll(t *testing.T, conn *sql.DB, pollID string) {
	t.Helper()

	past := time.Now().Add(-time.Hour).UTC()
	_, err := conn.Exec(`UPDATE poll SET expires_at = $1 WHERE id = $2`, past, pollID)
	if err != nil {
		t.Fatalf("Failed to expire test poll: %v", err)
	}
}

func insertPoll(t *testing.T, conn *sql.DB, ownerID string, isPublic bool, expiresAt *time.Time) string {
	t.Helper()

	pollID := auth.NewID()
	_, err := conn.Exec(`
		INSERT INTO poll (id, title, description, owner_id, is_public, expires_at, created_at)
		VALUES ($1, 'Test Poll', 'A test poll', $2, $3, $4, $5)
	`, pollID, ownerID, isPublic, expiresAt, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test poll: %v", err)
	}

	return pollID
}

// AddTestOption adds an option to a poll and returns the option ID
func AddTestOption(t *testing.T, conn *sql.DB, pollID, text string, position int) string {
	t.Helper()

	optionID := auth.NewID()
	_, err := conn.Exec(`
		INSERT INTO poll_option (id, poll_id, option_text, position)
		VALUES ($1, $2, $3, $4)
	`, optionID, pollID, text, position)
	if err != nil {
		t.Fatalf("Failed to create test option: %v", err)
	}

	return optionID
}

// CreateTestVote records a vote directly in the database
func CreateTestVote(t *testing.T, conn *sql.DB, pollID, optionID, voterID string) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO vote (id, poll_id, option_id, voter_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, auth.NewID(), pollID, optionID, voterID, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
