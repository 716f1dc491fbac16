// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/pollbox/models"
	"github.com/danielhkuo/pollbox/testutil"
)

func TestRouterRoutes(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	mux := NewRouter(conn, testutil.GetTestConfig())

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{"health check", "GET", "/health", http.StatusOK},
		{"root", "GET", "/", http.StatusOK},
		{"empty listing", "GET", "/polls", http.StatusOK},
		{"unknown poll", "GET", "/polls/nope", http.StatusNotFound},
		{"anonymous create", "POST", "/polls", http.StatusUnauthorized},
		{"anonymous my polls", "GET", "/polls/mine", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			if w.Code != tt.expectedStatus {
				t.Errorf("Expected %d, got %d. Body: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

// TestRouterEndToEnd walks the happy path through the real mux: create,
// list, vote, read results, delete.
func TestRouterEndToEnd(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	mux := NewRouter(conn, testutil.GetTestConfig())
	owner := map[string]string{"Authorization": "Bearer " + testutil.SessionFor("owner-1")}
	voter := map[string]string{"Authorization": "Bearer " + testutil.SessionFor("voter-1")}

	// Create
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/polls", models.CreatePollRequest{
		Title:   "Lunch?",
		Options: []string{"Pizza", "Sushi"},
	}, owner))
	testutil.AssertStatus(t, w, http.StatusCreated)

	var created models.CreatePollResponse
	testutil.AssertJSON(t, w, &created)

	// List
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("GET", "/polls", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var listing models.PollListResponse
	testutil.AssertJSON(t, w, &listing)
	if len(listing.Polls) != 1 || listing.Polls[0].ID != created.PollID {
		t.Fatalf("Created poll missing from listing: %+v", listing)
	}

	// Detail for the option IDs
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("GET", "/polls/"+created.PollID, nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var detail models.PollDetailResponse
	testutil.AssertJSON(t, w, &detail)
	if len(detail.Results) != 2 {
		t.Fatalf("Expected 2 options, got %d", len(detail.Results))
	}

	// Vote
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/polls/"+created.PollID+"/votes",
		models.SubmitVoteRequest{OptionID: detail.Results[0].OptionID}, voter))
	testutil.AssertStatus(t, w, http.StatusOK)

	var voteResp models.VoteResponse
	testutil.AssertJSON(t, w, &voteResp)
	if voteResp.Outcome != models.OutcomeVoted {
		t.Errorf("Expected outcome voted, got %s", voteResp.Outcome)
	}

	// Fresh detail reflects the vote
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("GET", "/polls/"+created.PollID, nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.AssertJSON(t, w, &detail)
	if detail.TotalVotes != 1 {
		t.Errorf("Expected 1 vote, got %d", detail.TotalVotes)
	}

	// Delete
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("DELETE", "/polls/"+created.PollID, nil, owner))
	testutil.AssertStatus(t, w, http.StatusOK)

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("GET", "/polls/"+created.PollID, nil, nil))
	testutil.AssertStatus(t, w, http.StatusNotFound)
}
