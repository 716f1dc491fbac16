// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/pollbox/models"
	"github.com/danielhkuo/pollbox/testutil"
)

func TestGetPollDetail(t *testing.T) {
	conn, _, _, resultsHandler := newTestHandlers(t)
	defer conn.Close()

	pollID := testutil.CreateTestPoll(t, conn, "owner-1")
	optA := testutil.AddTestOption(t, conn, pollID, "A", 0)
	optB := testutil.AddTestOption(t, conn, pollID, "B", 1)
	testutil.CreateTestVote(t, conn, pollID, optA, "voter-1")
	testutil.CreateTestVote(t, conn, pollID, optA, "voter-2")
	testutil.CreateTestVote(t, conn, pollID, optB, "voter-3")

	req := testutil.MakeRequest("GET", "/polls/"+pollID, nil, nil)
	req.SetPathValue("id", pollID)
	w := httptest.NewRecorder()

	resultsHandler.GetPoll(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.PollDetailResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.Poll.ID != pollID {
		t.Errorf("Wrong poll: %s", resp.Poll.ID)
	}
	if resp.TotalVotes != 3 {
		t.Errorf("Expected 3 total votes, got %d", resp.TotalVotes)
	}
	if resp.IsOwner {
		t.Error("Anonymous viewer reported as owner")
	}
	if len(resp.Results) != 2 {
		t.Fatalf("Expected 2 tallies, got %d", len(resp.Results))
	}
	if resp.Results[0].OptionID != optA || resp.Results[0].VoteCount != 2 || resp.Results[0].Percentage != 66.7 {
		t.Errorf("Wrong first tally: %+v", resp.Results[0])
	}
	if resp.Results[1].OptionID != optB || resp.Results[1].VoteCount != 1 || resp.Results[1].Percentage != 33.3 {
		t.Errorf("Wrong second tally: %+v", resp.Results[1])
	}
}

func TestGetPollDetailOwnerFlag(t *testing.T) {
	conn, _, _, resultsHandler := newTestHandlers(t)
	defer conn.Close()

	pollID := testutil.CreateTestPoll(t, conn, "owner-1")
	testutil.AddTestOption(t, conn, pollID, "A", 0)

	req := testutil.MakeRequest("GET", "/polls/"+pollID, nil, authHeader("owner-1"))
	req.SetPathValue("id", pollID)
	w := httptest.NewRecorder()

	resultsHandler.GetPoll(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.PollDetailResponse
	testutil.AssertJSON(t, w, &resp)
	if !resp.IsOwner {
		t.Error("Owner not reported as owner")
	}
}

func TestGetPrivatePoll(t *testing.T) {
	conn, _, _, resultsHandler := newTestHandlers(t)
	defer conn.Close()

	pollID := testutil.CreatePrivateTestPoll(t, conn, "owner-1")
	testutil.AddTestOption(t, conn, pollID, "A", 0)

	get := func(headers map[string]string) *httptest.ResponseRecorder {
		req := testutil.MakeRequest("GET", "/polls/"+pollID, nil, headers)
		req.SetPathValue("id", pollID)
		w := httptest.NewRecorder()
		resultsHandler.GetPoll(w, req)
		return w
	}

	testutil.AssertStatus(t, get(nil), http.StatusUnauthorized)
	testutil.AssertStatus(t, get(authHeader("stranger")), http.StatusForbidden)
	testutil.AssertStatus(t, get(authHeader("owner-1")), http.StatusOK)
}

func TestGetPollNotFound(t *testing.T) {
	conn, _, _, resultsHandler := newTestHandlers(t)
	defer conn.Close()

	req := testutil.MakeRequest("GET", "/polls/nope", nil, nil)
	req.SetPathValue("id", "nope")
	w := httptest.NewRecorder()

	resultsHandler.GetPoll(w, req)
	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestGetPollDetailCacheInvalidatedByVote(t *testing.T) {
	conn, _, votingHandler, resultsHandler := newTestHandlers(t)
	defer conn.Close()

	pollID := testutil.CreateTestPoll(t, conn, "owner-1")
	optA := testutil.AddTestOption(t, conn, pollID, "A", 0)
	testutil.AddTestOption(t, conn, pollID, "B", 1)

	get := func() models.PollDetailResponse {
		req := testutil.MakeRequest("GET", "/polls/"+pollID, nil, nil)
		req.SetPathValue("id", pollID)
		w := httptest.NewRecorder()
		resultsHandler.GetPoll(w, req)
		testutil.AssertStatus(t, w, http.StatusOK)
		var resp models.PollDetailResponse
		testutil.AssertJSON(t, w, &resp)
		return resp
	}

	// Warm the detail cache at zero votes
	if resp := get(); resp.TotalVotes != 0 {
		t.Fatalf("Expected 0 votes, got %d", resp.TotalVotes)
	}

	// Vote through the handler, which must invalidate the cached view
	req := testutil.MakeRequest("POST", "/polls/"+pollID+"/votes",
		models.SubmitVoteRequest{OptionID: optA}, authHeader("voter-1"))
	req.SetPathValue("id", pollID)
	w := httptest.NewRecorder()
	votingHandler.SubmitVote(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	if resp := get(); resp.TotalVotes != 1 {
		t.Errorf("Stale detail served after vote: %d votes", resp.TotalVotes)
	}
}
