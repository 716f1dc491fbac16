// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/danielhkuo/pollbox/cliparse"
	"github.com/danielhkuo/pollbox/engine"
	"github.com/danielhkuo/pollbox/handlers"
	"github.com/danielhkuo/pollbox/middleware"
	"github.com/danielhkuo/pollbox/store"
	"github.com/danielhkuo/pollbox/viewcache"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Wire stores, services, handlers
	polls := store.NewPollStore(db)
	options := store.NewOptionStore(db)
	votes := store.NewVoteStore(db)
	cache := viewcache.New(30 * time.Second)

	pollService := engine.NewPollService(polls, options, cache)
	voteService := engine.NewVoteService(polls, options, votes, cache)
	resultsService := engine.NewResultsService(polls, options, votes)

	pollHandler := handlers.NewPollHandler(pollService, polls, votes, cache, cfg)
	votingHandler := handlers.NewVotingHandler(voteService, resultsService, cfg)
	resultsHandler := handlers.NewResultsHandler(resultsService, polls, cache, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Poll lifecycle (owner operations)
	mux.HandleFunc("POST /polls", middleware.WithLogging(pollHandler.CreatePoll))
	mux.HandleFunc("PUT /polls/{id}", middleware.WithLogging(pollHandler.UpdatePoll))
	mux.HandleFunc("DELETE /polls/{id}", middleware.WithLogging(pollHandler.DeletePoll))

	// Listings
	mux.HandleFunc("GET /polls", middleware.WithLogging(pollHandler.ListPolls))
	mux.HandleFunc("GET /polls/mine", middleware.WithLogging(pollHandler.MyPolls))

	// Voting and results
	mux.HandleFunc("POST /polls/{id}/votes", middleware.WithLogging(votingHandler.SubmitVote))
	mux.HandleFunc("GET /polls/{id}", middleware.WithLogging(resultsHandler.GetPoll))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pollbox API v1"))
	})

	return mux
}
