// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP routes using Go 1.22+ pattern routing.

NewRouter wires the store, engine, and handler layers around one *sql.DB
and returns a ready *http.ServeMux:

	mux := router.NewRouter(db, cfg)

Routes:

	GET  /health
	POST /polls
	GET  /polls
	GET  /polls/mine
	GET  /polls/{id}
	PUT  /polls/{id}
	DELETE /polls/{id}
	POST /polls/{id}/votes

Every route is wrapped in the logging middleware. CORS is applied around
the whole mux in main.
*/
package router
