// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP routes for Weekly Trivia.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Session (public):

	GET  /       - Redirect to /login or /dashboard
	GET  /login  - Login form
	POST /login  - Authenticate
	GET  /logout - Clear session

Gated (valid session required; otherwise redirect to /login):

	GET  /dashboard           - Active round and leaderboard
	GET  /create_round        - Round form
	POST /create_round        - Create round with three questions
	GET  /answer_round/{id}   - Answer form
	POST /answer_round/{id}   - Submit the full answer set (once)
	GET  /round_results/{id}  - Results, if the viewer answered everything

# Handler Initialization

The router creates handler instances with dependency injection:

	sessionHandler := handlers.NewSessionHandler(db, cfg)
	roundHandler := handlers.NewRoundHandler(db, cfg)
	answerHandler := handlers.NewAnswerHandler(db, cfg)
	resultsHandler := handlers.NewResultsHandler(db, cfg)

All handlers receive the database connection and configuration. Every route
is wrapped in logging; the gated ones additionally in RequireUser.
*/
package router
