// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/weekly-trivia/cliparse"
	"github.com/danielhkuo/weekly-trivia/handlers"
	"github.com/danielhkuo/weekly-trivia/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	sessionHandler := handlers.NewSessionHandler(db, cfg)
	roundHandler := handlers.NewRoundHandler(db, cfg)
	answerHandler := handlers.NewAnswerHandler(db, cfg)
	resultsHandler := handlers.NewResultsHandler(db, cfg)

	// Everything past the login page requires a session
	gated := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireUser(cfg.SessionSecret, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Session (public)
	mux.HandleFunc("GET /{$}", middleware.WithLogging(sessionHandler.Index))
	mux.HandleFunc("GET /login", middleware.WithLogging(sessionHandler.LoginPage))
	mux.HandleFunc("POST /login", middleware.WithLogging(sessionHandler.Login))
	mux.HandleFunc("GET /logout", middleware.WithLogging(sessionHandler.Logout))

	// Rounds
	mux.HandleFunc("GET /dashboard", gated(roundHandler.Dashboard))
	mux.HandleFunc("GET /create_round", gated(roundHandler.CreateRoundPage))
	mux.HandleFunc("POST /create_round", gated(roundHandler.CreateRound))

	// Answers
	mux.HandleFunc("GET /answer_round/{id}", gated(answerHandler.AnswerRoundPage))
	mux.HandleFunc("POST /answer_round/{id}", gated(answerHandler.SubmitAnswers))

	// Results
	mux.HandleFunc("GET /round_results/{id}", gated(resultsHandler.RoundResults))

	return mux
}
