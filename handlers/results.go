// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/weekly-trivia/cliparse"
	"github.com/danielhkuo/weekly-trivia/middleware"
	"github.com/danielhkuo/weekly-trivia/models"
)

type ResultsHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewResultsHandler(db *sql.DB, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{db: db, cfg: cfg}
}

// RoundResults handles GET /round_results/{id}
//
// The gate is per viewer: results stay hidden until this user has answered
// every question in the round. Once cleared, the viewer sees every recorded
// answer for the round, including those of users who have not answered yet
// themselves, ordered by username then question id.
func (h *ResultsHandler) RoundResults(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(h.db, r)
	if err == sql.ErrNoRows {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	if err != nil {
		slog.Error("failed to load current user", "error", err)
		middleware.ServerError(w)
		return
	}

	roundID, err := pathID(r)
	if err != nil {
		middleware.TextResponse(w, http.StatusNotFound, models.MsgRoundNotFound)
		return
	}

	var exists int
	err = h.db.QueryRow(`SELECT COUNT(*) FROM rounds WHERE id = $1`, roundID).Scan(&exists)
	if err != nil {
		slog.Error("failed to query round", "error", err)
		middleware.ServerError(w)
		return
	}
	if exists == 0 {
		middleware.TextResponse(w, http.StatusNotFound, models.MsgRoundNotFound)
		return
	}

	var total int
	err = h.db.QueryRow(`
		SELECT COUNT(*) FROM questions WHERE round_id = $1
	`, roundID).Scan(&total)
	if err != nil {
		slog.Error("failed to count questions", "error", err)
		middleware.ServerError(w)
		return
	}

	var answered int
	err = h.db.QueryRow(`
		SELECT COUNT(*) FROM answers
		WHERE user_id = $1
		  AND question_id IN (SELECT id FROM questions WHERE round_id = $2)
	`, user.ID, roundID).Scan(&answered)
	if err != nil {
		slog.Error("failed to count answered questions", "error", err)
		middleware.ServerError(w)
		return
	}

	if answered < total {
		middleware.TextResponse(w, http.StatusForbidden, models.MsgResultsLocked)
		return
	}

	rows, err := h.db.Query(`
		SELECT u.username, q.text, a.answer_text, a.is_correct
		FROM answers a
		JOIN users u ON a.user_id = u.id
		JOIN questions q ON a.question_id = q.id
		WHERE q.round_id = $1
		ORDER BY u.username, q.id
	`, roundID)
	if err != nil {
		slog.Error("failed to query results", "error", err)
		middleware.ServerError(w)
		return
	}
	defer rows.Close()

	view := models.ResultsView{User: user, RoundID: roundID}
	for rows.Next() {
		var row models.ResultRow
		var correctFlag int
		if err := rows.Scan(&row.Username, &row.QuestionText, &row.AnswerText, &correctFlag); err != nil {
			slog.Error("failed to scan result row", "error", err)
			middleware.ServerError(w)
			return
		}
		row.IsCorrect = correctFlag == 1
		view.Results = append(view.Results, row)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to read results", "error", err)
		middleware.ServerError(w)
		return
	}

	renderPage(w, "round_results.html", view)
}
