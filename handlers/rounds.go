// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/weekly-trivia/cliparse"
	"github.com/danielhkuo/weekly-trivia/middleware"
	"github.com/danielhkuo/weekly-trivia/models"
)

type RoundHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewRoundHandler(db *sql.DB, cfg cliparse.Config) *RoundHandler {
	return &RoundHandler{db: db, cfg: cfg}
}

// Dashboard handles GET /dashboard
// Shows the active round (most recently created, if any) and the full
// leaderboard ordered by points, then username.
func (h *RoundHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(h.db, r)
	if err == sql.ErrNoRows {
		// Session points at a user that no longer exists
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	if err != nil {
		slog.Error("failed to load current user", "error", err)
		middleware.ServerError(w)
		return
	}

	view := models.DashboardView{User: user}

	var round models.Round
	var activeFlag int
	err = h.db.QueryRow(`
		SELECT id, week_number, author_user_id, active
		FROM rounds
		WHERE active = 1
		ORDER BY id DESC
		LIMIT 1
	`).Scan(&round.ID, &round.WeekNumber, &round.AuthorUserID, &activeFlag)

	switch {
	case err == sql.ErrNoRows:
		// No active round; the dashboard still renders
	case err != nil:
		slog.Error("failed to query active round", "error", err)
		middleware.ServerError(w)
		return
	default:
		round.Active = activeFlag == 1
		view.ActiveRound = &round
	}

	rows, err := h.db.Query(`
		SELECT username, total_points
		FROM users
		ORDER BY total_points DESC, username ASC
	`)
	if err != nil {
		slog.Error("failed to query leaderboard", "error", err)
		middleware.ServerError(w)
		return
	}
	defer rows.Close()

	for rows.Next() {
		var entry models.LeaderboardEntry
		if err := rows.Scan(&entry.Username, &entry.TotalPoints); err != nil {
			slog.Error("failed to scan leaderboard entry", "error", err)
			middleware.ServerError(w)
			return
		}
		view.Leaderboard = append(view.Leaderboard, entry)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to read leaderboard", "error", err)
		middleware.ServerError(w)
		return
	}

	renderPage(w, "dashboard.html", view)
}

// CreateRoundPage handles GET /create_round
func (h *RoundHandler) CreateRoundPage(w http.ResponseWriter, r *http.Request) {
	renderPage(w, "create_round.html", nil)
}

// CreateRound handles POST /create_round
// Any logged-in user may author a round. The active-round swap and the three
// question inserts run in one transaction so a failure never leaves the
// system without an active round or with a partial batch.
func (h *RoundHandler) CreateRound(w http.ResponseWriter, r *http.Request) {
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

	if err := r.ParseForm(); err != nil {
		middleware.TextResponse(w, http.StatusBadRequest, models.MsgInvalidForm)
		return
	}

	week, err := strconv.Atoi(r.PostFormValue("week_number"))
	if err != nil {
		middleware.TextResponse(w, http.StatusBadRequest, models.MsgInvalidForm)
		return
	}

	form := models.CreateRoundForm{WeekNumber: week}
	for i := range form.Questions {
		n := strconv.Itoa(i + 1)
		if !r.PostForm.Has("q"+n) || !r.PostForm.Has("a"+n) {
			middleware.TextResponse(w, http.StatusBadRequest, models.MsgInvalidForm)
			return
		}
		form.Questions[i] = models.QuestionForm{
			Text:   r.PostFormValue("q" + n),
			Answer: r.PostFormValue("a" + n),
		}
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ServerError(w)
		return
	}
	defer tx.Rollback()

	// Deactivate prior rounds before inserting the new active one; the
	// partial unique index would reject a second active row otherwise
	if _, err := tx.Exec(`UPDATE rounds SET active = 0 WHERE active = 1`); err != nil {
		slog.Error("failed to deactivate rounds", "error", err)
		middleware.ServerError(w)
		return
	}

	var roundID int64
	err = tx.QueryRow(`
		INSERT INTO rounds (week_number, author_user_id, active)
		VALUES ($1, $2, 1)
		RETURNING id
	`, form.WeekNumber, user.ID).Scan(&roundID)
	if err != nil {
		slog.Error("failed to insert round", "error", err)
		middleware.ServerError(w)
		return
	}

	for _, q := range form.Questions {
		_, err := tx.Exec(`
			INSERT INTO questions (round_id, text, correct_answer)
			VALUES ($1, $2, $3)
		`, roundID, q.Text, q.Answer)
		if err != nil {
			slog.Error("failed to insert question", "error", err, "round_id", roundID)
			middleware.ServerError(w)
			return
		}
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit round", "error", err)
		middleware.ServerError(w)
		return
	}

	slog.Info("round created", "round_id", roundID, "week", form.WeekNumber, "author", user.Username)

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}
