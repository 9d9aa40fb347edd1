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

type AnswerHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewAnswerHandler(db *sql.DB, cfg cliparse.Config) *AnswerHandler {
	return &AnswerHandler{db: db, cfg: cfg}
}

// AnswerRoundPage handles GET /answer_round/{id}
func (h *AnswerHandler) AnswerRoundPage(w http.ResponseWriter, r *http.Request) {
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

	round, err := h.loadRound(roundID)
	if err == sql.ErrNoRows {
		middleware.TextResponse(w, http.StatusNotFound, models.MsgRoundNotFound)
		return
	}
	if err != nil {
		slog.Error("failed to query round", "error", err)
		middleware.ServerError(w)
		return
	}

	questions, err := roundQuestions(h.db, roundID)
	if err != nil {
		slog.Error("failed to query questions", "error", err)
		middleware.ServerError(w)
		return
	}

	renderPage(w, "answer_round.html", models.AnswerRoundView{
		User:      user,
		Round:     round,
		Questions: questions,
	})
}

// SubmitAnswers handles POST /answer_round/{id}
//
// A user's transition from Unanswered to Answered fires at most once per
// round. The existence check, the answer inserts, and the points update all
// run inside one transaction, and the UNIQUE (user_id, question_id)
// constraint turns a same-user race into a rejected write instead of a
// duplicate ledger entry.
func (h *AnswerHandler) SubmitAnswers(w http.ResponseWriter, r *http.Request) {
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

	if _, err := h.loadRound(roundID); err == sql.ErrNoRows {
		middleware.TextResponse(w, http.StatusNotFound, models.MsgRoundNotFound)
		return
	} else if err != nil {
		slog.Error("failed to query round", "error", err)
		middleware.ServerError(w)
		return
	}

	questions, err := roundQuestions(h.db, roundID)
	if err != nil {
		slog.Error("failed to query questions", "error", err)
		middleware.ServerError(w)
		return
	}

	if err := r.ParseForm(); err != nil {
		middleware.TextResponse(w, http.StatusBadRequest, models.MsgInvalidForm)
		return
	}

	// Build the explicit question id → answer mapping and require an entry
	// for every question before any scoring runs
	form := models.AnswerForm{Answers: make(map[int64]string, len(questions))}
	for _, q := range questions {
		key := "q" + strconv.FormatInt(q.ID, 10)
		if !r.PostForm.Has(key) {
			middleware.TextResponse(w, http.StatusBadRequest, models.MsgInvalidForm)
			return
		}
		form.Answers[q.ID] = r.PostFormValue(key)
	}
	if err := validate.Struct(form); err != nil {
		middleware.TextResponse(w, http.StatusBadRequest, models.MsgInvalidForm)
		return
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ServerError(w)
		return
	}
	defer tx.Rollback()

	var existing int
	err = tx.QueryRow(`
		SELECT COUNT(*) FROM answers
		WHERE user_id = $1
		  AND question_id IN (SELECT id FROM questions WHERE round_id = $2)
	`, user.ID, roundID).Scan(&existing)
	if err != nil {
		slog.Error("failed to count existing answers", "error", err)
		middleware.ServerError(w)
		return
	}
	if existing > 0 {
		middleware.TextResponse(w, http.StatusConflict, models.MsgAlreadyAnswered)
		return
	}

	graded, points := ScoreRound(questions, form.Answers)

	for _, ans := range graded {
		correctFlag := 0
		if ans.IsCorrect {
			correctFlag = 1
		}
		_, err := tx.Exec(`
			INSERT INTO answers (question_id, user_id, answer_text, is_correct)
			VALUES ($1, $2, $3, $4)
		`, ans.QuestionID, user.ID, ans.AnswerText, correctFlag)
		if isUniqueViolation(err) {
			// Lost a race against a concurrent submission from the same user
			middleware.TextResponse(w, http.StatusConflict, models.MsgAlreadyAnswered)
			return
		}
		if err != nil {
			slog.Error("failed to insert answer", "error", err, "question_id", ans.QuestionID)
			middleware.ServerError(w)
			return
		}
	}

	// Increment, never recompute
	_, err = tx.Exec(`
		UPDATE users SET total_points = total_points + $1 WHERE id = $2
	`, points, user.ID)
	if err != nil {
		slog.Error("failed to update points", "error", err, "user_id", user.ID)
		middleware.ServerError(w)
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit answers", "error", err)
		middleware.ServerError(w)
		return
	}

	slog.Info("round answered", "round_id", roundID, "user_id", user.ID, "points", points)

	http.Redirect(w, r, "/round_results/"+strconv.FormatInt(roundID, 10), http.StatusSeeOther)
}

func (h *AnswerHandler) loadRound(roundID int64) (models.Round, error) {
	var round models.Round
	var activeFlag int
	err := h.db.QueryRow(`
		SELECT id, week_number, author_user_id, active
		FROM rounds
		WHERE id = $1
	`, roundID).Scan(&round.ID, &round.WeekNumber, &round.AuthorUserID, &activeFlag)
	if err != nil {
		return models.Round{}, err
	}
	round.Active = activeFlag == 1
	return round, nil
}
