// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/danielhkuo/weekly-trivia/middleware"
	"github.com/danielhkuo/weekly-trivia/models"
)

var validate = validator.New()

var errNoSessionUser = errors.New("no user bound to request")

// currentUser loads the User record the session resolves to.
// Returns sql.ErrNoRows when the session points at a deleted user.
func currentUser(conn *sql.DB, r *http.Request) (models.User, error) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		return models.User{}, errNoSessionUser
	}

	var user models.User
	err := conn.QueryRow(`
		SELECT id, username, password_hash, total_points
		FROM users
		WHERE id = $1
	`, userID).Scan(&user.ID, &user.Username, &user.PasswordHash, &user.TotalPoints)
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

// pathID parses the {id} path segment.
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

// isUniqueViolation matches the duplicate-key error text of both drivers
// (modernc sqlite and lib/pq).
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}

// roundQuestions fetches a round's questions ordered by id.
func roundQuestions(conn *sql.DB, roundID int64) ([]models.Question, error) {
	rows, err := conn.Query(`
		SELECT id, round_id, text, correct_answer
		FROM questions
		WHERE round_id = $1
		ORDER BY id
	`, roundID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	questions := []models.Question{}
	for rows.Next() {
		var q models.Question
		if err := rows.Scan(&q.ID, &q.RoundID, &q.Text, &q.CorrectAnswer); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}
