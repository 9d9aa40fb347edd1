// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/weekly-trivia/auth"
	"github.com/danielhkuo/weekly-trivia/cliparse"
	"github.com/danielhkuo/weekly-trivia/db"
)

// SetupTestDB creates a fresh in-memory sqlite database with the full schema.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// A single connection keeps every query on the same in-memory database
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn, "sqlite"); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3410,
		DatabaseURL:   ":memory:",
		DatabaseType:  "sqlite",
		SessionSecret: "test-session-secret",
	}
}

// CreateTestUser inserts a user and returns its id.
// Uses bcrypt.MinCost to keep test runs fast.
func CreateTestUser(t *testing.T, conn *sql.DB, username, password string) int64 {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("Failed to hash test password: %v", err)
	}

	var id int64
	err = conn.QueryRow(`
		INSERT INTO users (username, password_hash, total_points)
		VALUES ($1, $2, 0)
		RETURNING id
	`, username, string(hash)).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return id
}

// CreateTestRound inserts a round with its question/answer pairs and returns
// the round id and question ids. An active round deactivates any prior one,
// the same way the create-round handler does.
func CreateTestRound(t *testing.T, conn *sql.DB, authorID int64, week int, active bool, pairs [][2]string) (int64, []int64) {
	t.Helper()

	if active {
		if _, err := conn.Exec(`UPDATE rounds SET active = 0 WHERE active = 1`); err != nil {
			t.Fatalf("Failed to deactivate prior rounds: %v", err)
		}
	}

	activeFlag := 0
	if active {
		activeFlag = 1
	}

	var roundID int64
	err := conn.QueryRow(`
		INSERT INTO rounds (week_number, author_user_id, active)
		VALUES ($1, $2, $3)
		RETURNING id
	`, week, authorID, activeFlag).Scan(&roundID)
	if err != nil {
		t.Fatalf("Failed to create test round: %v", err)
	}

	questionIDs := make([]int64, 0, len(pairs))
	for _, pair := range pairs {
		var qid int64
		err := conn.QueryRow(`
			INSERT INTO questions (round_id, text, correct_answer)
			VALUES ($1, $2, $3)
			RETURNING id
		`, roundID, pair[0], pair[1]).Scan(&qid)
		if err != nil {
			t.Fatalf("Failed to create test question: %v", err)
		}
		questionIDs = append(questionIDs, qid)
	}

	return roundID, questionIDs
}

// InsertTestAnswer records an answer row directly, bypassing the handler.
func InsertTestAnswer(t *testing.T, conn *sql.DB, questionID, userID int64, text string, correct bool) {
	t.Helper()

	correctFlag := 0
	if correct {
		correctFlag = 1
	}

	_, err := conn.Exec(`
		INSERT INTO answers (question_id, user_id, answer_text, is_correct)
		VALUES ($1, $2, $3, $4)
	`, questionID, userID, text, correctFlag)
	if err != nil {
		t.Fatalf("Failed to insert test answer: %v", err)
	}
}

// SessionCookie mints a valid session cookie for the user.
func SessionCookie(t *testing.T, cfg cliparse.Config, userID int64) *http.Cookie {
	t.Helper()

	token, err := auth.NewSessionToken(userID, cfg.SessionSecret, auth.SessionTTL)
	if err != nil {
		t.Fatalf("Failed to mint session token: %v", err)
	}

	return &http.Cookie{Name: auth.SessionCookieName, Value: token}
}

// MakeFormRequest creates an HTTP test request with an urlencoded form body.
func MakeFormRequest(method, path string, form url.Values, cookie *http.Cookie) *http.Request {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	if cookie != nil {
		req.AddCookie(cookie)
	}

	return req
}

// UserPoints reads a user's current total_points.
func UserPoints(t *testing.T, conn *sql.DB, userID int64) int {
	t.Helper()

	var points int
	err := conn.QueryRow(`SELECT total_points FROM users WHERE id = $1`, userID).Scan(&points)
	if err != nil {
		t.Fatalf("Failed to query total_points: %v", err)
	}
	return points
}

// AnswerCount counts a user's recorded answers across a round's questions.
func AnswerCount(t *testing.T, conn *sql.DB, userID, roundID int64) int {
	t.Helper()

	var count int
	err := conn.QueryRow(`
		SELECT COUNT(*) FROM answers
		WHERE user_id = $1
		  AND question_id IN (SELECT id FROM questions WHERE round_id = $2)
	`, userID, roundID).Scan(&count)
	if err != nil {
		t.Fatalf("Failed to count answers: %v", err)
	}
	return count
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertRedirect checks for a redirect to the expected location
func AssertRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()
	if w.Code != http.StatusFound && w.Code != http.StatusSeeOther {
		t.Errorf("Expected a redirect, got %d. Body: %s", w.Code, w.Body.String())
		return
	}
	if got := w.Header().Get("Location"); got != location {
		t.Errorf("Expected redirect to %q, got %q", location, got)
	}
}

// AssertBodyContains checks that the response body contains the substring
func AssertBodyContains(t *testing.T, w *httptest.ResponseRecorder, substr string) {
	t.Helper()
	if !strings.Contains(w.Body.String(), substr) {
		t.Errorf("Expected body to contain %q. Body: %s", substr, w.Body.String())
	}
}
