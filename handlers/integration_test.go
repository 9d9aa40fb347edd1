// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"

	"github.com/danielhkuo/weekly-trivia/auth"
	"github.com/danielhkuo/weekly-trivia/testutil"
)

// TestFullRoundWorkflow tests the complete end-to-end workflow:
// 1. Log in as a seeded user
// 2. Create a round with three questions
// 3. Submit a full answer set with messy casing and whitespace
// 4. Verify scoring (three correct plus the bonus)
// 5. Verify the results view lists the answers
func TestFullRoundWorkflow(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	sessionHandler := NewSessionHandler(conn, cfg)
	roundHandler := NewRoundHandler(conn, cfg)
	answerHandler := NewAnswerHandler(conn, cfg)
	resultsHandler := NewResultsHandler(conn, cfg)

	aliceID := testutil.CreateTestUser(t, conn, "alice", "test")

	// Step 1: Log in
	loginForm := url.Values{"username": {"alice"}, "password": {"test"}}
	req := testutil.MakeFormRequest("POST", "/login", loginForm, nil)
	w := httptest.NewRecorder()
	sessionHandler.Login(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("Step 1 - Login failed: %d - %s", w.Code, w.Body.String())
	}

	var sessionCookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == auth.SessionCookieName {
			sessionCookie = c
		}
	}
	if sessionCookie == nil {
		t.Fatal("Step 1 - Missing session cookie")
	}
	t.Logf("Step 1 - Logged in as alice (user %d)", aliceID)

	// Step 2: Create round week=1
	w = httptest.NewRecorder()
	roundHandler.CreateRound(w, authedRequest("POST", "/create_round", roundForm("1", defaultPairs), aliceID))
	if w.Code != http.StatusSeeOther {
		t.Fatalf("Step 2 - Create round failed: %d - %s", w.Code, w.Body.String())
	}

	var roundID int64
	if err := conn.QueryRow(`SELECT id FROM rounds WHERE active = 1`).Scan(&roundID); err != nil {
		t.Fatalf("Step 2 - No active round: %v", err)
	}
	questions, err := roundQuestions(conn, roundID)
	if err != nil || len(questions) != 3 {
		t.Fatalf("Step 2 - Expected 3 questions, got %d (err: %v)", len(questions), err)
	}
	t.Logf("Step 2 - Created round %d", roundID)

	// Step 3: Answer with messy casing and whitespace
	questionIDs := []int64{questions[0].ID, questions[1].ID, questions[2].ID}
	w = submitAnswers(t, answerHandler, roundID, answerForm(questionIDs, []string{"4", "paris", "BLUE"}), aliceID)
	testutil.AssertRedirect(t, w, "/round_results/"+strconv.FormatInt(roundID, 10))
	t.Log("Step 3 - Submitted answers")

	// Step 4: Three correct plus the bonus
	if got := testutil.UserPoints(t, conn, aliceID); got != 4 {
		t.Fatalf("Step 4 - Expected total_points 4, got %d", got)
	}

	var correct int
	err = conn.QueryRow(`
		SELECT COUNT(*) FROM answers
		WHERE user_id = $1 AND is_correct = 1
		  AND question_id IN (SELECT id FROM questions WHERE round_id = $2)
	`, aliceID, roundID).Scan(&correct)
	if err != nil {
		t.Fatalf("Step 4 - Failed to count correct answers: %v", err)
	}
	if correct != 3 {
		t.Fatalf("Step 4 - Expected 3 correct answers, got %d", correct)
	}
	t.Log("Step 4 - Scored 3 correct plus the bonus")

	// Step 5: Results now open for alice and list her answers
	w = getResults(t, resultsHandler, roundID, aliceID)
	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.AssertBodyContains(t, w, "alice")
	testutil.AssertBodyContains(t, w, "paris")
	testutil.AssertBodyContains(t, w, "BLUE")
	t.Log("Step 5 - Results visible")
}
