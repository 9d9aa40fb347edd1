// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/danielhkuo/weekly-trivia/middleware"
	"github.com/danielhkuo/weekly-trivia/models"
	"github.com/danielhkuo/weekly-trivia/testutil"
)

// authedRequest builds a form request bound to a user, the way RequireUser
// would hand it to a gated handler.
func authedRequest(method, path string, form url.Values, userID int64) *http.Request {
	req := testutil.MakeFormRequest(method, path, form, nil)
	return req.WithContext(middleware.ContextWithUserID(req.Context(), userID))
}

func roundForm(week string, pairs [][2]string) url.Values {
	form := url.Values{"week_number": {week}}
	for i, pair := range pairs {
		n := string(rune('1' + i))
		form.Set("q"+n, pair[0])
		form.Set("a"+n, pair[1])
	}
	return form
}

var defaultPairs = [][2]string{
	{"2+2", "4"},
	{"capital of France", "Paris"},
	{"color of sky", "Blue"},
}

func TestCreateRound(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewRoundHandler(conn, cfg)

	aliceID := testutil.CreateTestUser(t, conn, "alice", "test")

	req := authedRequest("POST", "/create_round", roundForm("1", defaultPairs), aliceID)
	w := httptest.NewRecorder()
	handler.CreateRound(w, req)

	testutil.AssertRedirect(t, w, "/dashboard")

	var roundID int64
	var week int
	var author int64
	err := conn.QueryRow(`SELECT id, week_number, author_user_id FROM rounds WHERE active = 1`).Scan(&roundID, &week, &author)
	if err != nil {
		t.Fatalf("Expected exactly one active round: %v", err)
	}
	if week != 1 || author != aliceID {
		t.Errorf("Round has week=%d author=%d, want week=1 author=%d", week, author, aliceID)
	}

	questions, err := roundQuestions(conn, roundID)
	if err != nil {
		t.Fatalf("Failed to load questions: %v", err)
	}
	if len(questions) != models.QuestionsPerRound {
		t.Fatalf("Expected %d questions, got %d", models.QuestionsPerRound, len(questions))
	}
	for i, q := range questions {
		if q.Text != defaultPairs[i][0] || q.CorrectAnswer != defaultPairs[i][1] {
			t.Errorf("Question %d is (%q, %q), want (%q, %q)",
				i, q.Text, q.CorrectAnswer, defaultPairs[i][0], defaultPairs[i][1])
		}
	}
}

func TestCreateRoundDeactivatesPrevious(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewRoundHandler(conn, cfg)

	aliceID := testutil.CreateTestUser(t, conn, "alice", "test")
	bobID := testutil.CreateTestUser(t, conn, "bob", "test")

	w := httptest.NewRecorder()
	handler.CreateRound(w, authedRequest("POST", "/create_round", roundForm("1", defaultPairs), aliceID))
	testutil.AssertRedirect(t, w, "/dashboard")

	w = httptest.NewRecorder()
	handler.CreateRound(w, authedRequest("POST", "/create_round", roundForm("2", defaultPairs), bobID))
	testutil.AssertRedirect(t, w, "/dashboard")

	var activeCount int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM rounds WHERE active = 1`).Scan(&activeCount); err != nil {
		t.Fatalf("Failed to count active rounds: %v", err)
	}
	if activeCount != 1 {
		t.Fatalf("Expected exactly 1 active round, got %d", activeCount)
	}

	var week int
	if err := conn.QueryRow(`SELECT week_number FROM rounds WHERE active = 1`).Scan(&week); err != nil {
		t.Fatalf("Failed to query active round: %v", err)
	}
	if week != 2 {
		t.Errorf("Expected the newest round (week 2) to be active, got week %d", week)
	}
}

func TestCreateRoundInvalidForm(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewRoundHandler(conn, cfg)

	aliceID := testutil.CreateTestUser(t, conn, "alice", "test")

	tests := []struct {
		name string
		form url.Values
	}{
		{"missing week number", func() url.Values {
			f := roundForm("1", defaultPairs)
			f.Del("week_number")
			return f
		}()},
		{"week number not a number", roundForm("soon", defaultPairs)},
		{"missing question field", func() url.Values {
			f := roundForm("1", defaultPairs)
			f.Del("q2")
			return f
		}()},
		{"missing answer field", func() url.Values {
			f := roundForm("1", defaultPairs)
			f.Del("a3")
			return f
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.CreateRound(w, authedRequest("POST", "/create_round", tt.form, aliceID))

			testutil.AssertStatus(t, w, http.StatusBadRequest)
			testutil.AssertBodyContains(t, w, models.MsgInvalidForm)

			var rounds int
			if err := conn.QueryRow(`SELECT COUNT(*) FROM rounds`).Scan(&rounds); err != nil {
				t.Fatalf("Failed to count rounds: %v", err)
			}
			if rounds != 0 {
				t.Errorf("Rejected form should not create rounds, found %d", rounds)
			}
		})
	}
}

func TestDashboard(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewRoundHandler(conn, cfg)

	aliceID := testutil.CreateTestUser(t, conn, "alice", "test")
	testutil.CreateTestUser(t, conn, "bob", "test")
	testutil.CreateTestUser(t, conn, "carol", "test")

	// bob leads, alice and carol tie at zero
	if _, err := conn.Exec(`UPDATE users SET total_points = 7 WHERE username = 'bob'`); err != nil {
		t.Fatalf("Failed to set points: %v", err)
	}

	testutil.CreateTestRound(t, conn, aliceID, 3, true, defaultPairs)

	w := httptest.NewRecorder()
	handler.Dashboard(w, authedRequest("GET", "/dashboard", nil, aliceID))

	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.AssertBodyContains(t, w, "round 3")
	testutil.AssertBodyContains(t, w, "alice")

	// Leaderboard order: bob (7), then alice before carol on the tie-break
	body := w.Body.String()
	bobAt := strings.Index(body, "bob")
	aliceAt := strings.LastIndex(body, "alice")
	carolAt := strings.Index(body, "carol")
	if bobAt == -1 || aliceAt == -1 || carolAt == -1 {
		t.Fatal("Expected every user on the leaderboard")
	}
	if !(bobAt < aliceAt && aliceAt < carolAt) {
		t.Errorf("Leaderboard out of order: bob@%d alice@%d carol@%d", bobAt, aliceAt, carolAt)
	}
}

func TestDashboardWithoutActiveRound(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewRoundHandler(conn, cfg)

	aliceID := testutil.CreateTestUser(t, conn, "alice", "test")

	w := httptest.NewRecorder()
	handler.Dashboard(w, authedRequest("GET", "/dashboard", nil, aliceID))

	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.AssertBodyContains(t, w, "No active round")
}
