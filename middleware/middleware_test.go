// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/weekly-trivia/auth"
)

const testSecret = "test-session-secret"

func TestRequireUserRedirectsWithoutSession(t *testing.T) {
	called := false
	handler := RequireUser(testSecret, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest("GET", "/dashboard", nil)
	w := httptest.NewRecorder()
	handler(w, req)

	if called {
		t.Error("Handler should not run without a session")
	}
	if w.Code != http.StatusFound {
		t.Errorf("Expected %d, got %d", http.StatusFound, w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/login" {
		t.Errorf("Expected redirect to /login, got %q", loc)
	}
}

func TestRequireUserPassesValidSession(t *testing.T) {
	token, err := auth.NewSessionToken(42, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("Failed to mint session token: %v", err)
	}

	var gotID int64
	handler := RequireUser(testSecret, func(w http.ResponseWriter, r *http.Request) {
		id, ok := UserID(r.Context())
		if !ok {
			t.Error("Expected user id in context")
		}
		gotID = id
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: token})
	w := httptest.NewRecorder()
	handler(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected %d, got %d", http.StatusOK, w.Code)
	}
	if gotID != 42 {
		t.Errorf("Expected user id 42, got %d", gotID)
	}
}

func TestRequireUserRejectsBadTokens(t *testing.T) {
	expired, err := auth.NewSessionToken(42, testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("Failed to mint session token: %v", err)
	}
	wrongSecret, err := auth.NewSessionToken(42, "another-secret", time.Hour)
	if err != nil {
		t.Fatalf("Failed to mint session token: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"expired session", expired},
		{"wrong secret", wrongSecret},
		{"garbage token", "not-a-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := RequireUser(testSecret, func(w http.ResponseWriter, r *http.Request) {
				t.Error("Handler should not run")
			})

			req := httptest.NewRequest("GET", "/dashboard", nil)
			req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: tt.token})
			w := httptest.NewRecorder()
			handler(w, req)

			if w.Code != http.StatusFound {
				t.Errorf("Expected %d, got %d", http.StatusFound, w.Code)
			}
		})
	}
}

func TestWithLoggingPassesThrough(t *testing.T) {
	handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	handler(w, req)

	if w.Code != http.StatusTeapot {
		t.Errorf("Expected %d, got %d", http.StatusTeapot, w.Code)
	}
}

func TestTextResponse(t *testing.T) {
	w := httptest.NewRecorder()
	TextResponse(w, http.StatusConflict, "You have already answered this round.")

	if w.Code != http.StatusConflict {
		t.Errorf("Expected %d, got %d", http.StatusConflict, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/plain; charset=utf-8" {
		t.Errorf("Unexpected content type %q", ct)
	}
	if w.Body.String() != "You have already answered this round." {
		t.Errorf("Unexpected body %q", w.Body.String())
	}
}
