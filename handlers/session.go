// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/weekly-trivia/auth"
	"github.com/danielhkuo/weekly-trivia/cliparse"
	"github.com/danielhkuo/weekly-trivia/middleware"
	"github.com/danielhkuo/weekly-trivia/models"
)

type SessionHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewSessionHandler(db *sql.DB, cfg cliparse.Config) *SessionHandler {
	return &SessionHandler{db: db, cfg: cfg}
}

// Index handles GET /
// Logged-in browsers land on the dashboard, everyone else on the login page.
func (h *SessionHandler) Index(w http.ResponseWriter, r *http.Request) {
	if _, err := auth.SessionUserID(r, h.cfg.SessionSecret); err != nil {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

// LoginPage handles GET /login
func (h *SessionHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	renderPage(w, "login.html", nil)
}

// Login handles POST /login
// Unknown username and wrong password get the same rejection sentence, so
// the response never confirms whether an account exists.
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		middleware.TextResponse(w, http.StatusBadRequest, models.MsgInvalidForm)
		return
	}

	form := models.LoginForm{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}
	if err := validate.Struct(form); err != nil {
		// Missing fields are just another bad credential combination
		middleware.TextResponse(w, http.StatusUnauthorized, models.MsgLoginIncorrect)
		return
	}

	var userID int64
	var passwordHash string
	err := h.db.QueryRow(`
		SELECT id, password_hash FROM users WHERE username = $1
	`, form.Username).Scan(&userID, &passwordHash)

	if err == sql.ErrNoRows {
		middleware.TextResponse(w, http.StatusUnauthorized, models.MsgLoginIncorrect)
		return
	}
	if err != nil {
		slog.Error("failed to query user", "error", err)
		middleware.ServerError(w)
		return
	}

	if !auth.CheckPassword(passwordHash, form.Password) {
		middleware.TextResponse(w, http.StatusUnauthorized, models.MsgLoginIncorrect)
		return
	}

	token, err := auth.NewSessionToken(userID, h.cfg.SessionSecret, auth.SessionTTL)
	if err != nil {
		slog.Error("failed to mint session token", "error", err)
		middleware.ServerError(w)
		return
	}
	auth.SetSessionCookie(w, token)

	slog.Info("user logged in", "user_id", userID, "username", form.Username)

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// Logout handles GET /logout
// Clears the session unconditionally, valid or not.
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	auth.ClearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusFound)
}
