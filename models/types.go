// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// QuestionsPerRound is the fixed size of a round's question batch.
const QuestionsPerRound = 3

// User-facing sentences for business-rule rejections. These are returned
// as plain text, never as structured errors.
const (
	MsgLoginIncorrect  = "Login incorrect."
	MsgAlreadyAnswered = "You have already answered this round."
	MsgResultsLocked   = "You can't see the results until you answer every question."
	MsgRoundNotFound   = "Round not found."
	MsgInvalidForm     = "Invalid form submission."
)

// Domain types

type User struct {
	ID           int64
	Username     string
	PasswordHash string
	TotalPoints  int
}

type Round struct {
	ID           int64
	WeekNumber   int
	AuthorUserID int64
	Active       bool
}

type Question struct {
	ID            int64
	RoundID       int64
	Text          string
	CorrectAnswer string
}

type Answer struct {
	ID         int64
	QuestionID int64
	UserID     int64
	AnswerText string
	IsCorrect  bool
}

// Form types (parsed from browser form submissions)

type LoginForm struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

type QuestionForm struct {
	Text   string
	Answer string
}

type CreateRoundForm struct {
	WeekNumber int
	Questions  [QuestionsPerRound]QuestionForm
}

// AnswerForm maps question id to the submitted answer text. The map must
// contain an entry for every question in the round before scoring runs.
type AnswerForm struct {
	Answers map[int64]string `validate:"required"`
}

// View types (composed for page rendering)

type LeaderboardEntry struct {
	Username    string
	TotalPoints int
}

type ResultRow struct {
	Username     string
	QuestionText string
	AnswerText   string
	IsCorrect    bool
}

type DashboardView struct {
	User        User
	ActiveRound *Round
	Leaderboard []LeaderboardEntry
}

type AnswerRoundView struct {
	User      User
	Round     Round
	Questions []Question
}

type ResultsView struct {
	User    User
	RoundID int64
	Results []ResultRow
}
