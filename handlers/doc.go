// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP request handlers for Weekly Trivia.

# Handler Types

Each handler is a struct with database and config dependencies:

  - SessionHandler: index redirect, login, logout
  - RoundHandler: dashboard and round creation
  - AnswerHandler: answer form and the once-per-round submission
  - ResultsHandler: the per-viewer results gate and the full answer join

Handlers are created via constructor functions that accept *sql.DB and Config:

	rounds := handlers.NewRoundHandler(db, cfg)

# Round Lifecycle

A round is created with exactly three questions; creating one deactivates
every prior round inside a single transaction:

	GET/POST /create_round → CreateRound

Per user and round the answer state machine has two states,
Unanswered → Answered, and the transition fires at most once:

	GET/POST /answer_round/{id} → SubmitAnswers

Scoring awards one point per correct answer (case-insensitive, surrounding
whitespace stripped) plus a flat bonus for a perfect round; the logic lives
in scoring.go:

	graded, points := ScoreRound(questions, submitted)

# Results Gate

Results for a round stay hidden from a viewer until that viewer has answered
all of its questions:

	GET /round_results/{id} → RoundResults

Once cleared, the response lists every recorded answer for the round,
ordered by username then question id.

# Pages

GET pages render small embedded html/template files (templates/); rejections
are plain-text sentences and successful POSTs redirect.
*/
package handlers
