// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain, form, and view types for the trivia app.

# Domain Types

Rows as stored in the database:

  - User: identity, bcrypt password hash, cumulative total_points
  - Round: one weekly batch of questions, at most one active at a time
  - Question: belongs to a round, carries the reference answer
  - Answer: one user's submitted text for one question, with derived correctness

# Form Types

Types parsed from browser form submissions:

  - LoginForm: username, password (both required)
  - CreateRoundForm: week number plus exactly three question/answer pairs
  - AnswerForm: explicit question id → submitted answer mapping

LoginForm uses go-playground/validator tags; AnswerForm completeness (an
entry for every question in the round) is checked by the answer handler
before scoring.

# View Types

Composed read models handed to the page templates:

  - DashboardView: current user, active round, leaderboard
  - AnswerRoundView: round and its questions
  - ResultsView: the full answer join for a round

# Messages

The Msg* constants are the plain-text sentences returned on business-rule
rejections (bad login, duplicate submission, locked results).
*/
package models
