// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Weekly Trivia server.

Weekly Trivia is a small multi-user quiz application: an author posts a
weekly round of three questions, participants answer once, and a points
leaderboard tracks cumulative scores.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	SESSION_SECRET=... go run main.go

Or with flags:

	go run main.go -p 3410 -t sqlite -d trivia.db -session-secret "..." -seed

# Configuration

Required settings:

  - SESSION_SECRET (-session-secret): Secret for session cookie signing

Optional settings:

  - PORT (-p): Server port (default: 3410)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - DATABASE_URL (-d): postgres DSN or sqlite file path (default: trivia.db)
  - SEED_DEMO (-seed): Create the five demo accounts at startup

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (session, rounds, answers, results)
  - router: Route definitions using Go 1.22+ routing
  - middleware: Session gate, logging, plain-text helpers
  - models: Domain, form, and view types
  - auth: Password hashing and session tokens
  - db: Schema creation and demo seeding
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
