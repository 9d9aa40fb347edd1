// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	"github.com/danielhkuo/weekly-trivia/auth"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(conn *sql.DB, dbType string) error {
	var schema string
	switch dbType {
	case "sqlite":
		schema = schemaSqlite
	case "postgres":
		schema = schemaPostgres
	default:
		return fmt.Errorf("unknown database type %q", dbType)
	}

	_, err := conn.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// DemoUsernames are the accounts created by SeedDemoUsers.
var DemoUsernames = []string{"alice", "bob", "carol", "dave", "eve"}

// DemoPassword is the shared password of the demo accounts.
const DemoPassword = "test"

// SeedDemoUsers inserts the five demo accounts with the shared password.
// Existing usernames are left untouched, so reseeding never resets points.
func SeedDemoUsers(conn *sql.DB) error {
	hash, err := auth.HashPassword(DemoPassword)
	if err != nil {
		return err
	}

	for _, username := range DemoUsernames {
		_, err := conn.Exec(`
			INSERT INTO users (username, password_hash, total_points)
			VALUES ($1, $2, 0)
			ON CONFLICT (username) DO NOTHING
		`, username, hash)
		if err != nil {
			return fmt.Errorf("failed to seed user %s: %w", username, err)
		}
	}

	return nil
}

const schemaSqlite = `
-- Users
CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    username TEXT UNIQUE NOT NULL,
    password_hash TEXT NOT NULL,
    total_points INTEGER NOT NULL DEFAULT 0
);

-- Rounds
CREATE TABLE IF NOT EXISTS rounds (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    week_number INTEGER NOT NULL,
    author_user_id INTEGER NOT NULL REFERENCES users(id),
    active INTEGER NOT NULL DEFAULT 1
);

-- At most one round may be active
CREATE UNIQUE INDEX IF NOT EXISTS idx_rounds_single_active ON rounds(active) WHERE active = 1;

-- Questions
CREATE TABLE IF NOT EXISTS questions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    round_id INTEGER NOT NULL REFERENCES rounds(id),
    text TEXT NOT NULL,
    correct_answer TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_questions_round_id ON questions(round_id);

-- Answers
CREATE TABLE IF NOT EXISTS answers (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    question_id INTEGER NOT NULL REFERENCES questions(id),
    user_id INTEGER NOT NULL REFERENCES users(id),
    answer_text TEXT NOT NULL,
    is_correct INTEGER NOT NULL,
    UNIQUE (user_id, question_id)
);

CREATE INDEX IF NOT EXISTS idx_answers_question_id ON answers(question_id);
CREATE INDEX IF NOT EXISTS idx_answers_user_id ON answers(user_id);
`

const schemaPostgres = `
-- Users
CREATE TABLE IF NOT EXISTS users (
    id BIGSERIAL PRIMARY KEY,
    username TEXT UNIQUE NOT NULL,
    password_hash TEXT NOT NULL,
    total_points INTEGER NOT NULL DEFAULT 0
);

-- Rounds
CREATE TABLE IF NOT EXISTS rounds (
    id BIGSERIAL PRIMARY KEY,
    week_number INTEGER NOT NULL,
    author_user_id BIGINT NOT NULL REFERENCES users(id),
    active INTEGER NOT NULL DEFAULT 1
);

-- At most one round may be active
CREATE UNIQUE INDEX IF NOT EXISTS idx_rounds_single_active ON rounds(active) WHERE active = 1;

-- Questions
CREATE TABLE IF NOT EXISTS questions (
    id BIGSERIAL PRIMARY KEY,
    round_id BIGINT NOT NULL REFERENCES rounds(id),
    text TEXT NOT NULL,
    correct_answer TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_questions_round_id ON questions(round_id);

-- Answers
CREATE TABLE IF NOT EXISTS answers (
    id BIGSERIAL PRIMARY KEY,
    question_id BIGINT NOT NULL REFERENCES questions(id),
    user_id BIGINT NOT NULL REFERENCES users(id),
    answer_text TEXT NOT NULL,
    is_correct INTEGER NOT NULL,
    UNIQUE (user_id, question_id)
);

CREATE INDEX IF NOT EXISTS idx_answers_question_id ON answers(question_id);
CREATE INDEX IF NOT EXISTS idx_answers_user_id ON answers(user_id);
`
