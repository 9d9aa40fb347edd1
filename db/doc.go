// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db owns schema creation and demo seeding.

# Schema

CreateSchema builds the four tables (users, rounds, questions, answers) for
the configured driver:

	err := db.CreateSchema(conn, cfg.DatabaseType)

Two invariants that used to be application conventions are enforced by the
storage layer itself:

  - a partial unique index on rounds(active) WHERE active = 1 limits the
    system to a single active round
  - UNIQUE (user_id, question_id) on answers turns a duplicate submission
    race into a rejected write

The sqlite and postgres schemas differ only in id column types.

# Seeding

SeedDemoUsers creates the five demo accounts (alice, bob, carol, dave, eve)
sharing the password "test". Inserts use ON CONFLICT DO NOTHING, so the
routine is idempotent.
*/
package db
