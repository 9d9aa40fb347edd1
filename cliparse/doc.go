// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3410)
  - DatabaseURL: postgres DSN or sqlite file path (sqlite defaults to trivia.db)
  - DatabaseType: "sqlite" (default) or "postgres"
  - SessionSecret: Secret for session cookie signing (required)
  - SeedDemo: Seed the five demo accounts at startup

# CLI Flags

	-p               Server port
	-d               Database URL
	-t               Database type
	-session-secret  Session signing secret
	-seed            Seed demo accounts

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	SESSION_SECRET → -session-secret
	SEED_DEMO      → -seed (set to "true")

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing:

  - SESSION_SECRET must be provided (the signing key is an explicit startup
    parameter, never a baked-in constant)
  - DATABASE_URL must be provided for postgres
  - DATABASE_TYPE must be sqlite or postgres
*/
package cliparse
