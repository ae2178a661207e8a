// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# CLI Flags

	-p            Server port (default 3318)
	-d            Database URL (postgres) or file path (sqlite)
	-t            Database type: sqlite (default) or postgres
	-seed         YAML fixture loaded at startup
	-cors-origin  Allowed CORS origin
	-notes        Note convention: date (default) or slot
	-env          Env file read before the environment (default .env)

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	SEED_FILE     → -seed
	CORS_ORIGIN   → -cors-origin
	NOTE_MODE     → -notes

CLI flags take precedence over environment variables, and variables already
set in the environment take precedence over the env file. A missing env file
is ignored.

# Validation

ParseFlags returns an error for an unknown database type or note mode, an
unparsable PORT, or postgres without a database URL. SQLite defaults to
quickly-schedule.db in the working directory.
*/
package cliparse
