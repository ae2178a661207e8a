// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/quickly-schedule/cliparse"
)

// Open connects to the configured database and verifies the connection.
// SQLite connections get foreign keys and a busy timeout turned on.
func Open(dbType, url string) (*sql.DB, error) {
	driver := "sqlite"
	dsn := url

	switch dbType {
	case cliparse.DatabasePostgres:
		driver = "postgres"
	case cliparse.DatabaseSQLite, "":
		dsn = sqliteDSN(url)
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return conn, nil
}

func sqliteDSN(path string) string {
	if strings.Contains(path, "_pragma=") {
		return path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
// The DDL is shared by PostgreSQL and SQLite, so dates are stored as ISO text.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Schedules (one poll instance, usually one month)
CREATE TABLE IF NOT EXISTS schedule (
    id TEXT PRIMARY KEY,
    key TEXT NOT NULL UNIQUE,
    title TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

-- Candidate dates
CREATE TABLE IF NOT EXISTS schedule_date (
    schedule_id TEXT NOT NULL REFERENCES schedule(id) ON DELETE CASCADE,
    date TEXT NOT NULL,
    label TEXT,
    sort_order INTEGER,
    PRIMARY KEY (schedule_id, date)
);

CREATE INDEX IF NOT EXISTS idx_schedule_date_schedule_id ON schedule_date(schedule_id);

-- Participants (global, unique by name)
CREATE TABLE IF NOT EXISTS participant (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

-- Responses
CREATE TABLE IF NOT EXISTS schedule_response (
    schedule_id TEXT NOT NULL REFERENCES schedule(id) ON DELETE CASCADE,
    participant_id TEXT NOT NULL REFERENCES participant(id) ON DELETE CASCADE,
    date TEXT NOT NULL,
    time_slot TEXT NOT NULL CHECK (time_slot IN ('am', 'pm')),
    status TEXT NOT NULL CHECK (status IN ('yes', 'maybe', 'no')),
    note TEXT,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    PRIMARY KEY (schedule_id, participant_id, date, time_slot)
);

CREATE INDEX IF NOT EXISTS idx_schedule_response_schedule_id ON schedule_response(schedule_id);

-- Weekend responses (date only, no slot)
CREATE TABLE IF NOT EXISTS weekend_response (
    participant_id TEXT NOT NULL REFERENCES participant(id) ON DELETE CASCADE,
    date TEXT NOT NULL,
    status TEXT NOT NULL CHECK (status IN ('yes', 'maybe', 'no')),
    note TEXT,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    PRIMARY KEY (participant_id, date)
);

CREATE INDEX IF NOT EXISTS idx_weekend_response_date ON weekend_response(date);
`
