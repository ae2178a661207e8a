// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections and schema creation.

# Connecting

Open picks the driver from the configured database type:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

PostgreSQL uses github.com/lib/pq; SQLite uses modernc.org/sqlite with
foreign keys, WAL and a busy timeout enabled through DSN pragmas.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The same DDL runs on both databases.

# Tables

  - schedule: poll instance keyed by month (unique key)
  - schedule_date: candidate dates with optional label and sort order
  - participant: global registry, unique by name
  - schedule_response: one row per (schedule, participant, date, slot)
  - weekend_response: one row per (participant, date)

# Relationships

	schedule 1──* schedule_date
	schedule 1──* schedule_response
	participant 1──* schedule_response
	participant 1──* weekend_response

All foreign keys use ON DELETE CASCADE.
*/
package db
