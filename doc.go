// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Quickly Schedule API server.

Quickly Schedule is a group attendance poll. Organizers publish candidate
dates for a month, participants answer ○ (yes), △ (maybe) or × (no) for the
morning and afternoon of each date, and the summary highlights every slot
with at least three yes votes.

# Starting the Server

With no configuration the server listens on 3318 and keeps its data in
quickly-schedule.db:

	go run .

PostgreSQL instead:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .

Load schedules and participants from a fixture at startup:

	go run . -seed schedules.yaml

# Configuration

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - DATABASE_URL (-d): connection string or SQLite file path
  - SEED_FILE (-seed): YAML fixture
  - CORS_ORIGIN (-cors-origin): allowed origin
  - NOTE_MODE (-notes): date (default) or slot

Values may also come from a .env file (-env).

# Architecture

  - handlers: HTTP request handlers (summary, answers, participants, weekends)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - store: Query surface over the database
  - pivot: Aggregate matrix, counts and highlight rule
  - form: Draft answers for one participant
  - summary: Schedule selection and concurrent detail load
  - weekend: Date-only weekend flow
  - seed: YAML fixtures
  - models: Domain and request/response types
  - db: Connection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
