// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the query surface over the schedule database.

Store is the interface consumed by handlers, the form controller and the
summary loader. SQLStore implements it on database/sql and runs unchanged on
PostgreSQL (lib/pq) and SQLite (modernc.org/sqlite).

# Writes

Responses are only ever written through UpsertResponses and
UpsertWeekendResponses. Both run in a single transaction keyed by the natural
composite key, so a batch is applied completely or not at all and concurrent
saves of the same key resolve last-write-wins. Nothing here materializes a
default status: an absent row means the participant has not answered.

# Errors

	ErrNotFound   - schedule key or participant id does not exist
	ErrDuplicate  - AddParticipant with a name already registered

Both are wrapped with context and should be matched with errors.Is.
*/
package store
