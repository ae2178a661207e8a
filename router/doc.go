// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Quickly Schedule API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(store.NewSQLStore(db), cfg)

# Endpoints

Health:

	GET /health
	GET /

Schedules and aggregate view:

	GET /schedules                 - Schedule list, newest key first
	GET /summary?month=KEY         - Selected schedule's matrix, counts and highlights
	GET /schedules/{key}/summary   - Same, for an exact key

Answer entry:

	GET /schedules/{key}/draft?participant_id=ID    - Seeded draft
	PUT /schedules/{key}/responses/{participant_id} - Save all dates and slots

Participants:

	GET    /participants      - List by name
	POST   /participants      - Register (409 on a taken name)
	PUT    /participants      - Register or return the existing one
	DELETE /participants/{id} - Remove with their responses

Weekend flow:

	GET  /weekends/{month}           - Saturdays and Sundays of YYYY-MM
	POST /weekends/{month}/responses - Submit by name
	GET  /weekends/{month}/summary   - Participant × date matrix

cfg.NoteMode picks the note convention used by the answer-entry handlers.
*/
package router
