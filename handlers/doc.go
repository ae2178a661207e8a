// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Quickly Schedule API.

# Handler Types

Each handler is a struct over the store.Store interface:

  - ScheduleHandler: schedule list and aggregate summaries
  - ResponseHandler: answer drafts and saves for one participant
  - ParticipantHandler: the participant registry
  - WeekendHandler: the date-only weekend flow

Handlers are created via constructor functions:

	scheduleHandler := handlers.NewScheduleHandler(s)
	responseHandler := handlers.NewResponseHandler(s, form.NotePerDate)

# Summary

	GET /summary?month=KEY          → GetSummary (unknown or absent key picks the newest)
	GET /schedules/{key}/summary    → GetScheduleSummary (404 for an unknown key)

Both return the participant × date × slot matrix with ○ △ × - marks, the
per-slot yes/maybe counts and the highlight flags.

# Answer Entry

	GET /schedules/{key}/draft?participant_id=ID   → GetDraft
	PUT /schedules/{key}/responses/{participant_id} → SaveResponses

GetDraft never writes. SaveResponses seeds the participant's draft, applies
the submitted answers on top and upserts every date/slot in one batch, then
returns the summary URL to continue to.

# Errors

	store.ErrNotFound, summary.ErrNoSchedules → 404
	store.ErrDuplicate                        → 409
	form and weekend validation errors        → 400
	anything else                             → 500, logged
*/
package handlers
