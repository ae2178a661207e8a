// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

  - Schedule: one poll instance (key is usually a month, e.g. 2026-01)
  - ScheduleDate: candidate date with optional label and sort order
  - Participant: global registry entry, unique by name
  - Response: (schedule, participant, date, slot) -> status + note
  - WeekendResponse: (participant, date) -> status + note

# Aggregate Types

The pivot package fills these from flat response rows:

  - Matrix: participant_id -> date -> slot -> Cell
  - Counts: date -> slot -> Count (yes, maybe)
  - DailyMatrix: participant_id -> date -> Cell (weekend flow)
  - Highlight: am / pm / date emphasis flags

# Constants

Status values:

	StatusYes   = "yes"
	StatusMaybe = "maybe"
	StatusNo    = "no"

Slots:

	SlotAM = "am"
	SlotPM = "pm"

# Request Types

  - AddParticipantRequest: name
  - SaveResponsesRequest: answers keyed by date
  - WeekendSubmitRequest: name, answers keyed by date

# Response Types

  - ListSchedulesResponse, ListParticipantsResponse
  - SummaryResponse: selected schedule, grid data, counts, highlights
  - DraftResponse: seeded input form for one participant
  - SaveResponsesResponse: saved row count and next location
  - WeekendFormResponse, WeekendSubmitResponse, WeekendSummaryResponse
  - ErrorResponse: error, message
*/
package models
