// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/quickly-schedule/form"
	"github.com/danielhkuo/quickly-schedule/models"
	"github.com/danielhkuo/quickly-schedule/testutil"
)

func saveRequest(key, participantID string, body interface{}) *http.Request {
	req := testutil.MakeRequest("PUT", "/schedules/"+key+"/responses/"+participantID, body, nil)
	req.SetPathValue("key", key)
	req.SetPathValue("participant_id", participantID)
	return req
}

func draftRequest(key, participantID string) *http.Request {
	req := testutil.MakeRequest("GET", "/schedules/"+key+"/draft?participant_id="+participantID, nil, nil)
	req.SetPathValue("key", key)
	return req
}

func TestGetDraft(t *testing.T) {
	conn, s := setupStore(t)
	h := NewResponseHandler(s, form.NotePerDate)

	scheduleID := testutil.CreateTestSchedule(t, conn, "2026-01", "January", "2026-01-10", "2026-01-11")
	alice := testutil.CreateTestParticipant(t, conn, "Alice")
	testutil.SaveTestResponse(t, conn, scheduleID, alice, "2026-01-11", models.SlotAM, models.StatusNo, "busy")

	w := httptest.NewRecorder()
	h.GetDraft(w, draftRequest("2026-01", alice))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.DraftResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.Participant.Name != "Alice" {
		t.Errorf("Expected Alice, got %+v", resp.Participant)
	}
	if d := resp.Answers["2026-01-10"]; d.AM != models.StatusYes || d.PM != models.StatusYes {
		t.Errorf("Expected defaults, got %+v", d)
	}
	if d := resp.Answers["2026-01-11"]; d.AM != models.StatusNo || d.Note != "busy" {
		t.Errorf("Expected saved answer, got %+v", d)
	}

	if n := testutil.CountRows(t, conn, "SELECT COUNT(*) FROM schedule_response"); n != 1 {
		t.Errorf("Loading a draft must not write defaults, got %d rows", n)
	}
}

func TestGetDraft_Errors(t *testing.T) {
	conn, s := setupStore(t)
	h := NewResponseHandler(s, form.NotePerDate)

	testutil.CreateTestSchedule(t, conn, "2026-01", "January", "2026-01-10")
	alice := testutil.CreateTestParticipant(t, conn, "Alice")

	tests := []struct {
		name   string
		req    *http.Request
		status int
	}{
		{"no participant", draftRequest("2026-01", ""), http.StatusBadRequest},
		{"unknown participant", draftRequest("2026-01", "ghost"), http.StatusNotFound},
		{"unknown schedule", draftRequest("1999-01", alice), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.GetDraft(w, tt.req)
			testutil.AssertStatus(t, w, tt.status)
		})
	}
}

func TestSaveResponses_Defaults(t *testing.T) {
	conn, s := setupStore(t)
	h := NewResponseHandler(s, form.NotePerDate)

	testutil.CreateTestSchedule(t, conn, "2026-01", "January", "2026-01-10", "2026-01-11", "2026-01-17")
	alice := testutil.CreateTestParticipant(t, conn, "Alice")

	w := httptest.NewRecorder()
	h.SaveResponses(w, saveRequest("2026-01", alice, models.SaveResponsesRequest{}))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.SaveResponsesResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Saved != 6 {
		t.Errorf("Expected 6 rows, got %d", resp.Saved)
	}
	if resp.Next != "/?month=2026-01" {
		t.Errorf("Expected next to point at the summary, got %q", resp.Next)
	}

	if n := testutil.CountRows(t, conn, "SELECT COUNT(*) FROM schedule_response WHERE status = 'yes'"); n != 6 {
		t.Errorf("Expected 6 yes rows, got %d", n)
	}
}

func TestSaveResponses_NoteOnMorningRow(t *testing.T) {
	conn, s := setupStore(t)
	h := NewResponseHandler(s, form.NotePerDate)

	scheduleID := testutil.CreateTestSchedule(t, conn, "2026-01", "January", "2026-01-10")
	alice := testutil.CreateTestParticipant(t, conn, "Alice")

	body := models.SaveResponsesRequest{Answers: map[string]models.DayAnswer{
		"2026-01-10": {AM: models.StatusMaybe, PM: models.StatusNo, Note: strPtr("  leaving at 3  ")},
	}}
	w := httptest.NewRecorder()
	h.SaveResponses(w, saveRequest("2026-01", alice, body))
	testutil.AssertStatus(t, w, http.StatusOK)

	rows, err := s.ListResponses(t.Context(), scheduleID, alice)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	am, pm := rows[0], rows[1]
	if am.Status != models.StatusMaybe || am.Note == nil || *am.Note != "leaving at 3" {
		t.Errorf("unexpected am row: %+v", am)
	}
	if pm.Status != models.StatusNo || pm.Note != nil {
		t.Errorf("unexpected pm row: %+v", pm)
	}

	// A later save that only touches pm keeps the am answer and note
	body = models.SaveResponsesRequest{Answers: map[string]models.DayAnswer{
		"2026-01-10": {PM: models.StatusYes},
	}}
	w = httptest.NewRecorder()
	h.SaveResponses(w, saveRequest("2026-01", alice, body))
	testutil.AssertStatus(t, w, http.StatusOK)

	rows, err = s.ListResponses(t.Context(), scheduleID, alice)
	if err != nil {
		t.Fatal(err)
	}
	if rows[0].Status != models.StatusMaybe || rows[0].Note == nil || rows[1].Status != models.StatusYes {
		t.Errorf("unexpected rows after second save: %+v", rows)
	}
}

func TestSaveResponses_Validation(t *testing.T) {
	conn, s := setupStore(t)
	h := NewResponseHandler(s, form.NotePerDate)

	testutil.CreateTestSchedule(t, conn, "2026-01", "January", "2026-01-10")
	alice := testutil.CreateTestParticipant(t, conn, "Alice")

	tests := []struct {
		name   string
		req    *http.Request
		status int
	}{
		{
			"unknown date",
			saveRequest("2026-01", alice, models.SaveResponsesRequest{Answers: map[string]models.DayAnswer{"2026-01-31": {AM: models.StatusNo}}}),
			http.StatusBadRequest,
		},
		{
			"invalid status",
			saveRequest("2026-01", alice, map[string]interface{}{"answers": map[string]interface{}{"2026-01-10": map[string]string{"am": "perhaps"}}}),
			http.StatusBadRequest,
		},
		{
			"pm note with per-date notes",
			saveRequest("2026-01", alice, models.SaveResponsesRequest{Answers: map[string]models.DayAnswer{"2026-01-10": {PMNote: strPtr("x")}}}),
			http.StatusBadRequest,
		},
		{
			"unknown participant",
			saveRequest("2026-01", "ghost", models.SaveResponsesRequest{}),
			http.StatusNotFound,
		},
		{
			"unknown schedule",
			saveRequest("1999-01", alice, models.SaveResponsesRequest{}),
			http.StatusNotFound,
		},
		{
			"unknown field",
			saveRequest("2026-01", alice, map[string]string{"participant": "alice"}),
			http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.SaveResponses(w, tt.req)
			testutil.AssertStatus(t, w, tt.status)
		})
	}

	if n := testutil.CountRows(t, conn, "SELECT COUNT(*) FROM schedule_response"); n != 0 {
		t.Errorf("Rejected saves must not write, got %d rows", n)
	}
}

func TestSaveResponses_PerSlotNotes(t *testing.T) {
	conn, s := setupStore(t)
	h := NewResponseHandler(s, form.NotePerSlot)

	scheduleID := testutil.CreateTestSchedule(t, conn, "2026-01", "January", "2026-01-10")
	alice := testutil.CreateTestParticipant(t, conn, "Alice")

	body := models.SaveResponsesRequest{Answers: map[string]models.DayAnswer{
		"2026-01-10": {Note: strPtr("am only"), PMNote: strPtr("pm only")},
	}}
	w := httptest.NewRecorder()
	h.SaveResponses(w, saveRequest("2026-01", alice, body))
	testutil.AssertStatus(t, w, http.StatusOK)

	rows, err := s.ListResponses(t.Context(), scheduleID, alice)
	if err != nil {
		t.Fatal(err)
	}
	if *rows[0].Note != "am only" || *rows[1].Note != "pm only" {
		t.Errorf("unexpected notes: %v / %v", *rows[0].Note, *rows[1].Note)
	}
}
