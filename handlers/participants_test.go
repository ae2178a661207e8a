// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/quickly-schedule/models"
	"github.com/danielhkuo/quickly-schedule/testutil"
)

func TestAddParticipant(t *testing.T) {
	_, s := setupStore(t)
	h := NewParticipantHandler(s)

	tests := []struct {
		name   string
		body   interface{}
		status int
	}{
		{"valid", models.AddParticipantRequest{Name: "  Alice "}, http.StatusCreated},
		{"duplicate", models.AddParticipantRequest{Name: "Alice"}, http.StatusConflict},
		{"blank name", models.AddParticipantRequest{Name: "   "}, http.StatusBadRequest},
		{"missing name", map[string]string{}, http.StatusBadRequest},
		{"invalid JSON", nil, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.AddParticipant(w, testutil.MakeRequest("POST", "/participants", tt.body, nil))
			testutil.AssertStatus(t, w, tt.status)
		})
	}

	w := httptest.NewRecorder()
	h.ListParticipants(w, testutil.MakeRequest("GET", "/participants", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ListParticipantsResponse
	testutil.AssertJSON(t, w, &resp)
	if len(resp.Participants) != 1 || resp.Participants[0].Name != "Alice" {
		t.Errorf("Expected only trimmed Alice, got %+v", resp.Participants)
	}
}

func TestUpsertParticipant(t *testing.T) {
	conn, s := setupStore(t)
	h := NewParticipantHandler(s)

	existing := testutil.CreateTestParticipant(t, conn, "Bob")

	w := httptest.NewRecorder()
	h.UpsertParticipant(w, testutil.MakeRequest("PUT", "/participants", models.AddParticipantRequest{Name: "Bob"}, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var p models.Participant
	testutil.AssertJSON(t, w, &p)
	if p.ID != existing {
		t.Errorf("Expected existing id %s, got %s", existing, p.ID)
	}

	w = httptest.NewRecorder()
	h.UpsertParticipant(w, testutil.MakeRequest("PUT", "/participants", models.AddParticipantRequest{Name: "Carol"}, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	if n := testutil.CountRows(t, conn, "SELECT COUNT(*) FROM participant"); n != 2 {
		t.Errorf("Expected 2 participants, got %d", n)
	}
}

func TestRemoveParticipant(t *testing.T) {
	conn, s := setupStore(t)
	h := NewParticipantHandler(s)

	scheduleID := testutil.CreateTestSchedule(t, conn, "2026-01", "January", "2026-01-10")
	alice := testutil.CreateTestParticipant(t, conn, "Alice")
	testutil.SaveTestResponse(t, conn, scheduleID, alice, "2026-01-10", models.SlotAM, models.StatusYes, "")

	req := testutil.MakeRequest("DELETE", "/participants/"+alice, nil, nil)
	req.SetPathValue("id", alice)
	w := httptest.NewRecorder()
	h.RemoveParticipant(w, req)
	testutil.AssertStatus(t, w, http.StatusNoContent)

	if n := testutil.CountRows(t, conn, "SELECT COUNT(*) FROM schedule_response"); n != 0 {
		t.Errorf("Expected responses to cascade, got %d rows", n)
	}

	req = testutil.MakeRequest("DELETE", "/participants/"+alice, nil, nil)
	req.SetPathValue("id", alice)
	w = httptest.NewRecorder()
	h.RemoveParticipant(w, req)
	testutil.AssertStatus(t, w, http.StatusNotFound)
}
