// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/danielhkuo/quickly-schedule/form"
	"github.com/danielhkuo/quickly-schedule/middleware"
	"github.com/danielhkuo/quickly-schedule/models"
	"github.com/danielhkuo/quickly-schedule/store"
	"github.com/danielhkuo/quickly-schedule/summary"
)

type ResponseHandler struct {
	store    store.Store
	noteMode form.NoteMode
}

func NewResponseHandler(s store.Store, noteMode form.NoteMode) *ResponseHandler {
	return &ResponseHandler{store: s, noteMode: noteMode}
}

// GetDraft handles GET /schedules/{key}/draft?participant_id=ID
func (h *ResponseHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	participantID := r.URL.Query().Get("participant_id")
	if participantID == "" {
		writeError(w, form.ErrNoParticipant, "")
		return
	}

	sch, columns, participant, err := h.load(r.Context(), r.PathValue("key"), participantID)
	if err != nil {
		writeError(w, err, "Failed to load schedule")
		return
	}

	ctrl := form.New(h.store, sch.ID, columns, h.noteMode)
	if err := ctrl.SelectParticipant(r.Context(), participant.ID); err != nil {
		writeError(w, err, "Failed to load existing responses")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.DraftResponse{
		Schedule:    sch,
		Participant: participant,
		Dates:       columns,
		Answers:     ctrl.Draft(),
	})
}

// SaveResponses handles PUT /schedules/{key}/responses/{participant_id}.
// The answers are applied on top of the participant's seeded draft and every
// date/slot is saved in one batch.
func (h *ResponseHandler) SaveResponses(w http.ResponseWriter, r *http.Request) {
	var req models.SaveResponsesRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	ctx := r.Context()
	key := r.PathValue("key")

	sch, columns, participant, err := h.load(ctx, key, r.PathValue("participant_id"))
	if err != nil {
		writeError(w, err, "Failed to load schedule")
		return
	}

	ctrl := form.New(h.store, sch.ID, columns, h.noteMode)
	if err := ctrl.SelectParticipant(ctx, participant.ID); err != nil {
		writeError(w, err, "Failed to load existing responses")
		return
	}
	if err := ctrl.Apply(req.Answers); err != nil {
		writeError(w, err, "Failed to apply answers")
		return
	}

	saved, err := ctrl.Save(ctx)
	if err != nil {
		writeError(w, err, "Failed to save responses")
		return
	}

	slog.Info("responses saved", "schedule", sch.Key, "participant_id", participant.ID, "rows", saved)

	middleware.JSONResponse(w, http.StatusOK, models.SaveResponsesResponse{
		Saved: saved,
		Next:  "/?month=" + url.QueryEscape(key),
	})
}

// load resolves the schedule, its date columns and the participant
func (h *ResponseHandler) load(ctx context.Context, key, participantID string) (models.Schedule, []models.DateColumn, models.Participant, error) {
	sch, err := h.store.GetSchedule(ctx, key)
	if err != nil {
		return models.Schedule{}, nil, models.Participant{}, err
	}

	dates, err := h.store.ListDates(ctx, sch.ID)
	if err != nil {
		return models.Schedule{}, nil, models.Participant{}, err
	}

	participant, err := h.store.GetParticipant(ctx, participantID)
	if err != nil {
		return models.Schedule{}, nil, models.Participant{}, err
	}

	return sch, summary.Columns(dates), participant, nil
}
