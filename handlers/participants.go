// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/quickly-schedule/middleware"
	"github.com/danielhkuo/quickly-schedule/models"
	"github.com/danielhkuo/quickly-schedule/store"
)

type ParticipantHandler struct {
	store store.Store
}

func NewParticipantHandler(s store.Store) *ParticipantHandler {
	return &ParticipantHandler{store: s}
}

// ListParticipants handles GET /participants
func (h *ParticipantHandler) ListParticipants(w http.ResponseWriter, r *http.Request) {
	participants, err := h.store.ListParticipants(r.Context())
	if err != nil {
		writeError(w, err, "Failed to list participants")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListParticipantsResponse{Participants: participants})
}

// AddParticipant handles POST /participants
func (h *ParticipantHandler) AddParticipant(w http.ResponseWriter, r *http.Request) {
	name, ok := parseName(w, r)
	if !ok {
		return
	}

	p, err := h.store.AddParticipant(r.Context(), name)
	if err != nil {
		writeError(w, err, "Failed to add participant")
		return
	}

	slog.Info("participant added", "participant_id", p.ID, "name", p.Name)
	middleware.JSONResponse(w, http.StatusCreated, p)
}

// UpsertParticipant handles PUT /participants.
// Returns the existing participant when the name is already registered.
func (h *ParticipantHandler) UpsertParticipant(w http.ResponseWriter, r *http.Request) {
	name, ok := parseName(w, r)
	if !ok {
		return
	}

	p, err := h.store.UpsertParticipant(r.Context(), name)
	if err != nil {
		writeError(w, err, "Failed to save participant")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, p)
}

// RemoveParticipant handles DELETE /participants/{id}
func (h *ParticipantHandler) RemoveParticipant(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.store.RemoveParticipant(r.Context(), id); err != nil {
		writeError(w, err, "Failed to remove participant")
		return
	}

	slog.Info("participant removed", "participant_id", id)
	w.WriteHeader(http.StatusNoContent)
}

func parseName(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req models.AddParticipantRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return "", false
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return "", false
	}
	return name, true
}
