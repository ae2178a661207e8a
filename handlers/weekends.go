// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-schedule/middleware"
	"github.com/danielhkuo/quickly-schedule/models"
	"github.com/danielhkuo/quickly-schedule/pivot"
	"github.com/danielhkuo/quickly-schedule/store"
	"github.com/danielhkuo/quickly-schedule/weekend"
)

type WeekendHandler struct {
	store store.Store
}

func NewWeekendHandler(s store.Store) *WeekendHandler {
	return &WeekendHandler{store: s}
}

// GetForm handles GET /weekends/{month}
func (h *WeekendHandler) GetForm(w http.ResponseWriter, r *http.Request) {
	m, err := weekend.ParseMonth(r.PathValue("month"))
	if err != nil {
		writeError(w, err, "")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.WeekendFormResponse{
		Month: m.String(),
		Dates: weekend.Dates(m.Year, m.Month),
	})
}

// Submit handles POST /weekends/{month}/responses.
// The participant is registered by name if needed; only answered dates are stored.
func (h *WeekendHandler) Submit(w http.ResponseWriter, r *http.Request) {
	m, err := weekend.ParseMonth(r.PathValue("month"))
	if err != nil {
		writeError(w, err, "")
		return
	}

	var req models.WeekendSubmitRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	name, err := weekend.Name(req.Name)
	if err != nil {
		writeError(w, err, "")
		return
	}

	dates := weekend.Dates(m.Year, m.Month)
	// Validate before touching the registry so an empty submission creates nothing
	if _, err := weekend.Rows("", dates, req.Answers); err != nil {
		writeError(w, err, "")
		return
	}

	ctx := r.Context()
	p, err := h.store.UpsertParticipant(ctx, name)
	if err != nil {
		writeError(w, err, "Failed to save participant")
		return
	}

	rows, err := weekend.Rows(p.ID, dates, req.Answers)
	if err != nil {
		writeError(w, err, "")
		return
	}
	if err := h.store.UpsertWeekendResponses(ctx, rows); err != nil {
		writeError(w, err, "Failed to save responses")
		return
	}

	slog.Info("weekend responses saved", "month", m.String(), "participant_id", p.ID, "rows", len(rows))

	middleware.JSONResponse(w, http.StatusOK, models.WeekendSubmitResponse{
		ParticipantID: p.ID,
		Saved:         len(rows),
		Message:       "保存しました！",
	})
}

// GetSummary handles GET /weekends/{month}/summary
func (h *WeekendHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	m, err := weekend.ParseMonth(r.PathValue("month"))
	if err != nil {
		writeError(w, err, "")
		return
	}

	ctx := r.Context()
	participants, err := h.store.ListParticipants(ctx)
	if err != nil {
		writeError(w, err, "Failed to list participants")
		return
	}

	from, to := m.Range()
	responses, err := h.store.ListWeekendResponses(ctx, from, to)
	if err != nil {
		writeError(w, err, "Failed to load responses")
		return
	}

	dates := weekend.Dates(m.Year, m.Month)
	middleware.JSONResponse(w, http.StatusOK, models.WeekendSummaryResponse{
		Month:        m.String(),
		Dates:        dates,
		Participants: participants,
		Matrix:       pivot.BuildDaily(participants, dates, responses),
	})
}
