// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/quickly-schedule/middleware"
	"github.com/danielhkuo/quickly-schedule/models"
	"github.com/danielhkuo/quickly-schedule/store"
	"github.com/danielhkuo/quickly-schedule/summary"
)

type ScheduleHandler struct {
	store store.Store
}

func NewScheduleHandler(s store.Store) *ScheduleHandler {
	return &ScheduleHandler{store: s}
}

// ListSchedules handles GET /schedules
func (h *ScheduleHandler) ListSchedules(w http.ResponseWriter, r *http.Request) {
	schedules, err := h.store.ListSchedules(r.Context())
	if err != nil {
		writeError(w, err, "Failed to list schedules")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListSchedulesResponse{Schedules: schedules})
}

// GetSummary handles GET /summary?month=KEY.
// An absent or unknown month falls back to the newest schedule.
func (h *ScheduleHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	schedules, err := h.store.ListSchedules(ctx)
	if err != nil {
		writeError(w, err, "Failed to list schedules")
		return
	}

	selected, err := summary.Select(schedules, r.URL.Query().Get("month"))
	if err != nil {
		writeError(w, err, "Failed to select schedule")
		return
	}

	detail, err := summary.Load(ctx, h.store, selected)
	if err != nil {
		writeError(w, err, "Failed to load schedule")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, detail.Response(schedules))
}

// GetScheduleSummary handles GET /schedules/{key}/summary
func (h *ScheduleHandler) GetScheduleSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sch, err := h.store.GetSchedule(ctx, r.PathValue("key"))
	if err != nil {
		writeError(w, err, "Failed to load schedule")
		return
	}

	detail, err := summary.Load(ctx, h.store, sch)
	if err != nil {
		writeError(w, err, "Failed to load schedule")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, detail.Response(nil))
}
