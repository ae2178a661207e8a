// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/quickly-schedule/cliparse"
	"github.com/danielhkuo/quickly-schedule/form"
	"github.com/danielhkuo/quickly-schedule/handlers"
	"github.com/danielhkuo/quickly-schedule/middleware"
	"github.com/danielhkuo/quickly-schedule/store"
)

func NewRouter(s store.Store, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	noteMode := form.NotePerDate
	if cfg.NoteMode == cliparse.NotesPerSlot {
		noteMode = form.NotePerSlot
	}

	// Initialize handlers
	scheduleHandler := handlers.NewScheduleHandler(s)
	responseHandler := handlers.NewResponseHandler(s, noteMode)
	participantHandler := handlers.NewParticipantHandler(s)
	weekendHandler := handlers.NewWeekendHandler(s)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Schedules and aggregate view
	mux.HandleFunc("GET /schedules", middleware.WithLogging(scheduleHandler.ListSchedules))
	mux.HandleFunc("GET /summary", middleware.WithLogging(scheduleHandler.GetSummary))
	mux.HandleFunc("GET /schedules/{key}/summary", middleware.WithLogging(scheduleHandler.GetScheduleSummary))

	// Answer entry
	mux.HandleFunc("GET /schedules/{key}/draft", middleware.WithLogging(responseHandler.GetDraft))
	mux.HandleFunc("PUT /schedules/{key}/responses/{participant_id}", middleware.WithLogging(responseHandler.SaveResponses))

	// Participant registry
	mux.HandleFunc("GET /participants", middleware.WithLogging(participantHandler.ListParticipants))
	mux.HandleFunc("POST /participants", middleware.WithLogging(participantHandler.AddParticipant))
	mux.HandleFunc("PUT /participants", middleware.WithLogging(participantHandler.UpsertParticipant))
	mux.HandleFunc("DELETE /participants/{id}", middleware.WithLogging(participantHandler.RemoveParticipant))

	// Weekend flow
	mux.HandleFunc("GET /weekends/{month}", middleware.WithLogging(weekendHandler.GetForm))
	mux.HandleFunc("POST /weekends/{month}/responses", middleware.WithLogging(weekendHandler.Submit))
	mux.HandleFunc("GET /weekends/{month}/summary", middleware.WithLogging(weekendHandler.GetSummary))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("quickly-schedule API v1"))
	})

	return mux
}
