// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-schedule/form"
	"github.com/danielhkuo/quickly-schedule/middleware"
	"github.com/danielhkuo/quickly-schedule/store"
	"github.com/danielhkuo/quickly-schedule/summary"
	"github.com/danielhkuo/quickly-schedule/weekend"
)

// writeError maps domain errors to HTTP statuses. Anything unrecognized is a
// store failure: it is logged and reported with the plain message.
func writeError(w http.ResponseWriter, err error, message string) {
	switch {
	case errors.Is(err, store.ErrNotFound), errors.Is(err, summary.ErrNoSchedules):
		middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
	case errors.Is(err, store.ErrDuplicate):
		middleware.ErrorResponse(w, http.StatusConflict, err.Error())
	case errors.Is(err, form.ErrNoParticipant),
		errors.Is(err, form.ErrUnknownDate),
		errors.Is(err, form.ErrInvalidStatus),
		errors.Is(err, form.ErrInvalidSlot),
		errors.Is(err, form.ErrSlotNote),
		errors.Is(err, weekend.ErrInvalidMonth),
		errors.Is(err, weekend.ErrNameRequired),
		errors.Is(err, weekend.ErrNoAnswers):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	default:
		slog.Error(message, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, message)
	}
}
