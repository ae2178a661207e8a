// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /schedules", middleware.WithLogging(h.ListSchedules))

One line is logged per request with method, path, status, client IP and
duration_ms. Requests that end in a 5xx are logged at warn level.

# CORS

	handler := middleware.CORS(cfg.CORSOrigin)(mux)

An empty or "*" origin echoes the caller's Origin header. Preflight requests
are answered with 204 without reaching the mux.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")

ParseJSONBody rejects unknown fields so a misspelled answer key is reported
instead of silently ignored.
*/
package middleware
