// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/quickly-schedule/models"
)

func TestWithLogging_PreservesResponse(t *testing.T) {
	testCases := []struct {
		name       string
		statusCode int
		body       string
	}{
		{"OK", http.StatusOK, "ok"},
		{"Created", http.StatusCreated, `{"id":"123"}`},
		{"BadRequest", http.StatusBadRequest, `{"error":"bad request"}`},
		{"NotFound", http.StatusNotFound, "not found"},
		{"InternalError", http.StatusInternalServerError, "error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.statusCode)
				w.Write([]byte(tc.body))
			})

			req := httptest.NewRequest("PUT", "/schedules/2026-01/responses/p1", nil)
			w := httptest.NewRecorder()

			handler(w, req)

			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}
			if w.Body.String() != tc.body {
				t.Errorf("Expected body '%s', got '%s'", tc.body, w.Body.String())
			}
		})
	}
}

func TestWithLogging_ImplicitOK(t *testing.T) {
	var rec *statusRecorder
	handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {
		rec = w.(*statusRecorder)
		w.Write([]byte("body only"))
	})

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest("GET", "/schedules", nil))

	if rec == nil || rec.status != http.StatusOK {
		t.Errorf("Expected recorded status 200, got %+v", rec)
	}
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
}

func TestJSONResponse(t *testing.T) {
	testCases := []struct {
		name       string
		statusCode int
		data       interface{}
		expected   string
	}{
		{
			name:       "save result",
			statusCode: http.StatusOK,
			data:       models.SaveResponsesResponse{Saved: 4, Next: "/?month=2026-01"},
			expected:   `{"saved":4,"next":"/?month=2026-01"}`,
		},
		{
			name:       "created participant",
			statusCode: http.StatusCreated,
			data:       models.Participant{ID: "p1", Name: "Alice"},
			expected:   `{"id":"p1","name":"Alice"}`,
		},
		{
			name:       "unanswered cell",
			statusCode: http.StatusOK,
			data:       models.Cell{Mark: "-"},
			expected:   `{"mark":"-"}`,
		},
		{
			name:       "error response",
			statusCode: http.StatusBadRequest,
			data:       models.ErrorResponse{Error: "Bad Request", Message: "name is required"},
			expected:   `{"error":"Bad Request","message":"name is required"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			JSONResponse(w, tc.statusCode, tc.data)

			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Expected Content-Type 'application/json', got '%s'", ct)
			}

			body := strings.TrimSpace(w.Body.String())
			if body != tc.expected {
				t.Errorf("Expected body '%s', got '%s'", tc.expected, body)
			}
		})
	}
}

func TestErrorResponse(t *testing.T) {
	testCases := []struct {
		statusCode    int
		message       string
		expectedError string
	}{
		{http.StatusBadRequest, "no participant selected", "Bad Request"},
		{http.StatusNotFound, "schedule not found", "Not Found"},
		{http.StatusConflict, "participant already exists", "Conflict"},
		{http.StatusInternalServerError, "failed to save responses", "Internal Server Error"},
	}

	for _, tc := range testCases {
		t.Run(tc.expectedError, func(t *testing.T) {
			w := httptest.NewRecorder()

			ErrorResponse(w, tc.statusCode, tc.message)

			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}

			var resp models.ErrorResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("Failed to decode error response: %v", err)
			}
			if resp.Error != tc.expectedError {
				t.Errorf("Expected error '%s', got '%s'", tc.expectedError, resp.Error)
			}
			if resp.Message != tc.message {
				t.Errorf("Expected message '%s', got '%s'", tc.message, resp.Message)
			}
		})
	}
}

func TestParseJSONBody(t *testing.T) {
	t.Run("valid JSON", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/participants", strings.NewReader(`{"name":"Alice"}`))

		var parsed models.AddParticipantRequest
		if err := ParseJSONBody(req, &parsed); err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if parsed.Name != "Alice" {
			t.Errorf("Expected name 'Alice', got '%s'", parsed.Name)
		}
	})

	t.Run("nested answers", func(t *testing.T) {
		body := `{"answers":{"2026-01-10":{"am":"no","note":"late"}}}`
		req := httptest.NewRequest("PUT", "/", strings.NewReader(body))

		var parsed models.SaveResponsesRequest
		if err := ParseJSONBody(req, &parsed); err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		a := parsed.Answers["2026-01-10"]
		if a.AM != models.StatusNo || a.PM != "" || a.Note == nil || *a.Note != "late" {
			t.Errorf("unexpected answer: %+v", a)
		}
	})

	rejected := []struct {
		name string
		body string
	}{
		{"invalid JSON", `{invalid json}`},
		{"empty body", ``},
		{"unknown field", `{"name":"Bob","nickname":"B"}`},
		{"trailing data", `{"name":"Bob"} {"name":"Carol"}`},
	}
	for _, tc := range rejected {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/", strings.NewReader(tc.body))
			var parsed models.AddParticipantRequest
			if err := ParseJSONBody(req, &parsed); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("handled"))
	})

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest("OPTIONS", "/participants", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()

		CORS("")(next).ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("Expected status 204, got %d", w.Code)
		}
		if w.Body.String() != "" {
			t.Errorf("Expected empty body for preflight, got '%s'", w.Body.String())
		}
		if w.Header().Get("Access-Control-Allow-Origin") != "http://localhost:3000" {
			t.Error("Expected Access-Control-Allow-Origin to match request origin")
		}
		methods := w.Header().Get("Access-Control-Allow-Methods")
		for _, m := range []string{"GET", "POST", "PUT", "DELETE"} {
			if !strings.Contains(methods, m) {
				t.Errorf("Expected %s in allowed methods", m)
			}
		}
	})

	t.Run("configured origin", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/schedules", nil)
		req.Header.Set("Origin", "https://evil.example")
		w := httptest.NewRecorder()

		CORS("https://schedule.example")(next).ServeHTTP(w, req)

		if w.Body.String() != "handled" {
			t.Error("Expected next handler to be called")
		}
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://schedule.example" {
			t.Errorf("Expected configured origin, got %q", got)
		}
	})

	t.Run("no origin defaults to wildcard", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/schedules", nil)
		w := httptest.NewRecorder()

		CORS("*")(next).ServeHTTP(w, req)

		if w.Header().Get("Access-Control-Allow-Origin") != "*" {
			t.Error("Expected Access-Control-Allow-Origin to default to '*'")
		}
	})
}

func TestGetClientIP(t *testing.T) {
	testCases := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		expected   string
	}{
		{"remote addr with port", "192.168.1.10:52344", nil, "192.168.1.10"},
		{"remote addr without port", "192.168.1.10", nil, "192.168.1.10"},
		{"forwarded chain", "10.0.0.1:80", map[string]string{"X-Forwarded-For": "203.0.113.5, 10.0.0.1"}, "203.0.113.5"},
		{"real ip", "10.0.0.1:80", map[string]string{"X-Real-IP": "198.51.100.7"}, "198.51.100.7"},
		{"forwarded wins over real ip", "10.0.0.1:80", map[string]string{"X-Forwarded-For": "203.0.113.5", "X-Real-IP": "198.51.100.7"}, "203.0.113.5"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tc.remoteAddr
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}

			if got := GetClientIP(req); got != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, got)
			}
		})
	}
}
