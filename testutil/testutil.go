// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/danielhkuo/quickly-schedule/cliparse"
	"github.com/danielhkuo/quickly-schedule/db"
	"github.com/danielhkuo/quickly-schedule/models"
)

// SetupTestDB creates a fresh SQLite database file with the full schema.
// The connection is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(cliparse.DatabaseSQLite, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseType: cliparse.DatabaseSQLite,
		DatabaseURL:  "test.db",
		NoteMode:     cliparse.NotesPerDate,
	}
}

// CreateTestSchedule inserts a schedule with the given dates (labels default to NULL)
// and returns its ID
func CreateTestSchedule(t *testing.T, conn *sql.DB, key, title string, dates ...string) string {
	t.Helper()

	scheduleID := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO schedule (id, key, title) VALUES ($1, $2, $3)
	`, scheduleID, key, title)
	if err != nil {
		t.Fatalf("Failed to create test schedule: %v", err)
	}

	for _, d := range dates {
		AddTestDate(t, conn, scheduleID, d, "", nil)
	}

	return scheduleID
}

// AddTestDate adds one candidate date; an empty label is stored as NULL
func AddTestDate(t *testing.T, conn *sql.DB, scheduleID, date, label string, sortOrder *int) {
	t.Helper()

	var l sql.NullString
	if label != "" {
		l = sql.NullString{String: label, Valid: true}
	}
	var so sql.NullInt64
	if sortOrder != nil {
		so = sql.NullInt64{Int64: int64(*sortOrder), Valid: true}
	}

	_, err := conn.Exec(`
		INSERT INTO schedule_date (schedule_id, date, label, sort_order)
		VALUES ($1, $2, $3, $4)
	`, scheduleID, date, l, so)
	if err != nil {
		t.Fatalf("Failed to create test date: %v", err)
	}
}

// CreateTestParticipant registers a participant and returns its ID
func CreateTestParticipant(t *testing.T, conn *sql.DB, name string) string {
	t.Helper()

	participantID := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO participant (id, name) VALUES ($1, $2)
	`, participantID, name)
	if err != nil {
		t.Fatalf("Failed to create test participant: %v", err)
	}

	return participantID
}

// SaveTestResponse stores one response row; an empty note is stored as NULL
func SaveTestResponse(t *testing.T, conn *sql.DB, scheduleID, participantID, date string, slot models.Slot, status models.Status, note string) {
	t.Helper()

	var n sql.NullString
	if note != "" {
		n = sql.NullString{String: note, Valid: true}
	}

	_, err := conn.Exec(`
		INSERT INTO schedule_response (schedule_id, participant_id, date, time_slot, status, note)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, scheduleID, participantID, date, string(slot), string(status), n)
	if err != nil {
		t.Fatalf("Failed to create test response: %v", err)
	}
}

// CountRows returns SELECT COUNT(*) for the given query
func CountRows(t *testing.T, conn *sql.DB, query string, args ...interface{}) int {
	t.Helper()

	var n int
	if err := conn.QueryRow(query, args...).Scan(&n); err != nil {
		t.Fatalf("Failed to count rows: %v", err)
	}
	return n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
