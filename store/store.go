// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"

	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/danielhkuo/quickly-schedule/models"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("already exists")
)

// Store is the query surface the rest of the application consumes.
type Store interface {
	ListSchedules(ctx context.Context) ([]models.Schedule, error)
	GetSchedule(ctx context.Context, key string) (models.Schedule, error)
	SaveSchedule(ctx context.Context, schedule models.Schedule, dates []models.ScheduleDate) (models.Schedule, error)
	ListDates(ctx context.Context, scheduleID string) ([]models.ScheduleDate, error)

	ListParticipants(ctx context.Context) ([]models.Participant, error)
	GetParticipant(ctx context.Context, id string) (models.Participant, error)
	AddParticipant(ctx context.Context, name string) (models.Participant, error)
	RemoveParticipant(ctx context.Context, id string) error
	UpsertParticipant(ctx context.Context, name string) (models.Participant, error)

	ListResponses(ctx context.Context, scheduleID, participantID string) ([]models.Response, error)
	UpsertResponses(ctx context.Context, rows []models.Response) error

	ListWeekendResponses(ctx context.Context, from, to string) ([]models.WeekendResponse, error)
	UpsertWeekendResponses(ctx context.Context, rows []models.WeekendResponse) error
}

// isUniqueViolation recognizes duplicate key errors from both drivers
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}

	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE ||
			sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
	}

	return false
}
