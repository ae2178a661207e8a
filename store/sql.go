// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/quickly-schedule/models"
)

// SQLStore implements Store on database/sql.
// Queries use $N placeholders, which both lib/pq and modernc.org/sqlite accept.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

// ListSchedules returns all schedules, newest key first
func (s *SQLStore) ListSchedules(ctx context.Context) ([]models.Schedule, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, key, title
		FROM schedule
		ORDER BY key DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedules: %w", err)
	}
	defer rows.Close()

	schedules := []models.Schedule{}
	for rows.Next() {
		var sch models.Schedule
		if err := rows.Scan(&sch.ID, &sch.Key, &sch.Title); err != nil {
			return nil, fmt.Errorf("failed to scan schedule: %w", err)
		}
		schedules = append(schedules, sch)
	}
	return schedules, rows.Err()
}

// GetSchedule looks a schedule up by its key
func (s *SQLStore) GetSchedule(ctx context.Context, key string) (models.Schedule, error) {
	var sch models.Schedule
	err := s.db.QueryRowContext(ctx, `
		SELECT id, key, title FROM schedule WHERE key = $1
	`, key).Scan(&sch.ID, &sch.Key, &sch.Title)

	if err == sql.ErrNoRows {
		return models.Schedule{}, fmt.Errorf("schedule %q: %w", key, ErrNotFound)
	}
	if err != nil {
		return models.Schedule{}, fmt.Errorf("failed to query schedule: %w", err)
	}
	return sch, nil
}

// SaveSchedule upserts a schedule by key together with its dates.
// The stored ID is kept when the key already exists.
func (s *SQLStore) SaveSchedule(ctx context.Context, schedule models.Schedule, dates []models.ScheduleDate) (models.Schedule, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Schedule{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if schedule.ID == "" {
		schedule.ID = uuid.NewString()
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO schedule (id, key, title)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET title = excluded.title
		RETURNING id
	`, schedule.ID, schedule.Key, schedule.Title).Scan(&schedule.ID)
	if err != nil {
		return models.Schedule{}, fmt.Errorf("failed to upsert schedule: %w", err)
	}

	for _, d := range dates {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO schedule_date (schedule_id, date, label, sort_order)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (schedule_id, date) DO UPDATE SET
				label = excluded.label,
				sort_order = excluded.sort_order
		`, schedule.ID, d.Date, toNullString(d.Label), toNullInt(d.SortOrder))
		if err != nil {
			return models.Schedule{}, fmt.Errorf("failed to upsert date %s: %w", d.Date, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return models.Schedule{}, fmt.Errorf("failed to commit schedule: %w", err)
	}
	return schedule, nil
}

// ListDates returns a schedule's dates ordered by sort_order (nulls last) then date
func (s *SQLStore) ListDates(ctx context.Context, scheduleID string) ([]models.ScheduleDate, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT schedule_id, date, label, sort_order
		FROM schedule_date
		WHERE schedule_id = $1
		ORDER BY (sort_order IS NULL), sort_order, date
	`, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("failed to query dates: %w", err)
	}
	defer rows.Close()

	dates := []models.ScheduleDate{}
	for rows.Next() {
		var d models.ScheduleDate
		var label sql.NullString
		var sortOrder sql.NullInt64
		if err := rows.Scan(&d.ScheduleID, &d.Date, &label, &sortOrder); err != nil {
			return nil, fmt.Errorf("failed to scan date: %w", err)
		}
		d.Label = nullString(label)
		if sortOrder.Valid {
			n := int(sortOrder.Int64)
			d.SortOrder = &n
		}
		dates = append(dates, d)
	}
	return dates, rows.Err()
}

// ListParticipants returns the registry ordered by name
func (s *SQLStore) ListParticipants(ctx context.Context) ([]models.Participant, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name FROM participant ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query participants: %w", err)
	}
	defer rows.Close()

	participants := []models.Participant{}
	for rows.Next() {
		var p models.Participant
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		participants = append(participants, p)
	}
	return participants, rows.Err()
}

func (s *SQLStore) GetParticipant(ctx context.Context, id string) (models.Participant, error) {
	var p models.Participant
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name FROM participant WHERE id = $1
	`, id).Scan(&p.ID, &p.Name)

	if err == sql.ErrNoRows {
		return models.Participant{}, fmt.Errorf("participant %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return models.Participant{}, fmt.Errorf("failed to query participant: %w", err)
	}
	return p, nil
}

// AddParticipant inserts a new participant; a taken name yields ErrDuplicate
func (s *SQLStore) AddParticipant(ctx context.Context, name string) (models.Participant, error) {
	p := models.Participant{ID: uuid.NewString(), Name: name}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO participant (id, name) VALUES ($1, $2)
	`, p.ID, p.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Participant{}, fmt.Errorf("participant %q: %w", name, ErrDuplicate)
		}
		return models.Participant{}, fmt.Errorf("failed to insert participant: %w", err)
	}
	return p, nil
}

// RemoveParticipant deletes a participant (their responses cascade)
func (s *SQLStore) RemoveParticipant(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM participant WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete participant: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete participant: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("participant %s: %w", id, ErrNotFound)
	}
	return nil
}

// UpsertParticipant returns the participant with this name, creating it if needed
func (s *SQLStore) UpsertParticipant(ctx context.Context, name string) (models.Participant, error) {
	p := models.Participant{Name: name}
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO participant (id, name)
		VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET name = excluded.name
		RETURNING id
	`, uuid.NewString(), name).Scan(&p.ID)
	if err != nil {
		return models.Participant{}, fmt.Errorf("failed to upsert participant: %w", err)
	}
	return p, nil
}

// ListResponses returns a schedule's responses, optionally for one participant
func (s *SQLStore) ListResponses(ctx context.Context, scheduleID, participantID string) ([]models.Response, error) {
	query := `
		SELECT schedule_id, participant_id, date, time_slot, status, note
		FROM schedule_response
		WHERE schedule_id = $1`
	args := []interface{}{scheduleID}
	if participantID != "" {
		query += ` AND participant_id = $2`
		args = append(args, participantID)
	}
	query += ` ORDER BY participant_id, date, time_slot`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query responses: %w", err)
	}
	defer rows.Close()

	responses := []models.Response{}
	for rows.Next() {
		var r models.Response
		var note sql.NullString
		if err := rows.Scan(&r.ScheduleID, &r.ParticipantID, &r.Date, &r.TimeSlot, &r.Status, &note); err != nil {
			return nil, fmt.Errorf("failed to scan response: %w", err)
		}
		r.Note = nullString(note)
		responses = append(responses, r)
	}
	return responses, rows.Err()
}

// UpsertResponses writes all rows in one transaction keyed by
// (schedule_id, participant_id, date, time_slot). Last write wins.
func (s *SQLStore) UpsertResponses(ctx context.Context, rows []models.Response) error {
	if len(rows) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO schedule_response (schedule_id, participant_id, date, time_slot, status, note, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (schedule_id, participant_id, date, time_slot) DO UPDATE SET
			status = excluded.status,
			note = excluded.note,
			updated_at = excluded.updated_at
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare upsert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for _, r := range rows {
		_, err := stmt.ExecContext(ctx, r.ScheduleID, r.ParticipantID, r.Date, string(r.TimeSlot), string(r.Status), toNullString(r.Note), now)
		if err != nil {
			return fmt.Errorf("failed to upsert response %s/%s: %w", r.Date, r.TimeSlot, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit responses: %w", err)
	}
	return nil
}

// ListWeekendResponses returns weekend answers with from <= date <= to
func (s *SQLStore) ListWeekendResponses(ctx context.Context, from, to string) ([]models.WeekendResponse, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT participant_id, date, status, note
		FROM weekend_response
		WHERE date >= $1 AND date <= $2
		ORDER BY participant_id, date
	`, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query weekend responses: %w", err)
	}
	defer rows.Close()

	responses := []models.WeekendResponse{}
	for rows.Next() {
		var r models.WeekendResponse
		var note sql.NullString
		if err := rows.Scan(&r.ParticipantID, &r.Date, &r.Status, &note); err != nil {
			return nil, fmt.Errorf("failed to scan weekend response: %w", err)
		}
		r.Note = nullString(note)
		responses = append(responses, r)
	}
	return responses, rows.Err()
}

// UpsertWeekendResponses writes all rows in one transaction keyed by (participant_id, date)
func (s *SQLStore) UpsertWeekendResponses(ctx context.Context, rows []models.WeekendResponse) error {
	if len(rows) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	for _, r := range rows {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO weekend_response (participant_id, date, status, note, updated_at)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (participant_id, date) DO UPDATE SET
				status = excluded.status,
				note = excluded.note,
				updated_at = excluded.updated_at
		`, r.ParticipantID, r.Date, string(r.Status), toNullString(r.Note), now)
		if err != nil {
			return fmt.Errorf("failed to upsert weekend response %s: %w", r.Date, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit weekend responses: %w", err)
	}
	return nil
}

func nullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func toNullInt(n *int) sql.NullInt64 {
	if n == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*n), Valid: true}
}
