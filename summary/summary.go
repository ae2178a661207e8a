// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package summary

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/danielhkuo/quickly-schedule/models"
	"github.com/danielhkuo/quickly-schedule/pivot"
)

var ErrNoSchedules = errors.New("no schedules registered")

// Loader is the read side of the store needed for a schedule's detail view
type Loader interface {
	ListDates(ctx context.Context, scheduleID string) ([]models.ScheduleDate, error)
	ListParticipants(ctx context.Context) ([]models.Participant, error)
	ListResponses(ctx context.Context, scheduleID, participantID string) ([]models.Response, error)
}

// Select returns the schedule with the given key, or the first schedule when
// the key is empty or unknown.
func Select(schedules []models.Schedule, key string) (models.Schedule, error) {
	if len(schedules) == 0 {
		return models.Schedule{}, ErrNoSchedules
	}
	for _, s := range schedules {
		if s.Key == key {
			return s, nil
		}
	}
	return schedules[0], nil
}

// Detail is everything the aggregate view of one schedule shows
type Detail struct {
	Schedule     models.Schedule
	Dates        []models.DateColumn
	Participants []models.Participant
	Pivot        pivot.Pivot
}

// Load fetches dates, participants and responses concurrently and builds the
// pivot. If any read fails the partial results are dropped.
func Load(ctx context.Context, loader Loader, schedule models.Schedule) (*Detail, error) {
	var (
		dates        []models.ScheduleDate
		participants []models.Participant
		responses    []models.Response
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		dates, err = loader.ListDates(gctx, schedule.ID)
		if err != nil {
			return fmt.Errorf("failed to load dates: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		participants, err = loader.ListParticipants(gctx)
		if err != nil {
			return fmt.Errorf("failed to load participants: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		responses, err = loader.ListResponses(gctx, schedule.ID, "")
		if err != nil {
			return fmt.Errorf("failed to load responses: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	columns := Columns(dates)
	return &Detail{
		Schedule:     schedule,
		Dates:        columns,
		Participants: participants,
		Pivot:        pivot.Build(participants, columns, responses),
	}, nil
}

// Columns converts stored dates to display columns, keeping their order
func Columns(dates []models.ScheduleDate) []models.DateColumn {
	columns := make([]models.DateColumn, 0, len(dates))
	for _, d := range dates {
		columns = append(columns, d.Column())
	}
	return columns
}

// Response renders the detail as the JSON summary body
func (d *Detail) Response(schedules []models.Schedule) models.SummaryResponse {
	return models.SummaryResponse{
		Schedule:     d.Schedule,
		Schedules:    schedules,
		Dates:        d.Dates,
		Participants: d.Participants,
		Matrix:       d.Pivot.Matrix,
		Counts:       d.Pivot.Counts,
		Highlights:   d.Pivot.Highlights(),
		SlotLabels:   slotLabels(),
	}
}

func slotLabels() map[models.Slot]string {
	labels := make(map[models.Slot]string, len(models.Slots))
	for _, s := range models.Slots {
		labels[s] = pivot.SlotLabel(s)
	}
	return labels
}
