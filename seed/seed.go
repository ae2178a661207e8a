// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package seed

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/quickly-schedule/models"
	"github.com/danielhkuo/quickly-schedule/weekend"
)

// Fixture is the YAML layout of a seed file:
//
//	schedules:
//	  - key: "2026-01"
//	    title: "2026年1月"
//	    weekends: true
//	  - key: "2026-02"
//	    dates:
//	      - date: "2026-02-11"
//	        label: "2/11(水・祝)"
//	        sort_order: 1
//	participants: [Alice, Bob]
type Fixture struct {
	Schedules    []ScheduleFixture `yaml:"schedules"`
	Participants []string          `yaml:"participants"`
}

type ScheduleFixture struct {
	Key   string        `yaml:"key"`
	Title string        `yaml:"title"`
	Dates []DateFixture `yaml:"dates"`
	// Weekends adds every Saturday and Sunday of the month named by Key
	Weekends bool `yaml:"weekends"`
}

type DateFixture struct {
	Date      string  `yaml:"date"`
	Label     *string `yaml:"label"`
	SortOrder *int    `yaml:"sort_order"`
}

// Seeder is the part of the store used to apply a fixture
type Seeder interface {
	SaveSchedule(ctx context.Context, schedule models.Schedule, dates []models.ScheduleDate) (models.Schedule, error)
	UpsertParticipant(ctx context.Context, name string) (models.Participant, error)
}

// Parse decodes and validates a fixture
func Parse(data []byte) (Fixture, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Fixture{}, fmt.Errorf("seed: fixture is empty")
	}

	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Fixture{}, fmt.Errorf("seed: decode fixture: %w", err)
	}

	for i, s := range f.Schedules {
		if strings.TrimSpace(s.Key) == "" {
			return Fixture{}, fmt.Errorf("seed: schedule %d has no key", i)
		}
		if s.Weekends {
			if _, err := weekend.ParseMonth(s.Key); err != nil {
				return Fixture{}, fmt.Errorf("seed: schedule %s: %w", s.Key, err)
			}
		}
		for _, d := range s.Dates {
			if _, err := time.Parse("2006-01-02", d.Date); err != nil {
				return Fixture{}, fmt.Errorf("seed: schedule %s: invalid date %q", s.Key, d.Date)
			}
		}
	}
	for i, name := range f.Participants {
		if strings.TrimSpace(name) == "" {
			return Fixture{}, fmt.Errorf("seed: participant %d has no name", i)
		}
	}

	return f, nil
}

// Apply upserts every schedule, date and participant of the fixture.
// Applying the same fixture twice leaves the database unchanged.
func Apply(ctx context.Context, s Seeder, f Fixture) error {
	for _, sf := range f.Schedules {
		title := sf.Title
		if title == "" {
			title = sf.Key
		}

		sch, err := s.SaveSchedule(ctx, models.Schedule{Key: sf.Key, Title: title}, sf.scheduleDates())
		if err != nil {
			return fmt.Errorf("seed: schedule %s: %w", sf.Key, err)
		}
		slog.Info("seeded schedule", "key", sch.Key, "id", sch.ID)
	}

	for _, name := range f.Participants {
		if _, err := s.UpsertParticipant(ctx, strings.TrimSpace(name)); err != nil {
			return fmt.Errorf("seed: participant %s: %w", name, err)
		}
	}
	if len(f.Participants) > 0 {
		slog.Info("seeded participants", "count", len(f.Participants))
	}

	return nil
}

// Load reads the fixture at path and applies it
func Load(ctx context.Context, s Seeder, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("seed: read %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return Apply(ctx, s, f)
}

func (sf ScheduleFixture) scheduleDates() []models.ScheduleDate {
	var dates []models.ScheduleDate
	seen := map[string]bool{}

	for _, d := range sf.Dates {
		dates = append(dates, models.ScheduleDate{Date: d.Date, Label: d.Label, SortOrder: d.SortOrder})
		seen[d.Date] = true
	}

	if sf.Weekends {
		m, _ := weekend.ParseMonth(sf.Key)
		for _, col := range weekend.Dates(m.Year, m.Month) {
			if seen[col.Date] {
				continue
			}
			label := col.Label
			dates = append(dates, models.ScheduleDate{Date: col.Date, Label: &label})
		}
	}

	return dates
}
