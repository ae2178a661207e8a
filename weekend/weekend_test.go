// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package weekend

import (
	"errors"
	"testing"
	"time"

	"github.com/danielhkuo/quickly-schedule/models"
)

func TestDates_January2026(t *testing.T) {
	dates := Dates(2026, time.January)

	want := []models.DateColumn{
		{Date: "2026-01-03", Label: "1/3(土)"},
		{Date: "2026-01-04", Label: "1/4(日)"},
		{Date: "2026-01-10", Label: "1/10(土)"},
		{Date: "2026-01-11", Label: "1/11(日)"},
		{Date: "2026-01-17", Label: "1/17(土)"},
		{Date: "2026-01-18", Label: "1/18(日)"},
		{Date: "2026-01-24", Label: "1/24(土)"},
		{Date: "2026-01-25", Label: "1/25(日)"},
		{Date: "2026-01-31", Label: "1/31(土)"},
	}

	if len(dates) != len(want) {
		t.Fatalf("Expected %d weekend dates, got %d: %+v", len(want), len(dates), dates)
	}
	for i := range want {
		if dates[i] != want[i] {
			t.Errorf("dates[%d]: expected %+v, got %+v", i, want[i], dates[i])
		}
	}
}

func TestDates_LeapFebruary(t *testing.T) {
	dates := Dates(2028, time.February)
	last := dates[len(dates)-1]
	if last.Date != "2028-02-27" {
		t.Errorf("Expected last weekend day 2028-02-27, got %s", last.Date)
	}
	for _, d := range dates {
		if d.Date[:7] != "2028-02" {
			t.Errorf("date %s outside month", d.Date)
		}
	}
}

func TestParseMonth(t *testing.T) {
	m, err := ParseMonth("2026-02")
	if err != nil {
		t.Fatal(err)
	}
	if m.Year != 2026 || m.Month != time.February || m.String() != "2026-02" {
		t.Errorf("unexpected month: %+v", m)
	}

	from, to := m.Range()
	if from != "2026-02-01" || to != "2026-02-28" {
		t.Errorf("Expected 2026-02-01..2026-02-28, got %s..%s", from, to)
	}

	for _, bad := range []string{"", "2026", "2026-13", "jan2026", "2026-1-01"} {
		if _, err := ParseMonth(bad); !errors.Is(err, ErrInvalidMonth) {
			t.Errorf("ParseMonth(%q): expected ErrInvalidMonth, got %v", bad, err)
		}
	}
}

func TestRows(t *testing.T) {
	dates := Dates(2026, time.January)

	rows, err := Rows("p1", dates, map[string]models.WeekendAnswer{
		"2026-01-03": {Status: models.StatusYes, Note: "  morning only "},
		"2026-01-04": {Status: ""},
		"2026-01-05": {Status: models.StatusYes},
		"2026-01-10": {Status: models.StatusNo, Note: "   "},
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	if rows[0].Date != "2026-01-03" || rows[0].Note == nil || *rows[0].Note != "morning only" {
		t.Errorf("unexpected first row: %+v", rows[0])
	}
	if rows[1].Status != models.StatusNo || rows[1].Note != nil {
		t.Errorf("unexpected second row: %+v", rows[1])
	}

	if _, err := Rows("p1", dates, map[string]models.WeekendAnswer{"2026-01-04": {}}); !errors.Is(err, ErrNoAnswers) {
		t.Errorf("Expected ErrNoAnswers, got %v", err)
	}
}

func TestName(t *testing.T) {
	if n, err := Name("  Alice "); err != nil || n != "Alice" {
		t.Errorf("Expected Alice, got %q (%v)", n, err)
	}
	if _, err := Name(" \t"); !errors.Is(err, ErrNameRequired) {
		t.Errorf("Expected ErrNameRequired, got %v", err)
	}
}
