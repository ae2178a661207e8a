// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package weekend

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/danielhkuo/quickly-schedule/models"
)

var (
	ErrInvalidMonth = errors.New("month must be YYYY-MM")
	ErrNameRequired = errors.New("name is required")
	ErrNoAnswers    = errors.New("select at least one answer")
)

const dateLayout = "2006-01-02"

var weekdayNames = [...]string{"日", "月", "火", "水", "木", "金", "土"}

// Month is a calendar month
type Month struct {
	Year  int
	Month time.Month
}

// ParseMonth parses a "YYYY-MM" key
func ParseMonth(key string) (Month, error) {
	t, err := time.Parse("2006-01", key)
	if err != nil {
		return Month{}, fmt.Errorf("%q: %w", key, ErrInvalidMonth)
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Range returns the first and last date of the month as YYYY-MM-DD
func (m Month) Range() (from, to string) {
	first := time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first.Format(dateLayout), last.Format(dateLayout)
}

// Dates lists every Saturday and Sunday of the month, labeled like "1/3(土)"
func Dates(year int, month time.Month) []models.DateColumn {
	var dates []models.DateColumn
	for d := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC); d.Month() == month; d = d.AddDate(0, 0, 1) {
		wd := d.Weekday()
		if wd != time.Saturday && wd != time.Sunday {
			continue
		}
		dates = append(dates, models.DateColumn{
			Date:  d.Format(dateLayout),
			Label: Label(d),
		})
	}
	return dates
}

// Label formats a date as M/D(曜)
func Label(d time.Time) string {
	return fmt.Sprintf("%d/%d(%s)", int(d.Month()), d.Day(), weekdayNames[d.Weekday()])
}

// Rows validates a submission and returns the rows to store for
// participantID. Only dates with an answer become rows, and answers for
// dates outside the month's weekends are ignored.
func Rows(participantID string, dates []models.DateColumn, answers map[string]models.WeekendAnswer) ([]models.WeekendResponse, error) {
	var rows []models.WeekendResponse
	for _, d := range dates {
		a, ok := answers[d.Date]
		if !ok || !a.Status.Valid() {
			continue
		}
		var note *string
		if n := strings.TrimSpace(a.Note); n != "" {
			note = &n
		}
		rows = append(rows, models.WeekendResponse{
			ParticipantID: participantID,
			Date:          d.Date,
			Status:        a.Status,
			Note:          note,
		})
	}
	if len(rows) == 0 {
		return nil, ErrNoAnswers
	}
	return rows, nil
}

// Name trims a submitted name and rejects blanks
func Name(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrNameRequired
	}
	return name, nil
}
