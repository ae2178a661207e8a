// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package pivot

import (
	"github.com/danielhkuo/quickly-schedule/models"
)

// HighlightThreshold is the number of "yes" votes at which a slot is emphasized
const HighlightThreshold = 3

// IsHighlighted reports whether a slot with this many "yes" votes is highlighted
func IsHighlighted(yes int) bool {
	return yes >= HighlightThreshold
}

// DateHighlighted is true when either slot of the date is highlighted
func DateHighlighted(counts map[models.Slot]models.Count) bool {
	return IsHighlighted(counts[models.SlotAM].Yes) || IsHighlighted(counts[models.SlotPM].Yes)
}

// Mark returns the grid symbol for a status; "-" means unanswered
func Mark(s models.Status) string {
	switch s {
	case models.StatusYes:
		return "○"
	case models.StatusMaybe:
		return "△"
	case models.StatusNo:
		return "×"
	default:
		return "-"
	}
}

// SlotLabel returns the display name of a slot
func SlotLabel(s models.Slot) string {
	if s == models.SlotAM {
		return "午前"
	}
	return "午後"
}

// Pivot is the aggregate view of one schedule
type Pivot struct {
	Matrix models.Matrix
	Counts models.Counts
}

// Build pivots response rows into a participant × date × slot matrix and
// per date/slot vote counts.
//
// Every known participant/date/slot combination gets a cell; cells without a
// matching row stay unanswered. Rows naming unknown participants, dates or
// slots are ignored. When the input repeats a key the later row wins, and
// counts are taken from the resolved matrix so each key is counted once.
func Build(participants []models.Participant, dates []models.DateColumn, responses []models.Response) Pivot {
	p := Pivot{
		Matrix: make(models.Matrix, len(participants)),
		Counts: make(models.Counts, len(dates)),
	}

	for _, d := range dates {
		p.Counts[d.Date] = emptyCounts()
	}
	if len(dates) == 0 {
		return p
	}

	for _, pt := range participants {
		byDate := make(map[string]map[models.Slot]models.Cell, len(dates))
		for _, d := range dates {
			byDate[d.Date] = map[models.Slot]models.Cell{
				models.SlotAM: {Mark: Mark("")},
				models.SlotPM: {Mark: Mark("")},
			}
		}
		p.Matrix[pt.ID] = byDate
	}

	for _, r := range responses {
		byDate, ok := p.Matrix[r.ParticipantID]
		if !ok {
			continue
		}
		slots, ok := byDate[r.Date]
		if !ok || !r.TimeSlot.Valid() {
			continue
		}
		slots[r.TimeSlot] = models.Cell{Status: r.Status, Note: r.Note, Mark: Mark(r.Status)}
	}

	for _, byDate := range p.Matrix {
		for date, slots := range byDate {
			for slot, cell := range slots {
				c := p.Counts[date][slot]
				switch cell.Status {
				case models.StatusYes:
					c.Yes++
				case models.StatusMaybe:
					c.Maybe++
				}
				p.Counts[date][slot] = c
			}
		}
	}

	return p
}

// Highlights returns the per-date highlight flags
func (p Pivot) Highlights() map[string]models.Highlight {
	out := make(map[string]models.Highlight, len(p.Counts))
	for date, counts := range p.Counts {
		out[date] = models.Highlight{
			AM:   IsHighlighted(counts[models.SlotAM].Yes),
			PM:   IsHighlighted(counts[models.SlotPM].Yes),
			Date: DateHighlighted(counts),
		}
	}
	return out
}

// BuildDaily pivots slot-less weekend answers into a participant × date matrix.
// Unknown participants and dates are ignored; the later row wins.
func BuildDaily(participants []models.Participant, dates []models.DateColumn, responses []models.WeekendResponse) models.DailyMatrix {
	m := make(models.DailyMatrix, len(participants))
	for _, pt := range participants {
		byDate := make(map[string]models.Cell, len(dates))
		for _, d := range dates {
			byDate[d.Date] = models.Cell{Mark: Mark("")}
		}
		m[pt.ID] = byDate
	}

	for _, r := range responses {
		byDate, ok := m[r.ParticipantID]
		if !ok {
			continue
		}
		if _, ok := byDate[r.Date]; !ok {
			continue
		}
		byDate[r.Date] = models.Cell{Status: r.Status, Note: r.Note, Mark: Mark(r.Status)}
	}

	return m
}

func emptyCounts() map[models.Slot]models.Count {
	return map[models.Slot]models.Count{
		models.SlotAM: {},
		models.SlotPM: {},
	}
}
