// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package form

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/danielhkuo/quickly-schedule/models"
)

var (
	ErrNoParticipant = errors.New("no participant selected")
	ErrUnknownDate   = errors.New("date is not part of this schedule")
	ErrInvalidStatus = errors.New("status must be yes, maybe or no")
	ErrInvalidSlot   = errors.New("time slot must be am or pm")
	ErrSlotNote      = errors.New("notes are kept per date, not per slot")
)

// DefaultStatus fills every slot of a fresh draft
const DefaultStatus = models.StatusYes

// NoteMode decides how notes map onto the two slot rows of a date
type NoteMode int

const (
	// NotePerDate keeps one note per date, stored on the am row; the pm row is saved with no note
	NotePerDate NoteMode = iota
	// NotePerSlot keeps an independent note on each slot row
	NotePerSlot
)

type State int

const (
	StateUnselected State = iota
	StateSeeded
	StateEditing
	StateSaving
)

func (s State) String() string {
	switch s {
	case StateUnselected:
		return "unselected"
	case StateSeeded:
		return "seeded"
	case StateEditing:
		return "editing"
	case StateSaving:
		return "saving"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// ResponseStore is the part of the store the controller reads and writes
type ResponseStore interface {
	ListResponses(ctx context.Context, scheduleID, participantID string) ([]models.Response, error)
	UpsertResponses(ctx context.Context, rows []models.Response) error
}

type day struct {
	status map[models.Slot]models.Status
	note   map[models.Slot]string
}

func newDay() *day {
	return &day{
		status: map[models.Slot]models.Status{models.SlotAM: DefaultStatus, models.SlotPM: DefaultStatus},
		note:   map[models.Slot]string{},
	}
}

// Controller holds the draft answers of one participant for one schedule.
// It is not safe for concurrent use.
type Controller struct {
	store         ResponseStore
	scheduleID    string
	dates         []models.DateColumn
	mode          NoteMode
	participantID string
	state         State
	draft         map[string]*day
}

// New creates a controller with no participant selected
func New(store ResponseStore, scheduleID string, dates []models.DateColumn, mode NoteMode) *Controller {
	return &Controller{
		store:      store,
		scheduleID: scheduleID,
		dates:      dates,
		mode:       mode,
		state:      StateUnselected,
		draft:      map[string]*day{},
	}
}

func (c *Controller) State() State {
	return c.state
}

func (c *Controller) ParticipantID() string {
	return c.participantID
}

// SelectParticipant discards the current draft and seeds a new one for id.
// Every slot starts as "yes" with an empty note, then the participant's saved
// rows overwrite it. If loading fails the controller returns to the
// unselected state so no default can be saved. An empty id also unselects.
func (c *Controller) SelectParticipant(ctx context.Context, id string) error {
	c.reset()
	if id == "" {
		return nil
	}

	rows, err := c.store.ListResponses(ctx, c.scheduleID, id)
	if err != nil {
		return fmt.Errorf("failed to load existing responses: %w", err)
	}

	draft := make(map[string]*day, len(c.dates))
	for _, d := range c.dates {
		draft[d.Date] = newDay()
	}

	for _, r := range rows {
		dd, ok := draft[r.Date]
		if !ok || !r.TimeSlot.Valid() {
			continue
		}
		dd.status[r.TimeSlot] = r.Status

		note := ""
		if r.Note != nil {
			note = *r.Note
		}
		switch {
		case c.mode == NotePerSlot:
			dd.note[r.TimeSlot] = note
		case r.TimeSlot == models.SlotAM:
			dd.note[models.SlotAM] = note
		}
	}

	c.participantID = id
	c.draft = draft
	c.state = StateSeeded
	return nil
}

func (c *Controller) reset() {
	c.participantID = ""
	c.draft = map[string]*day{}
	c.state = StateUnselected
}

// SetStatus changes one slot of the draft
func (c *Controller) SetStatus(date string, slot models.Slot, status models.Status) error {
	dd, err := c.lookup(date)
	if err != nil {
		return err
	}
	if !slot.Valid() {
		return ErrInvalidSlot
	}
	if !status.Valid() {
		return ErrInvalidStatus
	}

	dd.status[slot] = status
	c.state = StateEditing
	return nil
}

// SetNote changes the per-date note (the am note when notes are kept per slot)
func (c *Controller) SetNote(date, note string) error {
	return c.SetSlotNote(date, models.SlotAM, note)
}

// SetSlotNote changes the note of one slot. With NotePerDate only the am
// slot carries a note.
func (c *Controller) SetSlotNote(date string, slot models.Slot, note string) error {
	dd, err := c.lookup(date)
	if err != nil {
		return err
	}
	if !slot.Valid() {
		return ErrInvalidSlot
	}
	if c.mode == NotePerDate && slot != models.SlotAM {
		return ErrSlotNote
	}

	dd.note[slot] = note
	c.state = StateEditing
	return nil
}

// Apply validates a batch of edits and applies them together.
// Nothing is changed when any edit is invalid.
func (c *Controller) Apply(answers map[string]models.DayAnswer) error {
	if c.participantID == "" {
		return ErrNoParticipant
	}

	for date, a := range answers {
		if _, ok := c.draft[date]; !ok {
			return fmt.Errorf("%s: %w", date, ErrUnknownDate)
		}
		if (a.AM != "" && !a.AM.Valid()) || (a.PM != "" && !a.PM.Valid()) {
			return fmt.Errorf("%s: %w", date, ErrInvalidStatus)
		}
		if a.PMNote != nil && c.mode == NotePerDate {
			return fmt.Errorf("%s: %w", date, ErrSlotNote)
		}
	}

	for date, a := range answers {
		dd := c.draft[date]
		if a.AM != "" {
			dd.status[models.SlotAM] = a.AM
		}
		if a.PM != "" {
			dd.status[models.SlotPM] = a.PM
		}
		if a.Note != nil {
			dd.note[models.SlotAM] = *a.Note
		}
		if a.PMNote != nil {
			dd.note[models.SlotPM] = *a.PMNote
		}
	}
	if len(answers) > 0 {
		c.state = StateEditing
	}
	return nil
}

// Rows returns the full row set for the draft: both slots of every date,
// in date order.
func (c *Controller) Rows() ([]models.Response, error) {
	if c.participantID == "" {
		return nil, ErrNoParticipant
	}

	rows := make([]models.Response, 0, 2*len(c.dates))
	for _, d := range c.dates {
		dd := c.draft[d.Date]
		for _, slot := range models.Slots {
			status := DefaultStatus
			if dd != nil && dd.status[slot] != "" {
				status = dd.status[slot]
			}

			var note *string
			if dd != nil && (c.mode == NotePerSlot || slot == models.SlotAM) {
				note = trimmedOrNil(dd.note[slot])
			}

			rows = append(rows, models.Response{
				ScheduleID:    c.scheduleID,
				ParticipantID: c.participantID,
				Date:          d.Date,
				TimeSlot:      slot,
				Status:        status,
				Note:          note,
			})
		}
	}
	return rows, nil
}

// Save upserts the whole draft in one batch and returns the number of rows.
// On failure the draft is kept and the controller stays in Editing.
func (c *Controller) Save(ctx context.Context) (int, error) {
	rows, err := c.Rows()
	if err != nil {
		return 0, err
	}

	c.state = StateSaving
	if err := c.store.UpsertResponses(ctx, rows); err != nil {
		c.state = StateEditing
		return 0, fmt.Errorf("failed to save responses: %w", err)
	}

	c.state = StateSeeded
	return len(rows), nil
}

// Draft returns a copy of the current answers keyed by date
func (c *Controller) Draft() map[string]models.DraftDay {
	out := make(map[string]models.DraftDay, len(c.draft))
	for date, dd := range c.draft {
		d := models.DraftDay{
			AM:   dd.status[models.SlotAM],
			PM:   dd.status[models.SlotPM],
			Note: dd.note[models.SlotAM],
		}
		if c.mode == NotePerSlot {
			d.PMNote = dd.note[models.SlotPM]
		}
		out[date] = d
	}
	return out
}

func (c *Controller) lookup(date string) (*day, error) {
	if c.participantID == "" {
		return nil, ErrNoParticipant
	}
	dd, ok := c.draft[date]
	if !ok {
		return nil, fmt.Errorf("%s: %w", date, ErrUnknownDate)
	}
	return dd, nil
}

func trimmedOrNil(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
