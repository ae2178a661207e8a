package models

// Status is a participant's availability for one date (and slot)
type Status string

const (
	StatusYes   Status = "yes"
	StatusMaybe Status = "maybe"
	StatusNo    Status = "no"
)

// Valid reports whether s is one of yes, maybe or no
func (s Status) Valid() bool {
	switch s {
	case StatusYes, StatusMaybe, StatusNo:
		return true
	}
	return false
}

// Slot is a half-day division of a candidate date
type Slot string

const (
	SlotAM Slot = "am"
	SlotPM Slot = "pm"
)

// Slots lists both slots in display order
var Slots = []Slot{SlotAM, SlotPM}

// Valid reports whether s is am or pm
func (s Slot) Valid() bool {
	return s == SlotAM || s == SlotPM
}

// Domain types

type Schedule struct {
	ID    string `json:"id"`
	Key   string `json:"key"`
	Title string `json:"title"`
}

type ScheduleDate struct {
	ScheduleID string  `json:"schedule_id"`
	Date       string  `json:"date"` // YYYY-MM-DD
	Label      *string `json:"label,omitempty"`
	SortOrder  *int    `json:"sort_order,omitempty"`
}

// Column returns the date with its display label, falling back to the date itself
func (d ScheduleDate) Column() DateColumn {
	label := d.Date
	if d.Label != nil && *d.Label != "" {
		label = *d.Label
	}
	return DateColumn{Date: d.Date, Label: label}
}

// DateColumn is one date as shown in the aggregate grid
type DateColumn struct {
	Date  string `json:"date"`
	Label string `json:"label"`
}

type Participant struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Response is one saved answer. Absence of a row means "unanswered".
type Response struct {
	ScheduleID    string  `json:"schedule_id"`
	ParticipantID string  `json:"participant_id"`
	Date          string  `json:"date"`
	TimeSlot      Slot    `json:"time_slot"`
	Status        Status  `json:"status"`
	Note          *string `json:"note"`
}

// WeekendResponse is the slot-less answer of the weekend flow
type WeekendResponse struct {
	ParticipantID string  `json:"participant_id"`
	Date          string  `json:"date"`
	Status        Status  `json:"status"`
	Note          *string `json:"note"`
}

// Aggregate types

// Cell is one participant/date/slot entry. An empty Status means unanswered.
type Cell struct {
	Status Status  `json:"status,omitempty"`
	Note   *string `json:"note,omitempty"`
	Mark   string  `json:"mark"`
}

// Count holds the votes for one date/slot
type Count struct {
	Yes   int `json:"yes"`
	Maybe int `json:"maybe"`
}

// participant_id -> date -> slot -> cell
type Matrix map[string]map[string]map[Slot]Cell

// date -> slot -> count
type Counts map[string]map[Slot]Count

// participant_id -> date -> cell
type DailyMatrix map[string]map[string]Cell

type Highlight struct {
	AM   bool `json:"am"`
	PM   bool `json:"pm"`
	Date bool `json:"date"`
}

// Request types

type AddParticipantRequest struct {
	Name string `json:"name"`
}

// DayAnswer is the edit for one date. Empty statuses leave the draft value untouched.
type DayAnswer struct {
	AM     Status  `json:"am,omitempty"`
	PM     Status  `json:"pm,omitempty"`
	Note   *string `json:"note,omitempty"`
	PMNote *string `json:"pm_note,omitempty"` // only used when notes are kept per slot
}

// date -> answer
type SaveResponsesRequest struct {
	Answers map[string]DayAnswer `json:"answers"`
}

type WeekendAnswer struct {
	Status Status `json:"status"`
	Note   string `json:"note"`
}

type WeekendSubmitRequest struct {
	Name    string                   `json:"name"`
	Answers map[string]WeekendAnswer `json:"answers"`
}

// Response types

type ListSchedulesResponse struct {
	Schedules []Schedule `json:"schedules"`
}

type ListParticipantsResponse struct {
	Participants []Participant `json:"participants"`
}

type SummaryResponse struct {
	Schedule     Schedule             `json:"schedule"`
	Schedules    []Schedule           `json:"schedules"`
	Dates        []DateColumn         `json:"dates"`
	Participants []Participant        `json:"participants"`
	Matrix       Matrix               `json:"matrix"`
	Counts       Counts               `json:"counts"`
	Highlights   map[string]Highlight `json:"highlights"`
	SlotLabels   map[Slot]string      `json:"slot_labels"`
}

type DraftDay struct {
	AM     Status `json:"am"`
	PM     Status `json:"pm"`
	Note   string `json:"note"`
	PMNote string `json:"pm_note,omitempty"`
}

type DraftResponse struct {
	Schedule    Schedule            `json:"schedule"`
	Participant Participant         `json:"participant"`
	Dates       []DateColumn        `json:"dates"`
	Answers     map[string]DraftDay `json:"answers"`
}

type SaveResponsesResponse struct {
	Saved int    `json:"saved"`
	Next  string `json:"next"`
}

type WeekendFormResponse struct {
	Month string       `json:"month"`
	Dates []DateColumn `json:"dates"`
}

type WeekendSubmitResponse struct {
	ParticipantID string `json:"participant_id"`
	Saved         int    `json:"saved"`
	Message       string `json:"message"`
}

type WeekendSummaryResponse struct {
	Month        string        `json:"month"`
	Dates        []DateColumn  `json:"dates"`
	Participants []Participant `json:"participants"`
	Matrix       DailyMatrix   `json:"matrix"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
