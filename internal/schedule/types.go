package schedule

import "time"

// --- Domain Model ---

// Slot is one schedulable hour of a study day, as exposed over HTTP.
type Slot struct {
	Title      string
	StartTime  time.Time
	EndTime    time.Time
	VideoURL   string
	VideoURLEn string
	TimeZone   string
}

// SlotInput is a slot as submitted by the client. Times are optional RFC3339
// strings; when absent the slot's position determines its hour.
type SlotInput struct {
	Title     string
	StartTime string
	EndTime   string
}

// --- UseCase Inputs ---

// DateSelection is either an explicit date list, a single date, or an
// inclusive range. Expanded eagerly before any external call.
type DateSelection struct {
	Dates        []string
	SelectedDate string
	RangeEndDate string
	RangeMode    bool
}

type AddAllInput struct {
	SheetName   string
	Slots       []SlotInput
	BulkTitles  string // comma-separated titles; used when Slots is empty
	Selection   DateSelection
	DurationMin int // 0 means the configured default
}

type RemoveAllInput struct {
	SheetName string
	Selection DateSelection
}

type GetEventsInput struct {
	SheetName string
	Date      string
}

// --- UseCase Outputs ---

type AddAllOutput struct {
	Created int
	Skipped int
	Dates   []string
	Message string
}

type RemoveAllOutput struct {
	Deleted int
	PerDate map[string]int
	Message string
}

type GetEventsOutput struct {
	Events []Slot
}
