package repository

import "time"

// CreateEventOptions carries one calendar event to be created.
type CreateEventOptions struct {
	CalendarID      string
	Summary         string
	Description     string
	StartTime       time.Time
	EndTime         time.Time
	Timezone        string
	ReminderMinutes int
}

// ListEventsOptions selects a time window on one calendar.
type ListEventsOptions struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
}

// Event is a calendar event as seen by the domain layer.
type Event struct {
	ID        string
	Summary   string
	StartTime time.Time
	EndTime   time.Time
}

// DeleteOutcome is the closed classification of a delete attempt.
type DeleteOutcome string

const (
	OutcomeDeleted   DeleteOutcome = "deleted"
	OutcomeNotFound  DeleteOutcome = "not_found"
	OutcomeForbidden DeleteOutcome = "forbidden"
	OutcomeError     DeleteOutcome = "error"
)
