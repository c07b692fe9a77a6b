package repository

import "context"

//go:generate mockery --name CalendarRepository
type CalendarRepository interface {
	CreateEvent(ctx context.Context, opts CreateEventOptions) (string, error)
	ListEventsInWindow(ctx context.Context, opts ListEventsOptions) ([]Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) (DeleteOutcome, error)
}

//go:generate mockery --name SheetRepository
type SheetRepository interface {
	// EnsureSheet guarantees the named tab exists with the expected header.
	EnsureSheet(ctx context.Context, name string) error
	WriteRows(ctx context.Context, name string, rows [][]string) error
	ClearRows(ctx context.Context, name string) error
}
