package gcalendar

import (
	"errors"
	"time"

	"google.golang.org/api/googleapi"
)

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID      string
	Summary         string
	Description     string
	StartTime       time.Time
	EndTime         time.Time
	Timezone        string // e.g. "Asia/Ho_Chi_Minh"
	ReminderMinutes int    // popup reminder before start; 0 keeps calendar defaults
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}

// DeleteOutcome is the closed set of results a delete call can produce.
type DeleteOutcome string

const (
	OutcomeDeleted   DeleteOutcome = "deleted"
	OutcomeNotFound  DeleteOutcome = "not_found" // 404/410: already gone
	OutcomeForbidden DeleteOutcome = "forbidden" // 403: missing permission
	OutcomeError     DeleteOutcome = "error"
)

// ClassifyDeleteError inspects the structured API error behind a failed delete.
func ClassifyDeleteError(err error) DeleteOutcome {
	if err == nil {
		return OutcomeDeleted
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case 404, 410:
			return OutcomeNotFound
		case 403:
			return OutcomeForbidden
		}
	}
	return OutcomeError
}
