package gcal

import (
	"context"

	"study-slot-scheduler/internal/schedule/repository"
	"study-slot-scheduler/pkg/gcalendar"
	"study-slot-scheduler/pkg/log"
)

// implRepository adapts pkg/gcalendar to the domain CalendarRepository.
type implRepository struct {
	client *gcalendar.Client
	l      log.Logger
}

var _ repository.CalendarRepository = (*implRepository)(nil)

// New creates a Google Calendar backed CalendarRepository.
func New(client *gcalendar.Client, l log.Logger) *implRepository {
	return &implRepository{client: client, l: l}
}

func (r *implRepository) CreateEvent(ctx context.Context, opts repository.CreateEventOptions) (string, error) {
	created, err := r.client.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:      opts.CalendarID,
		Summary:         opts.Summary,
		Description:     opts.Description,
		StartTime:       opts.StartTime,
		EndTime:         opts.EndTime,
		Timezone:        opts.Timezone,
		ReminderMinutes: opts.ReminderMinutes,
	})
	if err != nil {
		return "", err
	}
	return created.ID, nil
}

func (r *implRepository) ListEventsInWindow(ctx context.Context, opts repository.ListEventsOptions) ([]repository.Event, error) {
	events, err := r.client.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: opts.CalendarID,
		TimeMin:    opts.TimeMin,
		TimeMax:    opts.TimeMax,
	})
	if err != nil {
		return nil, err
	}

	out := make([]repository.Event, 0, len(events))
	for _, ev := range events {
		out = append(out, repository.Event{
			ID:        ev.ID,
			Summary:   ev.Summary,
			StartTime: ev.StartTime,
			EndTime:   ev.EndTime,
		})
	}
	return out, nil
}

func (r *implRepository) DeleteEvent(ctx context.Context, calendarID, eventID string) (repository.DeleteOutcome, error) {
	outcome, err := r.client.DeleteEvent(ctx, calendarID, eventID)
	return mapOutcome(outcome), err
}

func mapOutcome(outcome gcalendar.DeleteOutcome) repository.DeleteOutcome {
	switch outcome {
	case gcalendar.OutcomeDeleted:
		return repository.OutcomeDeleted
	case gcalendar.OutcomeNotFound:
		return repository.OutcomeNotFound
	case gcalendar.OutcomeForbidden:
		return repository.OutcomeForbidden
	default:
		return repository.OutcomeError
	}
}
