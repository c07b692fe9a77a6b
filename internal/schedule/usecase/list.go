package usecase

import (
	"context"
	"fmt"
	"sort"

	"study-slot-scheduler/internal/schedule"
	"study-slot-scheduler/internal/schedule/repository"
	"study-slot-scheduler/pkg/timeslot"
)

// SheetNames lists the configured logical names, sorted.
func (uc *implUseCase) SheetNames(ctx context.Context) []string {
	names := make([]string, 0, len(uc.opts.Accounts))
	for name := range uc.opts.Accounts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetEvents fetches one day's events for a sheet and maps them back into the
// slot shape. Link fields are reconstructed from the event title.
func (uc *implUseCase) GetEvents(ctx context.Context, input schedule.GetEventsInput) (schedule.GetEventsOutput, error) {
	calendarID, err := uc.resolveCalendarID(input.SheetName)
	if err != nil {
		return schedule.GetEventsOutput{}, err
	}

	if _, err := uc.dm.ParseDate(input.Date); err != nil {
		return schedule.GetEventsOutput{}, fmt.Errorf("%w: %v", schedule.ErrInvalidDate, err)
	}

	timeMin, timeMax, err := uc.dm.PaddedWindow(input.Date)
	if err != nil {
		return schedule.GetEventsOutput{}, fmt.Errorf("%w: %v", schedule.ErrInvalidDate, err)
	}

	events, err := uc.calendar.ListEventsInWindow(ctx, repository.ListEventsOptions{
		CalendarID: calendarID,
		TimeMin:    timeMin,
		TimeMax:    timeMax,
	})
	if err != nil {
		uc.l.Errorf(ctx, "GetEvents: list events for %s failed: %v", input.Date, err)
		return schedule.GetEventsOutput{}, err
	}

	slots := make([]schedule.Slot, 0, len(events))
	for _, ev := range events {
		if !uc.dm.SameLocalDate(ev.StartTime, input.Date) {
			continue
		}
		vi, en := timeslot.SearchLinks(ev.Summary)
		slots = append(slots, schedule.Slot{
			Title:      ev.Summary,
			StartTime:  ev.StartTime,
			EndTime:    ev.EndTime,
			VideoURL:   vi,
			VideoURLEn: en,
			TimeZone:   uc.opts.Timezone,
		})
	}

	sort.Slice(slots, func(i, j int) bool { return slots[i].StartTime.Before(slots[j].StartTime) })

	return schedule.GetEventsOutput{Events: slots}, nil
}
