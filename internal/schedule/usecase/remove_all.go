package usecase

import (
	"context"
	"fmt"

	"study-slot-scheduler/internal/schedule"
	"study-slot-scheduler/internal/schedule/repository"
)

// RemoveAll deletes every event whose local calendar date matches one of the
// selected dates, then clears the mirrored sheet rows. The query window is
// padded by a day on each side and post-filtered by local date, so an account
// whose timezone drifts from ours still matches correctly.
func (uc *implUseCase) RemoveAll(ctx context.Context, input schedule.RemoveAllInput) (schedule.RemoveAllOutput, error) {
	calendarID, err := uc.resolveCalendarID(input.SheetName)
	if err != nil {
		return schedule.RemoveAllOutput{}, err
	}

	dates, err := uc.resolveDates(input.Selection)
	if err != nil {
		return schedule.RemoveAllOutput{}, err
	}

	uc.l.Infof(ctx, "RemoveAll: sheet=%s dates=%d", input.SheetName, len(dates))

	perDate := make(map[string]int, len(dates))
	total := 0

	for _, date := range dates {
		perDate[date] = 0

		timeMin, timeMax, winErr := uc.dm.PaddedWindow(date)
		if winErr != nil {
			uc.l.Warnf(ctx, "RemoveAll: bad date %q: %v", date, winErr)
			continue
		}

		events, listErr := uc.calendar.ListEventsInWindow(ctx, repository.ListEventsOptions{
			CalendarID: calendarID,
			TimeMin:    timeMin,
			TimeMax:    timeMax,
		})
		if listErr != nil {
			uc.l.Errorf(ctx, "RemoveAll: list events for %s failed: %v", date, listErr)
			continue
		}

		for _, ev := range events {
			if ev.ID == "" || !uc.dm.SameLocalDate(ev.StartTime, date) {
				continue
			}

			outcome, delErr := uc.calendar.DeleteEvent(ctx, calendarID, ev.ID)
			switch outcome {
			case repository.OutcomeDeleted:
				perDate[date]++
				total++
			case repository.OutcomeNotFound:
				uc.l.Warnf(ctx, "RemoveAll: event %s already deleted", ev.ID)
			case repository.OutcomeForbidden:
				uc.l.Errorf(ctx, "RemoveAll: no permission to delete event %s", ev.ID)
			default:
				uc.l.Errorf(ctx, "RemoveAll: delete event %s failed: %v", ev.ID, delErr)
			}
		}
	}

	uc.clearSheetRows(ctx, input.SheetName)

	return schedule.RemoveAllOutput{
		Deleted: total,
		PerDate: perDate,
		Message: fmt.Sprintf("%d events deleted successfully", total),
	}, nil
}
