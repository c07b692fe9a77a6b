package usecase

import (
	"context"
	"fmt"
	"time"

	"study-slot-scheduler/internal/schedule"
	"study-slot-scheduler/internal/schedule/repository"
	"study-slot-scheduler/pkg/timeslot"
)

// AddAll creates one calendar event per non-empty slot per date, then mirrors
// the day's slots into the sheet. Events are created sequentially; individual
// failures are logged and skipped; the batch is best-effort, not atomic.
func (uc *implUseCase) AddAll(ctx context.Context, input schedule.AddAllInput) (schedule.AddAllOutput, error) {
	calendarID, err := uc.resolveCalendarID(input.SheetName)
	if err != nil {
		return schedule.AddAllOutput{}, err
	}

	dates, err := uc.resolveDates(input.Selection)
	if err != nil {
		return schedule.AddAllOutput{}, err
	}

	duration := uc.duration(input.DurationMin)

	uc.l.Infof(ctx, "AddAll: sheet=%s dates=%d slots=%d duration=%s",
		input.SheetName, len(dates), len(input.Slots), duration)

	created, skipped := 0, 0
	var sheetRows [][]string

	for _, date := range dates {
		slots := uc.slotsForDate(ctx, date, input, duration)
		if sheetRows == nil {
			sheetRows = make([][]string, 0, len(slots))
			for _, s := range slots {
				sheetRows = append(sheetRows, sheetRow(s))
			}
		}

		for _, s := range slots {
			if s.IsEmpty() {
				skipped++
				continue
			}

			_, createErr := uc.calendar.CreateEvent(ctx, repository.CreateEventOptions{
				CalendarID:      calendarID,
				Summary:         s.Title,
				Description:     buildDescription(s.VideoURL, s.VideoURLEn),
				StartTime:       s.StartTime,
				EndTime:         s.EndTime,
				Timezone:        uc.opts.Timezone,
				ReminderMinutes: uc.opts.ReminderMinutes,
			})
			if createErr != nil {
				uc.l.Errorf(ctx, "AddAll: create event %q on %s failed: %v", s.Title, date, createErr)
				skipped++
				continue
			}
			created++
		}
	}

	uc.syncSheetRows(ctx, input.SheetName, sheetRows)

	return schedule.AddAllOutput{
		Created: created,
		Skipped: skipped,
		Dates:   dates,
		Message: fmt.Sprintf("%d events added successfully", created),
	}, nil
}

// slotsForDate materializes the day's slot sequence from caller slots, bulk
// titles, or the generator fallback. Slots carrying an explicit start that
// fails to parse are dropped with a warning; the batch continues.
func (uc *implUseCase) slotsForDate(ctx context.Context, date string, input schedule.AddAllInput, duration time.Duration) []timeslot.Slot {
	day, err := uc.dm.ParseDate(date)
	if err != nil {
		// resolveDates already validated every date.
		uc.l.Warnf(ctx, "slotsForDate: unparseable date %q: %v", date, err)
		return nil
	}

	if len(input.Slots) == 0 {
		titles := []string(nil)
		if input.BulkTitles != "" {
			titles = timeslot.ParseBulkTitles(input.BulkTitles, uc.opts.SlotCount)
		}
		return timeslot.Generate(day, timeslot.GenerateOptions{
			Count:     uc.opts.SlotCount,
			StartHour: uc.opts.StartHour,
			Duration:  duration,
			Titles:    titles,
		})
	}

	slots := make([]timeslot.Slot, 0, len(input.Slots))
	for i, si := range input.Slots {
		start := day.Add(time.Duration(uc.opts.StartHour+i) * time.Hour)
		if si.StartTime != "" {
			parsed, parseErr := time.Parse(time.RFC3339, si.StartTime)
			if parseErr != nil {
				uc.l.Warnf(ctx, "slotsForDate: skipping slot %d with invalid start %q: %v", i, si.StartTime, parseErr)
				continue
			}
			// Keep the clock time, re-anchor onto the target date.
			local := parsed.In(uc.dm.Location())
			start = day.Add(time.Duration(local.Hour())*time.Hour + time.Duration(local.Minute())*time.Minute)
		}

		vi, en := timeslot.SearchLinks(si.Title)
		slots = append(slots, timeslot.Slot{
			Index:      i,
			Title:      si.Title,
			StartTime:  start,
			EndTime:    start.Add(duration),
			VideoURL:   vi,
			VideoURLEn: en,
		})
	}
	return slots
}
