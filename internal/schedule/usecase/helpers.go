package usecase

import (
	"context"
	"fmt"
	"time"

	"study-slot-scheduler/internal/schedule"
	"study-slot-scheduler/pkg/timeslot"
)

// resolveCalendarID maps a logical sheet name to its calendar ID.
func (uc *implUseCase) resolveCalendarID(name string) (string, error) {
	id, ok := uc.opts.Accounts[name]
	if !ok || id == "" {
		return "", schedule.ErrUnknownSheetName
	}
	return id, nil
}

// resolveDates expands a date selection into an ordered list of concrete
// dates. Explicit lists win over single/range selection. Expansion is eager;
// both range endpoints are included regardless of their order.
func (uc *implUseCase) resolveDates(sel schedule.DateSelection) ([]string, error) {
	if len(sel.Dates) > 0 {
		dates, err := uc.dm.NormalizeDates(sel.Dates)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", schedule.ErrInvalidDate, err)
		}
		return dates, nil
	}

	if sel.SelectedDate == "" {
		return nil, schedule.ErrNoDates
	}

	if sel.RangeMode && sel.RangeEndDate != "" {
		dates, err := uc.dm.ExpandRange(sel.SelectedDate, sel.RangeEndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", schedule.ErrInvalidDate, err)
		}
		return dates, nil
	}

	if _, err := uc.dm.ParseDate(sel.SelectedDate); err != nil {
		return nil, fmt.Errorf("%w: %v", schedule.ErrInvalidDate, err)
	}
	return []string{sel.SelectedDate}, nil
}

// duration picks the caller override or the configured default.
func (uc *implUseCase) duration(overrideMin int) time.Duration {
	if overrideMin > 0 {
		return time.Duration(overrideMin) * time.Minute
	}
	return uc.opts.EventDuration
}

// buildDescription concatenates the derived links under static language labels.
func buildDescription(vi, en string) string {
	if vi == "" && en == "" {
		return ""
	}
	return fmt.Sprintf("Video (Tiếng Việt): %s\nVideo (English): %s", vi, en)
}

// sheetRow renders one slot as a positional sheet tuple under the fixed header.
func sheetRow(s timeslot.Slot) []string {
	return []string{s.TimeRange(), s.Title, s.VideoURL, s.VideoURLEn}
}

// syncSheetRows mirrors the day's slots into the named sheet tab.
// Best-effort: failures are logged, never escalated.
func (uc *implUseCase) syncSheetRows(ctx context.Context, name string, rows [][]string) {
	if uc.sheets == nil {
		uc.l.Debugf(ctx, "sheet sync disabled, skipping write for %s", name)
		return
	}
	if err := uc.sheets.EnsureSheet(ctx, name); err != nil {
		uc.l.Errorf(ctx, "syncSheetRows EnsureSheet %s: %v", name, err)
		return
	}
	if err := uc.sheets.WriteRows(ctx, name, rows); err != nil {
		uc.l.Errorf(ctx, "syncSheetRows WriteRows %s: %v", name, err)
	}
}

// clearSheetRows clears every data row of the named sheet tab, keeping the header.
func (uc *implUseCase) clearSheetRows(ctx context.Context, name string) {
	if uc.sheets == nil {
		uc.l.Debugf(ctx, "sheet sync disabled, skipping clear for %s", name)
		return
	}
	if err := uc.sheets.EnsureSheet(ctx, name); err != nil {
		uc.l.Errorf(ctx, "clearSheetRows EnsureSheet %s: %v", name, err)
		return
	}
	if err := uc.sheets.ClearRows(ctx, name); err != nil {
		uc.l.Errorf(ctx, "clearSheetRows ClearRows %s: %v", name, err)
	}
}
