package usecase

import (
	"time"

	"study-slot-scheduler/internal/schedule"
	"study-slot-scheduler/internal/schedule/repository"
	"study-slot-scheduler/pkg/datemath"
	pkgLog "study-slot-scheduler/pkg/log"
)

// Options carries the static schedule configuration resolved at startup.
type Options struct {
	// Accounts maps a logical sheet name to its calendar ID.
	Accounts map[string]string

	Timezone        string
	SlotCount       int
	StartHour       int
	EventDuration   time.Duration
	ReminderMinutes int
}

type implUseCase struct {
	l        pkgLog.Logger
	calendar repository.CalendarRepository
	sheets   repository.SheetRepository // nil when sheet mirroring is disabled
	dm       *datemath.Parser
	opts     Options
}

var _ schedule.UseCase = (*implUseCase)(nil)

// New creates a new schedule UseCase instance.
func New(
	l pkgLog.Logger,
	calendar repository.CalendarRepository,
	sheets repository.SheetRepository,
	dm *datemath.Parser,
	opts Options,
) *implUseCase {
	if opts.SlotCount <= 0 {
		opts.SlotCount = 24
	}
	if opts.EventDuration <= 0 {
		opts.EventDuration = 50 * time.Minute
	}
	if opts.ReminderMinutes <= 0 {
		opts.ReminderMinutes = 10
	}

	return &implUseCase{
		l:        l,
		calendar: calendar,
		sheets:   sheets,
		dm:       dm,
		opts:     opts,
	}
}
