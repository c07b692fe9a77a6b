package httpserver

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"study-slot-scheduler/internal/middleware"
	"study-slot-scheduler/internal/schedule/delivery/http"
	"study-slot-scheduler/internal/schedule/repository"
	gcalRepo "study-slot-scheduler/internal/schedule/repository/gcal"
	gsheetRepo "study-slot-scheduler/internal/schedule/repository/gsheet"
	scheduleUC "study-slot-scheduler/internal/schedule/usecase"
	"study-slot-scheduler/pkg/datemath"
)

// setupScheduleDomain initializes the schedule domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(client, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(srv.l, repo, ...)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(rg, h, mw)
func (srv *HTTPServer) setupScheduleDomain(ctx context.Context, rg *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repositories
	calRepo := gcalRepo.New(srv.calendar, srv.l)

	var sheetRepo repository.SheetRepository
	if srv.sheets != nil {
		sheetRepo = gsheetRepo.New(srv.sheets, srv.l)
	} else {
		srv.l.Warnf(ctx, "Spreadsheet ID not configured, sheet mirroring disabled")
	}

	// 2. UseCase
	dm, err := datemath.NewParser(srv.cfg.Schedule.Timezone)
	if err != nil {
		return err
	}

	uc := scheduleUC.New(srv.l, calRepo, sheetRepo, dm, scheduleUC.Options{
		Accounts:        srv.cfg.Schedule.Accounts,
		Timezone:        srv.cfg.Schedule.Timezone,
		SlotCount:       srv.cfg.Schedule.SlotCount,
		StartHour:       srv.cfg.Schedule.StartHour,
		EventDuration:   time.Duration(srv.cfg.Schedule.EventDurationMin) * time.Minute,
		ReminderMinutes: srv.cfg.Schedule.ReminderMinutes,
	})

	// 3. HTTP Handler
	h := http.New(srv.l, uc)

	// 4. Routes: registers GET/POST /events
	http.RegisterRoutes(rg, h, mw)

	srv.l.Infof(ctx, "Schedule domain registered with %d accounts", len(srv.cfg.Schedule.Accounts))
	return nil
}
