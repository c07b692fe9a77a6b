package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"study-slot-scheduler/config"
	_ "study-slot-scheduler/docs" // Swagger docs
	"study-slot-scheduler/internal/httpserver"
	"study-slot-scheduler/pkg/gcalendar"
	"study-slot-scheduler/pkg/googleauth"
	"study-slot-scheduler/pkg/gsheets"
	"study-slot-scheduler/pkg/log"
)

// @title       Study Slot Scheduler API
// @description Hourly study slot scheduling across Google Calendar accounts with a Google Sheets mirror.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Study Slot Scheduler...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Accounts configured: %d", len(cfg.Schedule.Accounts))

	// 3. Google credentials, resolved once at startup
	src, err := googleauth.Resolve(cfg.Google.CredentialsJSON, cfg.Google.CredentialsPath)
	if err != nil {
		logger.Error(ctx, "Failed to resolve Google credentials: ", err)
		return
	}
	logger.Infof(ctx, "Google credentials loaded from %s", src.Origin())

	callTimeout := time.Duration(cfg.Google.CallTimeoutSec) * time.Second

	// Google Calendar client
	calendarClient, err := gcalendar.NewClientFromSource(ctx, src, callTimeout)
	if err != nil {
		logger.Error(ctx, "Failed to initialize Google Calendar client: ", err)
		logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
		return
	}
	logger.Info(ctx, "Google Calendar initialized")

	// Google Sheets client (optional)
	var sheetsClient *gsheets.Client
	if cfg.Google.SpreadsheetID != "" {
		sheetsClient, err = gsheets.NewClientFromSource(ctx, src, cfg.Google.SpreadsheetID, callTimeout)
		if err != nil {
			logger.Warnf(ctx, "Google Sheets not available (optional): %v", err)
			sheetsClient = nil
		} else {
			logger.Info(ctx, "Google Sheets mirror initialized")
		}
	} else {
		logger.Warn(ctx, "SPREADSHEET_ID not set, sheet mirroring disabled")
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		AppConfig:   cfg,
		Calendar:    calendarClient,
		Sheets:      sheetsClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
