package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Study Slot Scheduler specifics
	Google   GoogleConfig
	Schedule ScheduleConfig

	// Rate limiting
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// GoogleConfig holds credentials shared by the Calendar and Sheets clients.
// CredentialsJSON takes precedence over CredentialsPath when both are set.
type GoogleConfig struct {
	CredentialsJSON string
	CredentialsPath string
	SpreadsheetID   string
	CallTimeoutSec  int
}

type ScheduleConfig struct {
	// Accounts maps a public sheet name to its Google Calendar ID.
	Accounts         map[string]string
	Timezone         string
	SlotCount        int
	StartHour        int
	EventDurationMin int
	ReminderMinutes  int
}

type RateLimitConfig struct {
	PerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Google credentials
	cfg.Google.CredentialsJSON = viper.GetString("google.credentials_json")
	cfg.Google.CredentialsPath = viper.GetString("google.credentials_path")
	cfg.Google.SpreadsheetID = viper.GetString("google.spreadsheet_id")
	cfg.Google.CallTimeoutSec = viper.GetInt("google.call_timeout_sec")
	if creds := viper.GetString("google_credentials_json"); creds != "" {
		cfg.Google.CredentialsJSON = creds
	}
	if credsPath := viper.GetString("google_credentials_path"); credsPath != "" {
		cfg.Google.CredentialsPath = credsPath
	}
	if sheetID := viper.GetString("spreadsheet_id"); sheetID != "" {
		cfg.Google.SpreadsheetID = sheetID
	}

	// Schedule
	cfg.Schedule.Accounts = viper.GetStringMapString("schedule.accounts")
	cfg.Schedule.Timezone = viper.GetString("schedule.timezone")
	cfg.Schedule.SlotCount = viper.GetInt("schedule.slot_count")
	cfg.Schedule.StartHour = viper.GetInt("schedule.start_hour")
	cfg.Schedule.EventDurationMin = viper.GetInt("schedule.event_duration_min")
	cfg.Schedule.ReminderMinutes = viper.GetInt("schedule.reminder_minutes")

	// CALENDAR_IDS="name=calendarID,name2=calendarID2" overrides the accounts map,
	// since viper cannot populate a nested map from a flat env var.
	if rawIDs := viper.GetString("calendar_ids"); rawIDs != "" {
		accounts, err := parseAccountList(rawIDs)
		if err != nil {
			return nil, fmt.Errorf("invalid CALENDAR_IDS: %w", err)
		}
		cfg.Schedule.Accounts = accounts
	}

	if len(cfg.Schedule.Accounts) == 0 {
		return nil, fmt.Errorf("no calendar accounts configured - please add schedule.accounts section to config.yaml or set CALENDAR_IDS")
	}

	// Rate limiting
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("google.call_timeout_sec", 30)

	viper.SetDefault("schedule.timezone", "Asia/Ho_Chi_Minh")
	viper.SetDefault("schedule.slot_count", 24)
	viper.SetDefault("schedule.start_hour", 0)
	viper.SetDefault("schedule.event_duration_min", 50)
	viper.SetDefault("schedule.reminder_minutes", 10)

	viper.SetDefault("rate_limit.per_min", 60)
}

// parseAccountList parses "name=calendarID,name2=calendarID2" pairs.
func parseAccountList(raw string) (map[string]string, error) {
	accounts := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, id, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		id = strings.TrimSpace(id)
		if !ok || name == "" || id == "" {
			return nil, fmt.Errorf("malformed pair %q, expected name=calendarID", pair)
		}
		accounts[name] = id
	}
	if len(accounts) == 0 {
		return nil, fmt.Errorf("no account pairs found")
	}
	return accounts, nil
}
