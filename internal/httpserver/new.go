package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"study-slot-scheduler/config"
	"study-slot-scheduler/pkg/gcalendar"
	"study-slot-scheduler/pkg/gsheets"
	"study-slot-scheduler/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Schedule domain
	cfg      *config.Config
	calendar *gcalendar.Client
	sheets   *gsheets.Client // nil when sheet mirroring is disabled
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	AppConfig *config.Config
	Calendar  *gcalendar.Client
	Sheets    *gsheets.Client
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		cfg:         cfg.AppConfig,
		calendar:    cfg.Calendar,
		sheets:      cfg.Sheets,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.cfg == nil {
		return errors.New("app config is required")
	}
	if srv.calendar == nil {
		return errors.New("calendar client is required")
	}
	return nil
}
