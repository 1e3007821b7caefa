package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"interview-scheduler/config"
	schedulingUC "interview-scheduler/internal/scheduling/usecase"
	"interview-scheduler/pkg/log"
	"interview-scheduler/pkg/workhours"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	postgresDB *sql.DB
	calendar   schedulingUC.CalendarClient
	policy     *workhours.Policy

	scheduling config.SchedulingConfig
	calendarID string
	rateLimit  config.RateLimitConfig
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	PostgresDB *sql.DB
	Calendar   schedulingUC.CalendarClient
	Policy     *workhours.Policy

	Scheduling config.SchedulingConfig
	CalendarID string
	RateLimit  config.RateLimitConfig
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
		postgresDB:  cfg.PostgresDB,
		calendar:    cfg.Calendar,
		policy:      cfg.Policy,
		scheduling:  cfg.Scheduling,
		calendarID:  cfg.CalendarID,
		rateLimit:   cfg.RateLimit,
	}

	if err := srv.validate(); err != nil {
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
	if srv.postgresDB == nil {
		return errors.New("postgres connection is required")
	}
	if srv.calendar == nil {
		return errors.New("calendar client is required")
	}
	if srv.policy == nil {
		return errors.New("working-hours policy is required")
	}
	return nil
}
