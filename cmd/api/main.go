package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // register the pgx database/sql driver

	"interview-scheduler/config"
	_ "interview-scheduler/docs" // Swagger docs
	"interview-scheduler/internal/httpserver"
	schedulingRepo "interview-scheduler/internal/scheduling/repository/postgre"
	"interview-scheduler/pkg/gcalendar"
	"interview-scheduler/pkg/log"
	"interview-scheduler/pkg/workhours"
)

const dbConnectTimeout = 10 * time.Second

// @title       Interview Scheduler API
// @description Interview availability and booking on top of Google Calendar: open-slot search, bookings with Meet links, and a durable interview record store.
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

	logger.Info(ctx, "Starting Interview Scheduler...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Postgres
	db, err := sql.Open("pgx", cfg.Postgres.DSN())
	if err != nil {
		logger.Fatalf(ctx, "Failed to open postgres connection: %v", err)
	}
	defer db.Close()

	pingCtx, cancel := context.WithTimeout(ctx, dbConnectTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		logger.Fatalf(ctx, "Failed to ping postgres at %s:%d: %v", cfg.Postgres.Host, cfg.Postgres.Port, err)
	}
	logger.Infof(ctx, "Connected to postgres at %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.Database)

	// Schema bootstrap
	repo := schedulingRepo.New(db, logger)
	if err := repo.Migrate(ctx); err != nil {
		logger.Fatalf(ctx, "Failed to migrate schema: %v", err)
	}

	// 4. Google Calendar. The whole service is calendar-backed, so missing
	// credentials are a startup failure, not a degraded mode.
	calendarClient, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
	if err != nil {
		logger.Errorf(ctx, "Google Calendar not available: %v", err)
		logger.Fatal(ctx, "Run `go run scripts/gcal-auth/main.go` to generate token.json")
	}
	logger.Info(ctx, "Google Calendar initialized")

	// 5. Working-hours policy
	policy, err := workhours.New(
		cfg.Scheduling.Timezone,
		cfg.Scheduling.WorkDayStartHour,
		cfg.Scheduling.WorkDayEndHour,
		cfg.Scheduling.GranularityMinutes,
	)
	if err != nil {
		logger.Fatalf(ctx, "Invalid scheduling policy: %v", err)
	}

	// 6. HTTP server
	srv, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		PostgresDB:  db,
		Calendar:    calendarClient,
		Policy:      policy,
		Scheduling:  cfg.Scheduling,
		CalendarID:  cfg.GoogleCalendar.CalendarID,
		RateLimit:   cfg.RateLimit,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to build HTTP server: %v", err)
	}

	if err := srv.Run(ctx); err != nil {
		logger.Fatalf(ctx, "HTTP server error: %v", err)
	}

	logger.Info(context.Background(), "Shutdown complete")
}
