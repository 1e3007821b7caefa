package postgre

import (
	"context"

	"interview-scheduler/internal/scheduling/repository"
)

// Migrate creates the interviewers and interviews tables when missing.
// The applicants table is owned by the intake service; interviews reference
// applicants by id without a foreign key here.
func (r *implRepository) Migrate(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS interviewers (
			id    BIGSERIAL PRIMARY KEY,
			name  VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS interviews (
			id                       BIGSERIAL PRIMARY KEY,
			applicant_id             BIGINT NOT NULL,
			interviewer_id           BIGINT REFERENCES interviewers(id) ON DELETE SET NULL,
			event_title              VARCHAR(255),
			start_time               TIMESTAMP WITH TIME ZONE,
			end_time                 TIMESTAMP WITH TIME ZONE,
			google_calendar_event_id VARCHAR(255) UNIQUE,
			status                   VARCHAR(50) DEFAULT 'Pending'
		)`,
	}

	for _, q := range queries {
		if _, err := r.db.ExecContext(ctx, q); err != nil {
			r.l.Errorf(ctx, "%s: %v", r.dsn("Migrate"), err)
			return repository.ErrFailedToMigrate
		}
	}
	return nil
}
