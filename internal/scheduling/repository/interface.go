package repository

import (
	"context"

	"interview-scheduler/internal/scheduling"
)

// Repository is the composed interface for the scheduling data store.
type Repository interface {
	InterviewRepository
	InterviewerRepository

	// Migrate creates the schema when it does not exist yet.
	Migrate(ctx context.Context) error
}

// InterviewRepository defines data access for booked interviews. Inserts are
// single rows keyed by the external calendar event id.
type InterviewRepository interface {
	CreateInterview(ctx context.Context, opt CreateInterviewOptions) (scheduling.Interview, error)
	ListInterviewsByApplicant(ctx context.Context, applicantID int64) ([]scheduling.Interview, error)
}

// InterviewerRepository defines data access for the interviewer registry.
type InterviewerRepository interface {
	CreateInterviewer(ctx context.Context, opt CreateInterviewerOptions) (scheduling.Interviewer, error)
	GetOneInterviewer(ctx context.Context, opt GetOneInterviewerOptions) (scheduling.Interviewer, error)
	ListInterviewers(ctx context.Context) ([]scheduling.Interviewer, error)
	DeleteInterviewer(ctx context.Context, id int64) error
}
