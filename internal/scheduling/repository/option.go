package repository

import (
	"time"

	"interview-scheduler/internal/scheduling"
)

// CreateInterviewOptions holds parameters for inserting a booked interview.
type CreateInterviewOptions struct {
	ApplicantID     int64
	InterviewerID   int64
	Title           string
	StartTime       time.Time
	EndTime         time.Time
	ExternalEventID string
	Status          scheduling.InterviewStatus
}

// CreateInterviewerOptions holds parameters for registering an interviewer.
type CreateInterviewerOptions struct {
	Name  string
	Email string
}

// GetOneInterviewerOptions holds filter parameters for fetching a single
// interviewer. All non-zero fields are applied as AND conditions.
type GetOneInterviewerOptions struct {
	ID    int64
	Email string
}
