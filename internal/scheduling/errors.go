package scheduling

import "errors"

// Domain-specific errors for the scheduling package.
var (
	ErrSourceUnavailable    = errors.New("calendar source unavailable")
	ErrExternalCreateFailed = errors.New("failed to create calendar event")
	ErrInterviewerNotFound  = errors.New("interviewer not found")
	ErrDuplicateInterviewer = errors.New("interviewer email already registered")
	ErrInvalidDuration      = errors.New("duration must be positive")
	ErrInvalidSlot          = errors.New("slot start is required")
)
