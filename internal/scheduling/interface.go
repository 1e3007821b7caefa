package scheduling

import "context"

// UseCase defines the business logic interface for the scheduling domain.
type UseCase interface {
	// FindSlots computes open interview slots for an interviewer over the
	// configured horizon. An unreachable calendar yields zero slots, not an
	// error; callers cannot tell the two apart.
	FindSlots(ctx context.Context, input FindSlotsInput) (FindSlotsOutput, error)

	// Book creates the external calendar event for a confirmed slot and then
	// records the interview locally. The external write is authoritative: if
	// it fails nothing is persisted and the call is retryable; if only the
	// local write fails the booking is still reported successful.
	Book(ctx context.Context, input BookInput) (BookOutput, error)

	// ListInterviewsByApplicant returns an applicant's interviews, most recent first.
	ListInterviewsByApplicant(ctx context.Context, applicantID int64) (ListInterviewsOutput, error)

	// Interviewer registry
	AddInterviewer(ctx context.Context, input AddInterviewerInput) (Interviewer, error)
	ListInterviewers(ctx context.Context) ([]Interviewer, error)
	RemoveInterviewer(ctx context.Context, id int64) error
}
