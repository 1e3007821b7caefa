package scheduling

import "time"

// InterviewStatus is the lifecycle state of an Interview record.
// Rows are only ever written after the calendar event exists, so Pending is
// never persisted; it exists for failure reporting while a booking is in
// flight.
type InterviewStatus string

const (
	StatusPending   InterviewStatus = "Pending"
	StatusScheduled InterviewStatus = "Scheduled"
)

// BusyInterval is a committed time range on an interviewer's calendar.
// Invariant: Start < End. Never persisted; rebuilt on every availability query.
type BusyInterval struct {
	Start time.Time
	End   time.Time
}

// CandidateSlot is a computed open start time. The end is implicit:
// Start + requested duration.
type CandidateSlot struct {
	Start time.Time
}

// Interview is a booked (or attempted) interview. ExternalEventID is the
// calendar event id and the idempotency key linking local state to the
// external system.
type Interview struct {
	ID              int64
	ApplicantID     int64
	InterviewerID   int64
	InterviewerName string // joined on reads, empty otherwise
	Title           string
	StartTime       time.Time
	EndTime         time.Time
	ExternalEventID string
	Status          InterviewStatus
}

// Interviewer is a registered interviewer whose calendar backs availability.
type Interviewer struct {
	ID    int64
	Name  string
	Email string
}

// --- UseCase inputs ---

type FindSlotsInput struct {
	InterviewerEmail string
	DurationMinutes  int
}

type BookInput struct {
	ApplicantID      int64
	ApplicantName    string
	ApplicantEmail   string
	InterviewerEmail string
	Start            time.Time
	DurationMinutes  int
	Description      string
}

type AddInterviewerInput struct {
	Name  string
	Email string
}

// --- UseCase outputs ---

type FindSlotsOutput struct {
	Slots       []CandidateSlot
	WindowStart time.Time
	WindowEnd   time.Time
}

type BookOutput struct {
	Interview    Interview
	MeetLink     string
	CalendarLink string
	// Recorded is false when the calendar event was created but the local
	// interview row could not be written (reconciliation gap).
	Recorded bool
}

type ListInterviewsOutput struct {
	Interviews []Interview
}
