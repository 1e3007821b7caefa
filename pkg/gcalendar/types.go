package gcalendar

import "time"

// EventTime mirrors the Calendar API start/end shape: timed events carry an
// RFC3339 DateTime, all-day events carry a YYYY-MM-DD Date. Exactly one of
// the two is set on well-formed events.
type EventTime struct {
	DateTime string
	Date     string
}

// IsZero reports whether neither field is populated.
func (et EventTime) IsZero() bool { return et.DateTime == "" && et.Date == "" }

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	HangoutLink string
	Status      string
	Start       EventTime
	End         EventTime
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID     string
	Summary        string
	Description    string
	StartTime      time.Time
	EndTime        time.Time
	Timezone       string   // e.g. "Asia/Kolkata"
	Attendees      []string // attendee email addresses
	WithConference bool     // attach a Meet conference to the event
}
