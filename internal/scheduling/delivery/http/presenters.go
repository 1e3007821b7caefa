package http

import (
	"time"

	"interview-scheduler/internal/scheduling"
	pkgErrors "interview-scheduler/pkg/errors"
)

const defaultDurationMinutes = 30

// --- Request DTOs ---

type findSlotsReq struct {
	InterviewerEmail string `form:"interviewer_email" binding:"required,email"`
	DurationMinutes  int    `form:"duration_minutes"`
}

func (r *findSlotsReq) validate() error {
	if r.DurationMinutes == 0 {
		r.DurationMinutes = defaultDurationMinutes
	}
	if r.DurationMinutes < 0 {
		return pkgErrors.NewHTTPError(400, "duration_minutes must be positive")
	}
	return nil
}

func (r findSlotsReq) toInput() scheduling.FindSlotsInput {
	return scheduling.FindSlotsInput{
		InterviewerEmail: r.InterviewerEmail,
		DurationMinutes:  r.DurationMinutes,
	}
}

// ---

type bookReq struct {
	ApplicantID      int64  `json:"applicant_id"      binding:"required"`
	ApplicantName    string `json:"applicant_name"    binding:"required,min=1,max=255"`
	ApplicantEmail   string `json:"applicant_email"   binding:"required,email"`
	InterviewerEmail string `json:"interviewer_email" binding:"required,email"`
	StartTime        string `json:"start_time"        binding:"required"`
	DurationMinutes  int    `json:"duration_minutes"`
	Description      string `json:"description"       binding:"max=2000"`

	start time.Time
}

func (r *bookReq) validate() error {
	start, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return pkgErrors.NewHTTPError(400, "start_time must be RFC 3339")
	}
	r.start = start
	if r.DurationMinutes == 0 {
		r.DurationMinutes = defaultDurationMinutes
	}
	if r.DurationMinutes < 0 {
		return pkgErrors.NewHTTPError(400, "duration_minutes must be positive")
	}
	return nil
}

func (r bookReq) toInput() scheduling.BookInput {
	return scheduling.BookInput{
		ApplicantID:      r.ApplicantID,
		ApplicantName:    r.ApplicantName,
		ApplicantEmail:   r.ApplicantEmail,
		InterviewerEmail: r.InterviewerEmail,
		Start:            r.start,
		DurationMinutes:  r.DurationMinutes,
		Description:      r.Description,
	}
}

// ---

type addInterviewerReq struct {
	Name  string `json:"name"  binding:"required,min=1,max=255"`
	Email string `json:"email" binding:"required,email"`
}

func (r addInterviewerReq) validate() error { return nil }

func (r addInterviewerReq) toInput() scheduling.AddInterviewerInput {
	return scheduling.AddInterviewerInput{
		Name:  r.Name,
		Email: r.Email,
	}
}

// --- Response DTOs ---

type slotResp struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type findSlotsResp struct {
	Slots       []slotResp `json:"slots"`
	WindowStart string     `json:"window_start"`
	WindowEnd   string     `json:"window_end"`
}

func (h *handler) newFindSlotsResp(out scheduling.FindSlotsOutput, durationMinutes int) findSlotsResp {
	duration := time.Duration(durationMinutes) * time.Minute
	slots := make([]slotResp, len(out.Slots))
	for i, s := range out.Slots {
		slots[i] = slotResp{
			Start: s.Start.Format(time.RFC3339),
			End:   s.Start.Add(duration).Format(time.RFC3339),
		}
	}
	return findSlotsResp{
		Slots:       slots,
		WindowStart: out.WindowStart.Format(time.RFC3339),
		WindowEnd:   out.WindowEnd.Format(time.RFC3339),
	}
}

type interviewResp struct {
	ID              int64  `json:"id"`
	ApplicantID     int64  `json:"applicant_id"`
	InterviewerID   int64  `json:"interviewer_id"`
	InterviewerName string `json:"interviewer_name,omitempty"`
	Title           string `json:"title"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	EventID         string `json:"event_id"`
	Status          string `json:"status"`
}

func newInterviewResp(itv scheduling.Interview) interviewResp {
	return interviewResp{
		ID:              itv.ID,
		ApplicantID:     itv.ApplicantID,
		InterviewerID:   itv.InterviewerID,
		InterviewerName: itv.InterviewerName,
		Title:           itv.Title,
		StartTime:       itv.StartTime.Format(time.RFC3339),
		EndTime:         itv.EndTime.Format(time.RFC3339),
		EventID:         itv.ExternalEventID,
		Status:          string(itv.Status),
	}
}

type bookResp struct {
	Interview    interviewResp `json:"interview"`
	MeetLink     string        `json:"meet_link,omitempty"`
	CalendarLink string        `json:"calendar_link,omitempty"`
	Recorded     bool          `json:"recorded"`
}

func (h *handler) newBookResp(out scheduling.BookOutput) bookResp {
	return bookResp{
		Interview:    newInterviewResp(out.Interview),
		MeetLink:     out.MeetLink,
		CalendarLink: out.CalendarLink,
		Recorded:     out.Recorded,
	}
}

type listInterviewsResp struct {
	Interviews []interviewResp `json:"interviews"`
}

func (h *handler) newListInterviewsResp(out scheduling.ListInterviewsOutput) listInterviewsResp {
	interviews := make([]interviewResp, len(out.Interviews))
	for i, itv := range out.Interviews {
		interviews[i] = newInterviewResp(itv)
	}
	return listInterviewsResp{Interviews: interviews}
}

type interviewerResp struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func newInterviewerResp(iv scheduling.Interviewer) interviewerResp {
	return interviewerResp{
		ID:    iv.ID,
		Name:  iv.Name,
		Email: iv.Email,
	}
}

type listInterviewersResp struct {
	Interviewers []interviewerResp `json:"interviewers"`
}

func (h *handler) newListInterviewersResp(ivs []scheduling.Interviewer) listInterviewersResp {
	out := make([]interviewerResp, len(ivs))
	for i, iv := range ivs {
		out[i] = newInterviewerResp(iv)
	}
	return listInterviewersResp{Interviewers: out}
}
