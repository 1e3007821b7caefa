package usecase

import (
	"context"
	"fmt"
	"time"

	"interview-scheduler/internal/scheduling"
	repo "interview-scheduler/internal/scheduling/repository"
	"interview-scheduler/pkg/gcalendar"
)

// Book commits one confirmed slot. The calendar insert is the authoritative
// side-effect; the local row is written only after it succeeds, keyed by the
// returned event id. There is no compensating delete: removing a just-created
// event would yank invitations attendees may have already seen, so a failed
// local write leaves the event standing and is surfaced as a reconciliation
// gap instead.
func (uc *implUseCase) Book(ctx context.Context, input scheduling.BookInput) (scheduling.BookOutput, error) {
	if input.DurationMinutes <= 0 {
		return scheduling.BookOutput{}, scheduling.ErrInvalidDuration
	}
	if input.Start.IsZero() {
		return scheduling.BookOutput{}, scheduling.ErrInvalidSlot
	}

	interviewer, err := uc.repo.GetOneInterviewer(ctx, repo.GetOneInterviewerOptions{Email: input.InterviewerEmail})
	if err != nil {
		return scheduling.BookOutput{}, err
	}
	if interviewer.ID == 0 {
		return scheduling.BookOutput{}, scheduling.ErrInterviewerNotFound
	}

	end := input.Start.Add(time.Duration(input.DurationMinutes) * time.Minute)
	title := fmt.Sprintf("Interview: %s", input.ApplicantName)

	uc.l.Infof(ctx, "Book: creating event %q with %s for applicant %d", title, input.InterviewerEmail, input.ApplicantID)

	// From here the operation must run to completion even if the caller hangs
	// up: abandoning the insert mid-flight risks an event the coordinator
	// never learns about.
	opCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), eventCreateTimeout)
	defer cancel()

	created, err := uc.calendar.CreateEvent(opCtx, gcalendar.CreateEventRequest{
		CalendarID:     uc.calendarID,
		Summary:        title,
		Description:    input.Description,
		StartTime:      input.Start,
		EndTime:        end,
		Timezone:       uc.policy.Location().String(),
		Attendees:      []string{input.InterviewerEmail, input.ApplicantEmail},
		WithConference: true,
	})
	if err != nil {
		uc.l.Errorf(ctx, "Book: calendar insert failed for applicant %d: %v", input.ApplicantID, err)
		return scheduling.BookOutput{}, fmt.Errorf("%w: %v", scheduling.ErrExternalCreateFailed, err)
	}

	itv, err := uc.repo.CreateInterview(opCtx, repo.CreateInterviewOptions{
		ApplicantID:     input.ApplicantID,
		InterviewerID:   interviewer.ID,
		Title:           created.Summary,
		StartTime:       input.Start,
		EndTime:         end,
		ExternalEventID: created.ID,
		Status:          scheduling.StatusScheduled,
	})
	if err != nil {
		// The booking succeeded from the user's perspective; the local index
		// is stale until an operator reconciles against the event id.
		uc.l.Errorf(ctx, "Book: event %s created but interview row not written (reconciliation needed), applicant=%d interviewer=%d: %v",
			created.ID, input.ApplicantID, interviewer.ID, err)
		return scheduling.BookOutput{
			Interview: scheduling.Interview{
				ApplicantID:     input.ApplicantID,
				InterviewerID:   interviewer.ID,
				InterviewerName: interviewer.Name,
				Title:           created.Summary,
				StartTime:       input.Start,
				EndTime:         end,
				ExternalEventID: created.ID,
				Status:          scheduling.StatusScheduled,
			},
			MeetLink:     created.HangoutLink,
			CalendarLink: created.HtmlLink,
			Recorded:     false,
		}, nil
	}

	uc.l.Infof(ctx, "Book: interview %d recorded, event_id=%s", itv.ID, created.ID)

	itv.InterviewerName = interviewer.Name
	return scheduling.BookOutput{
		Interview:    itv,
		MeetLink:     created.HangoutLink,
		CalendarLink: created.HtmlLink,
		Recorded:     true,
	}, nil
}
