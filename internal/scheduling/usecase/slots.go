package usecase

import (
	"context"
	"time"

	"interview-scheduler/internal/scheduling"
	"interview-scheduler/pkg/gcalendar"
	"interview-scheduler/pkg/workhours"
)

// FindSlots computes open slots for an interviewer from now until the end of
// the scan horizon. Every event on the interviewer's calendar counts as busy.
// An unreachable calendar yields zero slots rather than an error: wrong slots
// are worse than no slots, and the UI treats both the same.
func (uc *implUseCase) FindSlots(ctx context.Context, input scheduling.FindSlotsInput) (scheduling.FindSlotsOutput, error) {
	if input.DurationMinutes <= 0 {
		return scheduling.FindSlotsOutput{}, scheduling.ErrInvalidDuration
	}

	boundary := uc.policy.FirstBoundary(uc.now())
	windowEnd := boundary.AddDate(0, 0, uc.horizonDays)

	uc.l.Infof(ctx, "FindSlots: searching for %s from %s to %s",
		input.InterviewerEmail, boundary.Format(time.RFC3339), windowEnd.Format(time.RFC3339))

	fetchCtx, cancel := context.WithTimeout(ctx, busyFetchTimeout)
	defer cancel()

	events, err := uc.calendar.ListEvents(fetchCtx, gcalendar.ListEventsRequest{
		CalendarID: input.InterviewerEmail,
		TimeMin:    boundary,
		TimeMax:    windowEnd,
	})
	if err != nil {
		uc.l.Warnf(ctx, "FindSlots: busy fetch failed for %s, returning no slots: %v", input.InterviewerEmail, err)
		return scheduling.FindSlotsOutput{WindowStart: boundary, WindowEnd: windowEnd}, nil
	}

	busy := uc.normalizeBusyIntervals(ctx, events)
	duration := time.Duration(input.DurationMinutes) * time.Minute
	slots := generateSlots(boundary, windowEnd, duration, busy, uc.policy)

	uc.l.Infof(ctx, "FindSlots: %d busy intervals, %d open slots for %s",
		len(busy), len(slots), input.InterviewerEmail)

	return scheduling.FindSlotsOutput{
		Slots:       slots,
		WindowStart: boundary,
		WindowEnd:   windowEnd,
	}, nil
}

// generateSlots walks the window at the policy granularity and emits every
// cursor position whose [cursor, cursor+duration) range misses all busy
// intervals. Pure function of its inputs: calling it twice yields identical
// sequences, strictly increasing by start time.
//
// The end-of-day rule re-clamps only the cursor; a slot starting at 17:45 with
// a 30-minute duration is still offered even though it runs past 18:00. That
// mirrors the booking flow, which never re-validates the end time.
func generateSlots(start, windowEnd time.Time, duration time.Duration, busy []scheduling.BusyInterval, pol *workhours.Policy) []scheduling.CandidateSlot {
	var slots []scheduling.CandidateSlot

	cursor := start
	for cursor.Before(windowEnd) {
		if pol.IsWeekend(cursor) {
			cursor = pol.NextMondayStart(cursor)
			continue
		}
		if pol.AfterHours(cursor) {
			cursor = pol.NextDayStart(cursor)
			continue
		}

		candidateEnd := cursor.Add(duration)

		// Half-open overlap test: touching boundaries do not conflict.
		free := true
		for _, b := range busy {
			if cursor.Before(b.End) && candidateEnd.After(b.Start) {
				free = false
				break
			}
		}
		if free {
			slots = append(slots, scheduling.CandidateSlot{Start: cursor})
		}

		cursor = cursor.Add(pol.Granularity())
	}
	return slots
}
