package usecase

import (
	"context"
	"time"

	"interview-scheduler/internal/scheduling"
	"interview-scheduler/pkg/gcalendar"
)

// normalizeBusyIntervals converts raw calendar events into uniform zoned busy
// intervals. Timed events keep their own offset; all-day events are anchored
// at midnight in the policy timezone, so a one-day event covers exactly that
// day (the calendar API's end date is already exclusive). Entries missing a
// start or end, or that fail to parse, are dropped with a warning — a bad
// entry must not take the whole query down.
func (uc *implUseCase) normalizeBusyIntervals(ctx context.Context, events []gcalendar.Event) []scheduling.BusyInterval {
	loc := uc.policy.Location()

	var busy []scheduling.BusyInterval
	for _, ev := range events {
		if ev.Start.IsZero() || ev.End.IsZero() {
			uc.l.Warnf(ctx, "normalizeBusyIntervals: dropping event %q with missing start or end", ev.ID)
			continue
		}

		start, err := parseEventTime(ev.Start, loc)
		if err != nil {
			uc.l.Warnf(ctx, "normalizeBusyIntervals: dropping event %q with bad start: %v", ev.ID, err)
			continue
		}
		end, err := parseEventTime(ev.End, loc)
		if err != nil {
			uc.l.Warnf(ctx, "normalizeBusyIntervals: dropping event %q with bad end: %v", ev.ID, err)
			continue
		}
		if !start.Before(end) {
			uc.l.Warnf(ctx, "normalizeBusyIntervals: dropping event %q with inverted range", ev.ID)
			continue
		}

		busy = append(busy, scheduling.BusyInterval{Start: start, End: end})
	}
	return busy
}

func parseEventTime(et gcalendar.EventTime, loc *time.Location) (time.Time, error) {
	if et.DateTime != "" {
		return time.Parse(time.RFC3339, et.DateTime)
	}
	return time.ParseInLocation("2006-01-02", et.Date, loc)
}
