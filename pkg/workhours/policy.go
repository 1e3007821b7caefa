package workhours

import (
	"fmt"
	"time"
)

// Policy holds the working-hours rules for slot scanning: a fixed IANA
// timezone, the daily working window and the scan granularity.
type Policy struct {
	loc          *time.Location
	dayStartHour int
	dayEndHour   int
	granularity  time.Duration
}

// New creates a Policy for the given IANA timezone string, e.g. "Asia/Kolkata".
func New(timezone string, dayStartHour, dayEndHour, granularityMinutes int) (*Policy, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	if dayStartHour < 0 || dayEndHour > 24 || dayStartHour >= dayEndHour {
		return nil, fmt.Errorf("invalid working window %d-%d", dayStartHour, dayEndHour)
	}
	if granularityMinutes <= 0 {
		return nil, fmt.Errorf("granularity must be positive, got %d", granularityMinutes)
	}
	return &Policy{
		loc:          loc,
		dayStartHour: dayStartHour,
		dayEndHour:   dayEndHour,
		granularity:  time.Duration(granularityMinutes) * time.Minute,
	}, nil
}

// Location returns the policy timezone.
func (p *Policy) Location() *time.Location { return p.loc }

// Granularity returns the scan step.
func (p *Policy) Granularity() time.Duration { return p.granularity }

// DayEndHour returns the end-of-day hour.
func (p *Policy) DayEndHour() int { return p.dayEndHour }

// FirstBoundary converts now into the policy timezone and clamps it to the
// first candidate boundary: past end-of-day rolls to the next day's start
// hour, before start-of-day clamps forward to the start hour, and anything in
// between rounds the minute up to the next granularity tick. Weekend handling
// is left to the scan loop so the very first iteration applies the same rule
// as every later one.
func (p *Policy) FirstBoundary(now time.Time) time.Time {
	t := now.In(p.loc)

	if t.Hour() >= p.dayEndHour {
		t = p.NextDayStart(t)
	}
	if t.Hour() < p.dayStartHour {
		t = time.Date(t.Year(), t.Month(), t.Day(), p.dayStartHour, 0, 0, 0, p.loc)
	}
	step := int(p.granularity / time.Minute)
	if rem := t.Minute() % step; rem != 0 {
		t = t.Add(time.Duration(step-rem) * time.Minute)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, p.loc)
}

// IsWeekend reports whether t falls on a Saturday or Sunday in the policy timezone.
func (p *Policy) IsWeekend(t time.Time) bool {
	wd := t.In(p.loc).Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// AfterHours reports whether t's hour is at or past the end-of-day hour.
func (p *Policy) AfterHours(t time.Time) bool {
	return t.In(p.loc).Hour() >= p.dayEndHour
}

// NextDayStart returns the following day at the start hour.
func (p *Policy) NextDayStart(t time.Time) time.Time {
	t = t.In(p.loc).AddDate(0, 0, 1)
	return time.Date(t.Year(), t.Month(), t.Day(), p.dayStartHour, 0, 0, 0, p.loc)
}

// NextMondayStart rolls a weekend timestamp forward to Monday at the start hour.
func (p *Policy) NextMondayStart(t time.Time) time.Time {
	t = t.In(p.loc)
	switch t.Weekday() {
	case time.Saturday:
		t = t.AddDate(0, 0, 2)
	case time.Sunday:
		t = t.AddDate(0, 0, 1)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), p.dayStartHour, 0, 0, 0, p.loc)
}
