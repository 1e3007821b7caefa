package usecase

import (
	"context"
	"time"

	"interview-scheduler/internal/scheduling/repository"
	"interview-scheduler/pkg/gcalendar"
	pkgLog "interview-scheduler/pkg/log"
	"interview-scheduler/pkg/workhours"
)

// CalendarClient abstracts the Google Calendar API for mocking.
type CalendarClient interface {
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

type implUseCase struct {
	l           pkgLog.Logger
	repo        repository.Repository
	calendar    CalendarClient
	policy      *workhours.Policy
	horizonDays int
	calendarID  string // calendar the booking events are inserted into

	now func() time.Time
}

// New creates a new scheduling UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	calendar CalendarClient,
	policy *workhours.Policy,
	horizonDays int,
	calendarID string,
) *implUseCase {
	if calendarID == "" {
		calendarID = "primary"
	}
	return &implUseCase{
		l:           l,
		repo:        repo,
		calendar:    calendar,
		policy:      policy,
		horizonDays: horizonDays,
		calendarID:  calendarID,
		now:         time.Now,
	}
}
