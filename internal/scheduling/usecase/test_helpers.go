package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"interview-scheduler/internal/scheduling"
	repo "interview-scheduler/internal/scheduling/repository"
	"interview-scheduler/pkg/gcalendar"
	"interview-scheduler/pkg/workhours"
)

// mock dependencies shared by the usecase tests

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockCalendar struct {
	events    []gcalendar.Event
	listErr   error
	createErr error

	listCalls   int
	createCalls int
	lastCreate  gcalendar.CreateEventRequest
	createdID   string
}

func (m *mockCalendar) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	m.listCalls++
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.events, nil
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	m.createCalls++
	m.lastCreate = req
	if m.createErr != nil {
		return nil, m.createErr
	}
	id := m.createdID
	if id == "" {
		id = "evt-created-1"
	}
	return &gcalendar.Event{
		ID:          id,
		Summary:     req.Summary,
		HtmlLink:    "https://calendar.google.com/" + id,
		HangoutLink: "https://meet.google.com/abc-defg-hij",
		Status:      "confirmed",
	}, nil
}

type mockRepository struct {
	interviewers []scheduling.Interviewer

	insertErr  error
	interviews []scheduling.Interview
	nextID     int64
}

func (m *mockRepository) Migrate(ctx context.Context) error { return nil }

func (m *mockRepository) CreateInterview(ctx context.Context, opt repo.CreateInterviewOptions) (scheduling.Interview, error) {
	if m.insertErr != nil {
		return scheduling.Interview{}, m.insertErr
	}
	for _, itv := range m.interviews {
		if itv.ExternalEventID == opt.ExternalEventID {
			return scheduling.Interview{}, errors.New("duplicate external event id")
		}
	}
	m.nextID++
	itv := scheduling.Interview{
		ID:              m.nextID,
		ApplicantID:     opt.ApplicantID,
		InterviewerID:   opt.InterviewerID,
		Title:           opt.Title,
		StartTime:       opt.StartTime,
		EndTime:         opt.EndTime,
		ExternalEventID: opt.ExternalEventID,
		Status:          opt.Status,
	}
	m.interviews = append(m.interviews, itv)
	return itv, nil
}

func (m *mockRepository) ListInterviewsByApplicant(ctx context.Context, applicantID int64) ([]scheduling.Interview, error) {
	var out []scheduling.Interview
	for _, itv := range m.interviews {
		if itv.ApplicantID == applicantID {
			out = append(out, itv)
		}
	}
	return out, nil
}

func (m *mockRepository) CreateInterviewer(ctx context.Context, opt repo.CreateInterviewerOptions) (scheduling.Interviewer, error) {
	iv := scheduling.Interviewer{ID: int64(len(m.interviewers) + 1), Name: opt.Name, Email: opt.Email}
	m.interviewers = append(m.interviewers, iv)
	return iv, nil
}

func (m *mockRepository) GetOneInterviewer(ctx context.Context, opt repo.GetOneInterviewerOptions) (scheduling.Interviewer, error) {
	for _, iv := range m.interviewers {
		if (opt.ID != 0 && iv.ID == opt.ID) || (opt.Email != "" && iv.Email == opt.Email) {
			return iv, nil
		}
	}
	return scheduling.Interviewer{}, nil
}

func (m *mockRepository) ListInterviewers(ctx context.Context) ([]scheduling.Interviewer, error) {
	return m.interviewers, nil
}

func (m *mockRepository) DeleteInterviewer(ctx context.Context, id int64) error {
	for i, iv := range m.interviewers {
		if iv.ID == id {
			m.interviewers = append(m.interviewers[:i], m.interviewers[i+1:]...)
			return nil
		}
	}
	return nil
}

// test fixtures

func testPolicy(t *testing.T) *workhours.Policy {
	t.Helper()
	p, err := workhours.New("Asia/Kolkata", 9, 18, 15)
	if err != nil {
		t.Fatalf("policy: %v", err)
	}
	return p
}

func newTestUseCase(t *testing.T, r *mockRepository, cal *mockCalendar, now time.Time) *implUseCase {
	t.Helper()
	uc := New(&mockLogger{}, r, cal, testPolicy(t), 7, "primary")
	uc.now = func() time.Time { return now }
	return uc
}
