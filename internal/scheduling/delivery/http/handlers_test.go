package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"interview-scheduler/internal/scheduling"
)

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

type mockUseCase struct {
	findSlotsOut scheduling.FindSlotsOutput
	findSlotsErr error
	findSlotsIn  scheduling.FindSlotsInput

	bookOut scheduling.BookOutput
	bookErr error
	bookIn  scheduling.BookInput

	listOut scheduling.ListInterviewsOutput
	listErr error

	interviewers []scheduling.Interviewer
	addErr       error
	removeErr    error
	removedID    int64
}

func (m *mockUseCase) FindSlots(ctx context.Context, input scheduling.FindSlotsInput) (scheduling.FindSlotsOutput, error) {
	m.findSlotsIn = input
	return m.findSlotsOut, m.findSlotsErr
}

func (m *mockUseCase) Book(ctx context.Context, input scheduling.BookInput) (scheduling.BookOutput, error) {
	m.bookIn = input
	return m.bookOut, m.bookErr
}

func (m *mockUseCase) ListInterviewsByApplicant(ctx context.Context, applicantID int64) (scheduling.ListInterviewsOutput, error) {
	return m.listOut, m.listErr
}

func (m *mockUseCase) AddInterviewer(ctx context.Context, input scheduling.AddInterviewerInput) (scheduling.Interviewer, error) {
	if m.addErr != nil {
		return scheduling.Interviewer{}, m.addErr
	}
	return scheduling.Interviewer{ID: 1, Name: input.Name, Email: input.Email}, nil
}

func (m *mockUseCase) ListInterviewers(ctx context.Context) ([]scheduling.Interviewer, error) {
	return m.interviewers, nil
}

func (m *mockUseCase) RemoveInterviewer(ctx context.Context, id int64) error {
	m.removedID = id
	return m.removeErr
}

func newTestRouter(uc scheduling.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(&mockLogger{}, uc)
	r := gin.New()
	v1 := r.Group("/api/v1")

	// Routes registered directly so the tests exercise handlers without the
	// rate limiter in the way.
	v1.GET("/interviews/slots", h.FindSlots)
	v1.POST("/interviews", h.Book)
	v1.GET("/applicants/:id/interviews", h.ListByApplicant)
	v1.POST("/interviewers", h.AddInterviewer)
	v1.GET("/interviewers", h.ListInterviewers)
	v1.DELETE("/interviewers/:id", h.RemoveInterviewer)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestFindSlotsHandler(t *testing.T) {
	start := time.Date(2025, 6, 16, 9, 0, 0, 0, time.UTC)
	uc := &mockUseCase{
		findSlotsOut: scheduling.FindSlotsOutput{
			Slots:       []scheduling.CandidateSlot{{Start: start}},
			WindowStart: start,
			WindowEnd:   start.AddDate(0, 0, 7),
		},
	}
	r := newTestRouter(uc)

	w := doJSON(t, r, http.MethodGet, "/api/v1/interviews/slots?interviewer_email=ada@example.com&duration_minutes=45", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if uc.findSlotsIn.InterviewerEmail != "ada@example.com" || uc.findSlotsIn.DurationMinutes != 45 {
		t.Errorf("usecase input = %+v", uc.findSlotsIn)
	}

	var resp struct {
		Data struct {
			Slots []struct {
				Start string `json:"start"`
				End   string `json:"end"`
			} `json:"slots"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Data.Slots) != 1 {
		t.Fatalf("slots = %+v", resp.Data.Slots)
	}
	if resp.Data.Slots[0].End != start.Add(45*time.Minute).Format(time.RFC3339) {
		t.Errorf("slot end = %s, want start + 45m", resp.Data.Slots[0].End)
	}
}

func TestFindSlotsHandler_MissingEmail(t *testing.T) {
	r := newTestRouter(&mockUseCase{})

	w := doJSON(t, r, http.MethodGet, "/api/v1/interviews/slots", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestFindSlotsHandler_DefaultDuration(t *testing.T) {
	uc := &mockUseCase{}
	r := newTestRouter(uc)

	w := doJSON(t, r, http.MethodGet, "/api/v1/interviews/slots?interviewer_email=ada@example.com", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if uc.findSlotsIn.DurationMinutes != 30 {
		t.Errorf("duration = %d, want default 30", uc.findSlotsIn.DurationMinutes)
	}
}

func TestBookHandler(t *testing.T) {
	uc := &mockUseCase{
		bookOut: scheduling.BookOutput{
			Interview: scheduling.Interview{
				ID:              3,
				ApplicantID:     42,
				ExternalEventID: "evt-1",
				Status:          scheduling.StatusScheduled,
			},
			MeetLink: "https://meet.google.com/abc-defg-hij",
			Recorded: true,
		},
	}
	r := newTestRouter(uc)

	body := `{
		"applicant_id": 42,
		"applicant_name": "Jane Doe",
		"applicant_email": "jane@example.com",
		"interviewer_email": "ada@example.com",
		"start_time": "2025-06-16T10:00:00+05:30",
		"duration_minutes": 30
	}`
	w := doJSON(t, r, http.MethodPost, "/api/v1/interviews", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if uc.bookIn.ApplicantID != 42 || uc.bookIn.InterviewerEmail != "ada@example.com" {
		t.Errorf("usecase input = %+v", uc.bookIn)
	}
	if uc.bookIn.Start.IsZero() {
		t.Error("start time not parsed")
	}

	var resp struct {
		Data struct {
			Recorded bool   `json:"recorded"`
			MeetLink string `json:"meet_link"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Data.Recorded || resp.Data.MeetLink == "" {
		t.Errorf("resp data = %+v", resp.Data)
	}
}

func TestBookHandler_BadStartTime(t *testing.T) {
	r := newTestRouter(&mockUseCase{})

	body := `{
		"applicant_id": 42,
		"applicant_name": "Jane Doe",
		"applicant_email": "jane@example.com",
		"interviewer_email": "ada@example.com",
		"start_time": "16/06/2025 10:00"
	}`
	w := doJSON(t, r, http.MethodPost, "/api/v1/interviews", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestBookHandler_ErrorMapping(t *testing.T) {
	tcs := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"interviewer not found", scheduling.ErrInterviewerNotFound, http.StatusNotFound},
		{"calendar insert failed", scheduling.ErrExternalCreateFailed, http.StatusBadGateway},
		{"invalid duration", scheduling.ErrInvalidDuration, http.StatusBadRequest},
	}

	body := `{
		"applicant_id": 42,
		"applicant_name": "Jane Doe",
		"applicant_email": "jane@example.com",
		"interviewer_email": "ada@example.com",
		"start_time": "2025-06-16T10:00:00+05:30"
	}`

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(&mockUseCase{bookErr: tc.err})
			w := doJSON(t, r, http.MethodPost, "/api/v1/interviews", body)
			if w.Code != tc.wantCode {
				t.Fatalf("status = %d, want %d, body = %s", w.Code, tc.wantCode, w.Body.String())
			}
		})
	}
}

func TestAddInterviewerHandler_Duplicate(t *testing.T) {
	r := newTestRouter(&mockUseCase{addErr: scheduling.ErrDuplicateInterviewer})

	w := doJSON(t, r, http.MethodPost, "/api/v1/interviewers", `{"name":"Ada","email":"ada@example.com"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", w.Code)
	}
}

func TestRemoveInterviewerHandler(t *testing.T) {
	uc := &mockUseCase{}
	r := newTestRouter(uc)

	w := doJSON(t, r, http.MethodDelete, "/api/v1/interviewers/7", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if uc.removedID != 7 {
		t.Errorf("removed id = %d, want 7", uc.removedID)
	}

	w = doJSON(t, r, http.MethodDelete, "/api/v1/interviewers/abc", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("non-numeric id: status = %d, want 400", w.Code)
	}
}
