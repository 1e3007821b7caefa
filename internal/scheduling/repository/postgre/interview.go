package postgre

import (
	"context"

	"interview-scheduler/internal/scheduling"
	repo "interview-scheduler/internal/scheduling/repository"
)

// CreateInterview inserts a booked interview keyed by the external calendar
// event id and returns the created row.
func (r *implRepository) CreateInterview(ctx context.Context, opt repo.CreateInterviewOptions) (scheduling.Interview, error) {
	const query = `
		INSERT INTO interviews (applicant_id, interviewer_id, event_title, start_time, end_time, google_calendar_event_id, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, applicant_id, interviewer_id, event_title, start_time, end_time, google_calendar_event_id, status`

	var itv scheduling.Interview
	err := r.db.QueryRowContext(ctx, query,
		opt.ApplicantID, opt.InterviewerID, opt.Title, opt.StartTime, opt.EndTime, opt.ExternalEventID, opt.Status,
	).Scan(
		&itv.ID, &itv.ApplicantID, &itv.InterviewerID, &itv.Title,
		&itv.StartTime, &itv.EndTime, &itv.ExternalEventID, &itv.Status,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateInterview"), err)
		return scheduling.Interview{}, repo.ErrFailedToInsert
	}
	return itv, nil
}

// ListInterviewsByApplicant returns an applicant's interviews most-recent-first,
// with the interviewer name joined in.
func (r *implRepository) ListInterviewsByApplicant(ctx context.Context, applicantID int64) ([]scheduling.Interview, error) {
	const query = `
		SELECT i.id, i.applicant_id, COALESCE(i.interviewer_id, 0), COALESCE(iv.name, ''),
		       i.event_title, i.start_time, i.end_time, i.google_calendar_event_id, i.status
		FROM interviews i
		LEFT JOIN interviewers iv ON i.interviewer_id = iv.id
		WHERE i.applicant_id = $1
		ORDER BY i.start_time DESC`

	rows, err := r.db.QueryContext(ctx, query, applicantID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListInterviewsByApplicant"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var out []scheduling.Interview
	for rows.Next() {
		var itv scheduling.Interview
		if err := rows.Scan(
			&itv.ID, &itv.ApplicantID, &itv.InterviewerID, &itv.InterviewerName,
			&itv.Title, &itv.StartTime, &itv.EndTime, &itv.ExternalEventID, &itv.Status,
		); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListInterviewsByApplicant"), err)
			return nil, repo.ErrFailedToList
		}
		out = append(out, itv)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListInterviewsByApplicant"), err)
		return nil, repo.ErrFailedToList
	}
	return out, nil
}
