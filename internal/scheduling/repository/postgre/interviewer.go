package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"interview-scheduler/internal/scheduling"
	repo "interview-scheduler/internal/scheduling/repository"
)

// CreateInterviewer registers a new interviewer.
func (r *implRepository) CreateInterviewer(ctx context.Context, opt repo.CreateInterviewerOptions) (scheduling.Interviewer, error) {
	const query = `
		INSERT INTO interviewers (name, email)
		VALUES ($1, $2)
		RETURNING id, name, email`

	var iv scheduling.Interviewer
	err := r.db.QueryRowContext(ctx, query, opt.Name, opt.Email).Scan(&iv.ID, &iv.Name, &iv.Email)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateInterviewer"), err)
		return scheduling.Interviewer{}, repo.ErrFailedToInsert
	}
	return iv, nil
}

// GetOneInterviewer retrieves a single interviewer by the provided filters
// (AND condition). Returns the zero value (ID == 0) when not found — do NOT
// return an error for not-found.
func (r *implRepository) GetOneInterviewer(ctx context.Context, opt repo.GetOneInterviewerOptions) (scheduling.Interviewer, error) {
	mods, args := r.buildGetOneInterviewerQuery(opt)
	query := fmt.Sprintf("SELECT id, name, email FROM interviewers WHERE %s LIMIT 1", mods)

	var iv scheduling.Interviewer
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&iv.ID, &iv.Name, &iv.Email)
	if err == sql.ErrNoRows {
		return scheduling.Interviewer{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneInterviewer"), err)
		return scheduling.Interviewer{}, repo.ErrFailedToGet
	}
	return iv, nil
}

// ListInterviewers returns all registered interviewers ordered by name.
func (r *implRepository) ListInterviewers(ctx context.Context) ([]scheduling.Interviewer, error) {
	const query = `SELECT id, name, email FROM interviewers ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListInterviewers"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var out []scheduling.Interviewer
	for rows.Next() {
		var iv scheduling.Interviewer
		if err := rows.Scan(&iv.ID, &iv.Name, &iv.Email); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListInterviewers"), err)
			return nil, repo.ErrFailedToList
		}
		out = append(out, iv)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListInterviewers"), err)
		return nil, repo.ErrFailedToList
	}
	return out, nil
}

// DeleteInterviewer removes an interviewer by id. Booked interviews keep
// their rows with interviewer_id nulled by the schema.
func (r *implRepository) DeleteInterviewer(ctx context.Context, id int64) error {
	const query = `DELETE FROM interviewers WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteInterviewer"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// buildGetOneInterviewerQuery builds WHERE clause + args for GetOneInterviewer.
func (r *implRepository) buildGetOneInterviewerQuery(opt repo.GetOneInterviewerOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != 0 {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.Email != "" {
		conditions = append(conditions, fmt.Sprintf("email = $%d", idx))
		args = append(args, opt.Email)
		idx++
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}
