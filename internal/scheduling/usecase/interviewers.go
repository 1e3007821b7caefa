package usecase

import (
	"context"

	"interview-scheduler/internal/scheduling"
	repo "interview-scheduler/internal/scheduling/repository"
)

// AddInterviewer registers a new interviewer after checking email uniqueness.
func (uc *implUseCase) AddInterviewer(ctx context.Context, input scheduling.AddInterviewerInput) (scheduling.Interviewer, error) {
	existing, err := uc.repo.GetOneInterviewer(ctx, repo.GetOneInterviewerOptions{Email: input.Email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.AddInterviewer GetOneInterviewer: %v", err)
		return scheduling.Interviewer{}, err
	}
	if existing.ID != 0 {
		return scheduling.Interviewer{}, scheduling.ErrDuplicateInterviewer
	}

	iv, err := uc.repo.CreateInterviewer(ctx, repo.CreateInterviewerOptions{
		Name:  input.Name,
		Email: input.Email,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.AddInterviewer CreateInterviewer: %v", err)
		return scheduling.Interviewer{}, err
	}
	return iv, nil
}

// ListInterviewers returns all registered interviewers.
func (uc *implUseCase) ListInterviewers(ctx context.Context) ([]scheduling.Interviewer, error) {
	return uc.repo.ListInterviewers(ctx)
}

// RemoveInterviewer deletes an interviewer by id.
func (uc *implUseCase) RemoveInterviewer(ctx context.Context, id int64) error {
	existing, err := uc.repo.GetOneInterviewer(ctx, repo.GetOneInterviewerOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.RemoveInterviewer GetOneInterviewer: %v", err)
		return err
	}
	if existing.ID == 0 {
		return scheduling.ErrInterviewerNotFound
	}
	return uc.repo.DeleteInterviewer(ctx, id)
}

// ListInterviewsByApplicant returns an applicant's interviews, most recent first.
func (uc *implUseCase) ListInterviewsByApplicant(ctx context.Context, applicantID int64) (scheduling.ListInterviewsOutput, error) {
	interviews, err := uc.repo.ListInterviewsByApplicant(ctx, applicantID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListInterviewsByApplicant: %v", err)
		return scheduling.ListInterviewsOutput{}, err
	}
	return scheduling.ListInterviewsOutput{Interviews: interviews}, nil
}
