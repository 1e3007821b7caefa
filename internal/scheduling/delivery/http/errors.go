package http

import (
	"errors"

	"interview-scheduler/internal/scheduling"
	pkgErrors "interview-scheduler/pkg/errors"
	"interview-scheduler/pkg/response"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, scheduling.ErrInvalidDuration),
		errors.Is(err, scheduling.ErrInvalidSlot):
		return pkgErrors.NewHTTPError(400, err.Error())
	case errors.Is(err, scheduling.ErrInterviewerNotFound):
		return pkgErrors.NewHTTPError(404, "interviewer not found")
	case errors.Is(err, scheduling.ErrDuplicateInterviewer):
		return pkgErrors.NewHTTPError(409, "interviewer email already registered")
	case errors.Is(err, scheduling.ErrExternalCreateFailed):
		return pkgErrors.NewHTTPError(502, "could not create the calendar event, the slot was not booked")
	default:
		return pkgErrors.NewHTTPError(response.InternalServerErrorCode, response.DefaultErrorMessage)
	}
}
