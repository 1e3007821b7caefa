package http

import (
	"github.com/gin-gonic/gin"

	"interview-scheduler/pkg/response"
)

// FindSlots godoc
// @Summary     List open interview slots
// @Description Computes open slots for an interviewer over the scan horizon. An unreachable calendar yields an empty slot list.
// @Tags        Interviews
// @Accept      json
// @Produce     json
// @Param       interviewer_email query string true  "Interviewer's calendar email"
// @Param       duration_minutes  query int    false "Slot length in minutes (default: 30)"
// @Success     200 {object} findSlotsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/interviews/slots [GET]
func (h *handler) FindSlots(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processFindSlotsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.FindSlots(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.FindSlots: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newFindSlotsResp(output, req.DurationMinutes))
}

// Book godoc
// @Summary     Book an interview
// @Description Creates the calendar event with a Meet link and records the interview. Safe to retry with the same slot if the calendar insert failed.
// @Tags        Interviews
// @Accept      json
// @Produce     json
// @Param       body body bookReq true "Booking data"
// @Success     200 {object} bookResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Interviewer Not Found"
// @Failure     502 {object} response.Resp "Calendar Insert Failed"
// @Router      /api/v1/interviews [POST]
func (h *handler) Book(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processBookReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Book(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Book: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newBookResp(output))
}

// ListByApplicant godoc
// @Summary     List an applicant's interviews
// @Description Returns all interviews recorded for an applicant, most recent first.
// @Tags        Interviews
// @Accept      json
// @Produce     json
// @Param       id path int true "Applicant ID"
// @Success     200 {object} listInterviewsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/applicants/{id}/interviews [GET]
func (h *handler) ListByApplicant(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := pathID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ListInterviewsByApplicant(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListInterviewsByApplicant: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListInterviewsResp(output))
}

// AddInterviewer godoc
// @Summary     Register an interviewer
// @Description Adds an interviewer whose calendar backs availability queries.
// @Tags        Interviewers
// @Accept      json
// @Produce     json
// @Param       body body addInterviewerReq true "Interviewer data"
// @Success     200 {object} interviewerResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Conflict - email already registered"
// @Router      /api/v1/interviewers [POST]
func (h *handler) AddInterviewer(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAddInterviewerReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	iv, err := h.uc.AddInterviewer(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AddInterviewer: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newInterviewerResp(iv))
}

// ListInterviewers godoc
// @Summary     List interviewers
// @Description Returns all registered interviewers.
// @Tags        Interviewers
// @Accept      json
// @Produce     json
// @Success     200 {object} listInterviewersResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/interviewers [GET]
func (h *handler) ListInterviewers(c *gin.Context) {
	ctx := c.Request.Context()

	ivs, err := h.uc.ListInterviewers(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListInterviewers: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListInterviewersResp(ivs))
}

// RemoveInterviewer godoc
// @Summary     Remove an interviewer
// @Description Deletes an interviewer. Past interviews keep their rows with the interviewer reference cleared.
// @Tags        Interviewers
// @Accept      json
// @Produce     json
// @Param       id path int true "Interviewer ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/interviewers/{id} [DELETE]
func (h *handler) RemoveInterviewer(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := pathID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.RemoveInterviewer(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.RemoveInterviewer: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}
