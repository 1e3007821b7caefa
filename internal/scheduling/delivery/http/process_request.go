package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	pkgErrors "interview-scheduler/pkg/errors"
)

// processFindSlotsReq binds and validates the slot search query parameters.
func (h *handler) processFindSlotsReq(c *gin.Context) (findSlotsReq, error) {
	var req findSlotsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processBookReq binds and validates the booking request body.
func (h *handler) processBookReq(c *gin.Context) (bookReq, error) {
	var req bookReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processAddInterviewerReq binds and validates the interviewer registration body.
func (h *handler) processAddInterviewerReq(c *gin.Context) (addInterviewerReq, error) {
	var req addInterviewerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// pathID parses the numeric :id path parameter.
func pathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, pkgErrors.NewHTTPError(400, "id must be a positive integer")
	}
	return id, nil
}
