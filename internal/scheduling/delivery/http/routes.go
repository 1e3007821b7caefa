package http

import (
	"github.com/gin-gonic/gin"

	"interview-scheduler/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	interviews := rg.Group("/interviews")
	{
		interviews.GET("/slots", mw.RateLimit(), h.FindSlots)
		interviews.POST("", mw.RateLimit(), h.Book)
	}

	applicants := rg.Group("/applicants")
	{
		applicants.GET("/:id/interviews", mw.RateLimit(), h.ListByApplicant)
	}

	interviewers := rg.Group("/interviewers")
	{
		interviewers.POST("", mw.RateLimit(), h.AddInterviewer)
		interviewers.GET("", mw.RateLimit(), h.ListInterviewers)
		interviewers.DELETE("/:id", mw.RateLimit(), h.RemoveInterviewer)
	}
}
