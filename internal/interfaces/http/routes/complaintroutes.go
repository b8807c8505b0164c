package routes

import (
	"github.com/gin-gonic/gin"

	complainthandlers "resolveit/internal/interfaces/http/handlers/complaint"
	feedbackhandlers "resolveit/internal/interfaces/http/handlers/feedback"
	"resolveit/internal/interfaces/http/middleware"
	"resolveit/internal/shared/authorization"
)

type ComplaintRouteConfig struct {
	ComplaintHandler *complainthandlers.ComplaintHandler
	FeedbackHandler  *feedbackhandlers.FeedbackHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

func SetupComplaintRoutes(engine *gin.Engine, cfg *ComplaintRouteConfig) {
	complaints := engine.Group("/complaints")
	complaints.Use(cfg.AuthMiddleware.RequireAuth())
	{
		complaints.POST("", cfg.ComplaintHandler.SubmitComplaint)
		complaints.GET("", cfg.ComplaintHandler.ListComplaints)

		// Specific action endpoints come before the bare /:id route.
		complaints.PATCH("/:id/status",
			authorization.RequireAdmin(),
			cfg.ComplaintHandler.UpdateStatus)
		complaints.POST("/:id/assign",
			authorization.RequireAdmin(),
			cfg.ComplaintHandler.AssignComplaint)

		complaints.POST("/:id/feedback", cfg.FeedbackHandler.SubmitFeedback)
		complaints.GET("/:id/feedback", cfg.FeedbackHandler.ListFeedback)
		complaints.GET("/:id/feedback/average", cfg.FeedbackHandler.AverageRating)

		complaints.GET("/:id", cfg.ComplaintHandler.GetComplaint)
	}
}
