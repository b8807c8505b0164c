package routes

import (
	"github.com/gin-gonic/gin"

	feedbackhandlers "resolveit/internal/interfaces/http/handlers/feedback"
	"resolveit/internal/interfaces/http/middleware"
)

type FeedbackRouteConfig struct {
	FeedbackHandler *feedbackhandlers.FeedbackHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// SetupFeedbackRoutes configures feedback routes not nested under complaints.
func SetupFeedbackRoutes(engine *gin.Engine, cfg *FeedbackRouteConfig) {
	feedback := engine.Group("/feedback")
	feedback.Use(cfg.AuthMiddleware.RequireAuth())
	{
		feedback.DELETE("/:id", cfg.FeedbackHandler.DeleteFeedback)
	}
}
