package feedback

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"resolveit/internal/application/feedback/usecases"
	"resolveit/internal/shared/authorization"
	"resolveit/internal/shared/errors"
	"resolveit/internal/shared/logger"
	"resolveit/internal/shared/utils"
)

type FeedbackHandler struct {
	submitUC  usecases.SubmitFeedbackExecutor
	listUC    usecases.ListFeedbackExecutor
	averageUC usecases.AverageRatingExecutor
	deleteUC  usecases.DeleteFeedbackExecutor
	logger    logger.Interface
}

func NewFeedbackHandler(
	submitUC usecases.SubmitFeedbackExecutor,
	listUC usecases.ListFeedbackExecutor,
	averageUC usecases.AverageRatingExecutor,
	deleteUC usecases.DeleteFeedbackExecutor,
) *FeedbackHandler {
	return &FeedbackHandler{
		submitUC:  submitUC,
		listUC:    listUC,
		averageUC: averageUC,
		deleteUC:  deleteUC,
		logger:    logger.NewLogger(),
	}
}

type SubmitFeedbackRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"omitempty,max=2000"`
}

// SubmitFeedback handles POST /complaints/:id/feedback
func (h *FeedbackHandler) SubmitFeedback(c *gin.Context) {
	complaintID, err := parseComplaintID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for submit feedback", "complaint_id", complaintID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := c.Get("user_id")
	cmd := usecases.SubmitFeedbackCommand{
		ComplaintID: complaintID,
		UserID:      userID.(uint),
		Rating:      req.Rating,
		Comment:     req.Comment,
	}

	result, err := h.submitUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Feedback submitted successfully")
}

// ListFeedback handles GET /complaints/:id/feedback
func (h *FeedbackHandler) ListFeedback(c *gin.Context) {
	complaintID, err := parseComplaintID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListFeedbackQuery{ComplaintID: complaintID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result, int64(len(result)))
}

// AverageRating handles GET /complaints/:id/feedback/average
func (h *FeedbackHandler) AverageRating(c *gin.Context) {
	complaintID, err := parseComplaintID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.averageUC.Execute(c.Request.Context(), usecases.AverageRatingQuery{ComplaintID: complaintID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// DeleteFeedback handles DELETE /feedback/:id
func (h *FeedbackHandler) DeleteFeedback(c *gin.Context) {
	feedbackID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := c.Get("user_id")
	cmd := usecases.DeleteFeedbackCommand{
		FeedbackID:    feedbackID,
		RequesterID:   userID.(uint),
		RequesterRole: authorization.ParseUserRole(c.GetString("user_role")),
	}

	if err := h.deleteUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func parseComplaintID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("Invalid complaint ID")
	}
	return uint(id), nil
}
