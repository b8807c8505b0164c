package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resolveit/internal/application/user/usecases"
	"resolveit/internal/shared/logger"
	"resolveit/internal/shared/utils"
)

// UserHandler handles profile requests for the authenticated user.
type UserHandler struct {
	getProfileUC    usecases.GetProfileExecutor
	updateProfileUC usecases.UpdateProfileExecutor
	logger          logger.Interface
}

func NewUserHandler(getProfileUC usecases.GetProfileExecutor, updateProfileUC usecases.UpdateProfileExecutor) *UserHandler {
	return &UserHandler{
		getProfileUC:    getProfileUC,
		updateProfileUC: updateProfileUC,
		logger:          logger.NewLogger(),
	}
}

type UpdateProfileRequest struct {
	Username string `json:"username" binding:"required,username"`
	Email    string `json:"email" binding:"required,email"`
}

// GetProfile handles GET /users/me
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	result, err := h.getProfileUC.Execute(c.Request.Context(), usecases.GetProfileQuery{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateProfile handles PATCH /users/me
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update profile", "user_id", userID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.UpdateProfileCommand{
		UserID:   userID,
		Username: req.Username,
		Email:    req.Email,
	}

	result, err := h.updateProfileUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Profile updated successfully", result)
}

// currentUserID extracts the authenticated user ID set by the auth middleware.
func currentUserID(c *gin.Context) (uint, bool) {
	raw, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	userID, ok := raw.(uint)
	return userID, ok
}
