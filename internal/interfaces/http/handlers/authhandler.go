package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resolveit/internal/application/user/usecases"
	"resolveit/internal/shared/logger"
	"resolveit/internal/shared/utils"
)

// TokenRefresher exchanges a valid refresh token for a new access token.
type TokenRefresher interface {
	Refresh(refreshToken string) (string, error)
}

// AuthHandler handles registration and login requests.
type AuthHandler struct {
	registerUC usecases.RegisterExecutor
	loginUC    usecases.LoginExecutor
	refresher  TokenRefresher
	logger     logger.Interface
}

func NewAuthHandler(registerUC usecases.RegisterExecutor, loginUC usecases.LoginExecutor, refresher TokenRefresher) *AuthHandler {
	return &AuthHandler{
		registerUC: registerUC,
		loginUC:    loginUC,
		refresher:  refresher,
		logger:     logger.NewLogger(),
	}
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required,username"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for register", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.RegisterCommand{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}

	result, err := h.registerUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Registration successful")
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for login", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	}

	result, err := h.loginUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", result)
}

// RefreshToken handles POST /auth/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	accessToken, err := h.refresher.Refresh(req.RefreshToken)
	if err != nil {
		h.logger.Warnw("refresh token rejected", "error", err)
		utils.ErrorResponse(c, http.StatusUnauthorized, "invalid refresh token")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"access_token": accessToken})
}
