package complaint

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"resolveit/internal/application/complaint/usecases"
	"resolveit/internal/shared/authorization"
	"resolveit/internal/shared/errors"
	"resolveit/internal/shared/logger"
	"resolveit/internal/shared/utils"
)

type ComplaintHandler struct {
	submitUC       usecases.SubmitComplaintExecutor
	getUC          usecases.GetComplaintExecutor
	listUserUC     usecases.ListUserComplaintsExecutor
	listAllUC      usecases.ListAllComplaintsExecutor
	updateStatusUC usecases.UpdateStatusExecutor
	assignUC       usecases.AssignComplaintExecutor
	logger         logger.Interface
}

func NewComplaintHandler(
	submitUC usecases.SubmitComplaintExecutor,
	getUC usecases.GetComplaintExecutor,
	listUserUC usecases.ListUserComplaintsExecutor,
	listAllUC usecases.ListAllComplaintsExecutor,
	updateStatusUC usecases.UpdateStatusExecutor,
	assignUC usecases.AssignComplaintExecutor,
) *ComplaintHandler {
	return &ComplaintHandler{
		submitUC:       submitUC,
		getUC:          getUC,
		listUserUC:     listUserUC,
		listAllUC:      listAllUC,
		updateStatusUC: updateStatusUC,
		assignUC:       assignUC,
		logger:         logger.NewLogger(),
	}
}

// SubmitComplaint handles POST /complaints
func (h *ComplaintHandler) SubmitComplaint(c *gin.Context) {
	var req SubmitComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for submit complaint", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := c.Get("user_id")
	cmd := req.ToCommand(userID.(uint))

	result, err := h.submitUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Complaint submitted successfully")
}

// GetComplaint handles GET /complaints/:id
func (h *ComplaintHandler) GetComplaint(c *gin.Context) {
	complaintID, err := parseComplaintID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := c.Get("user_id")
	query := usecases.GetComplaintQuery{
		ComplaintID:   complaintID,
		RequesterID:   userID.(uint),
		RequesterRole: authorization.ParseUserRole(c.GetString("user_role")),
	}

	result, err := h.getUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListComplaints handles GET /complaints.
// Regular users see their own complaints; admins see all, optionally
// filtered by status.
func (h *ComplaintHandler) ListComplaints(c *gin.Context) {
	userID, _ := c.Get("user_id")
	role := authorization.ParseUserRole(c.GetString("user_role"))

	if role.IsAdmin() {
		query := usecases.ListAllComplaintsQuery{Status: c.Query("status")}
		result, err := h.listAllUC.Execute(c.Request.Context(), query)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		utils.ListSuccessResponse(c, result, int64(len(result)))
		return
	}

	query := usecases.ListUserComplaintsQuery{UserID: userID.(uint)}
	result, err := h.listUserUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result, int64(len(result)))
}

// UpdateStatus handles PATCH /complaints/:id/status
func (h *ComplaintHandler) UpdateStatus(c *gin.Context) {
	complaintID, err := parseComplaintID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update status", "complaint_id", complaintID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := c.Get("user_id")
	cmd := usecases.UpdateStatusCommand{
		ComplaintID:    complaintID,
		NewStatus:      req.Status,
		ResolutionNote: req.ResolutionNote,
		ChangedBy:      userID.(uint),
	}

	result, err := h.updateStatusUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Complaint status updated successfully", result)
}

// AssignComplaint handles POST /complaints/:id/assign
func (h *ComplaintHandler) AssignComplaint(c *gin.Context) {
	complaintID, err := parseComplaintID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := c.Get("user_id")
	cmd := usecases.AssignComplaintCommand{
		ComplaintID: complaintID,
		AssigneeID:  req.AssigneeID,
		AssignedBy:  userID.(uint),
	}

	result, err := h.assignUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Complaint assigned successfully", result)
}

func parseComplaintID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("Invalid complaint ID")
	}
	return uint(id), nil
}
