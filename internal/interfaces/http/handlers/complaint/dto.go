package complaint

import (
	"resolveit/internal/application/complaint/usecases"
)

type SubmitComplaintRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"required,max=5000"`
	Category    string `json:"category" binding:"required,oneof=general technical payment service"`
	Priority    string `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
}

func (r *SubmitComplaintRequest) ToCommand(userID uint) usecases.SubmitComplaintCommand {
	return usecases.SubmitComplaintCommand{
		UserID:      userID,
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Priority:    r.Priority,
	}
}

type UpdateStatusRequest struct {
	Status         string `json:"status" binding:"required,oneof=pending in_progress resolved closed"`
	ResolutionNote string `json:"resolution_note" binding:"omitempty,max=5000"`
}

type AssignComplaintRequest struct {
	AssigneeID uint `json:"assignee_id" binding:"required"`
}
