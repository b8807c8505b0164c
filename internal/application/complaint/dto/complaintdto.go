package dto

import (
	"time"

	"resolveit/internal/domain/complaint"
)

// ComplaintDTO is the application-level representation of a complaint.
type ComplaintDTO struct {
	ID              uint      `json:"id"`
	UserID          uint      `json:"user_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	DescriptionHTML string    `json:"description_html,omitempty"`
	Category        string    `json:"category"`
	Priority        string    `json:"priority"`
	Status          string    `json:"status"`
	AssigneeID      *uint     `json:"assignee_id,omitempty"`
	ResolutionNote  string    `json:"resolution_note,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// FromDomain converts a complaint aggregate to its DTO form.
func FromDomain(c *complaint.Complaint) *ComplaintDTO {
	return &ComplaintDTO{
		ID:             c.ID(),
		UserID:         c.UserID(),
		Title:          c.Title(),
		Description:    c.Description(),
		Category:       c.Category().String(),
		Priority:       c.Priority().String(),
		Status:         c.Status().String(),
		AssigneeID:     c.AssigneeID(),
		ResolutionNote: c.ResolutionNote(),
		CreatedAt:      c.CreatedAt(),
		UpdatedAt:      c.UpdatedAt(),
	}
}

// FromDomainList converts a slice of complaint aggregates.
func FromDomainList(list []*complaint.Complaint) []*ComplaintDTO {
	result := make([]*ComplaintDTO, 0, len(list))
	for _, c := range list {
		result = append(result, FromDomain(c))
	}
	return result
}
