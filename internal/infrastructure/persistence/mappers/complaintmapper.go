package mappers

import (
	"fmt"

	"resolveit/internal/domain/complaint"
	vo "resolveit/internal/domain/complaint/valueobjects"
	"resolveit/internal/infrastructure/persistence/models"
)

// ComplaintMapper handles the conversion between Complaint domain entities and persistence models.
type ComplaintMapper interface {
	ToModel(c *complaint.Complaint) *models.ComplaintModel
	ToDomain(model *models.ComplaintModel) (*complaint.Complaint, error)
}

type ComplaintMapperImpl struct{}

func NewComplaintMapper() ComplaintMapper {
	return &ComplaintMapperImpl{}
}

func (m *ComplaintMapperImpl) ToModel(c *complaint.Complaint) *models.ComplaintModel {
	return &models.ComplaintModel{
		ID:             c.ID(),
		UserID:         c.UserID(),
		Title:          c.Title(),
		Description:    c.Description(),
		Category:       c.Category().String(),
		Priority:       c.Priority().String(),
		Status:         c.Status().String(),
		AssigneeID:     c.AssigneeID(),
		ResolutionNote: c.ResolutionNote(),
		CreatedAt:      c.CreatedAt().UnixMilli(),
		UpdatedAt:      c.UpdatedAt().UnixMilli(),
	}
}

func (m *ComplaintMapperImpl) ToDomain(model *models.ComplaintModel) (*complaint.Complaint, error) {
	category, err := vo.NewCategory(model.Category)
	if err != nil {
		return nil, fmt.Errorf("invalid stored category (id=%d): %w", model.ID, err)
	}

	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, fmt.Errorf("invalid stored priority (id=%d): %w", model.ID, err)
	}

	status, err := vo.NewStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid stored status (id=%d): %w", model.ID, err)
	}

	return complaint.ReconstructComplaint(
		model.ID,
		model.UserID,
		model.Title,
		model.Description,
		category,
		priority,
		status,
		model.AssigneeID,
		model.ResolutionNote,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
