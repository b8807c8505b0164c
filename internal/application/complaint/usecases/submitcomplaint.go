package usecases

import (
	"context"
	"time"

	"resolveit/internal/domain/complaint"
	vo "resolveit/internal/domain/complaint/valueobjects"
	"resolveit/internal/shared/errors"
	"resolveit/internal/shared/logger"
)

type SubmitComplaintCommand struct {
	UserID      uint
	Title       string
	Description string
	Category    string
	Priority    string
}

type SubmitComplaintResult struct {
	ComplaintID uint      `json:"complaint_id"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type SubmitComplaintUseCase struct {
	complaintRepo complaint.Repository
	logger        logger.Interface
}

func NewSubmitComplaintUseCase(
	complaintRepo complaint.Repository,
	logger logger.Interface,
) *SubmitComplaintUseCase {
	return &SubmitComplaintUseCase{
		complaintRepo: complaintRepo,
		logger:        logger,
	}
}

func (uc *SubmitComplaintUseCase) Execute(ctx context.Context, cmd SubmitComplaintCommand) (*SubmitComplaintResult, error) {
	uc.logger.Infow("executing submit complaint use case", "user_id", cmd.UserID, "category", cmd.Category)

	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	category, err := vo.NewCategory(cmd.Category)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	priority := vo.Priority(cmd.Priority)
	if cmd.Priority == "" {
		priority = vo.PriorityMedium
	}

	newComplaint, err := complaint.NewComplaint(cmd.UserID, cmd.Title, cmd.Description, category, priority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.complaintRepo.Save(ctx, newComplaint); err != nil {
		uc.logger.Errorw("failed to save complaint", "error", err)
		return nil, err
	}

	uc.logger.Infow("complaint submitted", "complaint_id", newComplaint.ID(), "user_id", cmd.UserID)

	return &SubmitComplaintResult{
		ComplaintID: newComplaint.ID(),
		Status:      newComplaint.Status().String(),
		CreatedAt:   newComplaint.CreatedAt(),
	}, nil
}
