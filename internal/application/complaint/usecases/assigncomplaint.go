package usecases

import (
	"context"
	"time"

	"resolveit/internal/domain/complaint"
	"resolveit/internal/domain/user"
	"resolveit/internal/shared/errors"
	"resolveit/internal/shared/logger"
)

type AssignComplaintCommand struct {
	ComplaintID uint
	AssigneeID  uint
	AssignedBy  uint
}

type AssignComplaintResult struct {
	ComplaintID uint      `json:"complaint_id"`
	AssigneeID  uint      `json:"assignee_id"`
	Status      string    `json:"status"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type AssignComplaintUseCase struct {
	complaintRepo complaint.Repository
	userRepo      user.Repository
	logger        logger.Interface
}

func NewAssignComplaintUseCase(
	complaintRepo complaint.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *AssignComplaintUseCase {
	return &AssignComplaintUseCase{
		complaintRepo: complaintRepo,
		userRepo:      userRepo,
		logger:        logger,
	}
}

func (uc *AssignComplaintUseCase) Execute(ctx context.Context, cmd AssignComplaintCommand) (*AssignComplaintResult, error) {
	uc.logger.Infow("executing assign complaint use case",
		"complaint_id", cmd.ComplaintID,
		"assignee_id", cmd.AssigneeID,
	)

	if cmd.AssigneeID == 0 {
		return nil, errors.NewValidationError("assignee ID is required")
	}

	assignee, err := uc.userRepo.GetByID(ctx, cmd.AssigneeID)
	if err != nil {
		return nil, errors.NewValidationError("assignee does not exist")
	}
	if !assignee.IsAdmin() {
		return nil, errors.NewValidationError("complaints can only be assigned to staff accounts")
	}

	c, err := uc.complaintRepo.GetByID(ctx, cmd.ComplaintID)
	if err != nil {
		return nil, err
	}

	if err := c.Assign(cmd.AssigneeID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.complaintRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to assign complaint", "error", err, "complaint_id", c.ID())
		return nil, err
	}

	uc.logger.Infow("complaint assigned",
		"complaint_id", c.ID(),
		"assignee_id", cmd.AssigneeID,
		"assigned_by", cmd.AssignedBy,
	)

	return &AssignComplaintResult{
		ComplaintID: c.ID(),
		AssigneeID:  cmd.AssigneeID,
		Status:      c.Status().String(),
		UpdatedAt:   c.UpdatedAt(),
	}, nil
}
