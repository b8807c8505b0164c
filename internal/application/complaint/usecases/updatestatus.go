package usecases

import (
	"context"
	"time"

	"resolveit/internal/domain/complaint"
	vo "resolveit/internal/domain/complaint/valueobjects"
	"resolveit/internal/domain/user"
	"resolveit/internal/shared/errors"
	"resolveit/internal/shared/logger"
)

type UpdateStatusCommand struct {
	ComplaintID    uint
	NewStatus      string
	ResolutionNote string
	ChangedBy      uint
}

type UpdateStatusResult struct {
	ComplaintID uint      `json:"complaint_id"`
	OldStatus   string    `json:"old_status"`
	NewStatus   string    `json:"new_status"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type UpdateStatusUseCase struct {
	complaintRepo complaint.Repository
	userRepo      user.Repository
	notifier      StatusNotifier
	logger        logger.Interface
}

func NewUpdateStatusUseCase(
	complaintRepo complaint.Repository,
	userRepo user.Repository,
	notifier StatusNotifier,
	logger logger.Interface,
) *UpdateStatusUseCase {
	return &UpdateStatusUseCase{
		complaintRepo: complaintRepo,
		userRepo:      userRepo,
		notifier:      notifier,
		logger:        logger,
	}
}

func (uc *UpdateStatusUseCase) Execute(ctx context.Context, cmd UpdateStatusCommand) (*UpdateStatusResult, error) {
	uc.logger.Infow("executing update status use case",
		"complaint_id", cmd.ComplaintID,
		"new_status", cmd.NewStatus,
		"changed_by", cmd.ChangedBy,
	)

	newStatus, err := vo.NewStatus(cmd.NewStatus)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	c, err := uc.complaintRepo.GetByID(ctx, cmd.ComplaintID)
	if err != nil {
		return nil, err
	}

	oldStatus := c.Status()

	if oldStatus == newStatus {
		// Idempotent write, nothing to persist or notify.
		return &UpdateStatusResult{
			ComplaintID: c.ID(),
			OldStatus:   oldStatus.String(),
			NewStatus:   newStatus.String(),
			UpdatedAt:   c.UpdatedAt(),
		}, nil
	}

	if newStatus == vo.StatusResolved {
		err = c.Resolve(cmd.ResolutionNote)
	} else {
		err = c.ChangeStatus(newStatus)
	}
	if err != nil {
		return nil, errors.NewConflictError(err.Error())
	}

	if err := uc.complaintRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to update complaint status", "error", err, "complaint_id", c.ID())
		return nil, err
	}

	uc.logger.Infow("complaint status updated",
		"complaint_id", c.ID(),
		"old_status", oldStatus.String(),
		"new_status", newStatus.String(),
	)

	uc.notifyAuthor(ctx, c, newStatus)

	return &UpdateStatusResult{
		ComplaintID: c.ID(),
		OldStatus:   oldStatus.String(),
		NewStatus:   newStatus.String(),
		UpdatedAt:   c.UpdatedAt(),
	}, nil
}

// notifyAuthor emails the complaint author when handling finishes. Delivery
// failures are logged, never surfaced to the caller.
func (uc *UpdateStatusUseCase) notifyAuthor(ctx context.Context, c *complaint.Complaint, newStatus vo.Status) {
	if uc.notifier == nil || !newStatus.IsTerminal() {
		return
	}

	author, err := uc.userRepo.GetByID(ctx, c.UserID())
	if err != nil {
		uc.logger.Warnw("failed to load complaint author for notification", "error", err, "user_id", c.UserID())
		return
	}

	if err := uc.notifier.NotifyStatusChanged(author.Email().String(), c.Title(), newStatus.String(), c.ResolutionNote()); err != nil {
		uc.logger.Warnw("failed to send status notification", "error", err, "complaint_id", c.ID())
	}
}
