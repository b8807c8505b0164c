package usecases

import (
	"context"

	"resolveit/internal/application/complaint/dto"
	"resolveit/internal/domain/complaint"
	"resolveit/internal/shared/errors"
	"resolveit/internal/shared/logger"
)

type ListUserComplaintsQuery struct {
	UserID uint
}

type ListUserComplaintsUseCase struct {
	complaintRepo complaint.Repository
	logger        logger.Interface
}

func NewListUserComplaintsUseCase(
	complaintRepo complaint.Repository,
	logger logger.Interface,
) *ListUserComplaintsUseCase {
	return &ListUserComplaintsUseCase{
		complaintRepo: complaintRepo,
		logger:        logger,
	}
}

func (uc *ListUserComplaintsUseCase) Execute(ctx context.Context, query ListUserComplaintsQuery) ([]*dto.ComplaintDTO, error) {
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	list, err := uc.complaintRepo.ListByUser(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to list user complaints", "error", err, "user_id", query.UserID)
		return nil, err
	}

	return dto.FromDomainList(list), nil
}
