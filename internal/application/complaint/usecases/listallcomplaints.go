package usecases

import (
	"context"

	"resolveit/internal/application/complaint/dto"
	"resolveit/internal/domain/complaint"
	vo "resolveit/internal/domain/complaint/valueobjects"
	"resolveit/internal/shared/errors"
	"resolveit/internal/shared/logger"
)

type ListAllComplaintsQuery struct {
	// Status filters to one lifecycle state when non-empty.
	Status string
}

type ListAllComplaintsUseCase struct {
	complaintRepo complaint.Repository
	logger        logger.Interface
}

func NewListAllComplaintsUseCase(
	complaintRepo complaint.Repository,
	logger logger.Interface,
) *ListAllComplaintsUseCase {
	return &ListAllComplaintsUseCase{
		complaintRepo: complaintRepo,
		logger:        logger,
	}
}

func (uc *ListAllComplaintsUseCase) Execute(ctx context.Context, query ListAllComplaintsQuery) ([]*dto.ComplaintDTO, error) {
	if query.Status != "" {
		status, err := vo.NewStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}

		list, err := uc.complaintRepo.ListByStatus(ctx, status)
		if err != nil {
			uc.logger.Errorw("failed to list complaints by status", "error", err, "status", status)
			return nil, err
		}
		return dto.FromDomainList(list), nil
	}

	list, err := uc.complaintRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list complaints", "error", err)
		return nil, err
	}

	return dto.FromDomainList(list), nil
}
