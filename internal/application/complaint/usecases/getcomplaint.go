package usecases

import (
	"context"

	"resolveit/internal/application/complaint/dto"
	"resolveit/internal/domain/complaint"
	"resolveit/internal/shared/authorization"
	"resolveit/internal/shared/errors"
	"resolveit/internal/shared/logger"
	"resolveit/internal/shared/services/markdown"
)

type GetComplaintQuery struct {
	ComplaintID   uint
	RequesterID   uint
	RequesterRole authorization.UserRole
}

type GetComplaintUseCase struct {
	complaintRepo complaint.Repository
	markdown      markdown.MarkdownService
	logger        logger.Interface
}

func NewGetComplaintUseCase(
	complaintRepo complaint.Repository,
	markdownService markdown.MarkdownService,
	logger logger.Interface,
) *GetComplaintUseCase {
	return &GetComplaintUseCase{
		complaintRepo: complaintRepo,
		markdown:      markdownService,
		logger:        logger,
	}
}

func (uc *GetComplaintUseCase) Execute(ctx context.Context, query GetComplaintQuery) (*dto.ComplaintDTO, error) {
	c, err := uc.complaintRepo.GetByID(ctx, query.ComplaintID)
	if err != nil {
		return nil, err
	}

	if !authorization.CanAccessResourceByOwnerID(query.RequesterID, query.RequesterRole, c.UserID()) {
		return nil, errors.NewForbiddenError("you do not have access to this complaint")
	}

	result := dto.FromDomain(c)

	html, err := uc.markdown.ToHTMLSanitized(c.Description())
	if err != nil {
		// The raw description is still served when rendering fails.
		uc.logger.Warnw("failed to render complaint description", "error", err, "complaint_id", c.ID())
	} else {
		result.DescriptionHTML = html
	}

	return result, nil
}
