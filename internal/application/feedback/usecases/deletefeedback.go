package usecases

import (
	"context"

	"resolveit/internal/domain/feedback"
	"resolveit/internal/shared/authorization"
	"resolveit/internal/shared/errors"
	"resolveit/internal/shared/logger"
)

type DeleteFeedbackCommand struct {
	FeedbackID    uint
	RequesterID   uint
	RequesterRole authorization.UserRole
}

type DeleteFeedbackUseCase struct {
	feedbackRepo feedback.Repository
	logger       logger.Interface
}

func NewDeleteFeedbackUseCase(feedbackRepo feedback.Repository, logger logger.Interface) *DeleteFeedbackUseCase {
	return &DeleteFeedbackUseCase{
		feedbackRepo: feedbackRepo,
		logger:       logger,
	}
}

func (uc *DeleteFeedbackUseCase) Execute(ctx context.Context, cmd DeleteFeedbackCommand) error {
	f, err := uc.feedbackRepo.GetByID(ctx, cmd.FeedbackID)
	if err != nil {
		return err
	}

	if !authorization.CanAccessResourceByOwnerID(cmd.RequesterID, cmd.RequesterRole, f.UserID()) {
		return errors.NewForbiddenError("only the author or an admin can delete feedback")
	}

	if err := uc.feedbackRepo.Delete(ctx, cmd.FeedbackID); err != nil {
		uc.logger.Errorw("failed to delete feedback", "error", err, "feedback_id", cmd.FeedbackID)
		return err
	}

	uc.logger.Infow("feedback deleted", "feedback_id", cmd.FeedbackID, "requester_id", cmd.RequesterID)
	return nil
}
