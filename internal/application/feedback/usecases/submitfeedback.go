package usecases

import (
	"context"
	"time"

	"resolveit/internal/domain/complaint"
	"resolveit/internal/domain/feedback"
	"resolveit/internal/shared/errors"
	"resolveit/internal/shared/logger"
)

type SubmitFeedbackCommand struct {
	ComplaintID uint
	UserID      uint
	Rating      int
	Comment     string
}

type SubmitFeedbackResult struct {
	FeedbackID uint      `json:"feedback_id"`
	Rating     int       `json:"rating"`
	CreatedAt  time.Time `json:"created_at"`
}

type SubmitFeedbackUseCase struct {
	feedbackRepo  feedback.Repository
	complaintRepo complaint.Repository
	logger        logger.Interface
}

func NewSubmitFeedbackUseCase(
	feedbackRepo feedback.Repository,
	complaintRepo complaint.Repository,
	logger logger.Interface,
) *SubmitFeedbackUseCase {
	return &SubmitFeedbackUseCase{
		feedbackRepo:  feedbackRepo,
		complaintRepo: complaintRepo,
		logger:        logger,
	}
}

func (uc *SubmitFeedbackUseCase) Execute(ctx context.Context, cmd SubmitFeedbackCommand) (*SubmitFeedbackResult, error) {
	uc.logger.Infow("executing submit feedback use case",
		"complaint_id", cmd.ComplaintID,
		"user_id", cmd.UserID,
		"rating", cmd.Rating,
	)

	// The rating is validated before anything touches the store.
	newFeedback, err := feedback.NewFeedback(cmd.ComplaintID, cmd.UserID, cmd.Rating, cmd.Comment)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if _, err := uc.complaintRepo.GetByID(ctx, cmd.ComplaintID); err != nil {
		return nil, err
	}

	if err := uc.feedbackRepo.Save(ctx, newFeedback); err != nil {
		uc.logger.Errorw("failed to save feedback", "error", err)
		return nil, err
	}

	uc.logger.Infow("feedback submitted", "feedback_id", newFeedback.ID())

	return &SubmitFeedbackResult{
		FeedbackID: newFeedback.ID(),
		Rating:     newFeedback.Rating(),
		CreatedAt:  newFeedback.CreatedAt(),
	}, nil
}
