package usecases

import (
	"context"
	"time"

	"resolveit/internal/domain/feedback"
	"resolveit/internal/shared/errors"
	"resolveit/internal/shared/logger"
)

type ListFeedbackQuery struct {
	ComplaintID uint
}

type FeedbackDTO struct {
	ID          uint      `json:"id"`
	ComplaintID uint      `json:"complaint_id"`
	UserID      uint      `json:"user_id"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type ListFeedbackUseCase struct {
	feedbackRepo feedback.Repository
	logger       logger.Interface
}

func NewListFeedbackUseCase(feedbackRepo feedback.Repository, logger logger.Interface) *ListFeedbackUseCase {
	return &ListFeedbackUseCase{
		feedbackRepo: feedbackRepo,
		logger:       logger,
	}
}

func (uc *ListFeedbackUseCase) Execute(ctx context.Context, query ListFeedbackQuery) ([]*FeedbackDTO, error) {
	if query.ComplaintID == 0 {
		return nil, errors.NewValidationError("complaint ID is required")
	}

	list, err := uc.feedbackRepo.ListByComplaint(ctx, query.ComplaintID)
	if err != nil {
		uc.logger.Errorw("failed to list feedback", "error", err, "complaint_id", query.ComplaintID)
		return nil, err
	}

	result := make([]*FeedbackDTO, 0, len(list))
	for _, f := range list {
		result = append(result, &FeedbackDTO{
			ID:          f.ID(),
			ComplaintID: f.ComplaintID(),
			UserID:      f.UserID(),
			Rating:      f.Rating(),
			Comment:     f.Comment(),
			CreatedAt:   f.CreatedAt(),
		})
	}
	return result, nil
}
