package usecases

import (
	"context"

	"resolveit/internal/domain/feedback"
	"resolveit/internal/shared/errors"
	"resolveit/internal/shared/logger"
)

type AverageRatingQuery struct {
	ComplaintID uint
}

type AverageRatingResult struct {
	ComplaintID   uint    `json:"complaint_id"`
	AverageRating float64 `json:"average_rating"`
}

type AverageRatingUseCase struct {
	feedbackRepo feedback.Repository
	logger       logger.Interface
}

func NewAverageRatingUseCase(feedbackRepo feedback.Repository, logger logger.Interface) *AverageRatingUseCase {
	return &AverageRatingUseCase{
		feedbackRepo: feedbackRepo,
		logger:       logger,
	}
}

func (uc *AverageRatingUseCase) Execute(ctx context.Context, query AverageRatingQuery) (*AverageRatingResult, error) {
	if query.ComplaintID == 0 {
		return nil, errors.NewValidationError("complaint ID is required")
	}

	avg, err := uc.feedbackRepo.AverageRating(ctx, query.ComplaintID)
	if err != nil {
		uc.logger.Errorw("failed to compute average rating", "error", err, "complaint_id", query.ComplaintID)
		return nil, err
	}

	return &AverageRatingResult{
		ComplaintID:   query.ComplaintID,
		AverageRating: avg,
	}, nil
}
