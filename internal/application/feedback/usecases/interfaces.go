package usecases

import "context"

type SubmitFeedbackExecutor interface {
	Execute(ctx context.Context, cmd SubmitFeedbackCommand) (*SubmitFeedbackResult, error)
}

type ListFeedbackExecutor interface {
	Execute(ctx context.Context, query ListFeedbackQuery) ([]*FeedbackDTO, error)
}

type AverageRatingExecutor interface {
	Execute(ctx context.Context, query AverageRatingQuery) (*AverageRatingResult, error)
}

type DeleteFeedbackExecutor interface {
	Execute(ctx context.Context, cmd DeleteFeedbackCommand) error
}
