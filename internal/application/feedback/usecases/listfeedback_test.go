package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resolveit/internal/domain/feedback"
	"resolveit/internal/shared/authorization"
	apperrors "resolveit/internal/shared/errors"
)

func reconstructFeedback(t *testing.T, id, complaintID, userID uint, rating int) *feedback.Feedback {
	t.Helper()
	f, err := feedback.ReconstructFeedback(id, complaintID, userID, rating, "", time.Now().UTC())
	require.NoError(t, err)
	return f
}

func TestListFeedbackUseCase_Execute(t *testing.T) {
	mockRepo := &mockFeedbackRepository{
		ListByComplaintFunc: func(ctx context.Context, complaintID uint) ([]*feedback.Feedback, error) {
			assert.Equal(t, uint(10), complaintID)
			return []*feedback.Feedback{
				reconstructFeedback(t, 2, 10, 3, 5),
				reconstructFeedback(t, 1, 10, 2, 3),
			}, nil
		},
	}

	useCase := NewListFeedbackUseCase(mockRepo, &mockLogger{})

	list, err := useCase.Execute(context.Background(), ListFeedbackQuery{ComplaintID: 10})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 5, list[0].Rating)
	assert.Equal(t, 3, list[1].Rating)
}

func TestListFeedbackUseCase_Execute_ZeroComplaint(t *testing.T) {
	useCase := NewListFeedbackUseCase(&mockFeedbackRepository{}, &mockLogger{})

	list, err := useCase.Execute(context.Background(), ListFeedbackQuery{})
	require.Error(t, err)
	assert.Nil(t, list)
	assert.True(t, apperrors.IsValidationError(err))
}

func TestAverageRatingUseCase_Execute(t *testing.T) {
	mockRepo := &mockFeedbackRepository{
		AverageRatingFunc: func(ctx context.Context, complaintID uint) (float64, error) {
			return 3.5, nil
		},
	}

	useCase := NewAverageRatingUseCase(mockRepo, &mockLogger{})

	result, err := useCase.Execute(context.Background(), AverageRatingQuery{ComplaintID: 10})
	require.NoError(t, err)
	assert.InDelta(t, 3.5, result.AverageRating, 0.001)
}

func TestAverageRatingUseCase_Execute_NoFeedback(t *testing.T) {
	mockRepo := &mockFeedbackRepository{
		AverageRatingFunc: func(ctx context.Context, complaintID uint) (float64, error) {
			return 0, nil
		},
	}

	useCase := NewAverageRatingUseCase(mockRepo, &mockLogger{})

	result, err := useCase.Execute(context.Background(), AverageRatingQuery{ComplaintID: 42})
	require.NoError(t, err)
	assert.Equal(t, float64(0), result.AverageRating)
}

func TestDeleteFeedbackUseCase_Execute_Author(t *testing.T) {
	deleted := false
	mockRepo := &mockFeedbackRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*feedback.Feedback, error) {
			return reconstructFeedback(t, 1, 10, 2, 4), nil
		},
		DeleteFunc: func(ctx context.Context, id uint) error {
			deleted = true
			return nil
		},
	}

	useCase := NewDeleteFeedbackUseCase(mockRepo, &mockLogger{})

	err := useCase.Execute(context.Background(), DeleteFeedbackCommand{
		FeedbackID:    1,
		RequesterID:   2,
		RequesterRole: authorization.RoleUser,
	})

	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestDeleteFeedbackUseCase_Execute_AdminOverride(t *testing.T) {
	mockRepo := &mockFeedbackRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*feedback.Feedback, error) {
			return reconstructFeedback(t, 1, 10, 2, 4), nil
		},
	}

	useCase := NewDeleteFeedbackUseCase(mockRepo, &mockLogger{})

	err := useCase.Execute(context.Background(), DeleteFeedbackCommand{
		FeedbackID:    1,
		RequesterID:   99,
		RequesterRole: authorization.RoleAdmin,
	})

	require.NoError(t, err)
}

func TestDeleteFeedbackUseCase_Execute_ForbiddenForStrangers(t *testing.T) {
	mockRepo := &mockFeedbackRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*feedback.Feedback, error) {
			return reconstructFeedback(t, 1, 10, 2, 4), nil
		},
	}

	useCase := NewDeleteFeedbackUseCase(mockRepo, &mockLogger{})

	err := useCase.Execute(context.Background(), DeleteFeedbackCommand{
		FeedbackID:    1,
		RequesterID:   3,
		RequesterRole: authorization.RoleUser,
	})

	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeForbidden, appErr.Type)
}
