package mappers

import (
	"resolveit/internal/domain/feedback"
	"resolveit/internal/infrastructure/persistence/models"
)

// FeedbackMapper handles the conversion between Feedback domain entities and persistence models.
type FeedbackMapper interface {
	ToModel(f *feedback.Feedback) *models.FeedbackModel
	ToDomain(model *models.FeedbackModel) (*feedback.Feedback, error)
}

type FeedbackMapperImpl struct{}

func NewFeedbackMapper() FeedbackMapper {
	return &FeedbackMapperImpl{}
}

func (m *FeedbackMapperImpl) ToModel(f *feedback.Feedback) *models.FeedbackModel {
	return &models.FeedbackModel{
		ID:          f.ID(),
		ComplaintID: f.ComplaintID(),
		UserID:      f.UserID(),
		Rating:      f.Rating(),
		Comment:     f.Comment(),
		CreatedAt:   f.CreatedAt().UnixMilli(),
	}
}

func (m *FeedbackMapperImpl) ToDomain(model *models.FeedbackModel) (*feedback.Feedback, error) {
	return feedback.ReconstructFeedback(
		model.ID,
		model.ComplaintID,
		model.UserID,
		model.Rating,
		model.Comment,
		millisToTime(model.CreatedAt),
	)
}
