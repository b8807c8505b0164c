package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"resolveit/internal/domain/feedback"
	"resolveit/internal/infrastructure/persistence/mappers"
	"resolveit/internal/infrastructure/persistence/models"
	apperrors "resolveit/internal/shared/errors"
	"resolveit/internal/shared/db"
)

type FeedbackRepository struct {
	db     *gorm.DB
	mapper mappers.FeedbackMapper
}

func NewFeedbackRepository(database *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{
		db:     database,
		mapper: mappers.NewFeedbackMapper(),
	}
}

func (r *FeedbackRepository) Save(ctx context.Context, f *feedback.Feedback) error {
	model := r.mapper.ToModel(f)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save feedback: %w", err)
	}

	return f.SetID(model.ID)
}

func (r *FeedbackRepository) GetByID(ctx context.Context, id uint) (*feedback.Feedback, error) {
	var model models.FeedbackModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("feedback not found")
		}
		return nil, fmt.Errorf("failed to find feedback: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *FeedbackRepository) ListByComplaint(ctx context.Context, complaintID uint) ([]*feedback.Feedback, error) {
	var modelList []models.FeedbackModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("complaint_id = ?", complaintID).
		Order("created_at DESC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list feedback for complaint %d: %w", complaintID, err)
	}

	result := make([]*feedback.Feedback, 0, len(modelList))
	for i := range modelList {
		f, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		result = append(result, f)
	}
	return result, nil
}

// AverageRating returns 0 when no feedback exists for the complaint.
func (r *FeedbackRepository) AverageRating(ctx context.Context, complaintID uint) (float64, error) {
	var avg float64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.FeedbackModel{}).
		Where("complaint_id = ?", complaintID).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&avg).Error; err != nil {
		return 0, fmt.Errorf("failed to compute average rating for complaint %d: %w", complaintID, err)
	}

	return avg, nil
}

func (r *FeedbackRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.FeedbackModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete feedback: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("feedback not found")
	}
	return nil
}
