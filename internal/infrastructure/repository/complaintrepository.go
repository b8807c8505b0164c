package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"resolveit/internal/domain/complaint"
	vo "resolveit/internal/domain/complaint/valueobjects"
	"resolveit/internal/infrastructure/persistence/mappers"
	"resolveit/internal/infrastructure/persistence/models"
	apperrors "resolveit/internal/shared/errors"
	"resolveit/internal/shared/db"
)

type ComplaintRepository struct {
	db     *gorm.DB
	mapper mappers.ComplaintMapper
}

func NewComplaintRepository(database *gorm.DB) *ComplaintRepository {
	return &ComplaintRepository{
		db:     database,
		mapper: mappers.NewComplaintMapper(),
	}
}

func (r *ComplaintRepository) Save(ctx context.Context, c *complaint.Complaint) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save complaint: %w", err)
	}

	return c.SetID(model.ID)
}

func (r *ComplaintRepository) GetByID(ctx context.Context, id uint) (*complaint.Complaint, error) {
	var model models.ComplaintModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("complaint not found")
		}
		return nil, fmt.Errorf("failed to find complaint: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ComplaintRepository) ListByUser(ctx context.Context, userID uint) ([]*complaint.Complaint, error) {
	var modelList []models.ComplaintModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list complaints for user %d: %w", userID, err)
	}

	return r.toDomainList(modelList)
}

func (r *ComplaintRepository) ListAll(ctx context.Context) ([]*complaint.Complaint, error) {
	var modelList []models.ComplaintModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Order("created_at DESC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list complaints: %w", err)
	}

	return r.toDomainList(modelList)
}

func (r *ComplaintRepository) ListByStatus(ctx context.Context, status vo.Status) ([]*complaint.Complaint, error) {
	var modelList []models.ComplaintModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("status = ?", status.String()).
		Order("created_at DESC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list complaints by status %s: %w", status, err)
	}

	return r.toDomainList(modelList)
}

func (r *ComplaintRepository) Update(ctx context.Context, c *complaint.Complaint) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ComplaintModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"title":           model.Title,
			"description":     model.Description,
			"category":        model.Category,
			"priority":        model.Priority,
			"status":          model.Status,
			"assignee_id":     model.AssigneeID,
			"resolution_note": model.ResolutionNote,
			"updated_at":      model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update complaint: %w", result.Error)
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.

	return nil
}

func (r *ComplaintRepository) toDomainList(modelList []models.ComplaintModel) ([]*complaint.Complaint, error) {
	result := make([]*complaint.Complaint, 0, len(modelList))
	for i := range modelList {
		c, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, nil
}
