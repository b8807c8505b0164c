package complaint

import (
	"context"

	vo "resolveit/internal/domain/complaint/valueobjects"
)

// Repository defines the persistence contract for complaint aggregates.
// List methods return newest complaints first.
type Repository interface {
	Save(ctx context.Context, c *Complaint) error
	GetByID(ctx context.Context, id uint) (*Complaint, error)
	ListByUser(ctx context.Context, userID uint) ([]*Complaint, error)
	ListAll(ctx context.Context) ([]*Complaint, error)
	ListByStatus(ctx context.Context, status vo.Status) ([]*Complaint, error)
	Update(ctx context.Context, c *Complaint) error
}
