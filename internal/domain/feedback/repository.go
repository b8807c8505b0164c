package feedback

import "context"

// Repository defines the persistence contract for feedback.
type Repository interface {
	Save(ctx context.Context, f *Feedback) error
	GetByID(ctx context.Context, id uint) (*Feedback, error)
	ListByComplaint(ctx context.Context, complaintID uint) ([]*Feedback, error)
	// AverageRating returns 0 when the complaint has no feedback.
	AverageRating(ctx context.Context, complaintID uint) (float64, error)
	Delete(ctx context.Context, id uint) error
}
