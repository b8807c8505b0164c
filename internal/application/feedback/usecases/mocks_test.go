package usecases

import (
	"context"

	"resolveit/internal/domain/complaint"
	vo "resolveit/internal/domain/complaint/valueobjects"
	"resolveit/internal/domain/feedback"
	"resolveit/internal/shared/logger"
)

type mockFeedbackRepository struct {
	SaveFunc            func(ctx context.Context, f *feedback.Feedback) error
	GetByIDFunc         func(ctx context.Context, id uint) (*feedback.Feedback, error)
	ListByComplaintFunc func(ctx context.Context, complaintID uint) ([]*feedback.Feedback, error)
	AverageRatingFunc   func(ctx context.Context, complaintID uint) (float64, error)
	DeleteFunc          func(ctx context.Context, id uint) error
}

func (m *mockFeedbackRepository) Save(ctx context.Context, f *feedback.Feedback) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, f)
	}
	return nil
}

func (m *mockFeedbackRepository) GetByID(ctx context.Context, id uint) (*feedback.Feedback, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockFeedbackRepository) ListByComplaint(ctx context.Context, complaintID uint) ([]*feedback.Feedback, error) {
	if m.ListByComplaintFunc != nil {
		return m.ListByComplaintFunc(ctx, complaintID)
	}
	return nil, nil
}

func (m *mockFeedbackRepository) AverageRating(ctx context.Context, complaintID uint) (float64, error) {
	if m.AverageRatingFunc != nil {
		return m.AverageRatingFunc(ctx, complaintID)
	}
	return 0, nil
}

func (m *mockFeedbackRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockComplaintRepository struct {
	GetByIDFunc func(ctx context.Context, id uint) (*complaint.Complaint, error)
}

func (m *mockComplaintRepository) Save(ctx context.Context, c *complaint.Complaint) error { return nil }

func (m *mockComplaintRepository) GetByID(ctx context.Context, id uint) (*complaint.Complaint, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockComplaintRepository) ListByUser(ctx context.Context, userID uint) ([]*complaint.Complaint, error) {
	return nil, nil
}

func (m *mockComplaintRepository) ListAll(ctx context.Context) ([]*complaint.Complaint, error) {
	return nil, nil
}

func (m *mockComplaintRepository) ListByStatus(ctx context.Context, status vo.Status) ([]*complaint.Complaint, error) {
	return nil, nil
}

func (m *mockComplaintRepository) Update(ctx context.Context, c *complaint.Complaint) error {
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
