package usecases

import (
	"context"

	"resolveit/internal/domain/complaint"
	vo "resolveit/internal/domain/complaint/valueobjects"
	"resolveit/internal/domain/user"
	uservo "resolveit/internal/domain/user/valueobjects"
	"resolveit/internal/shared/logger"
)

type mockComplaintRepository struct {
	SaveFunc         func(ctx context.Context, c *complaint.Complaint) error
	GetByIDFunc      func(ctx context.Context, id uint) (*complaint.Complaint, error)
	ListByUserFunc   func(ctx context.Context, userID uint) ([]*complaint.Complaint, error)
	ListAllFunc      func(ctx context.Context) ([]*complaint.Complaint, error)
	ListByStatusFunc func(ctx context.Context, status vo.Status) ([]*complaint.Complaint, error)
	UpdateFunc       func(ctx context.Context, c *complaint.Complaint) error
}

func (m *mockComplaintRepository) Save(ctx context.Context, c *complaint.Complaint) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockComplaintRepository) GetByID(ctx context.Context, id uint) (*complaint.Complaint, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockComplaintRepository) ListByUser(ctx context.Context, userID uint) ([]*complaint.Complaint, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockComplaintRepository) ListAll(ctx context.Context) ([]*complaint.Complaint, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockComplaintRepository) ListByStatus(ctx context.Context, status vo.Status) ([]*complaint.Complaint, error) {
	if m.ListByStatusFunc != nil {
		return m.ListByStatusFunc(ctx, status)
	}
	return nil, nil
}

func (m *mockComplaintRepository) Update(ctx context.Context, c *complaint.Complaint) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

type mockUserRepository struct {
	SaveFunc          func(ctx context.Context, u *user.User) error
	GetByIDFunc       func(ctx context.Context, id uint) (*user.User, error)
	GetByEmailFunc    func(ctx context.Context, email *uservo.Email) (*user.User, error)
	GetByUsernameFunc func(ctx context.Context, username *uservo.Username) (*user.User, error)
	UpdateFunc        func(ctx context.Context, u *user.User) error
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email *uservo.Email) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username *uservo.Username) (*user.User, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

type mockStatusNotifier struct {
	NotifyStatusChangedFunc func(to, complaintTitle, newStatus, note string) error
	calls                   []string
}

func (m *mockStatusNotifier) NotifyStatusChanged(to, complaintTitle, newStatus, note string) error {
	m.calls = append(m.calls, newStatus)
	if m.NotifyStatusChangedFunc != nil {
		return m.NotifyStatusChangedFunc(to, complaintTitle, newStatus, note)
	}
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
