package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resolveit/internal/domain/complaint"
	vo "resolveit/internal/domain/complaint/valueobjects"
	"resolveit/internal/domain/user"
	uservo "resolveit/internal/domain/user/valueobjects"
	"resolveit/internal/shared/authorization"
	apperrors "resolveit/internal/shared/errors"
)

func reconstructStaff(t *testing.T, id uint) *user.User {
	t.Helper()
	now := time.Now().UTC()
	name, err := uservo.NewUsername("staff01")
	require.NoError(t, err)
	email, err := uservo.NewEmail("staff@example.com")
	require.NoError(t, err)
	u, err := user.ReconstructUser(id, name, email, "hash", authorization.RoleAdmin, now, now)
	require.NoError(t, err)
	return u
}

func TestAssignComplaintUseCase_Execute_Success(t *testing.T) {
	existing := reconstructComplaint(t, 1, vo.StatusPending)

	var updated *complaint.Complaint
	mockRepo := &mockComplaintRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*complaint.Complaint, error) {
			return existing, nil
		},
		UpdateFunc: func(ctx context.Context, c *complaint.Complaint) error {
			updated = c
			return nil
		},
	}
	mockUsers := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return reconstructStaff(t, id), nil
		},
	}

	useCase := NewAssignComplaintUseCase(mockRepo, mockUsers, &mockLogger{})

	result, err := useCase.Execute(context.Background(), AssignComplaintCommand{
		ComplaintID: 1,
		AssigneeID:  9,
		AssignedBy:  7,
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint(9), result.AssigneeID)
	assert.Equal(t, "in_progress", result.Status, "assigning a pending complaint starts handling")

	require.NotNil(t, updated)
	require.NotNil(t, updated.AssigneeID())
	assert.Equal(t, uint(9), *updated.AssigneeID())
}

func TestAssignComplaintUseCase_Execute_AssigneeNotStaff(t *testing.T) {
	mockUsers := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return reconstructAuthor(t), nil
		},
	}

	useCase := NewAssignComplaintUseCase(&mockComplaintRepository{}, mockUsers, &mockLogger{})

	result, err := useCase.Execute(context.Background(), AssignComplaintCommand{
		ComplaintID: 1,
		AssigneeID:  2,
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsValidationError(err))
}

func TestAssignComplaintUseCase_Execute_AssigneeMissing(t *testing.T) {
	mockUsers := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return nil, apperrors.NewNotFoundError("user not found")
		},
	}

	useCase := NewAssignComplaintUseCase(&mockComplaintRepository{}, mockUsers, &mockLogger{})

	result, err := useCase.Execute(context.Background(), AssignComplaintCommand{
		ComplaintID: 1,
		AssigneeID:  42,
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsValidationError(err))
}

func TestAssignComplaintUseCase_Execute_ZeroAssignee(t *testing.T) {
	useCase := NewAssignComplaintUseCase(&mockComplaintRepository{}, &mockUserRepository{}, &mockLogger{})

	result, err := useCase.Execute(context.Background(), AssignComplaintCommand{ComplaintID: 1})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsValidationError(err))
}
