package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resolveit/internal/domain/user"
	vo "resolveit/internal/domain/user/valueobjects"
	apperrors "resolveit/internal/shared/errors"
)

func TestRegisterUseCase_Execute_Success(t *testing.T) {
	var savedUser *user.User

	mockRepo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email *vo.Email) (*user.User, error) {
			return nil, apperrors.NewNotFoundError("user not found")
		},
		SaveFunc: func(ctx context.Context, u *user.User) error {
			savedUser = u
			return u.SetID(1)
		},
	}

	useCase := NewRegisterUseCase(mockRepo, &mockPasswordHasher{}, &mockLogger{})

	result, err := useCase.Execute(context.Background(), RegisterCommand{
		Username: "alice01",
		Email:    "alice@example.com",
		Password: "secret1",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint(1), result.UserID)
	assert.Equal(t, "alice01", result.Username)
	assert.Equal(t, "alice@example.com", result.Email)
	assert.Equal(t, "user", result.Role, "registration must never produce an admin")

	require.NotNil(t, savedUser)
	assert.Equal(t, "hashed:secret1", savedUser.PasswordHash(), "plain password must not be persisted")
}

func TestRegisterUseCase_Execute_ValidationFailures(t *testing.T) {
	useCase := NewRegisterUseCase(&mockUserRepository{}, &mockPasswordHasher{}, &mockLogger{})

	tests := []struct {
		name string
		cmd  RegisterCommand
	}{
		{name: "bad username", cmd: RegisterCommand{Username: "a!", Email: "a@b.co", Password: "secret1"}},
		{name: "bad email", cmd: RegisterCommand{Username: "alice01", Email: "not-an-email", Password: "secret1"}},
		{name: "digits only password", cmd: RegisterCommand{Username: "alice01", Email: "a@b.co", Password: "123456"}},
		{name: "letters only password", cmd: RegisterCommand{Username: "alice01", Email: "a@b.co", Password: "abcdef"}},
		{name: "short password", cmd: RegisterCommand{Username: "alice01", Email: "a@b.co", Password: "ab1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := useCase.Execute(context.Background(), tt.cmd)
			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, apperrors.IsValidationError(err))
		})
	}
}

func TestRegisterUseCase_Execute_DuplicateEmail(t *testing.T) {
	existing, err := user.NewUser(
		mustVO(vo.NewUsername("alice01")),
		mustVO(vo.NewEmail("alice@example.com")),
		"hash",
	)
	require.NoError(t, err)

	mockRepo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email *vo.Email) (*user.User, error) {
			return existing, nil
		},
	}

	useCase := NewRegisterUseCase(mockRepo, &mockPasswordHasher{}, &mockLogger{})

	result, err := useCase.Execute(context.Background(), RegisterCommand{
		Username: "alice02",
		Email:    "alice@example.com",
		Password: "secret1",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsConflictError(err))
}

func mustVO[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
