package usecases

import (
	"context"

	"resolveit/internal/infrastructure/auth"
	"resolveit/internal/shared/authorization"
)

// PasswordHasher abstracts credential hashing for use cases.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// TokenIssuer issues signed token pairs for authenticated users.
type TokenIssuer interface {
	Generate(userID uint, role authorization.UserRole) (*auth.TokenPair, error)
}

type RegisterExecutor interface {
	Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

type GetProfileExecutor interface {
	Execute(ctx context.Context, query GetProfileQuery) (*GetProfileResult, error)
}

type UpdateProfileExecutor interface {
	Execute(ctx context.Context, cmd UpdateProfileCommand) (*UpdateProfileResult, error)
}
