package user

import (
	"context"

	vo "resolveit/internal/domain/user/valueobjects"
)

// Repository defines the persistence contract for user aggregates.
type Repository interface {
	Save(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email *vo.Email) (*User, error)
	GetByUsername(ctx context.Context, username *vo.Username) (*User, error)
	Update(ctx context.Context, u *User) error
}
