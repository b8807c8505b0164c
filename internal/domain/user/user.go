package user

import (
	"fmt"
	"time"

	"resolveit/internal/shared/authorization"

	vo "resolveit/internal/domain/user/valueobjects"
)

// User represents the user aggregate root (pure domain model without persistence concerns)
type User struct {
	id           uint
	username     *vo.Username
	email        *vo.Email
	passwordHash string
	role         authorization.UserRole
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser creates a new user aggregate. Registration always produces the
// regular user role; administrators are provisioned out of band.
func NewUser(username *vo.Username, email *vo.Email, passwordHash string) (*User, error) {
	if username == nil {
		return nil, fmt.Errorf("username is required")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}

	now := time.Now().UTC()
	return &User{
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		role:         authorization.RoleUser,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructUser reconstructs a user from persistence
func ReconstructUser(
	id uint,
	username *vo.Username,
	email *vo.Email,
	passwordHash string,
	role authorization.UserRole,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if username == nil {
		return nil, fmt.Errorf("username is required")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:           id,
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Username() *vo.Username {
	return u.username
}

func (u *User) Email() *vo.Email {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Role() authorization.UserRole {
	return u.role
}

func (u *User) IsAdmin() bool {
	return u.role.IsAdmin()
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// UpdateProfile overwrites the mutable profile fields. Credential and role
// are never touched here.
func (u *User) UpdateProfile(username *vo.Username, email *vo.Email) error {
	if username == nil {
		return fmt.Errorf("username is required")
	}
	if email == nil {
		return fmt.Errorf("email is required")
	}

	u.username = username
	u.email = email
	u.updatedAt = time.Now().UTC()
	return nil
}
