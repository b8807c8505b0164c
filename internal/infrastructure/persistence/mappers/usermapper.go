package mappers

import (
	"fmt"

	"resolveit/internal/domain/user"
	vo "resolveit/internal/domain/user/valueobjects"
	"resolveit/internal/infrastructure/persistence/models"
	"resolveit/internal/shared/authorization"
)

// UserMapper handles the conversion between User domain entities and persistence models.
type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		Username:     u.Username().String(),
		Email:        u.Email().String(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		CreatedAt:    u.CreatedAt().UnixMilli(),
		UpdatedAt:    u.UpdatedAt().UnixMilli(),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	username, err := vo.NewUsername(model.Username)
	if err != nil {
		return nil, fmt.Errorf("invalid stored username (id=%d): %w", model.ID, err)
	}

	email, err := vo.NewEmail(model.Email)
	if err != nil {
		return nil, fmt.Errorf("invalid stored email (id=%d): %w", model.ID, err)
	}

	return user.ReconstructUser(
		model.ID,
		username,
		email,
		model.PasswordHash,
		authorization.ParseUserRole(model.Role),
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
