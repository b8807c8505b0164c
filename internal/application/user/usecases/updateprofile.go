package usecases

import (
	"context"
	"time"

	"resolveit/internal/domain/user"
	vo "resolveit/internal/domain/user/valueobjects"
	"resolveit/internal/shared/errors"
	"resolveit/internal/shared/logger"
)

type UpdateProfileCommand struct {
	UserID   uint
	Username string
	Email    string
}

type UpdateProfileResult struct {
	UserID    uint      `json:"user_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UpdateProfileUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewUpdateProfileUseCase(userRepo user.Repository, logger logger.Interface) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, cmd UpdateProfileCommand) (*UpdateProfileResult, error) {
	username, err := vo.NewUsername(cmd.Username)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	if err := u.UpdateProfile(username, email); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update user", "error", err, "user_id", u.ID())
		return nil, err
	}

	uc.logger.Infow("user profile updated", "user_id", u.ID())

	return &UpdateProfileResult{
		UserID:    u.ID(),
		Username:  u.Username().String(),
		Email:     u.Email().String(),
		UpdatedAt: u.UpdatedAt(),
	}, nil
}
