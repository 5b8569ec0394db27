package usecases

import (
	"context"

	"github.com/bengkellab/bengkel/internal/domain/user"
	"github.com/bengkellab/bengkel/internal/shared/errors"
	"github.com/bengkellab/bengkel/internal/shared/logger"
)

type DeleteUserCommand struct {
	UserID uint
	// ActingUserID prevents an administrator from deleting themselves.
	ActingUserID uint
}

// DeleteUserUseCase removes a staff account. Service tickets assigned to
// the user survive with their technician reference cleared.
type DeleteUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewDeleteUserUseCase(
	userRepo user.Repository,
	logger logger.Interface,
) *DeleteUserUseCase {
	return &DeleteUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *DeleteUserUseCase) Execute(ctx context.Context, cmd DeleteUserCommand) error {
	if cmd.UserID == 0 {
		return errors.NewValidationError("user ID is required")
	}
	if cmd.UserID == cmd.ActingUserID {
		return errors.NewValidationError("cannot delete your own account")
	}

	existing, err := uc.userRepo.FindByID(ctx, cmd.UserID)
	if err != nil {
		return err
	}
	if existing == nil {
		return errors.NewNotFoundError("user not found")
	}

	if err := uc.userRepo.Delete(ctx, cmd.UserID); err != nil {
		uc.logger.Errorw("failed to delete user", "user_id", cmd.UserID, "error", err)
		return err
	}

	uc.logger.Infow("user deleted", "user_id", cmd.UserID, "email", existing.Email())
	return nil
}
