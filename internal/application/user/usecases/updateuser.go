package usecases

import (
	"context"

	"github.com/bengkellab/bengkel/internal/domain/user"
	"github.com/bengkellab/bengkel/internal/shared/authorization"
	"github.com/bengkellab/bengkel/internal/shared/errors"
	"github.com/bengkellab/bengkel/internal/shared/logger"
)

type UpdateUserCommand struct {
	UserID   uint
	Name     string
	Email    string
	Role     string
	IsActive *bool
}

type UpdateUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewUpdateUserUseCase(
	userRepo user.Repository,
	logger logger.Interface,
) *UpdateUserUseCase {
	return &UpdateUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *UpdateUserUseCase) Execute(ctx context.Context, cmd UpdateUserCommand) (*UserDTO, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	existing, err := uc.userRepo.FindByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	if cmd.Name != "" || cmd.Email != "" {
		name := cmd.Name
		if name == "" {
			name = existing.Name()
		}
		email := cmd.Email
		if email == "" {
			email = existing.Email()
		}
		if email != existing.Email() {
			byEmail, err := uc.userRepo.FindByEmail(ctx, email)
			if err != nil {
				return nil, err
			}
			if byEmail != nil && byEmail.ID() != existing.ID() {
				return nil, errors.NewConflictError("email already registered")
			}
		}
		if err := existing.UpdateProfile(name, email); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.Role != "" {
		role, ok := authorization.ParseUserRole(cmd.Role)
		if !ok {
			return nil, errors.NewValidationError("invalid role: " + cmd.Role)
		}
		if err := existing.ChangeRole(role); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.IsActive != nil {
		if *cmd.IsActive {
			existing.Activate()
		} else {
			existing.Deactivate()
		}
	}

	if err := uc.userRepo.Update(ctx, existing); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("email already registered")
		}
		uc.logger.Errorw("failed to update user", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	return toUserDTO(existing), nil
}
