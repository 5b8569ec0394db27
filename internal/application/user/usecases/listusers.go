package usecases

import (
	"context"

	"github.com/bengkellab/bengkel/internal/domain/user"
	"github.com/bengkellab/bengkel/internal/shared/authorization"
	"github.com/bengkellab/bengkel/internal/shared/errors"
	"github.com/bengkellab/bengkel/internal/shared/logger"
	"github.com/bengkellab/bengkel/internal/shared/utils"
)

type ListUsersQuery struct {
	Search   string
	Role     string
	IsActive *bool
	Page     int
	PageSize int
}

type ListUsersResult struct {
	Users    []*UserDTO
	Total    int64
	Page     int
	PageSize int
}

type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(
	userRepo user.Repository,
	logger logger.Interface,
) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error) {
	if query.Role != "" {
		if _, ok := authorization.ParseUserRole(query.Role); !ok {
			return nil, errors.NewValidationError("invalid role: " + query.Role)
		}
	}

	p := utils.ValidatePagination(query.Page, query.PageSize)

	filter := user.Filter{
		Search:   query.Search,
		Role:     authorization.UserRole(query.Role),
		IsActive: query.IsActive,
		Page:     p.Page,
		PageSize: p.PageSize,
	}

	total, err := uc.userRepo.Count(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to count users", "error", err)
		return nil, err
	}

	users, err := uc.userRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, err
	}

	return &ListUsersResult{
		Users:    toUserDTOs(users),
		Total:    total,
		Page:     p.Page,
		PageSize: p.PageSize,
	}, nil
}

// ListTechniciansUseCase returns active technicians for ticket assignment.
type ListTechniciansUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListTechniciansUseCase(
	userRepo user.Repository,
	logger logger.Interface,
) *ListTechniciansUseCase {
	return &ListTechniciansUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListTechniciansUseCase) Execute(ctx context.Context) ([]*UserDTO, error) {
	technicians, err := uc.userRepo.ListTechnicians(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list technicians", "error", err)
		return nil, err
	}
	return toUserDTOs(technicians), nil
}
