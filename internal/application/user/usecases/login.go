package usecases

import (
	"context"

	"github.com/bengkellab/bengkel/internal/domain/user"
	"github.com/bengkellab/bengkel/internal/shared/errors"
	"github.com/bengkellab/bengkel/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	User        *UserDTO
	AccessToken string
	ExpiresIn   int64
}

// LoginUseCase authenticates a staff account and issues a JWT. Lookup
// failures and wrong passwords share one generic error so the response
// never reveals whether the email exists.
type LoginUseCase struct {
	userRepo    user.Repository
	hasher      PasswordHasher
	jwtService  JWTService
	rateLimiter LoginRateLimiter
	logger      logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	jwtService JWTService,
	rateLimiter LoginRateLimiter,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:    userRepo,
		hasher:      hasher,
		jwtService:  jwtService,
		rateLimiter: rateLimiter,
		logger:      logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if len(cmd.Email) == 0 || len(cmd.Password) == 0 {
		return nil, errors.NewValidationError("email and password are required")
	}

	allowed, err := uc.rateLimiter.Allow(ctx, cmd.Email)
	if err != nil {
		uc.logger.Warnw("login rate limiter unavailable", "error", err)
	} else if !allowed {
		return nil, errors.NewUnauthorizedError("too many failed login attempts, try again later")
	}

	existing, err := uc.userRepo.FindByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to look up user by email", "error", err)
		return nil, err
	}
	if existing == nil {
		uc.recordFailure(ctx, cmd.Email)
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}
	if !existing.IsActive() {
		return nil, errors.NewUnauthorizedError("account is disabled")
	}

	if err := uc.hasher.Verify(cmd.Password, existing.PasswordHash()); err != nil {
		uc.recordFailure(ctx, cmd.Email)
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	token, expiresIn, err := uc.jwtService.Generate(existing.ID(), existing.Role())
	if err != nil {
		uc.logger.Errorw("failed to generate token", "user_id", existing.ID(), "error", err)
		return nil, errors.NewInternalError("failed to generate token")
	}

	if err := uc.rateLimiter.Reset(ctx, cmd.Email); err != nil {
		uc.logger.Warnw("failed to reset login rate limiter", "error", err)
	}

	uc.logger.Infow("user logged in", "user_id", existing.ID(), "role", existing.Role().String())
	return &LoginResult{
		User:        toUserDTO(existing),
		AccessToken: token,
		ExpiresIn:   expiresIn,
	}, nil
}

func (uc *LoginUseCase) recordFailure(ctx context.Context, email string) {
	if err := uc.rateLimiter.RecordFailure(ctx, email); err != nil {
		uc.logger.Warnw("failed to record login failure", "error", err)
	}
}
