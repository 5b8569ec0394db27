package usecases

import (
	"context"

	"github.com/bengkellab/bengkel/internal/shared/authorization"
)

// PasswordHasher hashes and verifies login passwords. Satisfied by the
// bcrypt implementation in infrastructure/auth.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// JWTService issues access tokens carrying the user's identity and role.
type JWTService interface {
	Generate(userID uint, role authorization.UserRole) (token string, expiresIn int64, err error)
}

// LoginRateLimiter throttles repeated failed logins per account key.
type LoginRateLimiter interface {
	// Allow reports whether another attempt is permitted for the key.
	Allow(ctx context.Context, key string) (bool, error)
	// RecordFailure counts a failed attempt against the key.
	RecordFailure(ctx context.Context, key string) error
	// Reset clears the failure count after a successful login.
	Reset(ctx context.Context, key string) error
}
