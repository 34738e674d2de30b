package ports

import (
	"context"

	"github.com/ballotcast/ballot/internal/core/domain"
	"github.com/google/uuid"
)

type IdentityService interface {
	// Register creates a voter account with a hashed credential. The
	// username is trimmed before the uniqueness check; collisions return
	// domain.ErrDuplicateUsername.
	Register(ctx context.Context, username, password string) (*domain.User, error)
	// Login verifies the credential and returns the user. Unknown
	// usernames and hash mismatches are indistinguishable to the caller:
	// both return domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (*domain.User, error)
	// GetUser resolves a session's user id to the current user row.
	// A nil user means the id no longer matches anything.
	GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error)
}
