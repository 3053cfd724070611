package ports

import (
	"context"

	"workorders/internal/core/domain/model/account"
	"workorders/internal/core/domain/model/kernel"
)

// UserRepository defines the persistence contract for user aggregates.
type UserRepository interface {
	// Add persists a new user. The username must not already exist;
	// callers check with GetByUsername inside the same transaction.
	Add(ctx context.Context, aggregate *account.User) error

	// Get retrieves a user by its unique identifier.
	// Returns an ObjectNotFoundError when no such user exists.
	Get(ctx context.Context, id kernel.UUID) (*account.User, error)

	// GetByUsername retrieves a user by its unique username.
	// Returns an ObjectNotFoundError when no such user exists.
	GetByUsername(ctx context.Context, username string) (*account.User, error)
}

// TokenRepository defines the persistence contract for session tokens.
// Tokens are insert-only: there is no update or delete path.
type TokenRepository interface {
	// Add persists a newly issued token.
	Add(ctx context.Context, aggregate *account.Token) error

	// GetByValue resolves an opaque token string to the stored token.
	// Returns an ObjectNotFoundError when the value is unknown.
	GetByValue(ctx context.Context, value string) (*account.Token, error)
}
