// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"workorders/internal/core/domain/model/account"
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/guard"
)

var (
	ErrAuthenticateUserQueryIsNotConstructed = errors.New(
		"AuthenticateUserQuery must be created via NewAuthenticateUserQuery constructor",
	)
	ErrTokenValueIsRequired = errors.New("token value is required")
)

// AuthenticateUserQuery resolves an opaque session token to the user that
// owns it. Tokens do not expire, so possession alone establishes identity.
type AuthenticateUserQuery struct {
	tokenValue string

	guard guard.ConstructorGuard
}

// NewAuthenticateUserQuery creates a query to resolve a session token.
// Validates that the token value is not empty.
func NewAuthenticateUserQuery(tokenValue string) (AuthenticateUserQuery, error) {
	if tokenValue == "" {
		return AuthenticateUserQuery{}, ErrTokenValueIsRequired
	}

	return AuthenticateUserQuery{
		tokenValue: tokenValue,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrAuthenticateUserQueryIsNotConstructed if validation fails.
func (q AuthenticateUserQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateUserQueryIsNotConstructed)
}

// TokenValue returns the opaque token value from the query.
func (q AuthenticateUserQuery) TokenValue() string {
	return q.tokenValue
}

// AuthenticateUserQueryResponse identifies the authenticated caller.
// The role drives all downstream authorization decisions.
type AuthenticateUserQueryResponse struct {
	UserID   kernel.UUID
	Username string
	Role     account.Role
}
