package queries

import (
	"errors"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/guard"
)

var ErrGetMyOrdersQueryIsNotConstructed = errors.New(
	"GetMyOrdersQuery must be created via NewGetMyOrdersQuery constructor",
)

// GetMyOrdersQuery retrieves the orders assigned to the caller's installer
// profile. A caller whose account has no linked profile gets an empty list,
// not an error.
type GetMyOrdersQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetMyOrdersQuery creates a query for the caller's assigned orders.
// Validates that the user ID is well formed.
func NewGetMyOrdersQuery(userID kernel.UUID) (GetMyOrdersQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetMyOrdersQuery{}, err
	}

	return GetMyOrdersQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetMyOrdersQueryIsNotConstructed if validation fails.
func (q GetMyOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetMyOrdersQueryIsNotConstructed)
}

// UserID returns the authenticated user ID from the query.
func (q GetMyOrdersQuery) UserID() kernel.UUID {
	return q.userID
}
