package queries

import (
	"errors"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/guard"
)

var ErrGetOrderCommentsQueryIsNotConstructed = errors.New(
	"GetOrderCommentsQuery must be created via NewGetOrderCommentsQuery constructor",
)

// GetOrderCommentsQuery retrieves the comments of one order, oldest first.
type GetOrderCommentsQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderCommentsQuery creates a query for an order's comments.
// Validates that the order ID is well formed.
func NewGetOrderCommentsQuery(orderID kernel.UUID) (GetOrderCommentsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderCommentsQuery{}, err
	}

	return GetOrderCommentsQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderCommentsQueryIsNotConstructed if validation fails.
func (q GetOrderCommentsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderCommentsQueryIsNotConstructed)
}

// OrderID returns the target order ID from the query.
func (q GetOrderCommentsQuery) OrderID() kernel.UUID {
	return q.orderID
}
