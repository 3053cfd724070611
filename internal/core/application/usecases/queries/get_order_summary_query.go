package queries

import (
	"errors"

	"workorders/internal/pkg/guard"
)

var ErrGetOrderSummaryQueryIsNotConstructed = errors.New(
	"GetOrderSummaryQuery must be created via NewGetOrderSummaryQuery constructor",
)

// GetOrderSummaryQuery retrieves aggregate order counts for the periodic
// summary report. Read-only; never touches individual orders.
type GetOrderSummaryQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderSummaryQuery creates a query for the order summary counts.
func NewGetOrderSummaryQuery() GetOrderSummaryQuery {
	return GetOrderSummaryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrderSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderSummaryQueryIsNotConstructed)
}

// OrderSummaryResponse holds order counts broken down by status, plus the
// number of orders that still have no installer assigned.
type OrderSummaryResponse struct {
	Total       int64
	InProgress  int64
	NeedsRework int64
	Completed   int64
	Unassigned  int64
}
