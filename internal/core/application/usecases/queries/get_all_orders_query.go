package queries

import (
	"errors"
	"time"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/order"
	"workorders/internal/pkg/guard"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery retrieves every work order in the system together with
// its comments. Visible to any authenticated caller regardless of role.
type GetAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query to retrieve all orders.
// This is a parameterless query that fetches the complete order list.
func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllOrdersQueryIsNotConstructed if validation fails.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// OrderResponse represents one work order in the read model.
// Shared by the full listing and the per-installer listing.
type OrderResponse struct {
	ID             kernel.UUID
	Address        string
	AccountNumber  string
	ContactDetails string
	Status         order.Status
	InstallerID    *kernel.UUID
	CreatedBy      kernel.UUID
	UpdatedBy      kernel.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Comments       []CommentResponse
}

// CommentResponse represents one order comment in the read model.
type CommentResponse struct {
	ID        kernel.UUID
	OrderID   kernel.UUID
	Text      string
	CreatedAt time.Time
}
