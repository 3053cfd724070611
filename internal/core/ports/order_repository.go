package ports

import (
	"context"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its unique identifier.
	// Returns an ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}

// CommentRepository defines the persistence contract for order comments.
// Comments are insert-only; they are read through the query side.
type CommentRepository interface {
	// Add persists a new comment.
	Add(ctx context.Context, aggregate *order.Comment) error
}

// HistoryRepository defines the persistence contract for the audit log.
// The log is append-only: no update or delete path exists, and every append
// must share the transaction of the mutation it records.
type HistoryRepository interface {
	// Append persists one audit record.
	Append(ctx context.Context, aggregate *order.HistoryEntry) error
}
