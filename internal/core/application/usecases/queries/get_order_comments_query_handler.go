package queries

import (
	"context"
	"database/sql"
	"errors"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderCommentsQueryHandler retrieves the comments of one order.
// An unknown order is reported as not found rather than as an empty list,
// so callers can tell a missing order from a quiet one.
type GetOrderCommentsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderCommentsQueryHandler creates a handler for comment retrieval.
// Requires a GORM database connection for query execution.
func NewGetOrderCommentsQueryHandler(db *gorm.DB) GetOrderCommentsQueryHandler {
	return GetOrderCommentsQueryHandler{db: db}
}

// Handle executes the query to retrieve an order's comments, oldest first.
// Returns an ObjectNotFoundError when the order does not exist.
func (h GetOrderCommentsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderCommentsQuery,
) ([]CommentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := orderExists(ctx, h.db, query.OrderID()); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			text,
			created_at
		FROM comments
		WHERE order_id = ?
		ORDER BY created_at
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := make([]CommentResponse, 0)
	for rows.Next() {
		var comment CommentResponse
		var id, orderID uuid.UUID

		if err = rows.Scan(&id, &orderID, &comment.Text, &comment.CreatedAt); err != nil {
			return nil, err
		}

		if comment.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if comment.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}

		comments = append(comments, comment)
	}

	return comments, rows.Err()
}

// orderExists checks that the order is present before listing its children.
func orderExists(ctx context.Context, db *gorm.DB, orderID kernel.UUID) error {
	var one int

	row := db.WithContext(ctx).Raw(`
		SELECT 1 FROM orders WHERE id = ?
	`, orderID.Bytes()).Row()

	err := row.Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return errs.NewObjectNotFoundError("orderID", orderID)
	}
	return err
}
