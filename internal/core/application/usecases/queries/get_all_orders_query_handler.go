package queries

import (
	"context"
	"database/sql"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler retrieves the full order list from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetAllOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, NewGetAllOrdersQuery())
//	if err != nil {
//	    log.Printf("Failed to get orders: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Found %d orders\n", len(orders))
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for order list retrieval.
// Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all orders with their comments.
// Returns a slice of order read models sorted by creation time.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			address,
			account_number,
			contact_details,
			status,
			installer_id,
			created_by,
			updated_by,
			created_at,
			updated_at
		FROM orders
		ORDER BY created_at
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders, err := scanOrderRows(rows)
	if err != nil {
		return nil, err
	}

	if err = attachComments(ctx, h.db, orders); err != nil {
		return nil, err
	}

	return orders, nil
}

// scanOrderRows converts raw order rows into read models.
// The row layout must match the SELECT column order used by the order queries.
func scanOrderRows(rows *sql.Rows) ([]OrderResponse, error) {
	orders := make([]OrderResponse, 0)

	for rows.Next() {
		var resp OrderResponse
		var id, createdBy, updatedBy uuid.UUID
		var installerID uuid.NullUUID
		var status string

		err := rows.Scan(
			&id,
			&resp.Address,
			&resp.AccountNumber,
			&resp.ContactDetails,
			&status,
			&installerID,
			&createdBy,
			&updatedBy,
			&resp.CreatedAt,
			&resp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.CreatedBy, err = kernel.UUIDFromBytes(createdBy[:]); err != nil {
			return nil, err
		}
		if resp.UpdatedBy, err = kernel.UUIDFromBytes(updatedBy[:]); err != nil {
			return nil, err
		}
		if installerID.Valid {
			assigned, idErr := kernel.UUIDFromBytes(installerID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.InstallerID = &assigned
		}
		if resp.Status, err = order.StatusFromString(status); err != nil {
			return nil, err
		}

		resp.Comments = make([]CommentResponse, 0)
		orders = append(orders, resp)
	}

	return orders, rows.Err()
}

// attachComments loads the comments for the given orders in one query and
// distributes them onto the matching read models.
func attachComments(ctx context.Context, db *gorm.DB, orders []OrderResponse) error {
	if len(orders) == 0 {
		return nil
	}

	index := make(map[kernel.UUID]int, len(orders))
	ids := make([]uuid.UUID, 0, len(orders))
	for i, o := range orders {
		index[o.ID] = i
		ids = append(ids, o.ID.Bytes())
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			text,
			created_at
		FROM comments
		WHERE order_id IN ?
		ORDER BY created_at
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var comment CommentResponse
		var id, orderID uuid.UUID

		if err = rows.Scan(&id, &orderID, &comment.Text, &comment.CreatedAt); err != nil {
			return err
		}

		if comment.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return err
		}
		if comment.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return err
		}

		if i, ok := index[comment.OrderID]; ok {
			orders[i].Comments = append(orders[i].Comments, comment)
		}
	}

	return rows.Err()
}
