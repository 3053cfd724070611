package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetMyOrdersQueryHandler retrieves orders assigned to the caller's installer
// profile. The user-to-profile link is resolved in the same SQL statement, so
// a user without a profile simply matches no rows.
type GetMyOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetMyOrdersQueryHandler creates a handler for the caller's order listing.
// Requires a GORM database connection for query execution.
func NewGetMyOrdersQueryHandler(db *gorm.DB) GetMyOrdersQueryHandler {
	return GetMyOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve the caller's assigned orders with
// their comments. Returns an empty slice when the caller has no installer
// profile or no assignments.
func (h GetMyOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetMyOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.address,
			o.account_number,
			o.contact_details,
			o.status,
			o.installer_id,
			o.created_by,
			o.updated_by,
			o.created_at,
			o.updated_at
		FROM orders o
		JOIN installers i ON i.id = o.installer_id
		WHERE i.user_id = ?
		ORDER BY o.created_at
	`, query.UserID().Bytes()).Rows()
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
