package queries

import (
	"context"

	"workorders/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrderSummaryQueryHandler computes the order counts for the summary
// report with two aggregate queries.
type GetOrderSummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderSummaryQueryHandler creates a handler for the order summary.
func NewGetOrderSummaryQueryHandler(db *gorm.DB) GetOrderSummaryQueryHandler {
	return GetOrderSummaryQueryHandler{db: db}
}

// Handle executes the summary query and returns counts per status together
// with the number of unassigned orders.
func (h GetOrderSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderSummaryQuery,
) (OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderSummaryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*)
		FROM orders
		GROUP BY status
	`).Rows()
	if err != nil {
		return OrderSummaryResponse{}, err
	}
	defer rows.Close()

	var summary OrderSummaryResponse
	for rows.Next() {
		var status string
		var count int64

		if err = rows.Scan(&status, &count); err != nil {
			return OrderSummaryResponse{}, err
		}

		parsed, statusErr := order.StatusFromString(status)
		if statusErr != nil {
			return OrderSummaryResponse{}, statusErr
		}

		switch parsed {
		case order.InProgress:
			summary.InProgress = count
		case order.NeedsRework:
			summary.NeedsRework = count
		case order.Completed:
			summary.Completed = count
		}
		summary.Total += count
	}
	if err = rows.Err(); err != nil {
		return OrderSummaryResponse{}, err
	}

	err = h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM orders
		WHERE installer_id IS NULL
	`).Row().Scan(&summary.Unassigned)
	if err != nil {
		return OrderSummaryResponse{}, err
	}

	return summary, nil
}
