package orderrepo

import (
	"context"

	"workorders/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GormHistoryRepository implements HistoryRepository using GORM.
// The audit log is append-only; no update or delete methods exist on purpose.
type GormHistoryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormHistoryRepository creates a new GORM history repository.
func NewGormHistoryRepository(db *gorm.DB, tracker aggregateTracker) *GormHistoryRepository {
	return &GormHistoryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Append saves one audit record to the database.
func (r *GormHistoryRepository) Append(ctx context.Context, aggregate *order.HistoryEntry) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := historyFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}
