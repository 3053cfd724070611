package orderrepo

import (
	"context"

	"workorders/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GormCommentRepository implements CommentRepository using GORM.
// Comments are insert-only; reads go through the query side.
type GormCommentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormCommentRepository creates a new GORM comment repository.
func NewGormCommentRepository(db *gorm.DB, tracker aggregateTracker) *GormCommentRepository {
	return &GormCommentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new comment to the database.
func (r *GormCommentRepository) Add(ctx context.Context, aggregate *order.Comment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := commentFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}
