package tokenrepo

import (
	"context"
	"errors"

	"workorders/internal/core/domain/model/account"
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTokenRepository implements TokenRepository using GORM.
type GormTokenRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTokenRepository creates a new GORM token repository.
func NewGormTokenRepository(db *gorm.DB, tracker aggregateTracker) *GormTokenRepository {
	return &GormTokenRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a newly issued token to the database.
func (r *GormTokenRepository) Add(ctx context.Context, aggregate *account.Token) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByValue retrieves a token by its opaque value.
func (r *GormTokenRepository) GetByValue(ctx context.Context, value string) (*account.Token, error) {
	if value == "" {
		return nil, errs.NewValueIsRequiredError("value")
	}

	var dto TokenDTO
	if err := r.db.WithContext(ctx).First(&dto, "value = ?", value).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("token", "by value")
		}
		return nil, err
	}

	return toDomain(dto)
}
