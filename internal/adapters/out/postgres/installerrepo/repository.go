package installerrepo

import (
	"context"
	"errors"

	"workorders/internal/core/domain/model/installer"
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormInstallerRepository implements InstallerRepository using GORM.
type GormInstallerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormInstallerRepository creates a new GORM installer repository.
func NewGormInstallerRepository(db *gorm.DB, tracker aggregateTracker) *GormInstallerRepository {
	return &GormInstallerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new installer profile to the database.
// A unique index violation on the user link means the account already backs
// another profile.
func (r *GormInstallerRepository) Add(ctx context.Context, aggregate *installer.Installer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewDuplicateObjectErrorWithCause("userID", userLinkString(aggregate), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an installer by ID.
func (r *GormInstallerRepository) Get(ctx context.Context, id kernel.UUID) (*installer.Installer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto InstallerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("installer", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByUserID retrieves the installer profile linked to a user account.
func (r *GormInstallerRepository) GetByUserID(ctx context.Context, userID kernel.UUID) (*installer.Installer, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto InstallerDTO
	if err := r.db.WithContext(ctx).First(&dto, "user_id = ?", userID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("installer by user", userID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func userLinkString(aggregate *installer.Installer) string {
	if id := aggregate.UserID(); id != nil {
		return id.String()
	}
	return ""
}
