package ports

import (
	"context"

	"workorders/internal/core/domain/model/installer"
	"workorders/internal/core/domain/model/kernel"
)

// InstallerRepository defines the persistence contract for installer profiles.
type InstallerRepository interface {
	// Add persists a new installer profile.
	Add(ctx context.Context, aggregate *installer.Installer) error

	// Get retrieves an installer by its unique identifier.
	// Returns an ObjectNotFoundError when no such installer exists.
	Get(ctx context.Context, id kernel.UUID) (*installer.Installer, error)

	// GetByUserID resolves the installer profile linked to a user account.
	// Returns an ObjectNotFoundError when the user has no profile.
	GetByUserID(ctx context.Context, userID kernel.UUID) (*installer.Installer, error)
}
