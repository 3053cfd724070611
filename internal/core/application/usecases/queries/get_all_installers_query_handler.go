package queries

import (
	"context"

	"workorders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllInstallersQueryHandler retrieves the installer directory from the
// database, sorted by name.
type GetAllInstallersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllInstallersQueryHandler creates a handler for installer retrieval.
// Requires a GORM database connection for query execution.
func NewGetAllInstallersQueryHandler(db *gorm.DB) GetAllInstallersQueryHandler {
	return GetAllInstallersQueryHandler{db: db}
}

// Handle executes the query to retrieve all installer profiles.
func (h GetAllInstallersQueryHandler) Handle(
	ctx context.Context,
	query GetAllInstallersQuery,
) ([]InstallerResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			contact_info,
			user_id
		FROM installers
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	installers := make([]InstallerResponse, 0)
	for rows.Next() {
		var resp InstallerResponse
		var id uuid.UUID
		var userID uuid.NullUUID

		if err = rows.Scan(&id, &resp.Name, &resp.ContactInfo, &userID); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if userID.Valid {
			linked, idErr := kernel.UUIDFromBytes(userID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.UserID = &linked
		}

		installers = append(installers, resp)
	}

	return installers, rows.Err()
}
