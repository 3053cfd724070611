package queries

import (
	"context"
	"database/sql"
	"errors"

	"workorders/internal/core/domain/model/account"
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetProfileQueryHandler retrieves the caller's own account details together
// with the linked installer profile, when one exists.
type GetProfileQueryHandler struct {
	db *gorm.DB
}

// NewGetProfileQueryHandler creates a handler for profile retrieval.
// Requires a GORM database connection for query execution.
func NewGetProfileQueryHandler(db *gorm.DB) GetProfileQueryHandler {
	return GetProfileQueryHandler{db: db}
}

// Handle executes the query to retrieve the caller's profile.
// Returns an ObjectNotFoundError when the user does not exist; with a valid
// session that indicates the account was removed out of band.
func (h GetProfileQueryHandler) Handle(
	ctx context.Context,
	query GetProfileQuery,
) (ProfileResponse, error) {
	if err := query.Validate(); err != nil {
		return ProfileResponse{}, err
	}

	var id uuid.UUID
	var username, role string
	var installerID uuid.NullUUID
	var installerName, installerContact sql.NullString

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			u.id,
			u.username,
			u.role,
			i.id,
			i.name,
			i.contact_info
		FROM users u
		LEFT JOIN installers i ON i.user_id = u.id
		WHERE u.id = ?
	`, query.UserID().Bytes()).Row()

	err := row.Scan(&id, &username, &role, &installerID, &installerName, &installerContact)
	if errors.Is(err, sql.ErrNoRows) {
		return ProfileResponse{}, errs.NewObjectNotFoundError("userID", query.UserID())
	}
	if err != nil {
		return ProfileResponse{}, err
	}

	userID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return ProfileResponse{}, err
	}

	userRole, err := account.RoleFromString(role)
	if err != nil {
		return ProfileResponse{}, err
	}

	resp := ProfileResponse{
		User: UserResponse{
			ID:       userID,
			Username: username,
			Role:     userRole,
		},
	}

	if installerID.Valid {
		linkedID, idErr := kernel.UUIDFromBytes(installerID.UUID[:])
		if idErr != nil {
			return ProfileResponse{}, idErr
		}

		resp.User.InstallerID = &linkedID
		resp.Installer = &InstallerResponse{
			ID:          linkedID,
			Name:        installerName.String,
			ContactInfo: installerContact.String,
			UserID:      &userID,
		}
	}

	return resp, nil
}
