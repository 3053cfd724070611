package queries

import (
	"context"
	"database/sql"

	"workorders/internal/core/domain/model/account"
	"workorders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllUsersQueryHandler retrieves the user account list from the database.
// Each account carries the ID of its linked installer profile, when one exists.
type GetAllUsersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllUsersQueryHandler creates a handler for user account retrieval.
// Requires a GORM database connection for query execution.
func NewGetAllUsersQueryHandler(db *gorm.DB) GetAllUsersQueryHandler {
	return GetAllUsersQueryHandler{db: db}
}

// Handle executes the query to retrieve all user accounts sorted by username.
func (h GetAllUsersQueryHandler) Handle(
	ctx context.Context,
	query GetAllUsersQuery,
) ([]UserResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			u.id,
			u.username,
			u.role,
			i.id
		FROM users u
		LEFT JOIN installers i ON i.user_id = u.id
		ORDER BY u.username
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users, err := scanUserRows(rows)
	if err != nil {
		return nil, err
	}

	return users, nil
}

// scanUserRows converts raw user rows into read models.
// The row layout must match the SELECT column order used by the user queries.
func scanUserRows(rows *sql.Rows) ([]UserResponse, error) {
	users := make([]UserResponse, 0)

	for rows.Next() {
		var resp UserResponse
		var id uuid.UUID
		var installerID uuid.NullUUID
		var role string

		if err := rows.Scan(&id, &resp.Username, &role, &installerID); err != nil {
			return nil, err
		}

		userID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		resp.ID = userID

		if resp.Role, err = account.RoleFromString(role); err != nil {
			return nil, err
		}
		if installerID.Valid {
			linked, idErr := kernel.UUIDFromBytes(installerID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.InstallerID = &linked
		}

		users = append(users, resp)
	}

	return users, rows.Err()
}
