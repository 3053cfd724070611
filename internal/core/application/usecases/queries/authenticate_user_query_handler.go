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

// AuthenticateUserQueryHandler resolves session tokens to user identities.
// Runs on every authenticated request, so it is a single indexed join with
// no domain aggregate reconstruction.
type AuthenticateUserQueryHandler struct {
	db *gorm.DB
}

// NewAuthenticateUserQueryHandler creates a handler for token resolution.
// Requires a GORM database connection for query execution.
func NewAuthenticateUserQueryHandler(db *gorm.DB) AuthenticateUserQueryHandler {
	return AuthenticateUserQueryHandler{db: db}
}

// Handle resolves the token to its owning user.
// Returns a NotAuthenticatedError when the token is unknown.
func (h AuthenticateUserQueryHandler) Handle(
	ctx context.Context,
	query AuthenticateUserQuery,
) (AuthenticateUserQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return AuthenticateUserQueryResponse{}, err
	}

	var id uuid.UUID
	var username, role string

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			u.id,
			u.username,
			u.role
		FROM tokens t
		JOIN users u ON u.id = t.user_id
		WHERE t.value = ?
	`, query.TokenValue()).Row()

	err := row.Scan(&id, &username, &role)
	if errors.Is(err, sql.ErrNoRows) {
		return AuthenticateUserQueryResponse{}, errs.NewNotAuthenticatedError("invalid token")
	}
	if err != nil {
		return AuthenticateUserQueryResponse{}, err
	}

	userID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return AuthenticateUserQueryResponse{}, err
	}

	userRole, err := account.RoleFromString(role)
	if err != nil {
		return AuthenticateUserQueryResponse{}, err
	}

	return AuthenticateUserQueryResponse{
		UserID:   userID,
		Username: username,
		Role:     userRole,
	}, nil
}
