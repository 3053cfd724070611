package queries

import (
	"errors"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/guard"
)

var ErrGetProfileQueryIsNotConstructed = errors.New(
	"GetProfileQuery must be created via NewGetProfileQuery constructor",
)

// GetProfileQuery retrieves the caller's own account details, including the
// linked installer profile when one exists.
type GetProfileQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetProfileQuery creates a query for the caller's own profile.
// Validates that the user ID is well formed.
func NewGetProfileQuery(userID kernel.UUID) (GetProfileQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetProfileQuery{}, err
	}

	return GetProfileQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetProfileQueryIsNotConstructed if validation fails.
func (q GetProfileQuery) Validate() error {
	return q.guard.Validate(ErrGetProfileQueryIsNotConstructed)
}

// UserID returns the authenticated user ID from the query.
func (q GetProfileQuery) UserID() kernel.UUID {
	return q.userID
}

// ProfileResponse represents the caller's own account in the read model.
// Installer is nil for accounts without a linked installer profile.
type ProfileResponse struct {
	User      UserResponse
	Installer *InstallerResponse
}
