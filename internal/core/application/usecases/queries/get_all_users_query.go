package queries

import (
	"errors"

	"workorders/internal/core/domain/model/account"
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/guard"
)

var ErrGetAllUsersQueryIsNotConstructed = errors.New(
	"GetAllUsersQuery must be created via NewGetAllUsersQuery constructor",
)

// GetAllUsersQuery retrieves every user account. Administrators use this
// listing to manage role assignments and installer links.
type GetAllUsersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllUsersQuery creates a query to retrieve all user accounts.
func NewGetAllUsersQuery() GetAllUsersQuery {
	return GetAllUsersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllUsersQueryIsNotConstructed if validation fails.
func (q GetAllUsersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllUsersQueryIsNotConstructed)
}

// UserResponse represents one user account in the read model.
// Password hashes never leave the persistence layer through this model.
// InstallerID is nil for accounts without an installer profile.
type UserResponse struct {
	ID          kernel.UUID
	Username    string
	Role        account.Role
	InstallerID *kernel.UUID
}
