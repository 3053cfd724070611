package queries

import (
	"errors"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/guard"
)

var ErrGetAllInstallersQueryIsNotConstructed = errors.New(
	"GetAllInstallersQuery must be created via NewGetAllInstallersQuery constructor",
)

// GetAllInstallersQuery retrieves the installer directory.
type GetAllInstallersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllInstallersQuery creates a query to retrieve all installer profiles.
func NewGetAllInstallersQuery() GetAllInstallersQuery {
	return GetAllInstallersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllInstallersQueryIsNotConstructed if validation fails.
func (q GetAllInstallersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllInstallersQueryIsNotConstructed)
}

// InstallerResponse represents one installer profile in the read model.
// UserID is nil for profiles without a linked account.
type InstallerResponse struct {
	ID          kernel.UUID
	Name        string
	ContactInfo string
	UserID      *kernel.UUID
}
