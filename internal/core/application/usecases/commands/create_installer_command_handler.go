package commands

import (
	"context"

	"workorders/internal/core/domain/model/installer"
)

// CreateInstallerCommandHandler handles the business logic for adding an
// installer profile. When the profile is linked to a user account the account
// must exist; the lookup happens inside the same transaction as the insert.
type CreateInstallerCommandHandler struct {
	uowFactory InstallerUoWFactory
}

// NewCreateInstallerCommandHandler creates a handler for installer profile creation.
// Requires an InstallerUoWFactory for transactional persistence operations.
func NewCreateInstallerCommandHandler(uowFactory InstallerUoWFactory) CreateInstallerCommandHandler {
	return CreateInstallerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the installer creation command and returns the created
// profile. Returns an ObjectNotFoundError when the linked user does not exist.
func (h CreateInstallerCommandHandler) Handle(
	ctx context.Context, cmd CreateInstallerCommand,
) (*installer.Installer, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if cmd.UserID() != nil {
		if _, err := uow.UserRepository().Get(ctx, *cmd.UserID()); err != nil {
			return nil, err
		}
	}

	profile, err := installer.NewInstaller(cmd.InstallerID(), cmd.Name(), cmd.ContactInfo(), cmd.UserID())
	if err != nil {
		return nil, err
	}

	if err = uow.InstallerRepository().Add(ctx, profile); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return profile, nil
}
