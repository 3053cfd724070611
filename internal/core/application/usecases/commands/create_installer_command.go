package commands

import (
	"errors"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/guard"
)

var (
	ErrCreateInstallerCommandIsNotConstructed = errors.New(
		"CreateInstallerCommand must be created via NewCreateInstallerCommand constructor",
	)
	ErrNameIsRequired        = errors.New("name is required")
	ErrContactInfoIsRequired = errors.New("contact info is required")
)

// CreateInstallerCommand represents a request to add an installer profile
// to the directory. The profile may optionally be linked to a user account,
// which lets that user see orders assigned to the profile.
type CreateInstallerCommand struct { //nolint:recvcheck //using for validation
	installerID kernel.UUID
	name        string
	contactInfo string
	userID      *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateInstallerCommand creates a command to add an installer profile.
// Automatically generates a unique ID for the profile.
// Validates that name and contact info are not empty and that the linked
// user ID, when present, is well formed.
func NewCreateInstallerCommand(name, contactInfo string, userID *kernel.UUID) (CreateInstallerCommand, error) {
	command := CreateInstallerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setInstallerID(kernel.NewUUID()),
		command.setName(name),
		command.setContactInfo(contactInfo),
		command.setUserID(userID),
	); err != nil {
		return CreateInstallerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateInstallerCommandIsNotConstructed if validation fails.
func (c CreateInstallerCommand) Validate() error {
	return c.guard.Validate(ErrCreateInstallerCommandIsNotConstructed)
}

// InstallerID returns the generated installer ID from the command.
func (c CreateInstallerCommand) InstallerID() kernel.UUID {
	return c.installerID
}

// Name returns the installer name from the command.
func (c CreateInstallerCommand) Name() string {
	return c.name
}

// ContactInfo returns the installer contact info from the command.
func (c CreateInstallerCommand) ContactInfo() string {
	return c.contactInfo
}

// UserID returns the optional linked user ID from the command.
func (c CreateInstallerCommand) UserID() *kernel.UUID {
	return c.userID
}

func (c *CreateInstallerCommand) setInstallerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.installerID = id
	return nil
}

func (c *CreateInstallerCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateInstallerCommand) setContactInfo(contactInfo string) error {
	if contactInfo == "" {
		return ErrContactInfoIsRequired
	}

	c.contactInfo = contactInfo
	return nil
}

func (c *CreateInstallerCommand) setUserID(userID *kernel.UUID) error {
	if userID != nil {
		if err := userID.Validate(); err != nil {
			return err
		}
	}

	c.userID = userID
	return nil
}
