package commands

import (
	"errors"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/guard"
)

var ErrAssignInstallerCommandIsNotConstructed = errors.New(
	"AssignInstallerCommand must be created via NewAssignInstallerCommand constructor",
)

// AssignInstallerCommand represents a request to put an installer on an order.
// Reassignment is allowed in any order status; the previous installer is
// simply replaced.
type AssignInstallerCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	installerID kernel.UUID
	actorID     kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignInstallerCommand creates a command to assign an installer to an order.
// Validates that all identifiers are well formed.
func NewAssignInstallerCommand(orderID, installerID, actorID kernel.UUID) (AssignInstallerCommand, error) {
	command := AssignInstallerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setInstallerID(installerID),
		command.setActorID(actorID),
	); err != nil {
		return AssignInstallerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignInstallerCommandIsNotConstructed if validation fails.
func (c AssignInstallerCommand) Validate() error {
	return c.guard.Validate(ErrAssignInstallerCommandIsNotConstructed)
}

// OrderID returns the target order ID from the command.
func (c AssignInstallerCommand) OrderID() kernel.UUID {
	return c.orderID
}

// InstallerID returns the installer profile ID from the command.
func (c AssignInstallerCommand) InstallerID() kernel.UUID {
	return c.installerID
}

// ActorID returns the authenticated user ID from the command.
func (c AssignInstallerCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *AssignInstallerCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *AssignInstallerCommand) setInstallerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.installerID = id
	return nil
}

func (c *AssignInstallerCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
