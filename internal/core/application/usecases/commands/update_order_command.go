package commands

import (
	"errors"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
	ErrNoFieldsToUpdate = errors.New("at least one field to update is required")
)

// UpdateOrderCommand represents a request to change the descriptive fields of
// an existing order. Each field is optional; nil means "leave unchanged".
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	address        *string
	accountNumber  *string
	contactDetails *string
	actorID        kernel.UUID

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to update an order's details.
// At least one of the optional fields must be provided, and provided fields
// must not be empty strings.
func NewUpdateOrderCommand(
	orderID kernel.UUID, address, accountNumber, contactDetails *string, actorID kernel.UUID,
) (UpdateOrderCommand, error) {
	command := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if address == nil && accountNumber == nil && contactDetails == nil {
		return UpdateOrderCommand{}, ErrNoFieldsToUpdate
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setAddress(address),
		command.setAccountNumber(accountNumber),
		command.setContactDetails(contactDetails),
		command.setActorID(actorID),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderCommandIsNotConstructed if validation fails.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the target order ID from the command.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Address returns the new address, or nil when unchanged.
func (c UpdateOrderCommand) Address() *string {
	return c.address
}

// AccountNumber returns the new account number, or nil when unchanged.
func (c UpdateOrderCommand) AccountNumber() *string {
	return c.accountNumber
}

// ContactDetails returns the new contact details, or nil when unchanged.
func (c UpdateOrderCommand) ContactDetails() *string {
	return c.contactDetails
}

// ActorID returns the authenticated user ID from the command.
func (c UpdateOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *UpdateOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *UpdateOrderCommand) setAddress(address *string) error {
	if address != nil && *address == "" {
		return ErrAddressIsRequired
	}

	c.address = address
	return nil
}

func (c *UpdateOrderCommand) setAccountNumber(accountNumber *string) error {
	if accountNumber != nil && *accountNumber == "" {
		return ErrAccountNumberIsRequired
	}

	c.accountNumber = accountNumber
	return nil
}

func (c *UpdateOrderCommand) setContactDetails(contactDetails *string) error {
	if contactDetails != nil && *contactDetails == "" {
		return ErrContactDetailsIsRequired
	}

	c.contactDetails = contactDetails
	return nil
}

func (c *UpdateOrderCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
