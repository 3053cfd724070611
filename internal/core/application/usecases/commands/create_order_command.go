package commands

import (
	"errors"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrAddressIsRequired        = errors.New("address is required")
	ErrAccountNumberIsRequired  = errors.New("account number is required")
	ErrContactDetailsIsRequired = errors.New("contact details is required")
)

// CreateOrderCommand represents a request to open a new work order.
// The actor is the authenticated user opening the order; it becomes the
// order's creator and the actor of the first audit record.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("12 Main St", "AC-100", "555-0101", actorID)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	address        string
	accountNumber  string
	contactDetails string
	actorID        kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to open a new work order.
// Automatically generates a unique ID for the order.
// Validates that address, account number, and contact details are not empty.
func NewCreateOrderCommand(
	address, accountNumber, contactDetails string, actorID kernel.UUID,
) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(kernel.NewUUID()),
		command.setAddress(address),
		command.setAccountNumber(accountNumber),
		command.setContactDetails(contactDetails),
		command.setActorID(actorID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the generated order ID from the command.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Address returns the service address from the command.
func (c CreateOrderCommand) Address() string {
	return c.address
}

// AccountNumber returns the customer account number from the command.
func (c CreateOrderCommand) AccountNumber() string {
	return c.accountNumber
}

// ContactDetails returns the customer contact details from the command.
func (c CreateOrderCommand) ContactDetails() string {
	return c.contactDetails
}

// ActorID returns the authenticated user ID from the command.
func (c CreateOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *CreateOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *CreateOrderCommand) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}

	c.address = address
	return nil
}

func (c *CreateOrderCommand) setAccountNumber(accountNumber string) error {
	if accountNumber == "" {
		return ErrAccountNumberIsRequired
	}

	c.accountNumber = accountNumber
	return nil
}

func (c *CreateOrderCommand) setContactDetails(contactDetails string) error {
	if contactDetails == "" {
		return ErrContactDetailsIsRequired
	}

	c.contactDetails = contactDetails
	return nil
}

func (c *CreateOrderCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
