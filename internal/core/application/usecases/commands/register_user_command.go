package commands

import (
	"errors"

	"workorders/internal/core/domain/model/account"
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/guard"
)

var (
	ErrRegisterUserCommandIsNotConstructed = errors.New(
		"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
	)
	ErrUsernameIsRequired = errors.New("username is required")
	ErrPasswordIsRequired = errors.New("password is required")
)

// RegisterUserCommand represents a request to create a new user account.
// Carries the plaintext password; hashing happens in the handler so the
// command stays a plain data carrier.
//
// Example:
//
//	cmd, err := NewRegisterUserCommand("dispatcher1", "s3cret", account.Dispatcher)
//	if err != nil {
//	    return fmt.Errorf("invalid registration data: %w", err)
//	}
//
//	handler := NewRegisterUserCommandHandler(uowFactory)
//	token, err := handler.Handle(ctx, cmd)
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	username string
	password string
	role     account.Role

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register a new user.
// Automatically generates a unique ID for the account.
// Validates that username and password are not empty and the role is known.
func NewRegisterUserCommand(username, password string, role account.Role) (RegisterUserCommand, error) {
	command := RegisterUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setUserID(kernel.NewUUID()),
		command.setUsername(username),
		command.setPassword(password),
		command.setRole(role),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterUserCommandIsNotConstructed if validation fails.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// UserID returns the generated user ID from the command.
func (c RegisterUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Username returns the username from the command.
func (c RegisterUserCommand) Username() string {
	return c.username
}

// Password returns the plaintext password from the command.
func (c RegisterUserCommand) Password() string {
	return c.password
}

// Role returns the requested role from the command.
func (c RegisterUserCommand) Role() account.Role {
	return c.role
}

func (c *RegisterUserCommand) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.userID = id
	return nil
}

func (c *RegisterUserCommand) setUsername(username string) error {
	if username == "" {
		return ErrUsernameIsRequired
	}

	c.username = username
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}

	c.password = password
	return nil
}

func (c *RegisterUserCommand) setRole(role account.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
