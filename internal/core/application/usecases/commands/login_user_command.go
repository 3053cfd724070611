package commands

import (
	"errors"

	"workorders/internal/pkg/guard"
)

var ErrLoginUserCommandIsNotConstructed = errors.New(
	"LoginUserCommand must be created via NewLoginUserCommand constructor",
)

// LoginUserCommand represents a request to authenticate with username and
// password and receive a fresh session token.
type LoginUserCommand struct { //nolint:recvcheck //using for validation
	username string
	password string

	guard guard.ConstructorGuard
}

// NewLoginUserCommand creates a command to log a user in.
// Validates that username and password are not empty.
func NewLoginUserCommand(username, password string) (LoginUserCommand, error) {
	command := LoginUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setUsername(username),
		command.setPassword(password),
	); err != nil {
		return LoginUserCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrLoginUserCommandIsNotConstructed if validation fails.
func (c LoginUserCommand) Validate() error {
	return c.guard.Validate(ErrLoginUserCommandIsNotConstructed)
}

// Username returns the username from the command.
func (c LoginUserCommand) Username() string {
	return c.username
}

// Password returns the plaintext password from the command.
func (c LoginUserCommand) Password() string {
	return c.password
}

func (c *LoginUserCommand) setUsername(username string) error {
	if username == "" {
		return ErrUsernameIsRequired
	}

	c.username = username
	return nil
}

func (c *LoginUserCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}

	c.password = password
	return nil
}
