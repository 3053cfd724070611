package commands

import (
	"context"
	"errors"
	"fmt"

	"workorders/internal/core/domain/model/account"
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/ports"
	"workorders/internal/pkg/creds"
	"workorders/internal/pkg/errs"
)

// RegisterUserCommandHandler handles the business logic for user registration.
// Creates the account and issues the first session token in one transaction,
// so a successful registration always leaves the caller authenticated.
type RegisterUserCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewRegisterUserCommandHandler creates a handler for user registration.
// Requires an AccountUoWFactory for transactional persistence operations.
func NewRegisterUserCommandHandler(uowFactory AccountUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command and returns the issued session
// token value. Returns an ObjectAlreadyExistsError when the username is taken.
func (h RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()

	_, err := userRepo.GetByUsername(ctx, cmd.Username())
	if err == nil {
		return "", errs.NewDuplicateObjectError("username", cmd.Username())
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return "", err
	}

	passwordHash, err := creds.HashPassword(cmd.Password())
	if err != nil {
		return "", err
	}

	user, err := account.NewUser(cmd.UserID(), cmd.Username(), passwordHash, cmd.Role())
	if err != nil {
		return "", err
	}

	if err = userRepo.Add(ctx, user); err != nil {
		return "", err
	}

	tokenValue, err := issueToken(ctx, uow.TokenRepository(), user.ID())
	if err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return tokenValue, nil
}

// issueToken mints a fresh session token for the user and persists it.
// Shared by registration and login; both must return a usable token.
func issueToken(ctx context.Context, tokenRepo ports.TokenRepository, userID kernel.UUID) (string, error) {
	value, err := creds.NewSessionToken()
	if err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}

	token, err := account.NewToken(kernel.NewUUID(), value, userID)
	if err != nil {
		return "", err
	}

	if err = tokenRepo.Add(ctx, token); err != nil {
		return "", err
	}

	return value, nil
}
