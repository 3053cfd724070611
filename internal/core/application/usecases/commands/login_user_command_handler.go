package commands

import (
	"context"
	"errors"

	"workorders/internal/pkg/creds"
	"workorders/internal/pkg/errs"
)

// LoginUserCommandHandler handles the business logic for password login.
// Every successful login issues a new token; previously issued tokens stay
// valid, so sessions on other devices are not revoked.
type LoginUserCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewLoginUserCommandHandler creates a handler for password login.
// Requires an AccountUoWFactory for transactional persistence operations.
func NewLoginUserCommandHandler(uowFactory AccountUoWFactory) LoginUserCommandHandler {
	return LoginUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the login command and returns the issued session token
// value. Returns a NotAuthenticatedError for an unknown username or a wrong
// password; the two cases are deliberately indistinguishable to the caller.
func (h LoginUserCommandHandler) Handle(ctx context.Context, cmd LoginUserCommand) (string, error) {
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

	user, err := uow.UserRepository().GetByUsername(ctx, cmd.Username())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return "", errs.NewNotAuthenticatedError("invalid username or password")
	}
	if err != nil {
		return "", err
	}

	if !creds.VerifyPassword(cmd.Password(), user.PasswordHash()) {
		return "", errs.NewNotAuthenticatedError("invalid username or password")
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
