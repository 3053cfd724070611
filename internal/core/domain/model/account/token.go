package account

import (
	"errors"
	"time"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/errs"
)

// ErrTokenIsNotConstructed is returned when a Token instance was not created
// through NewToken or RestoreToken.
var ErrTokenIsNotConstructed = errors.New("Token must be created via NewToken or RestoreToken constructor")

// Token is an opaque bearer credential bound to exactly one user.
//
// Tokens are created at registration and at every login; logging in mints a new
// token without invalidating earlier ones. Tokens have no expiry and no
// revocation path, so a token is live for as long as its user exists.
type Token struct {
	id        kernel.UUID
	value     string
	userID    kernel.UUID
	createdAt time.Time

	isConstructed bool
}

// NewToken creates a token binding the opaque value to a user.
// The creation timestamp is recorded in UTC.
func NewToken(id kernel.UUID, value string, userID kernel.UUID) (*Token, error) {
	return RestoreToken(id, value, userID, time.Now().UTC())
}

// RestoreToken reconstructs a token from persistence with its original
// creation timestamp.
func RestoreToken(id kernel.UUID, value string, userID kernel.UUID, createdAt time.Time) (*Token, error) {
	token := &Token{
		isConstructed: true,
	}

	if err := errors.Join(
		token.setID(id),
		token.setValue(value),
		token.setUserID(userID),
		token.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return token, nil
}

// Validate ensures the Token instance was properly constructed.
func (t *Token) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTokenIsNotConstructed
	}
	return nil
}

// ID returns the token's unique identifier.
func (t *Token) ID() kernel.UUID {
	return t.id
}

// Value returns the opaque token string presented by clients.
func (t *Token) Value() string {
	return t.value
}

// UserID returns the identifier of the user this token authenticates.
func (t *Token) UserID() kernel.UUID {
	return t.userID
}

// CreatedAt returns when the token was issued.
func (t *Token) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Token) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Token) setValue(value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError("token value")
	}
	t.value = value
	return nil
}

func (t *Token) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	t.userID = userID
	return nil
}

func (t *Token) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	t.createdAt = createdAt
	return nil
}
