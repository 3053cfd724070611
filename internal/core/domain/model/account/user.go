package account

import (
	"errors"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through NewUser or RestoreUser. This ensures all users are properly validated.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser constructor")

// User is the aggregate representing an authenticated identity.
//
// User follows these invariants:
//   - Must have a valid unique identifier
//   - Username must be non-empty and unique system-wide (enforced by storage)
//   - Password hash must be non-empty; the plaintext never reaches the domain
//   - Role must be one of the three defined roles
//
// Private fields keep the aggregate encapsulated; a password hash is only
// readable for verification and never serialized outward.
type User struct {
	id           kernel.UUID
	username     string
	passwordHash string
	role         Role

	isConstructed bool
}

// NewUser creates a validated User. The passwordHash must already be the
// output of the credential store; the domain never sees plaintext passwords.
func NewUser(id kernel.UUID, username string, passwordHash string, role Role) (*User, error) {
	user := &User{
		isConstructed: true,
	}

	if err := errors.Join(
		user.setID(id),
		user.setUsername(username),
		user.setPasswordHash(passwordHash),
		user.setRole(role),
	); err != nil {
		return nil, err
	}

	return user, nil
}

// RestoreUser reconstructs a User from persistence. Validation is identical to
// NewUser so rows that no longer satisfy the invariants fail loudly.
func RestoreUser(id kernel.UUID, username string, passwordHash string, role Role) (*User, error) {
	return NewUser(id, username, passwordHash, role)
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// IsEqual compares two users by their unique identifiers.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Username returns the unique login name.
func (u *User) Username() string {
	return u.username
}

// PasswordHash returns the stored one-way hash for credential verification.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// Role returns the user's role.
func (u *User) Role() Role {
	return u.role
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	u.username = username
	return nil
}

func (u *User) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	u.passwordHash = passwordHash
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
