package installer

import (
	"errors"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/errs"
)

// ErrInstallerIsNotConstructed is returned when an Installer instance was not
// created through NewInstaller or RestoreInstaller.
var ErrInstallerIsNotConstructed = errors.New("Installer must be created via NewInstaller or RestoreInstaller constructor")

// Installer represents a worker profile assignable to orders.
//
// Installer follows these invariants:
//   - Must have a valid unique identifier
//   - Name must be non-empty
//   - Contact info is optional free text
//   - The user back-reference, if present, must be a valid identifier and is
//     unique per user (enforced by storage)
type Installer struct {
	id          kernel.UUID
	name        string
	contactInfo string
	userID      *kernel.UUID

	isConstructed bool
}

// NewInstaller creates a validated Installer. Pass a nil userID for profiles
// not linked to a login account.
func NewInstaller(id kernel.UUID, name string, contactInfo string, userID *kernel.UUID) (*Installer, error) {
	inst := &Installer{
		contactInfo:   contactInfo,
		isConstructed: true,
	}

	if err := errors.Join(
		inst.setID(id),
		inst.setName(name),
		inst.setUserID(userID),
	); err != nil {
		return nil, err
	}

	return inst, nil
}

// RestoreInstaller reconstructs an Installer from persistence.
func RestoreInstaller(id kernel.UUID, name string, contactInfo string, userID *kernel.UUID) (*Installer, error) {
	return NewInstaller(id, name, contactInfo, userID)
}

// Validate ensures the Installer instance was properly constructed.
func (i *Installer) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrInstallerIsNotConstructed
	}
	return nil
}

// IsEqual compares two installers by their unique identifiers.
func (i *Installer) IsEqual(other *Installer) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the installer's unique identifier.
func (i *Installer) ID() kernel.UUID {
	return i.id
}

// Name returns the installer's display name.
func (i *Installer) Name() string {
	return i.name
}

// ContactInfo returns optional contact details; empty when not provided.
func (i *Installer) ContactInfo() string {
	return i.contactInfo
}

// UserID returns the linked user account identifier, or nil when the profile
// has no login.
func (i *Installer) UserID() *kernel.UUID {
	return i.userID
}

func (i *Installer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Installer) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Installer) setUserID(userID *kernel.UUID) error {
	if userID == nil {
		return nil
	}
	if err := userID.Validate(); err != nil {
		return err
	}
	i.userID = userID
	return nil
}
