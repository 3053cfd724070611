package order

import (
	"errors"
	"fmt"
	"time"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order represents a unit of installation work. It is the aggregate root that
// manages the order lifecycle from creation through assignment and status
// reporting.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and creator
//   - Address, account number, and contact details must be non-empty
//   - Status must be one of the three defined states; new orders start InProgress
//   - The installer reference, if present, must be a valid identifier
//   - Every mutation stamps the acting user and refreshes the updated-at timestamp
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Order struct {
	id             kernel.UUID
	address        string
	accountNumber  string
	contactDetails string
	status         Status
	installerID    *kernel.UUID
	createdBy      kernel.UUID
	updatedBy      kernel.UUID
	createdAt      time.Time
	updatedAt      time.Time

	isConstructed bool
}

// NewOrder creates a new Order in InProgress status with the creator recorded
// as both created-by and updated-by actor.
func NewOrder(id kernel.UUID, address, accountNumber, contactDetails string, createdBy kernel.UUID) (*Order, error) {
	now := time.Now().UTC()
	return RestoreOrder(id, address, accountNumber, contactDetails,
		InProgress, nil, createdBy, createdBy, now, now)
}

// RestoreOrder reconstructs an Order from persistence with its full state.
// Validation is identical to NewOrder so invalid rows fail loudly.
func RestoreOrder(
	id kernel.UUID,
	address, accountNumber, contactDetails string,
	status Status,
	installerID *kernel.UUID,
	createdBy, updatedBy kernel.UUID,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setAddress(address),
		o.setAccountNumber(accountNumber),
		o.setContactDetails(contactDetails),
		o.setStatus(status),
		o.setInstallerID(installerID),
		o.setActors(createdBy, updatedBy),
		o.setTimestamps(createdAt, updatedAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Address returns the installation address.
func (o *Order) Address() string {
	return o.address
}

// AccountNumber returns the customer account number.
func (o *Order) AccountNumber() string {
	return o.accountNumber
}

// ContactDetails returns the customer contact details.
func (o *Order) ContactDetails() string {
	return o.contactDetails
}

// Status returns the current lifecycle status of the order.
func (o *Order) Status() Status {
	return o.status
}

// InstallerID returns the assigned installer's identifier.
// Returns nil if no installer is assigned.
func (o *Order) InstallerID() *kernel.UUID {
	return o.installerID
}

// CreatedBy returns the identifier of the user who created the order.
func (o *Order) CreatedBy() kernel.UUID {
	return o.createdBy
}

// UpdatedBy returns the identifier of the user who last mutated the order.
func (o *Order) UpdatedBy() kernel.UUID {
	return o.updatedBy
}

// CreatedAt returns when the order was created.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns when the order was last mutated.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Update applies a partial update: nil fields retain their prior value, empty
// strings are rejected. Returns the names of the fields that were applied,
// which callers record in the order's history.
func (o *Order) Update(address, accountNumber, contactDetails *string, actorID kernel.UUID) ([]string, error) {
	if err := actorID.Validate(); err != nil {
		return nil, err
	}

	changed := make([]string, 0, 3)
	if address != nil {
		if err := o.setAddress(*address); err != nil {
			return nil, err
		}
		changed = append(changed, "address")
	}
	if accountNumber != nil {
		if err := o.setAccountNumber(*accountNumber); err != nil {
			return nil, err
		}
		changed = append(changed, "account_number")
	}
	if contactDetails != nil {
		if err := o.setContactDetails(*contactDetails); err != nil {
			return nil, err
		}
		changed = append(changed, "contact_details")
	}

	o.touch(actorID)
	return changed, nil
}

// AssignInstaller points the order at an installer profile. Assignment is
// allowed in every status, including reassignment of already assigned orders.
// The caller is responsible for verifying the installer exists.
func (o *Order) AssignInstaller(installerID kernel.UUID, actorID kernel.UUID) error {
	if err := installerID.Validate(); err != nil {
		return err
	}
	if err := actorID.Validate(); err != nil {
		return err
	}

	o.installerID = &installerID
	o.touch(actorID)
	return nil
}

// ChangeStatus sets the status unconditionally to newStatus. The lifecycle has
// no forbidden transitions; completed orders may be reopened.
func (o *Order) ChangeStatus(newStatus Status, actorID kernel.UUID) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}
	if err := actorID.Validate(); err != nil {
		return err
	}

	o.status = newStatus
	o.touch(actorID)
	return nil
}

// touch records the acting user and refreshes the updated-at timestamp.
// Called by every mutating method.
func (o *Order) touch(actorID kernel.UUID) {
	o.updatedBy = actorID
	o.updatedAt = time.Now().UTC()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	o.address = address
	return nil
}

func (o *Order) setAccountNumber(accountNumber string) error {
	if accountNumber == "" {
		return errs.NewValueIsRequiredError("accountNumber")
	}
	o.accountNumber = accountNumber
	return nil
}

func (o *Order) setContactDetails(contactDetails string) error {
	if contactDetails == "" {
		return errs.NewValueIsRequiredError("contactDetails")
	}
	o.contactDetails = contactDetails
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setInstallerID(installerID *kernel.UUID) error {
	if installerID == nil {
		return nil
	}
	if err := installerID.Validate(); err != nil {
		return err
	}
	o.installerID = installerID
	return nil
}

func (o *Order) setActors(createdBy, updatedBy kernel.UUID) error {
	if err := errors.Join(createdBy.Validate(), updatedBy.Validate()); err != nil {
		return fmt.Errorf("order actors: %w", err)
	}
	o.createdBy = createdBy
	o.updatedBy = updatedBy
	return nil
}

func (o *Order) setTimestamps(createdAt, updatedAt time.Time) error {
	if createdAt.IsZero() || updatedAt.IsZero() {
		return errs.NewValueIsRequiredError("timestamps")
	}
	o.createdAt = createdAt
	o.updatedAt = updatedAt
	return nil
}
