package order

import (
	"errors"
	"time"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/errs"
)

// ErrHistoryEntryIsNotConstructed is returned when a HistoryEntry instance was
// not created through NewHistoryEntry or RestoreHistoryEntry.
var ErrHistoryEntryIsNotConstructed = errors.New("HistoryEntry must be created via NewHistoryEntry or RestoreHistoryEntry constructor")

// HistoryEntry is an append-only audit record of one action taken on an order.
// Entries are never mutated or deleted except through cascading order deletion,
// and each mutating operation produces exactly one entry in the same
// transaction as the mutation itself.
type HistoryEntry struct {
	id         kernel.UUID
	orderID    kernel.UUID
	actorID    kernel.UUID
	action     ActionType
	details    string
	recordedAt time.Time

	isConstructed bool
}

// NewHistoryEntry creates an audit record for an action performed now.
// Details is free text describing the action; it may be empty.
func NewHistoryEntry(id, orderID, actorID kernel.UUID, action ActionType, details string) (*HistoryEntry, error) {
	return RestoreHistoryEntry(id, orderID, actorID, action, details, time.Now().UTC())
}

// RestoreHistoryEntry reconstructs an audit record from persistence.
func RestoreHistoryEntry(
	id, orderID, actorID kernel.UUID,
	action ActionType,
	details string,
	recordedAt time.Time,
) (*HistoryEntry, error) {
	h := &HistoryEntry{
		details:       details,
		isConstructed: true,
	}

	if err := errors.Join(
		h.setID(id),
		h.setOrderID(orderID),
		h.setActorID(actorID),
		h.setAction(action),
		h.setRecordedAt(recordedAt),
	); err != nil {
		return nil, err
	}

	return h, nil
}

// Validate ensures the HistoryEntry instance was properly constructed.
func (h *HistoryEntry) Validate() error {
	if h == nil || !h.isConstructed {
		return ErrHistoryEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry's unique identifier.
func (h *HistoryEntry) ID() kernel.UUID {
	return h.id
}

// OrderID returns the identifier of the order this entry belongs to.
func (h *HistoryEntry) OrderID() kernel.UUID {
	return h.orderID
}

// ActorID returns the identifier of the user who performed the action.
func (h *HistoryEntry) ActorID() kernel.UUID {
	return h.actorID
}

// Action returns the classification of the recorded action.
func (h *HistoryEntry) Action() ActionType {
	return h.action
}

// Details returns the free-text description of the action.
func (h *HistoryEntry) Details() string {
	return h.details
}

// RecordedAt returns when the action happened.
func (h *HistoryEntry) RecordedAt() time.Time {
	return h.recordedAt
}

func (h *HistoryEntry) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	h.id = id
	return nil
}

func (h *HistoryEntry) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	h.orderID = orderID
	return nil
}

func (h *HistoryEntry) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	h.actorID = actorID
	return nil
}

func (h *HistoryEntry) setAction(action ActionType) error {
	if err := action.Validate(); err != nil {
		return err
	}
	h.action = action
	return nil
}

func (h *HistoryEntry) setRecordedAt(recordedAt time.Time) error {
	if recordedAt.IsZero() {
		return errs.NewValueIsRequiredError("recordedAt")
	}
	h.recordedAt = recordedAt
	return nil
}
