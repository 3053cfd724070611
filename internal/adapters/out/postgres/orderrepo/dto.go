// Package orderrepo provides data transfer objects and mapping functions for
// the order aggregate and its children. Orders, their comments, and their
// audit records live in one package because they share a consistency
// boundary: children are only ever written in the same transaction as a
// mutation of their order.
package orderrepo

import (
	"time"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by installer assignment for the per-installer listing.
type OrderDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Address        string     `gorm:"not null"`
	AccountNumber  string     `gorm:"not null"`
	ContactDetails string     `gorm:"not null"`
	Status         string     `gorm:"index;not null"`
	InstallerID    *uuid.UUID `gorm:"type:uuid;index"`
	CreatedBy      uuid.UUID  `gorm:"type:uuid;not null"`
	UpdatedBy      uuid.UUID  `gorm:"type:uuid;not null"`
	CreatedAt      time.Time  `gorm:"not null"`
	UpdatedAt      time.Time  `gorm:"not null"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// CommentDTO represents the database structure for persisting order comments.
type CommentDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index;not null"`
	Text      string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the database table name for comment entities.
func (CommentDTO) TableName() string {
	return "comments"
}

// HistoryDTO represents the database structure for the append-only audit log.
type HistoryDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index;not null"`
	ActorID    uuid.UUID `gorm:"type:uuid;not null"`
	Action     string    `gorm:"not null"`
	Details    string
	RecordedAt time.Time `gorm:"not null"`
}

// TableName specifies the database table name for audit records.
func (HistoryDTO) TableName() string {
	return "order_history"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var installerID *uuid.UUID
	if id := aggregate.InstallerID(); id != nil {
		raw := id.Bytes()
		installerID = &raw
	}

	return OrderDTO{
		ID:             aggregate.ID().Bytes(),
		Address:        aggregate.Address(),
		AccountNumber:  aggregate.AccountNumber(),
		ContactDetails: aggregate.ContactDetails(),
		Status:         aggregate.Status().String(),
		InstallerID:    installerID,
		CreatedBy:      aggregate.CreatedBy().Bytes(),
		UpdatedBy:      aggregate.UpdatedBy().Bytes(),
		CreatedAt:      aggregate.CreatedAt(),
		UpdatedAt:      aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var installerID *kernel.UUID
	if dto.InstallerID != nil {
		iID, installerErr := kernel.UUIDFromBytes((*dto.InstallerID)[:])
		if installerErr != nil {
			return nil, installerErr
		}

		installerID = &iID
	}

	createdBy, err := kernel.UUIDFromBytes(dto.CreatedBy[:])
	if err != nil {
		return nil, err
	}

	updatedBy, err := kernel.UUIDFromBytes(dto.UpdatedBy[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.Address,
		dto.AccountNumber,
		dto.ContactDetails,
		status,
		installerID,
		createdBy,
		updatedBy,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

// commentFromDomain converts a comment domain entity to its database representation.
func commentFromDomain(comment *order.Comment) CommentDTO {
	return CommentDTO{
		ID:        comment.ID().Bytes(),
		OrderID:   comment.OrderID().Bytes(),
		Text:      comment.Text(),
		CreatedAt: comment.CreatedAt(),
	}
}

// historyFromDomain converts an audit record to its database representation.
func historyFromDomain(entry *order.HistoryEntry) HistoryDTO {
	return HistoryDTO{
		ID:         entry.ID().Bytes(),
		OrderID:    entry.OrderID().Bytes(),
		ActorID:    entry.ActorID().Bytes(),
		Action:     entry.Action().String(),
		Details:    entry.Details(),
		RecordedAt: entry.RecordedAt(),
	}
}
