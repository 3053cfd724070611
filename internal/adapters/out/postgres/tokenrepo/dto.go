// Package tokenrepo provides data transfer objects and mapping functions for
// session token persistence. Tokens are insert-only; revocation does not
// exist, so neither does an update or delete path.
package tokenrepo

import (
	"time"

	"workorders/internal/core/domain/model/account"
	"workorders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// TokenDTO represents the database structure for persisting session tokens.
// The value carries a unique index and is the lookup key on every
// authenticated request.
type TokenDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Value     string    `gorm:"uniqueIndex;not null"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the database table name for token entities.
func (TokenDTO) TableName() string {
	return "tokens"
}

// fromDomain converts a token domain entity to its database representation.
func fromDomain(token *account.Token) TokenDTO {
	return TokenDTO{
		ID:        token.ID().Bytes(),
		Value:     token.Value(),
		UserID:    token.UserID().Bytes(),
		CreatedAt: token.CreatedAt(),
	}
}

// toDomain converts a database DTO to a token domain entity.
func toDomain(dto TokenDTO) (*account.Token, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	return account.RestoreToken(id, dto.Value, userID, dto.CreatedAt)
}
