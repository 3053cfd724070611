// Package userrepo provides data transfer objects and mapping functions for
// user account persistence.
package userrepo

import (
	"workorders/internal/core/domain/model/account"
	"workorders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting user accounts.
// The username carries a unique index, which backs the registration conflict
// check at the storage level.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Role         string    `gorm:"not null"`
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user domain aggregate to its database representation.
func fromDomain(user *account.User) UserDTO {
	return UserDTO{
		ID:           user.ID().Bytes(),
		Username:     user.Username(),
		PasswordHash: user.PasswordHash(),
		Role:         user.Role().String(),
	}
}

// toDomain converts a database DTO to a user domain aggregate.
func toDomain(dto UserDTO) (*account.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := account.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return account.RestoreUser(id, dto.Username, dto.PasswordHash, role)
}
