// Package installerrepo provides data transfer objects and mapping functions
// for installer profile persistence.
package installerrepo

import (
	"workorders/internal/core/domain/model/installer"
	"workorders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// InstallerDTO represents the database structure for persisting installer
// profiles. The user link carries a unique index so an account can back at
// most one profile.
type InstallerDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name        string     `gorm:"not null"`
	ContactInfo string     `gorm:"not null"`
	UserID      *uuid.UUID `gorm:"type:uuid;uniqueIndex"`
}

// TableName specifies the database table name for installer entities.
func (InstallerDTO) TableName() string {
	return "installers"
}

// fromDomain converts an installer domain aggregate to its database representation.
func fromDomain(profile *installer.Installer) InstallerDTO {
	var userID *uuid.UUID
	if id := profile.UserID(); id != nil {
		raw := id.Bytes()
		userID = &raw
	}

	return InstallerDTO{
		ID:          profile.ID().Bytes(),
		Name:        profile.Name(),
		ContactInfo: profile.ContactInfo(),
		UserID:      userID,
	}
}

// toDomain converts a database DTO to an installer domain aggregate.
func toDomain(dto InstallerDTO) (*installer.Installer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var userID *kernel.UUID
	if dto.UserID != nil {
		uID, userErr := kernel.UUIDFromBytes((*dto.UserID)[:])
		if userErr != nil {
			return nil, userErr
		}

		userID = &uID
	}

	return installer.RestoreInstaller(id, dto.Name, dto.ContactInfo, userID)
}
