// Package userrepo maps user accounts to the users table.
package userrepo

import (
	"time"

	"visadesk/internal/core/domain/model/kernel"
	"visadesk/internal/core/domain/model/user"

	"github.com/google/uuid"
)

type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"uniqueIndex;not null"`
	Name         string    `gorm:"not null"`
	Role         string    `gorm:"type:varchar(16);not null"`
	PasswordHash []byte    `gorm:"type:bytea;not null"`
	CreatedAt    time.Time
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *user.User) UserDTO {
	return UserDTO{
		ID:           u.ID().Bytes(),
		Email:        u.Email(),
		Name:         u.Name(),
		Role:         u.Role().String(),
		PasswordHash: u.PasswordHash(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	role, err := user.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}
	return user.RestoreUser(id, dto.Email, dto.Name, role, dto.PasswordHash)
}
