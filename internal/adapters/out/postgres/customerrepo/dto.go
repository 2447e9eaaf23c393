// Package customerrepo maps external login codes to customers and registers
// customers seen for the first time.
package customerrepo

import (
	"time"

	"github.com/google/uuid"
)

type CustomerDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OpenID    string    `gorm:"not null;uniqueIndex"`
	Nickname  string    `gorm:"not null;default:''"`
	AvatarURL string    `gorm:"not null;default:''"`
	CreatedAt time.Time `gorm:"not null"`
}

func (CustomerDTO) TableName() string {
	return "customers"
}
