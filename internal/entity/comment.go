package entity

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	ID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	VideoID uuid.UUID `gorm:"type:uuid;not null;index"`
	OwnerID uuid.UUID `gorm:"type:uuid;not null;index"`

	Video Video `gorm:"constraint:OnDelete:CASCADE"`
	Owner User  `gorm:"constraint:OnDelete:CASCADE"`

	Content string `gorm:"type:text;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
