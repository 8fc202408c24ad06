package entity

import (
	"time"

	"github.com/google/uuid"
)

type CommunityPost struct {
	ID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	OwnerID uuid.UUID `gorm:"type:uuid;not null;index"`
	Owner   User      `gorm:"constraint:OnDelete:CASCADE"`

	Content string `gorm:"type:varchar(5000);not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
