package entity

import (
	"time"

	"github.com/google/uuid"
)

type Playlist struct {
	ID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	OwnerID uuid.UUID `gorm:"type:uuid;not null;index"`
	Owner   User      `gorm:"constraint:OnDelete:CASCADE"`

	Name        string `gorm:"type:varchar(100);not null"`
	Description string `gorm:"type:text"`
	IsPublished bool   `gorm:"default:true;not null"`

	Videos []Video `gorm:"many2many:playlist_videos"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
