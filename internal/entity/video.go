package entity

import (
	"time"

	"github.com/google/uuid"
)

type Video struct {
	ID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	OwnerID uuid.UUID `gorm:"type:uuid;not null;index"`
	Owner   User      `gorm:"constraint:OnDelete:CASCADE"`

	Title       string `gorm:"type:varchar(200);not null"`
	Description string `gorm:"type:text"`

	VideoKey     string `gorm:"type:text;not null"`
	VideoURL     string `gorm:"type:text;not null"`
	ThumbnailKey string `gorm:"type:text"`
	ThumbnailURL string `gorm:"type:text"`

	Duration    float64 `gorm:"default:0"`
	Views       int64   `gorm:"default:0;not null"`
	IsPublished bool    `gorm:"default:true;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
