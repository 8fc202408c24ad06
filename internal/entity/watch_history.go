package entity

import (
	"time"

	"github.com/google/uuid"
)

// WatchHistoryEntry records the latest time a user watched a video. One row
// per user/video pair; rewatching bumps WatchedAt.
type WatchHistoryEntry struct {
	ID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_watch_pair"`
	VideoID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_watch_pair"`

	User  User  `gorm:"constraint:OnDelete:CASCADE"`
	Video Video `gorm:"constraint:OnDelete:CASCADE"`

	WatchedAt time.Time `gorm:"not null;index"`
}
