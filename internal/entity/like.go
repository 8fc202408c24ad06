package entity

import (
	"time"

	"github.com/google/uuid"
)

// Like targets exactly one of video, comment or community post.
type Like struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_like_target"`
	User   User      `gorm:"constraint:OnDelete:CASCADE"`

	VideoID         *uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_like_target;index"`
	CommentID       *uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_like_target;index"`
	CommunityPostID *uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_like_target;index"`

	CreatedAt time.Time
}
