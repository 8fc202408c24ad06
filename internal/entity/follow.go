package entity

import (
	"time"

	"github.com/google/uuid"
)

// Follow links a follower to the channel they follow. The composite unique
// index prevents duplicate follows.
type Follow struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	FollowerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_follow_pair"`
	FolloweeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_follow_pair;index"`

	Follower User `gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE"`
	Followee User `gorm:"foreignKey:FolloweeID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
}
