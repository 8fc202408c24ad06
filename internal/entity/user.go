package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Username string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	Email    string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name     string    `gorm:"type:varchar(100);not null"`

	Bio          string `gorm:"type:text"`
	ProfileImage string `gorm:"type:text"`

	PasswordHash string `gorm:"type:text;not null"`

	// sha256 digest of the one currently valid refresh token, empty when
	// logged out. A single slot per user: issuing a new token overwrites it.
	RefreshTokenHash string `gorm:"type:text"`

	IsVerified bool `gorm:"default:false;not null"`

	VerificationCodeHash  *string `gorm:"type:text"`
	VerificationExpiresAt *time.Time
	ResetCodeHash         *string `gorm:"type:text"`
	ResetExpiresAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
