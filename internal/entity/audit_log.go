package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AuditAction string

const (
	LoginSuccess   AuditAction = "login_success"
	LoginFailed    AuditAction = "login_failed"
	Logout         AuditAction = "logout"
	TokenRefreshed AuditAction = "token_refreshed"
	PasswordReset  AuditAction = "password_reset"
	EmailVerified  AuditAction = "email_verified"
)

type AuditLog struct {
	ID     uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID *uuid.UUID `gorm:"type:uuid;index"`

	IPAddress *string     `gorm:"type:varchar(45)"`
	Action    AuditAction `gorm:"type:varchar(50);not null"`

	Metadata datatypes.JSON

	CreatedAt time.Time
}
