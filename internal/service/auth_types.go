package service

import (
	"context"
	"time"

	"vidstream/internal/entity"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthConfig struct {
	VerificationCodeTTL time.Duration
	ResetCodeTTL        time.Duration
	CodeDigits          int
}

type EmailSender interface {
	SendVerificationCode(ctx context.Context, email string, username string, code string) error
	SendPasswordResetCode(ctx context.Context, email string, username string, code string) error
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash string, password string) bool
}

// TokenIssuer creates and checks the signed credentials. Implementations
// are pure: persistence of the refresh token stays with the caller.
type TokenIssuer interface {
	IssueAccessToken(user entity.User) (string, time.Duration, error)
	IssueRefreshToken(userID uuid.UUID) (string, time.Duration, error)
	ParseRefreshToken(token string) (uuid.UUID, error)
}

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}

type BcryptPasswordHasher struct {
	Cost int
}

func (h BcryptPasswordHasher) Hash(password string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func (h BcryptPasswordHasher) Verify(hash string, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
