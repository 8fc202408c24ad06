package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"vidstream/internal/entity"
	"vidstream/internal/repository"
	"vidstream/internal/utils"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Compared against when the account is absent so a login probe costs the
// same as a real password check.
const dummyPasswordHash = "$2a$10$CwTycUXWue0Thq9StjUM0uJ8yQbWc1x9uxw2sQ2sXUNx5x9xJ9F2S"

const defaultCodeDigits = 6

type AuthService struct {
	users     repository.UserRepository
	auditLogs repository.AuditLogRepository

	emailSender  EmailSender
	passwordHash PasswordHasher
	tokens       TokenIssuer
	clock        Clock
	config       AuthConfig
}

func NewAuthService(
	users repository.UserRepository,
	auditLogs repository.AuditLogRepository,
	emailSender EmailSender,
	passwordHash PasswordHasher,
	tokens TokenIssuer,
	clock Clock,
	config AuthConfig,
) *AuthService {
	return &AuthService{
		users:        users,
		auditLogs:    auditLogs,
		emailSender:  emailSender,
		passwordHash: passwordHash,
		tokens:       tokens,
		clock:        clock,
		config:       config,
	}
}

// Signup creates an unverified account and mails a verification code. A
// collision with an unverified account re-issues the code instead of
// failing, so an abandoned signup can be retried.
func (s *AuthService) Signup(ctx context.Context, input SignupInput) (*entity.User, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Username) == "" ||
		strings.TrimSpace(input.Email) == "" || strings.TrimSpace(input.Password) == "" {
		return nil, ErrInvalidInput
	}

	email := utils.NormalizeEmail(input.Email)
	username := utils.NormalizeUsername(input.Username)

	existing, err := s.users.FindByEmailOrUsername(ctx, email, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.IsVerified {
			return nil, ErrUserExists
		}
		if err := s.issueVerificationCode(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	hash, err := s.passwordHash.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Username:     username,
		Email:        email,
		Name:         strings.TrimSpace(input.Name),
		PasswordHash: hash,
		ProfileImage: defaultProfileImage(input.Name),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	if err := s.issueVerificationCode(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ConfirmVerification checks the mailed code. Expiry is checked before the
// hash so an expired-but-correct code reports as expired, not invalid.
func (s *AuthService) ConfirmVerification(ctx context.Context, username string, code string) error {
	user, err := s.users.FindByUsername(ctx, utils.NormalizeUsername(username))
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if user.IsVerified {
		return ErrAlreadyVerified
	}
	if user.VerificationCodeHash == nil || user.VerificationExpiresAt == nil {
		return ErrInvalidCode
	}
	if s.now().After(*user.VerificationExpiresAt) {
		return ErrCodeExpired
	}
	if !s.passwordHash.Verify(*user.VerificationCodeHash, code) {
		return ErrInvalidCode
	}

	if err := s.users.MarkVerified(ctx, user.ID); err != nil {
		return err
	}
	_ = s.logAudit(ctx, &user.ID, nil, entity.EmailVerified, nil)
	return nil
}

// Login accepts a normalized email or username. An absent and an unverified
// account report the same error so account existence cannot be probed.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	if strings.TrimSpace(input.Identifier) == "" || strings.TrimSpace(input.Password) == "" {
		return nil, ErrInvalidInput
	}

	identifier := utils.NormalizeEmail(input.Identifier)
	user, err := s.users.FindByIdentifier(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsVerified {
		_ = s.passwordHash.Verify(dummyPasswordHash, input.Password)
		_ = s.logAudit(ctx, nil, input.IPAddress, entity.LoginFailed, map[string]any{"identifier": identifier})
		return nil, ErrUnverifiedOrNotFound
	}

	if !s.passwordHash.Verify(user.PasswordHash, input.Password) {
		_ = s.logAudit(ctx, &user.ID, input.IPAddress, entity.LoginFailed, map[string]any{"identifier": identifier})
		return nil, ErrInvalidPassword
	}

	result, err := s.issueTokenPair(ctx, user)
	if err != nil {
		return nil, err
	}
	var metadata map[string]any
	if input.UserAgent != nil {
		metadata = map[string]any{"user_agent": *input.UserAgent}
	}
	_ = s.logAudit(ctx, &user.ID, input.IPAddress, entity.LoginSuccess, metadata)
	return result, nil
}

// Refresh rotates the refresh token. The stored digest must still equal the
// presented token's digest at write time; losing that race invalidates the
// call, which also catches reuse of a rotated-out token.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*LoginResult, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return nil, ErrUnauthorized
	}

	userID, err := s.tokens.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	presented := utils.HashToken(refreshToken)
	if user == nil || user.RefreshTokenHash == "" || user.RefreshTokenHash != presented {
		return nil, ErrInvalidRefreshToken
	}

	accessToken, accessTTL, err := s.tokens.IssueAccessToken(*user)
	if err != nil {
		return nil, err
	}
	newRefreshToken, refreshTTL, err := s.tokens.IssueRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	rotated, err := s.users.RotateRefreshTokenHash(ctx, user.ID, presented, utils.HashToken(newRefreshToken))
	if err != nil {
		return nil, err
	}
	if !rotated {
		return nil, ErrInvalidRefreshToken
	}

	_ = s.logAudit(ctx, &user.ID, nil, entity.TokenRefreshed, nil)
	return &LoginResult{
		AccessToken:      accessToken,
		ExpiresIn:        int64(accessTTL.Seconds()),
		RefreshToken:     newRefreshToken,
		RefreshExpiresIn: int64(refreshTTL.Seconds()),
		User:             user,
	}, nil
}

// Logout clears the stored refresh token. Safe to call repeatedly.
func (s *AuthService) Logout(ctx context.Context, userID uuid.UUID, ipAddress *string) error {
	if err := s.users.ClearRefreshToken(ctx, userID); err != nil {
		return err
	}
	_ = s.logAudit(ctx, &userID, ipAddress, entity.Logout, nil)
	return nil
}

func (s *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, oldPassword, newPassword string) error {
	if strings.TrimSpace(newPassword) == "" {
		return ErrInvalidInput
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if !s.passwordHash.Verify(user.PasswordHash, oldPassword) {
		return ErrInvalidPassword
	}

	hash, err := s.passwordHash.Hash(newPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return s.users.Update(ctx, user)
}

// RequestPasswordReset is silent for unknown or unverified accounts.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrInvalidInput
	}
	user, err := s.users.FindByEmail(ctx, utils.NormalizeEmail(email))
	if err != nil {
		return err
	}
	if user == nil || !user.IsVerified {
		return nil
	}

	code, err := utils.GenerateNumericCode(s.codeDigits())
	if err != nil {
		return err
	}
	codeHash, err := s.passwordHash.Hash(code)
	if err != nil {
		return err
	}
	expiresAt := s.now().Add(s.resetCodeTTL())
	user.ResetCodeHash = &codeHash
	user.ResetExpiresAt = &expiresAt
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	if err := s.emailSender.SendPasswordResetCode(ctx, user.Email, user.Username, code); err != nil {
		return fmt.Errorf("%w: %v", ErrEmailSendFailed, err)
	}
	return nil
}

// ConfirmPasswordReset sets a new password and clears the stored refresh
// token so every session has to authenticate again.
func (s *AuthService) ConfirmPasswordReset(ctx context.Context, email string, code string, newPassword string) error {
	if strings.TrimSpace(newPassword) == "" {
		return ErrInvalidInput
	}
	user, err := s.users.FindByEmail(ctx, utils.NormalizeEmail(email))
	if err != nil {
		return err
	}
	if user == nil || user.ResetCodeHash == nil || user.ResetExpiresAt == nil {
		return ErrInvalidCode
	}
	if s.now().After(*user.ResetExpiresAt) {
		return ErrCodeExpired
	}
	if !s.passwordHash.Verify(*user.ResetCodeHash, code) {
		return ErrInvalidCode
	}

	hash, err := s.passwordHash.Hash(newPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	user.ResetCodeHash = nil
	user.ResetExpiresAt = nil
	user.RefreshTokenHash = ""
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	_ = s.logAudit(ctx, &user.ID, nil, entity.PasswordReset, nil)
	return nil
}

func (s *AuthService) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	return s.users.FindByID(ctx, userID)
}

func (s *AuthService) issueTokenPair(ctx context.Context, user *entity.User) (*LoginResult, error) {
	accessToken, accessTTL, err := s.tokens.IssueAccessToken(*user)
	if err != nil {
		return nil, err
	}
	refreshToken, refreshTTL, err := s.tokens.IssueRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	// Overwrites any prior token: one valid refresh token per user.
	if err := s.users.SetRefreshTokenHash(ctx, user.ID, utils.HashToken(refreshToken)); err != nil {
		return nil, err
	}

	return &LoginResult{
		AccessToken:      accessToken,
		ExpiresIn:        int64(accessTTL.Seconds()),
		RefreshToken:     refreshToken,
		RefreshExpiresIn: int64(refreshTTL.Seconds()),
		User:             user,
	}, nil
}

func (s *AuthService) issueVerificationCode(ctx context.Context, user *entity.User) error {
	code, err := utils.GenerateNumericCode(s.codeDigits())
	if err != nil {
		return err
	}
	codeHash, err := s.passwordHash.Hash(code)
	if err != nil {
		return err
	}
	expiresAt := s.now().Add(s.verificationCodeTTL())
	user.VerificationCodeHash = &codeHash
	user.VerificationExpiresAt = &expiresAt
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	if err := s.emailSender.SendVerificationCode(ctx, user.Email, user.Username, code); err != nil {
		return fmt.Errorf("%w: %v", ErrEmailSendFailed, err)
	}
	return nil
}

func (s *AuthService) logAudit(
	ctx context.Context,
	userID *uuid.UUID,
	ipAddress *string,
	action entity.AuditAction,
	metadata map[string]any,
) error {
	if s.auditLogs == nil {
		return nil
	}
	var payload datatypes.JSON
	if metadata != nil {
		bytes, err := json.Marshal(metadata)
		if err != nil {
			return err
		}
		payload = datatypes.JSON(bytes)
	}
	return s.auditLogs.Log(ctx, &entity.AuditLog{
		UserID:    userID,
		IPAddress: ipAddress,
		Action:    action,
		Metadata:  payload,
	})
}

func (s *AuthService) now() time.Time {
	if s.clock == nil {
		return time.Now()
	}
	return s.clock.Now()
}

func (s *AuthService) codeDigits() int {
	if s.config.CodeDigits > 0 {
		return s.config.CodeDigits
	}
	return defaultCodeDigits
}

func (s *AuthService) verificationCodeTTL() time.Duration {
	if s.config.VerificationCodeTTL > 0 {
		return s.config.VerificationCodeTTL
	}
	return 15 * time.Minute
}

func (s *AuthService) resetCodeTTL() time.Duration {
	if s.config.ResetCodeTTL > 0 {
		return s.config.ResetCodeTTL
	}
	return 15 * time.Minute
}

func defaultProfileImage(name string) string {
	return "https://ui-avatars.com/api/?background=random&name=" + strings.ReplaceAll(strings.TrimSpace(name), " ", "+")
}
