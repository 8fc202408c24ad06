package service

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrUserExists            = errors.New("user with same username or email already exists")
	ErrUnverifiedOrNotFound  = errors.New("account does not exist or is not verified")
	ErrInvalidPassword       = errors.New("invalid password")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrInvalidRefreshToken   = errors.New("invalid or expired refresh token")
	ErrUserNotFound          = errors.New("user not found")
	ErrNotFound              = errors.New("resource not found")
	ErrForbidden             = errors.New("not allowed to modify this resource")
	ErrAlreadyVerified       = errors.New("account already verified")
	ErrCodeExpired           = errors.New("code has expired")
	ErrInvalidCode           = errors.New("invalid code")
	ErrEmailSendFailed       = errors.New("failed to send email")
	ErrSelfFollow            = errors.New("cannot follow yourself")
	ErrUnsupportedMediaType  = errors.New("unsupported media type")
	ErrMediaTooLarge         = errors.New("media file too large")
	ErrVideoAlreadyInList    = errors.New("video already in playlist")
	ErrVideoNotInList        = errors.New("video not in playlist")
)
