package service

import "vidstream/internal/entity"

type SignupInput struct {
	Name     string
	Username string
	Email    string
	Password string
}

type LoginInput struct {
	Identifier string // email or username, case-insensitive
	Password   string
	IPAddress  *string
	UserAgent  *string
}

type LoginResult struct {
	AccessToken      string
	ExpiresIn        int64
	RefreshToken     string
	RefreshExpiresIn int64
	User             *entity.User
}
