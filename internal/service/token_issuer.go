package service

import (
	"time"

	"vidstream/internal/entity"
	"vidstream/internal/utils"

	"github.com/google/uuid"
)

// JWTTokenIssuer adapts utils.TokenManager to the TokenIssuer contract.
type JWTTokenIssuer struct {
	Manager *utils.TokenManager
}

func (j JWTTokenIssuer) IssueAccessToken(user entity.User) (string, time.Duration, error) {
	if j.Manager == nil {
		return "", 0, utils.ErrInvalidToken
	}
	return j.Manager.IssueAccessToken(user.ID.String(), user.Username, user.Email)
}

func (j JWTTokenIssuer) IssueRefreshToken(userID uuid.UUID) (string, time.Duration, error) {
	if j.Manager == nil {
		return "", 0, utils.ErrInvalidToken
	}
	return j.Manager.IssueRefreshToken(userID.String())
}

func (j JWTTokenIssuer) ParseRefreshToken(token string) (uuid.UUID, error) {
	if j.Manager == nil {
		return uuid.Nil, utils.ErrInvalidToken
	}
	subject, err := j.Manager.ParseRefreshToken(token)
	if err != nil {
		return uuid.Nil, err
	}
	userID, err := uuid.Parse(subject)
	if err != nil {
		return uuid.Nil, utils.ErrInvalidToken
	}
	return userID, nil
}
