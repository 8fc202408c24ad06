package dto

import (
	"time"

	"vidstream/internal/entity"
	"vidstream/internal/service"
)

type UpdateProfileRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=100"`
	Bio  *string `json:"bio" validate:"omitempty,max=1000"`
}

type UpdateEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type CheckUsernameResponse struct {
	Username  string `json:"username"`
	Available bool   `json:"available"`
}

type ChannelProfileResponse struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Name           string `json:"name"`
	Bio            string `json:"bio,omitempty"`
	ProfileImage   string `json:"profile_image,omitempty"`
	FollowerCount  int64  `json:"follower_count"`
	FollowingCount int64  `json:"following_count"`
	IsFollowed     bool   `json:"is_followed"`
}

func ChannelProfileResponseFromService(profile *service.ChannelProfile) *ChannelProfileResponse {
	return &ChannelProfileResponse{
		ID:             profile.User.ID.String(),
		Username:       profile.User.Username,
		Name:           profile.User.Name,
		Bio:            profile.User.Bio,
		ProfileImage:   profile.User.ProfileImage,
		FollowerCount:  profile.FollowerCount,
		FollowingCount: profile.FollowingCount,
		IsFollowed:     profile.IsFollowed,
	}
}

type WatchHistoryItem struct {
	Video     VideoResponse `json:"video"`
	WatchedAt time.Time     `json:"watched_at"`
}

type WatchHistoryResponse struct {
	Items []WatchHistoryItem `json:"items"`
	PageMeta
}

func WatchHistoryResponseFromEntities(entries []entity.WatchHistoryEntry, meta PageMeta) *WatchHistoryResponse {
	items := make([]WatchHistoryItem, 0, len(entries))
	for i := range entries {
		items = append(items, WatchHistoryItem{
			Video:     *VideoResponseFromEntity(&entries[i].Video),
			WatchedAt: entries[i].WatchedAt,
		})
	}
	return &WatchHistoryResponse{Items: items, PageMeta: meta}
}

func PublicUserFromEntity(user *entity.User) *PublicUser {
	if user == nil {
		return nil
	}
	return &PublicUser{
		ID:           user.ID.String(),
		Username:     user.Username,
		Name:         user.Name,
		ProfileImage: user.ProfileImage,
	}
}

type UserListResponse struct {
	Items []PublicUser `json:"items"`
	PageMeta
}

func UserListResponseFromEntities(users []entity.User, meta PageMeta) *UserListResponse {
	items := make([]PublicUser, 0, len(users))
	for i := range users {
		items = append(items, *PublicUserFromEntity(&users[i]))
	}
	return &UserListResponse{Items: items, PageMeta: meta}
}
