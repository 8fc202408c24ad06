package dto

import (
	"time"

	"vidstream/internal/entity"
)

type CommunityPostRequest struct {
	Content string `json:"content" validate:"required,min=1,max=5000"`
}

type CommunityPostResponse struct {
	ID        string      `json:"id"`
	Content   string      `json:"content"`
	Owner     *PublicUser `json:"owner,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func CommunityPostResponseFromEntity(post *entity.CommunityPost) *CommunityPostResponse {
	response := &CommunityPostResponse{
		ID:        post.ID.String(),
		Content:   post.Content,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
	if post.Owner.Username != "" {
		response.Owner = PublicUserFromEntity(&post.Owner)
	}
	return response
}

type CommunityPostListResponse struct {
	Items []CommunityPostResponse `json:"items"`
	PageMeta
}

func CommunityPostListResponseFromEntities(posts []entity.CommunityPost, meta PageMeta) *CommunityPostListResponse {
	items := make([]CommunityPostResponse, 0, len(posts))
	for i := range posts {
		items = append(items, *CommunityPostResponseFromEntity(&posts[i]))
	}
	return &CommunityPostListResponse{Items: items, PageMeta: meta}
}

type DashboardStatsResponse struct {
	TotalVideos    int64 `json:"total_videos"`
	TotalViews     int64 `json:"total_views"`
	TotalFollowers int64 `json:"total_followers"`
	TotalLikes     int64 `json:"total_likes"`
}

type HealthResponse struct {
	Status string    `json:"status"`
	Time   time.Time `json:"time"`
}
