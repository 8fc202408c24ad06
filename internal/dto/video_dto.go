package dto

import (
	"time"

	"vidstream/internal/entity"
	"vidstream/internal/service"

	"github.com/google/uuid"
)

type UploadVideoRequest struct {
	Title       string  `form:"title" validate:"required,min=1,max=200"`
	Description string  `form:"description" validate:"omitempty,max=5000"`
	Duration    float64 `form:"duration" validate:"omitempty,gte=0"`
}

type UpdateVideoRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
}

type VideoResponse struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Description  string      `json:"description,omitempty"`
	VideoURL     string      `json:"video_url"`
	ThumbnailURL string      `json:"thumbnail_url,omitempty"`
	Duration     float64     `json:"duration"`
	Views        int64       `json:"views"`
	IsPublished  bool        `json:"is_published"`
	Owner        *PublicUser `json:"owner,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

func VideoResponseFromEntity(video *entity.Video) *VideoResponse {
	if video == nil {
		return nil
	}
	response := &VideoResponse{
		ID:           video.ID.String(),
		Title:        video.Title,
		Description:  video.Description,
		VideoURL:     video.VideoURL,
		ThumbnailURL: video.ThumbnailURL,
		Duration:     video.Duration,
		Views:        video.Views,
		IsPublished:  video.IsPublished,
		CreatedAt:    video.CreatedAt,
		UpdatedAt:    video.UpdatedAt,
	}
	if video.Owner.ID != uuid.Nil {
		response.Owner = PublicUserFromEntity(&video.Owner)
	}
	return response
}

type VideoDetailResponse struct {
	VideoResponse
	LikeCount int64 `json:"like_count"`
	IsLiked   bool  `json:"is_liked"`
}

func VideoDetailResponseFromService(detail *service.VideoWithLikes) *VideoDetailResponse {
	return &VideoDetailResponse{
		VideoResponse: *VideoResponseFromEntity(detail.Video),
		LikeCount:     detail.LikeCount,
		IsLiked:       detail.IsLiked,
	}
}

type VideoListResponse struct {
	Items []VideoResponse `json:"items"`
	PageMeta
}

func VideoListResponseFromEntities(videos []entity.Video, meta PageMeta) *VideoListResponse {
	items := make([]VideoResponse, 0, len(videos))
	for i := range videos {
		items = append(items, *VideoResponseFromEntity(&videos[i]))
	}
	return &VideoListResponse{Items: items, PageMeta: meta}
}
