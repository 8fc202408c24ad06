package dto

import (
	"time"

	"vidstream/internal/entity"
)

type ToggleResponse struct {
	Active bool `json:"active"`
}

type CommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=5000"`
}

type CommentResponse struct {
	ID        string      `json:"id"`
	VideoID   string      `json:"video_id"`
	Content   string      `json:"content"`
	Owner     *PublicUser `json:"owner,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func CommentResponseFromEntity(comment *entity.Comment) *CommentResponse {
	response := &CommentResponse{
		ID:        comment.ID.String(),
		VideoID:   comment.VideoID.String(),
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}
	if comment.Owner.Username != "" {
		response.Owner = PublicUserFromEntity(&comment.Owner)
	}
	return response
}

type CommentListResponse struct {
	Items []CommentResponse `json:"items"`
	PageMeta
}

func CommentListResponseFromEntities(comments []entity.Comment, meta PageMeta) *CommentListResponse {
	items := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		items = append(items, *CommentResponseFromEntity(&comments[i]))
	}
	return &CommentListResponse{Items: items, PageMeta: meta}
}
