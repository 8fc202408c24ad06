package dto

import (
	"time"

	"vidstream/internal/entity"
)

type CreatePlaylistRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	IsPublished *bool  `json:"is_published"`
}

type UpdatePlaylistRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	IsPublished *bool   `json:"is_published"`
}

type PlaylistResponse struct {
	ID                string      `json:"id"`
	Name              string      `json:"name"`
	Description       string      `json:"description,omitempty"`
	IsPublished       bool        `json:"is_published"`
	Owner             *PublicUser `json:"owner,omitempty"`
	TotalVideos       int         `json:"total_videos"`
	PlaylistThumbnail string      `json:"playlist_thumbnail,omitempty"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}

type PlaylistDetailResponse struct {
	PlaylistResponse
	Videos []VideoResponse `json:"videos"`
}

func PlaylistResponseFromEntity(playlist *entity.Playlist) *PlaylistResponse {
	if playlist == nil {
		return nil
	}
	response := &PlaylistResponse{
		ID:          playlist.ID.String(),
		Name:        playlist.Name,
		Description: playlist.Description,
		IsPublished: playlist.IsPublished,
		TotalVideos: len(playlist.Videos),
		CreatedAt:   playlist.CreatedAt,
		UpdatedAt:   playlist.UpdatedAt,
	}
	// The first video's thumbnail stands in for the playlist.
	for i := range playlist.Videos {
		if playlist.Videos[i].ThumbnailURL != "" {
			response.PlaylistThumbnail = playlist.Videos[i].ThumbnailURL
			break
		}
	}
	if playlist.Owner.Username != "" {
		response.Owner = PublicUserFromEntity(&playlist.Owner)
	}
	return response
}

func PlaylistDetailResponseFromEntity(playlist *entity.Playlist) *PlaylistDetailResponse {
	videos := make([]VideoResponse, 0, len(playlist.Videos))
	for i := range playlist.Videos {
		videos = append(videos, *VideoResponseFromEntity(&playlist.Videos[i]))
	}
	return &PlaylistDetailResponse{
		PlaylistResponse: *PlaylistResponseFromEntity(playlist),
		Videos:           videos,
	}
}

type PlaylistListResponse struct {
	Items []PlaylistResponse `json:"items"`
	PageMeta
}

func PlaylistListResponseFromEntities(playlists []entity.Playlist, meta PageMeta) *PlaylistListResponse {
	items := make([]PlaylistResponse, 0, len(playlists))
	for i := range playlists {
		items = append(items, *PlaylistResponseFromEntity(&playlists[i]))
	}
	return &PlaylistListResponse{Items: items, PageMeta: meta}
}
