package service

import (
	"context"
	"strings"

	"vidstream/internal/entity"
	"vidstream/internal/repository"

	"github.com/google/uuid"
)

type PlaylistService struct {
	playlists repository.PlaylistRepository
	videos    repository.VideoRepository
}

func NewPlaylistService(playlists repository.PlaylistRepository, videos repository.VideoRepository) *PlaylistService {
	return &PlaylistService{playlists: playlists, videos: videos}
}

func (s *PlaylistService) Create(ctx context.Context, ownerID uuid.UUID, name, description string, isPublished bool) (*entity.Playlist, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidInput
	}
	playlist := &entity.Playlist{
		OwnerID:     ownerID,
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		IsPublished: isPublished,
	}
	if err := s.playlists.Create(ctx, playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

func (s *PlaylistService) MyPlaylists(ctx context.Context, ownerID uuid.UUID, page, limit int) ([]entity.Playlist, int64, error) {
	return s.playlists.ListByOwner(ctx, ownerID, false, page, limit)
}

// UserPlaylists lists another user's published playlists only.
func (s *PlaylistService) UserPlaylists(ctx context.Context, ownerID uuid.UUID, page, limit int) ([]entity.Playlist, int64, error) {
	return s.playlists.ListByOwner(ctx, ownerID, true, page, limit)
}

func (s *PlaylistService) Search(ctx context.Context, query string, page, limit int) ([]entity.Playlist, int64, error) {
	if strings.TrimSpace(query) == "" {
		return []entity.Playlist{}, 0, nil
	}
	return s.playlists.Search(ctx, strings.TrimSpace(query), page, limit)
}

// Get returns a playlist; unpublished ones are visible to the owner only.
func (s *PlaylistService) Get(ctx context.Context, playlistID uuid.UUID, viewerID *uuid.UUID) (*entity.Playlist, error) {
	playlist, err := s.playlists.FindByID(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	if playlist == nil {
		return nil, ErrNotFound
	}
	isOwner := viewerID != nil && *viewerID == playlist.OwnerID
	if !playlist.IsPublished && !isOwner {
		return nil, ErrNotFound
	}
	return playlist, nil
}

func (s *PlaylistService) Update(ctx context.Context, ownerID, playlistID uuid.UUID, name, description *string, isPublished *bool) (*entity.Playlist, error) {
	playlist, err := s.ownedPlaylist(ctx, ownerID, playlistID)
	if err != nil {
		return nil, err
	}
	if name != nil {
		if strings.TrimSpace(*name) == "" {
			return nil, ErrInvalidInput
		}
		playlist.Name = strings.TrimSpace(*name)
	}
	if description != nil {
		playlist.Description = strings.TrimSpace(*description)
	}
	if isPublished != nil {
		playlist.IsPublished = *isPublished
	}
	if err := s.playlists.Update(ctx, playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

func (s *PlaylistService) Delete(ctx context.Context, ownerID, playlistID uuid.UUID) error {
	playlist, err := s.ownedPlaylist(ctx, ownerID, playlistID)
	if err != nil {
		return err
	}
	return s.playlists.Delete(ctx, playlist.ID)
}

func (s *PlaylistService) AddVideo(ctx context.Context, ownerID, playlistID, videoID uuid.UUID) (*entity.Playlist, error) {
	playlist, err := s.ownedPlaylist(ctx, ownerID, playlistID)
	if err != nil {
		return nil, err
	}
	video, err := s.videos.FindByID(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, ErrNotFound
	}
	for _, existing := range playlist.Videos {
		if existing.ID == video.ID {
			return nil, ErrVideoAlreadyInList
		}
	}
	if err := s.playlists.AddVideo(ctx, playlist, video); err != nil {
		return nil, err
	}
	playlist.Videos = append(playlist.Videos, *video)
	return playlist, nil
}

func (s *PlaylistService) RemoveVideo(ctx context.Context, ownerID, playlistID, videoID uuid.UUID) (*entity.Playlist, error) {
	playlist, err := s.ownedPlaylist(ctx, ownerID, playlistID)
	if err != nil {
		return nil, err
	}

	index := -1
	for i, existing := range playlist.Videos {
		if existing.ID == videoID {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, ErrVideoNotInList
	}
	if err := s.playlists.RemoveVideo(ctx, playlist, &playlist.Videos[index]); err != nil {
		return nil, err
	}
	playlist.Videos = append(playlist.Videos[:index], playlist.Videos[index+1:]...)
	return playlist, nil
}

func (s *PlaylistService) ownedPlaylist(ctx context.Context, ownerID, playlistID uuid.UUID) (*entity.Playlist, error) {
	playlist, err := s.playlists.FindByID(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	if playlist == nil {
		return nil, ErrNotFound
	}
	if playlist.OwnerID != ownerID {
		return nil, ErrForbidden
	}
	return playlist, nil
}
