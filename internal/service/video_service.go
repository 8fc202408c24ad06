package service

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"vidstream/internal/entity"
	"vidstream/internal/repository"
	"vidstream/internal/storage"

	"github.com/google/uuid"
)

const (
	maxVideoSize     = 250 << 20
	maxThumbnailSize = 5 << 20
)

type FileUpload struct {
	Reader      io.Reader
	Size        int64
	ContentType string
	Filename    string
}

type UploadVideoInput struct {
	Title       string
	Description string
	Duration    float64
	Video       FileUpload
	Thumbnail   *FileUpload
}

type VideoWithLikes struct {
	Video     *entity.Video
	LikeCount int64
	IsLiked   bool
}

type VideoService struct {
	videos       repository.VideoRepository
	likes        repository.LikeRepository
	watchHistory repository.WatchHistoryRepository
	media        storage.ObjectStorage
	clock        Clock
}

func NewVideoService(
	videos repository.VideoRepository,
	likes repository.LikeRepository,
	watchHistory repository.WatchHistoryRepository,
	media storage.ObjectStorage,
	clock Clock,
) *VideoService {
	return &VideoService{
		videos:       videos,
		likes:        likes,
		watchHistory: watchHistory,
		media:        media,
		clock:        clock,
	}
}

// Upload stores the media objects first and rolls them back if the record
// cannot be created.
func (s *VideoService) Upload(ctx context.Context, ownerID uuid.UUID, input UploadVideoInput) (*entity.Video, error) {
	if strings.TrimSpace(input.Title) == "" || input.Video.Reader == nil {
		return nil, ErrInvalidInput
	}
	if !isAllowedVideoType(input.Video.ContentType) {
		return nil, ErrUnsupportedMediaType
	}
	if input.Video.Size > maxVideoSize {
		return nil, ErrMediaTooLarge
	}
	if input.Thumbnail != nil {
		if !isAllowedImageType(input.Thumbnail.ContentType) {
			return nil, ErrUnsupportedMediaType
		}
		if input.Thumbnail.Size > maxThumbnailSize {
			return nil, ErrMediaTooLarge
		}
	}

	videoKey := mediaKey("videos", input.Video.Filename)
	if err := s.media.Put(ctx, videoKey, input.Video.Reader, input.Video.Size, input.Video.ContentType); err != nil {
		return nil, err
	}

	var thumbnailKey, thumbnailURL string
	if input.Thumbnail != nil {
		thumbnailKey = mediaKey("thumbnails", input.Thumbnail.Filename)
		if err := s.media.Put(ctx, thumbnailKey, input.Thumbnail.Reader, input.Thumbnail.Size, input.Thumbnail.ContentType); err != nil {
			_ = s.media.Delete(ctx, videoKey)
			return nil, err
		}
		thumbnailURL = s.media.URL(thumbnailKey)
	}

	video := &entity.Video{
		OwnerID:      ownerID,
		Title:        strings.TrimSpace(input.Title),
		Description:  strings.TrimSpace(input.Description),
		Duration:     input.Duration,
		VideoKey:     videoKey,
		VideoURL:     s.media.URL(videoKey),
		ThumbnailKey: thumbnailKey,
		ThumbnailURL: thumbnailURL,
		IsPublished:  true,
	}
	if err := s.videos.Create(ctx, video); err != nil {
		_ = s.media.Delete(ctx, videoKey)
		if thumbnailKey != "" {
			_ = s.media.Delete(ctx, thumbnailKey)
		}
		return nil, err
	}
	return video, nil
}

func (s *VideoService) List(ctx context.Context, filter repository.VideoFilter) ([]entity.Video, int64, error) {
	return s.videos.ListPublished(ctx, filter)
}

func (s *VideoService) MyVideos(ctx context.Context, ownerID uuid.UUID, page, limit int) ([]entity.Video, int64, error) {
	return s.videos.ListByOwner(ctx, ownerID, page, limit)
}

// Get returns a video visible to the viewer. Watching someone else's video
// counts a view and lands in the viewer's watch history.
func (s *VideoService) Get(ctx context.Context, videoID uuid.UUID, viewerID *uuid.UUID) (*VideoWithLikes, error) {
	video, err := s.videos.FindByID(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, ErrNotFound
	}
	isOwner := viewerID != nil && *viewerID == video.OwnerID
	if !video.IsPublished && !isOwner {
		return nil, ErrNotFound
	}

	if viewerID != nil && !isOwner {
		if err := s.videos.IncrementViews(ctx, video.ID); err != nil {
			return nil, err
		}
		video.Views++
		if err := s.watchHistory.Record(ctx, *viewerID, video.ID, s.clock.Now()); err != nil {
			return nil, err
		}
	}

	likeCount, err := s.likes.CountVideoLikes(ctx, video.ID)
	if err != nil {
		return nil, err
	}
	result := &VideoWithLikes{Video: video, LikeCount: likeCount}
	if viewerID != nil {
		like, err := s.likes.FindVideoLike(ctx, *viewerID, video.ID)
		if err != nil {
			return nil, err
		}
		result.IsLiked = like != nil
	}
	return result, nil
}

func (s *VideoService) UpdateDetails(ctx context.Context, ownerID, videoID uuid.UUID, title, description *string) (*entity.Video, error) {
	video, err := s.ownedVideo(ctx, ownerID, videoID)
	if err != nil {
		return nil, err
	}
	if title != nil {
		if strings.TrimSpace(*title) == "" {
			return nil, ErrInvalidInput
		}
		video.Title = strings.TrimSpace(*title)
	}
	if description != nil {
		video.Description = strings.TrimSpace(*description)
	}
	if err := s.videos.Update(ctx, video); err != nil {
		return nil, err
	}
	return video, nil
}

func (s *VideoService) UpdateThumbnail(ctx context.Context, ownerID, videoID uuid.UUID, upload FileUpload) (*entity.Video, error) {
	if !isAllowedImageType(upload.ContentType) {
		return nil, ErrUnsupportedMediaType
	}
	if upload.Size > maxThumbnailSize {
		return nil, ErrMediaTooLarge
	}

	video, err := s.ownedVideo(ctx, ownerID, videoID)
	if err != nil {
		return nil, err
	}

	key := mediaKey("thumbnails", upload.Filename)
	if err := s.media.Put(ctx, key, upload.Reader, upload.Size, upload.ContentType); err != nil {
		return nil, err
	}

	oldKey := video.ThumbnailKey
	video.ThumbnailKey = key
	video.ThumbnailURL = s.media.URL(key)
	if err := s.videos.Update(ctx, video); err != nil {
		_ = s.media.Delete(ctx, key)
		return nil, err
	}
	if oldKey != "" {
		_ = s.media.Delete(ctx, oldKey)
	}
	return video, nil
}

func (s *VideoService) TogglePublish(ctx context.Context, ownerID, videoID uuid.UUID) (*entity.Video, error) {
	video, err := s.ownedVideo(ctx, ownerID, videoID)
	if err != nil {
		return nil, err
	}
	video.IsPublished = !video.IsPublished
	if err := s.videos.Update(ctx, video); err != nil {
		return nil, err
	}
	return video, nil
}

func (s *VideoService) Delete(ctx context.Context, ownerID, videoID uuid.UUID) error {
	video, err := s.ownedVideo(ctx, ownerID, videoID)
	if err != nil {
		return err
	}
	if err := s.videos.Delete(ctx, video.ID); err != nil {
		return err
	}
	_ = s.media.Delete(ctx, video.VideoKey)
	if video.ThumbnailKey != "" {
		_ = s.media.Delete(ctx, video.ThumbnailKey)
	}
	return nil
}

func (s *VideoService) ownedVideo(ctx context.Context, ownerID, videoID uuid.UUID) (*entity.Video, error) {
	video, err := s.videos.FindByID(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, ErrNotFound
	}
	if video.OwnerID != ownerID {
		return nil, ErrForbidden
	}
	return video, nil
}

func mediaKey(prefix, filename string) string {
	ext := path.Ext(filename)
	return fmt.Sprintf("%s/%s%s", prefix, uuid.New(), ext)
}

func isAllowedVideoType(contentType string) bool {
	return contentType == "video/mp4"
}

func isAllowedImageType(contentType string) bool {
	return contentType == "image/jpeg" || contentType == "image/png"
}
