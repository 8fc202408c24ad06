package repository

import (
	"context"
	"errors"

	"vidstream/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PlaylistRepository interface {
	Create(ctx context.Context, playlist *entity.Playlist) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Playlist, error)
	Update(ctx context.Context, playlist *entity.Playlist) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID, publishedOnly bool, page, limit int) ([]entity.Playlist, int64, error)
	Search(ctx context.Context, query string, page, limit int) ([]entity.Playlist, int64, error)
	AddVideo(ctx context.Context, playlist *entity.Playlist, video *entity.Video) error
	RemoveVideo(ctx context.Context, playlist *entity.Playlist, video *entity.Video) error
}

type playlistRepository struct {
	db *gorm.DB
}

func NewPlaylistRepository(db *gorm.DB) PlaylistRepository {
	return &playlistRepository{db: db}
}

func (r *playlistRepository) Create(ctx context.Context, playlist *entity.Playlist) error {
	return r.db.WithContext(ctx).Create(playlist).Error
}

func (r *playlistRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Playlist, error) {
	var playlist entity.Playlist
	err := r.db.WithContext(ctx).
		Preload("Videos").
		Preload("Owner").
		Where("id = ?", id).
		First(&playlist).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &playlist, err
}

func (r *playlistRepository) Update(ctx context.Context, playlist *entity.Playlist) error {
	return r.db.WithContext(ctx).Omit("Videos").Save(playlist).Error
}

func (r *playlistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Select("Videos").Delete(&entity.Playlist{ID: id}).Error
}

func (r *playlistRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, publishedOnly bool, page, limit int) ([]entity.Playlist, int64, error) {
	query := r.db.WithContext(ctx).Model(&entity.Playlist{}).Where("owner_id = ?", ownerID)
	if publishedOnly {
		query = query.Where("is_published = true")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var playlists []entity.Playlist
	err := query.
		Preload("Videos").
		Order("created_at DESC").
		Offset(pageOffset(page, limit)).
		Limit(pageLimit(limit)).
		Find(&playlists).Error
	return playlists, total, err
}

func (r *playlistRepository) Search(ctx context.Context, searchQuery string, page, limit int) ([]entity.Playlist, int64, error) {
	pattern := "%" + searchQuery + "%"
	query := r.db.WithContext(ctx).
		Model(&entity.Playlist{}).
		Where("is_published = true").
		Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var playlists []entity.Playlist
	err := query.
		Preload("Videos").
		Preload("Owner").
		Order("created_at DESC").
		Offset(pageOffset(page, limit)).
		Limit(pageLimit(limit)).
		Find(&playlists).Error
	return playlists, total, err
}

func (r *playlistRepository) AddVideo(ctx context.Context, playlist *entity.Playlist, video *entity.Video) error {
	return r.db.WithContext(ctx).Model(playlist).Association("Videos").Append(video)
}

func (r *playlistRepository) RemoveVideo(ctx context.Context, playlist *entity.Playlist, video *entity.Video) error {
	return r.db.WithContext(ctx).Model(playlist).Association("Videos").Delete(video)
}
