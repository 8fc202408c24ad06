package repository

import (
	"context"
	"errors"

	"vidstream/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VideoFilter struct {
	Query  string
	Page   int
	Limit  int
	SortBy string // created_at | views | title
	Asc    bool
}

type OwnerVideoStats struct {
	TotalVideos int64
	TotalViews  int64
}

type VideoRepository interface {
	Create(ctx context.Context, video *entity.Video) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Video, error)
	Update(ctx context.Context, video *entity.Video) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListPublished(ctx context.Context, filter VideoFilter) ([]entity.Video, int64, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, page, limit int) ([]entity.Video, int64, error)
	IncrementViews(ctx context.Context, id uuid.UUID) error
	StatsByOwner(ctx context.Context, ownerID uuid.UUID) (OwnerVideoStats, error)
}

type videoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) VideoRepository {
	return &videoRepository{db: db}
}

func (r *videoRepository) Create(ctx context.Context, video *entity.Video) error {
	return r.db.WithContext(ctx).Create(video).Error
}

func (r *videoRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Video, error) {
	var video entity.Video
	err := r.db.WithContext(ctx).Preload("Owner").Where("id = ?", id).First(&video).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &video, err
}

func (r *videoRepository) Update(ctx context.Context, video *entity.Video) error {
	return r.db.WithContext(ctx).Save(video).Error
}

func (r *videoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Video{}).Error
}

func (r *videoRepository) ListPublished(ctx context.Context, filter VideoFilter) ([]entity.Video, int64, error) {
	query := r.db.WithContext(ctx).Model(&entity.Video{}).Where("is_published = true")
	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := filter.SortBy
	switch sortBy {
	case "views", "title", "created_at":
	default:
		sortBy = "created_at"
	}
	direction := "DESC"
	if filter.Asc {
		direction = "ASC"
	}

	var videos []entity.Video
	err := query.
		Preload("Owner").
		Order(sortBy + " " + direction).
		Offset(pageOffset(filter.Page, filter.Limit)).
		Limit(pageLimit(filter.Limit)).
		Find(&videos).Error
	return videos, total, err
}

func (r *videoRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, page, limit int) ([]entity.Video, int64, error) {
	query := r.db.WithContext(ctx).Model(&entity.Video{}).Where("owner_id = ?", ownerID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var videos []entity.Video
	err := query.
		Order("created_at DESC").
		Offset(pageOffset(page, limit)).
		Limit(pageLimit(limit)).
		Find(&videos).Error
	return videos, total, err
}

func (r *videoRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&entity.Video{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).
		Error
}

func (r *videoRepository) StatsByOwner(ctx context.Context, ownerID uuid.UUID) (OwnerVideoStats, error) {
	var stats OwnerVideoStats
	err := r.db.WithContext(ctx).
		Model(&entity.Video{}).
		Select("COUNT(*) AS total_videos, COALESCE(SUM(views), 0) AS total_views").
		Where("owner_id = ?", ownerID).
		Scan(&stats).Error
	return stats, err
}

func pageOffset(page, limit int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * pageLimit(limit)
}

func pageLimit(limit int) int {
	if limit < 1 || limit > 100 {
		return 10
	}
	return limit
}
