package repository

import (
	"context"
	"errors"

	"vidstream/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommunityPostRepository interface {
	Create(ctx context.Context, post *entity.CommunityPost) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CommunityPost, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, page, limit int) ([]entity.CommunityPost, int64, error)
	Update(ctx context.Context, post *entity.CommunityPost) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type communityPostRepository struct {
	db *gorm.DB
}

func NewCommunityPostRepository(db *gorm.DB) CommunityPostRepository {
	return &communityPostRepository{db: db}
}

func (r *communityPostRepository) Create(ctx context.Context, post *entity.CommunityPost) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *communityPostRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CommunityPost, error) {
	var post entity.CommunityPost
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &post, err
}

func (r *communityPostRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, page, limit int) ([]entity.CommunityPost, int64, error) {
	query := r.db.WithContext(ctx).Model(&entity.CommunityPost{}).Where("owner_id = ?", ownerID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []entity.CommunityPost
	err := query.
		Preload("Owner").
		Order("created_at DESC").
		Offset(pageOffset(page, limit)).
		Limit(pageLimit(limit)).
		Find(&posts).Error
	return posts, total, err
}

func (r *communityPostRepository) Update(ctx context.Context, post *entity.CommunityPost) error {
	return r.db.WithContext(ctx).Save(post).Error
}

func (r *communityPostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.CommunityPost{}).Error
}
