package repository

import (
	"context"
	"errors"

	"vidstream/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FollowRepository interface {
	Find(ctx context.Context, followerID, followeeID uuid.UUID) (*entity.Follow, error)
	Create(ctx context.Context, follow *entity.Follow) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountFollowers(ctx context.Context, userID uuid.UUID) (int64, error)
	CountFollowing(ctx context.Context, userID uuid.UUID) (int64, error)
	ListFollowers(ctx context.Context, userID uuid.UUID, page, limit int) ([]entity.User, int64, error)
	ListFollowing(ctx context.Context, userID uuid.UUID, page, limit int) ([]entity.User, int64, error)
}

type followRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Find(ctx context.Context, followerID, followeeID uuid.UUID) (*entity.Follow, error) {
	var follow entity.Follow
	err := r.db.WithContext(ctx).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		First(&follow).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &follow, err
}

func (r *followRepository) Create(ctx context.Context, follow *entity.Follow) error {
	return r.db.WithContext(ctx).Create(follow).Error
}

func (r *followRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Follow{}).Error
}

func (r *followRepository) CountFollowers(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Follow{}).
		Where("followee_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *followRepository) CountFollowing(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Follow{}).
		Where("follower_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *followRepository) ListFollowers(ctx context.Context, userID uuid.UUID, page, limit int) ([]entity.User, int64, error) {
	total, err := r.CountFollowers(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	var users []entity.User
	err = r.db.WithContext(ctx).
		Joins("JOIN follows ON follows.follower_id = users.id").
		Where("follows.followee_id = ?", userID).
		Order("follows.created_at DESC").
		Offset(pageOffset(page, limit)).
		Limit(pageLimit(limit)).
		Find(&users).Error
	return users, total, err
}

func (r *followRepository) ListFollowing(ctx context.Context, userID uuid.UUID, page, limit int) ([]entity.User, int64, error) {
	total, err := r.CountFollowing(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	var users []entity.User
	err = r.db.WithContext(ctx).
		Joins("JOIN follows ON follows.followee_id = users.id").
		Where("follows.follower_id = ?", userID).
		Order("follows.created_at DESC").
		Offset(pageOffset(page, limit)).
		Limit(pageLimit(limit)).
		Find(&users).Error
	return users, total, err
}
