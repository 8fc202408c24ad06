package repository

import (
	"context"
	"errors"

	"vidstream/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LikeRepository interface {
	FindVideoLike(ctx context.Context, userID, videoID uuid.UUID) (*entity.Like, error)
	FindCommentLike(ctx context.Context, userID, commentID uuid.UUID) (*entity.Like, error)
	FindPostLike(ctx context.Context, userID, postID uuid.UUID) (*entity.Like, error)
	Create(ctx context.Context, like *entity.Like) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListLikedVideos(ctx context.Context, userID uuid.UUID, page, limit int) ([]entity.Video, int64, error)
	CountVideoLikes(ctx context.Context, videoID uuid.UUID) (int64, error)
	CountLikesOnOwnerVideos(ctx context.Context, ownerID uuid.UUID) (int64, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) findOne(ctx context.Context, conds string, args ...any) (*entity.Like, error) {
	var like entity.Like
	err := r.db.WithContext(ctx).Where(conds, args...).First(&like).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &like, err
}

func (r *likeRepository) FindVideoLike(ctx context.Context, userID, videoID uuid.UUID) (*entity.Like, error) {
	return r.findOne(ctx, "user_id = ? AND video_id = ?", userID, videoID)
}

func (r *likeRepository) FindCommentLike(ctx context.Context, userID, commentID uuid.UUID) (*entity.Like, error) {
	return r.findOne(ctx, "user_id = ? AND comment_id = ?", userID, commentID)
}

func (r *likeRepository) FindPostLike(ctx context.Context, userID, postID uuid.UUID) (*entity.Like, error) {
	return r.findOne(ctx, "user_id = ? AND community_post_id = ?", userID, postID)
}

func (r *likeRepository) Create(ctx context.Context, like *entity.Like) error {
	return r.db.WithContext(ctx).Create(like).Error
}

func (r *likeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Like{}).Error
}

func (r *likeRepository) ListLikedVideos(ctx context.Context, userID uuid.UUID, page, limit int) ([]entity.Video, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&entity.Like{}).
		Where("user_id = ? AND video_id IS NOT NULL", userID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var videos []entity.Video
	err := r.db.WithContext(ctx).
		Joins("JOIN likes ON likes.video_id = videos.id").
		Where("likes.user_id = ? AND videos.is_published = true", userID).
		Order("likes.created_at DESC").
		Offset(pageOffset(page, limit)).
		Limit(pageLimit(limit)).
		Find(&videos).Error
	return videos, total, err
}

func (r *likeRepository) CountVideoLikes(ctx context.Context, videoID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Like{}).
		Where("video_id = ?", videoID).
		Count(&count).Error
	return count, err
}

// CountLikesOnOwnerVideos sums likes received across all of a channel's videos.
func (r *likeRepository) CountLikesOnOwnerVideos(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Like{}).
		Joins("JOIN videos ON videos.id = likes.video_id").
		Where("videos.owner_id = ?", ownerID).
		Count(&count).Error
	return count, err
}
