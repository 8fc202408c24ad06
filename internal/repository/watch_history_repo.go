package repository

import (
	"context"
	"time"

	"vidstream/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WatchHistoryRepository interface {
	Record(ctx context.Context, userID, videoID uuid.UUID, watchedAt time.Time) error
	List(ctx context.Context, userID uuid.UUID, page, limit int) ([]entity.WatchHistoryEntry, int64, error)
}

type watchHistoryRepository struct {
	db *gorm.DB
}

func NewWatchHistoryRepository(db *gorm.DB) WatchHistoryRepository {
	return &watchHistoryRepository{db: db}
}

// Record upserts the user/video pair so rewatching moves the entry to the
// top instead of duplicating it.
func (r *watchHistoryRepository) Record(ctx context.Context, userID, videoID uuid.UUID, watchedAt time.Time) error {
	entry := entity.WatchHistoryEntry{
		UserID:    userID,
		VideoID:   videoID,
		WatchedAt: watchedAt,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "video_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"watched_at"}),
		}).
		Create(&entry).Error
}

func (r *watchHistoryRepository) List(ctx context.Context, userID uuid.UUID, page, limit int) ([]entity.WatchHistoryEntry, int64, error) {
	query := r.db.WithContext(ctx).Model(&entity.WatchHistoryEntry{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entries []entity.WatchHistoryEntry
	err := query.
		Preload("Video").
		Preload("Video.Owner").
		Order("watched_at DESC").
		Offset(pageOffset(page, limit)).
		Limit(pageLimit(limit)).
		Find(&entries).Error
	return entries, total, err
}
