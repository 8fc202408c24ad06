package service

import (
	"context"

	"vidstream/internal/repository"

	"github.com/google/uuid"
)

type DashboardStats struct {
	TotalVideos    int64
	TotalViews     int64
	TotalFollowers int64
	TotalLikes     int64
}

type DashboardService struct {
	videos  repository.VideoRepository
	follows repository.FollowRepository
	likes   repository.LikeRepository
}

func NewDashboardService(
	videos repository.VideoRepository,
	follows repository.FollowRepository,
	likes repository.LikeRepository,
) *DashboardService {
	return &DashboardService{videos: videos, follows: follows, likes: likes}
}

// Stats aggregates the channel numbers for the authenticated user.
func (s *DashboardService) Stats(ctx context.Context, userID uuid.UUID) (*DashboardStats, error) {
	videoStats, err := s.videos.StatsByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	followers, err := s.follows.CountFollowers(ctx, userID)
	if err != nil {
		return nil, err
	}
	likes, err := s.likes.CountLikesOnOwnerVideos(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &DashboardStats{
		TotalVideos:    videoStats.TotalVideos,
		TotalViews:     videoStats.TotalViews,
		TotalFollowers: followers,
		TotalLikes:     likes,
	}, nil
}
