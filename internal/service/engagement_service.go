package service

import (
	"context"
	"strings"

	"vidstream/internal/entity"
	"vidstream/internal/repository"

	"github.com/google/uuid"
)

// EngagementService covers follows, likes and comments.
type EngagementService struct {
	follows  repository.FollowRepository
	likes    repository.LikeRepository
	comments repository.CommentRepository
	videos   repository.VideoRepository
	posts    repository.CommunityPostRepository
	users    repository.UserRepository
}

func NewEngagementService(
	follows repository.FollowRepository,
	likes repository.LikeRepository,
	comments repository.CommentRepository,
	videos repository.VideoRepository,
	posts repository.CommunityPostRepository,
	users repository.UserRepository,
) *EngagementService {
	return &EngagementService{
		follows:  follows,
		likes:    likes,
		comments: comments,
		videos:   videos,
		posts:    posts,
		users:    users,
	}
}

// ToggleFollow follows the channel, or unfollows when already following.
// Returns whether the caller follows the channel afterwards.
func (s *EngagementService) ToggleFollow(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error) {
	if followerID == followeeID {
		return false, ErrSelfFollow
	}
	followee, err := s.users.FindByID(ctx, followeeID)
	if err != nil {
		return false, err
	}
	if followee == nil {
		return false, ErrUserNotFound
	}

	existing, err := s.follows.Find(ctx, followerID, followeeID)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, s.follows.Delete(ctx, existing.ID)
	}
	return true, s.follows.Create(ctx, &entity.Follow{FollowerID: followerID, FolloweeID: followeeID})
}

func (s *EngagementService) ListFollowers(ctx context.Context, userID uuid.UUID, page, limit int) ([]entity.User, int64, error) {
	return s.follows.ListFollowers(ctx, userID, page, limit)
}

func (s *EngagementService) ListFollowing(ctx context.Context, userID uuid.UUID, page, limit int) ([]entity.User, int64, error) {
	return s.follows.ListFollowing(ctx, userID, page, limit)
}

func (s *EngagementService) ToggleVideoLike(ctx context.Context, userID, videoID uuid.UUID) (bool, error) {
	video, err := s.videos.FindByID(ctx, videoID)
	if err != nil {
		return false, err
	}
	if video == nil {
		return false, ErrNotFound
	}

	existing, err := s.likes.FindVideoLike(ctx, userID, videoID)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, s.likes.Delete(ctx, existing.ID)
	}
	return true, s.likes.Create(ctx, &entity.Like{UserID: userID, VideoID: &videoID})
}

func (s *EngagementService) ToggleCommentLike(ctx context.Context, userID, commentID uuid.UUID) (bool, error) {
	comment, err := s.comments.FindByID(ctx, commentID)
	if err != nil {
		return false, err
	}
	if comment == nil {
		return false, ErrNotFound
	}

	existing, err := s.likes.FindCommentLike(ctx, userID, commentID)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, s.likes.Delete(ctx, existing.ID)
	}
	return true, s.likes.Create(ctx, &entity.Like{UserID: userID, CommentID: &commentID})
}

func (s *EngagementService) TogglePostLike(ctx context.Context, userID, postID uuid.UUID) (bool, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return false, err
	}
	if post == nil {
		return false, ErrNotFound
	}

	existing, err := s.likes.FindPostLike(ctx, userID, postID)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, s.likes.Delete(ctx, existing.ID)
	}
	return true, s.likes.Create(ctx, &entity.Like{UserID: userID, CommunityPostID: &postID})
}

func (s *EngagementService) LikedVideos(ctx context.Context, userID uuid.UUID, page, limit int) ([]entity.Video, int64, error) {
	return s.likes.ListLikedVideos(ctx, userID, page, limit)
}

func (s *EngagementService) AddComment(ctx context.Context, userID, videoID uuid.UUID, content string) (*entity.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrInvalidInput
	}
	video, err := s.videos.FindByID(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, ErrNotFound
	}

	comment := &entity.Comment{
		VideoID: videoID,
		OwnerID: userID,
		Content: strings.TrimSpace(content),
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *EngagementService) ListComments(ctx context.Context, videoID uuid.UUID, page, limit int) ([]entity.Comment, int64, error) {
	return s.comments.ListByVideo(ctx, videoID, page, limit)
}

func (s *EngagementService) UpdateComment(ctx context.Context, userID, commentID uuid.UUID, content string) (*entity.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrInvalidInput
	}
	comment, err := s.comments.FindByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, ErrNotFound
	}
	if comment.OwnerID != userID {
		return nil, ErrForbidden
	}
	comment.Content = strings.TrimSpace(content)
	if err := s.comments.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *EngagementService) DeleteComment(ctx context.Context, userID, commentID uuid.UUID) error {
	comment, err := s.comments.FindByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrNotFound
	}
	if comment.OwnerID != userID {
		return ErrForbidden
	}
	return s.comments.Delete(ctx, comment.ID)
}
