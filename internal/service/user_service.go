package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"vidstream/internal/entity"
	"vidstream/internal/repository"
	"vidstream/internal/storage"
	"vidstream/internal/utils"

	"github.com/google/uuid"
)

type ChannelProfile struct {
	User           *entity.User
	FollowerCount  int64
	FollowingCount int64
	IsFollowed     bool
}

type UserService struct {
	users        repository.UserRepository
	follows      repository.FollowRepository
	watchHistory repository.WatchHistoryRepository
	media        storage.ObjectStorage
	clock        Clock
}

func NewUserService(
	users repository.UserRepository,
	follows repository.FollowRepository,
	watchHistory repository.WatchHistoryRepository,
	media storage.ObjectStorage,
	clock Clock,
) *UserService {
	return &UserService{
		users:        users,
		follows:      follows,
		watchHistory: watchHistory,
		media:        media,
		clock:        clock,
	}
}

// CheckUsername reports whether a username is still free.
func (s *UserService) CheckUsername(ctx context.Context, username string) (bool, error) {
	user, err := s.users.FindByUsername(ctx, utils.NormalizeUsername(username))
	if err != nil {
		return false, err
	}
	return user == nil, nil
}

// GetChannelProfile resolves a public channel page. viewerID may be nil.
func (s *UserService) GetChannelProfile(ctx context.Context, username string, viewerID *uuid.UUID) (*ChannelProfile, error) {
	user, err := s.users.FindByUsername(ctx, utils.NormalizeUsername(username))
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsVerified {
		return nil, ErrUserNotFound
	}

	followers, err := s.follows.CountFollowers(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	following, err := s.follows.CountFollowing(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	profile := &ChannelProfile{
		User:           user,
		FollowerCount:  followers,
		FollowingCount: following,
	}
	if viewerID != nil {
		follow, err := s.follows.Find(ctx, *viewerID, user.ID)
		if err != nil {
			return nil, err
		}
		profile.IsFollowed = follow != nil
	}
	return profile, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, name, bio *string) (*entity.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if name != nil {
		if strings.TrimSpace(*name) == "" {
			return nil, ErrInvalidInput
		}
		user.Name = strings.TrimSpace(*name)
	}
	if bio != nil {
		user.Bio = strings.TrimSpace(*bio)
	}
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) UpdateEmail(ctx context.Context, userID uuid.UUID, email string) (*entity.User, error) {
	normalized := utils.NormalizeEmail(email)
	if normalized == "" {
		return nil, ErrInvalidInput
	}

	existing, err := s.users.FindByEmail(ctx, normalized)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ID != userID {
		return nil, ErrUserExists
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	user.Email = normalized
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateProfileImage stores the new image and swaps the URL. The old object
// is removed afterwards; a stale delete failure is not surfaced.
func (s *UserService) UpdateProfileImage(ctx context.Context, userID uuid.UUID, file io.Reader, size int64, contentType string) (*entity.User, error) {
	if !isAllowedImageType(contentType) {
		return nil, ErrUnsupportedMediaType
	}
	if size > maxThumbnailSize {
		return nil, ErrMediaTooLarge
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	key := fmt.Sprintf("avatars/%s", uuid.New())
	if err := s.media.Put(ctx, key, file, size, contentType); err != nil {
		return nil, err
	}
	user.ProfileImage = s.media.URL(key)
	if err := s.users.Update(ctx, user); err != nil {
		_ = s.media.Delete(ctx, key)
		return nil, err
	}
	return user, nil
}

func (s *UserService) WatchHistory(ctx context.Context, userID uuid.UUID, page, limit int) ([]entity.WatchHistoryEntry, int64, error) {
	return s.watchHistory.List(ctx, userID, page, limit)
}
