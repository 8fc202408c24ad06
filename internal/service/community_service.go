package service

import (
	"context"
	"strings"

	"vidstream/internal/entity"
	"vidstream/internal/repository"

	"github.com/google/uuid"
)

const maxPostLength = 5000

type CommunityService struct {
	posts repository.CommunityPostRepository
}

func NewCommunityService(posts repository.CommunityPostRepository) *CommunityService {
	return &CommunityService{posts: posts}
}

func (s *CommunityService) Create(ctx context.Context, ownerID uuid.UUID, content string) (*entity.CommunityPost, error) {
	content = strings.TrimSpace(content)
	if content == "" || len(content) > maxPostLength {
		return nil, ErrInvalidInput
	}
	post := &entity.CommunityPost{OwnerID: ownerID, Content: content}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *CommunityService) ListByUser(ctx context.Context, ownerID uuid.UUID, page, limit int) ([]entity.CommunityPost, int64, error) {
	return s.posts.ListByOwner(ctx, ownerID, page, limit)
}

func (s *CommunityService) Update(ctx context.Context, ownerID, postID uuid.UUID, content string) (*entity.CommunityPost, error) {
	content = strings.TrimSpace(content)
	if content == "" || len(content) > maxPostLength {
		return nil, ErrInvalidInput
	}
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	if post.OwnerID != ownerID {
		return nil, ErrForbidden
	}
	post.Content = content
	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *CommunityService) Delete(ctx context.Context, ownerID, postID uuid.UUID) error {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrNotFound
	}
	if post.OwnerID != ownerID {
		return ErrForbidden
	}
	return s.posts.Delete(ctx, post.ID)
}
