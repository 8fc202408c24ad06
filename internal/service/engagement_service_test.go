package service

import (
	"context"
	"testing"
	"time"

	"vidstream/internal/entity"
	"vidstream/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- fakes ----

type fakeFollowRepo struct {
	follows map[uuid.UUID]*entity.Follow
}

func newFakeFollowRepo() *fakeFollowRepo {
	return &fakeFollowRepo{follows: make(map[uuid.UUID]*entity.Follow)}
}

func (r *fakeFollowRepo) Find(_ context.Context, followerID, followeeID uuid.UUID) (*entity.Follow, error) {
	for _, f := range r.follows {
		if f.FollowerID == followerID && f.FolloweeID == followeeID {
			return f, nil
		}
	}
	return nil, nil
}

func (r *fakeFollowRepo) Create(_ context.Context, follow *entity.Follow) error {
	if follow.ID == uuid.Nil {
		follow.ID = uuid.New()
	}
	r.follows[follow.ID] = follow
	return nil
}

func (r *fakeFollowRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.follows, id)
	return nil
}

func (r *fakeFollowRepo) CountFollowers(_ context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	for _, f := range r.follows {
		if f.FolloweeID == userID {
			n++
		}
	}
	return n, nil
}

func (r *fakeFollowRepo) CountFollowing(_ context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	for _, f := range r.follows {
		if f.FollowerID == userID {
			n++
		}
	}
	return n, nil
}

func (r *fakeFollowRepo) ListFollowers(_ context.Context, userID uuid.UUID, _, _ int) ([]entity.User, int64, error) {
	n, _ := r.CountFollowers(context.Background(), userID)
	return nil, n, nil
}

func (r *fakeFollowRepo) ListFollowing(_ context.Context, userID uuid.UUID, _, _ int) ([]entity.User, int64, error) {
	n, _ := r.CountFollowing(context.Background(), userID)
	return nil, n, nil
}

type fakeLikeRepo struct {
	likes map[uuid.UUID]*entity.Like
}

func newFakeLikeRepo() *fakeLikeRepo {
	return &fakeLikeRepo{likes: make(map[uuid.UUID]*entity.Like)}
}

func (r *fakeLikeRepo) FindVideoLike(_ context.Context, userID, videoID uuid.UUID) (*entity.Like, error) {
	return r.find(func(l *entity.Like) bool {
		return l.UserID == userID && l.VideoID != nil && *l.VideoID == videoID
	})
}

func (r *fakeLikeRepo) FindCommentLike(_ context.Context, userID, commentID uuid.UUID) (*entity.Like, error) {
	return r.find(func(l *entity.Like) bool {
		return l.UserID == userID && l.CommentID != nil && *l.CommentID == commentID
	})
}

func (r *fakeLikeRepo) FindPostLike(_ context.Context, userID, postID uuid.UUID) (*entity.Like, error) {
	return r.find(func(l *entity.Like) bool {
		return l.UserID == userID && l.CommunityPostID != nil && *l.CommunityPostID == postID
	})
}

func (r *fakeLikeRepo) Create(_ context.Context, like *entity.Like) error {
	if like.ID == uuid.Nil {
		like.ID = uuid.New()
	}
	r.likes[like.ID] = like
	return nil
}

func (r *fakeLikeRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.likes, id)
	return nil
}

func (r *fakeLikeRepo) ListLikedVideos(_ context.Context, _ uuid.UUID, _, _ int) ([]entity.Video, int64, error) {
	return nil, 0, nil
}

func (r *fakeLikeRepo) CountVideoLikes(_ context.Context, videoID uuid.UUID) (int64, error) {
	var n int64
	for _, l := range r.likes {
		if l.VideoID != nil && *l.VideoID == videoID {
			n++
		}
	}
	return n, nil
}

func (r *fakeLikeRepo) CountLikesOnOwnerVideos(_ context.Context, _ uuid.UUID) (int64, error) {
	return int64(len(r.likes)), nil
}

func (r *fakeLikeRepo) find(match func(*entity.Like) bool) (*entity.Like, error) {
	for _, l := range r.likes {
		if match(l) {
			return l, nil
		}
	}
	return nil, nil
}

type fakeCommentRepo struct {
	comments map[uuid.UUID]*entity.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: make(map[uuid.UUID]*entity.Comment)}
}

func (r *fakeCommentRepo) Create(_ context.Context, comment *entity.Comment) error {
	if comment.ID == uuid.Nil {
		comment.ID = uuid.New()
	}
	r.comments[comment.ID] = comment
	return nil
}

func (r *fakeCommentRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Comment, error) {
	if c, ok := r.comments[id]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, nil
}

func (r *fakeCommentRepo) ListByVideo(_ context.Context, videoID uuid.UUID, _, _ int) ([]entity.Comment, int64, error) {
	var out []entity.Comment
	for _, c := range r.comments {
		if c.VideoID == videoID {
			out = append(out, *c)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeCommentRepo) Update(_ context.Context, comment *entity.Comment) error {
	copied := *comment
	r.comments[comment.ID] = &copied
	return nil
}

func (r *fakeCommentRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.comments, id)
	return nil
}

type fakeVideoRepoStore struct {
	videos map[uuid.UUID]*entity.Video
}

func newFakeVideoRepo() *fakeVideoRepoStore {
	return &fakeVideoRepoStore{videos: make(map[uuid.UUID]*entity.Video)}
}

func (r *fakeVideoRepoStore) Create(_ context.Context, video *entity.Video) error {
	if video.ID == uuid.Nil {
		video.ID = uuid.New()
	}
	copied := *video
	r.videos[video.ID] = &copied
	return nil
}

func (r *fakeVideoRepoStore) FindByID(_ context.Context, id uuid.UUID) (*entity.Video, error) {
	if v, ok := r.videos[id]; ok {
		copied := *v
		return &copied, nil
	}
	return nil, nil
}

func (r *fakeVideoRepoStore) Update(_ context.Context, video *entity.Video) error {
	copied := *video
	r.videos[video.ID] = &copied
	return nil
}

func (r *fakeVideoRepoStore) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.videos, id)
	return nil
}

func (r *fakeVideoRepoStore) ListPublished(_ context.Context, _ repository.VideoFilter) ([]entity.Video, int64, error) {
	var out []entity.Video
	for _, v := range r.videos {
		if v.IsPublished {
			out = append(out, *v)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeVideoRepoStore) ListByOwner(_ context.Context, ownerID uuid.UUID, _, _ int) ([]entity.Video, int64, error) {
	var out []entity.Video
	for _, v := range r.videos {
		if v.OwnerID == ownerID {
			out = append(out, *v)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeVideoRepoStore) IncrementViews(_ context.Context, id uuid.UUID) error {
	if v, ok := r.videos[id]; ok {
		v.Views++
	}
	return nil
}

func (r *fakeVideoRepoStore) StatsByOwner(_ context.Context, ownerID uuid.UUID) (repository.OwnerVideoStats, error) {
	var stats repository.OwnerVideoStats
	for _, v := range r.videos {
		if v.OwnerID == ownerID {
			stats.TotalVideos++
			stats.TotalViews += v.Views
		}
	}
	return stats, nil
}

type fakePostRepo struct {
	posts map[uuid.UUID]*entity.CommunityPost
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[uuid.UUID]*entity.CommunityPost)}
}

func (r *fakePostRepo) Create(_ context.Context, post *entity.CommunityPost) error {
	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}
	r.posts[post.ID] = post
	return nil
}

func (r *fakePostRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.CommunityPost, error) {
	if p, ok := r.posts[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, nil
}

func (r *fakePostRepo) ListByOwner(_ context.Context, ownerID uuid.UUID, _, _ int) ([]entity.CommunityPost, int64, error) {
	var out []entity.CommunityPost
	for _, p := range r.posts {
		if p.OwnerID == ownerID {
			out = append(out, *p)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakePostRepo) Update(_ context.Context, post *entity.CommunityPost) error {
	copied := *post
	r.posts[post.ID] = &copied
	return nil
}

func (r *fakePostRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.posts, id)
	return nil
}

// ---- helpers ----

type engagementFixture struct {
	service  *EngagementService
	users    *fakeUserRepo
	videos   *fakeVideoRepoStore
	comments *fakeCommentRepo
	likes    *fakeLikeRepo
	follows  *fakeFollowRepo
	posts    *fakePostRepo
}

func newEngagementFixture() *engagementFixture {
	users := newFakeUserRepo()
	videos := newFakeVideoRepo()
	comments := newFakeCommentRepo()
	likes := newFakeLikeRepo()
	follows := newFakeFollowRepo()
	posts := newFakePostRepo()
	return &engagementFixture{
		service:  NewEngagementService(follows, likes, comments, videos, posts, users),
		users:    users,
		videos:   videos,
		comments: comments,
		likes:    likes,
		follows:  follows,
		posts:    posts,
	}
}

func (f *engagementFixture) addUser(t *testing.T, username string) uuid.UUID {
	t.Helper()
	user := &entity.User{Username: username, Email: username + "@example.com", IsVerified: true}
	require.NoError(t, f.users.Create(context.Background(), user))
	return user.ID
}

func (f *engagementFixture) addVideo(t *testing.T, ownerID uuid.UUID) uuid.UUID {
	t.Helper()
	video := &entity.Video{OwnerID: ownerID, Title: "clip", IsPublished: true, CreatedAt: time.Now()}
	require.NoError(t, f.videos.Create(context.Background(), video))
	return video.ID
}

// ---- tests ----

func TestToggleFollow(t *testing.T) {
	f := newEngagementFixture()
	alice := f.addUser(t, "alice")
	bob := f.addUser(t, "bob")

	following, err := f.service.ToggleFollow(context.Background(), alice, bob)
	require.NoError(t, err)
	assert.True(t, following)

	following, err = f.service.ToggleFollow(context.Background(), alice, bob)
	require.NoError(t, err)
	assert.False(t, following)
}

func TestToggleFollowSelf(t *testing.T) {
	f := newEngagementFixture()
	alice := f.addUser(t, "alice")

	_, err := f.service.ToggleFollow(context.Background(), alice, alice)
	assert.ErrorIs(t, err, ErrSelfFollow)
}

func TestToggleFollowUnknownUser(t *testing.T) {
	f := newEngagementFixture()
	alice := f.addUser(t, "alice")

	_, err := f.service.ToggleFollow(context.Background(), alice, uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestToggleVideoLike(t *testing.T) {
	f := newEngagementFixture()
	alice := f.addUser(t, "alice")
	bob := f.addUser(t, "bob")
	videoID := f.addVideo(t, bob)

	liked, err := f.service.ToggleVideoLike(context.Background(), alice, videoID)
	require.NoError(t, err)
	assert.True(t, liked)

	count, err := f.likes.CountVideoLikes(context.Background(), videoID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	liked, err = f.service.ToggleVideoLike(context.Background(), alice, videoID)
	require.NoError(t, err)
	assert.False(t, liked)

	count, err = f.likes.CountVideoLikes(context.Background(), videoID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestToggleVideoLikeUnknownVideo(t *testing.T) {
	f := newEngagementFixture()
	alice := f.addUser(t, "alice")

	_, err := f.service.ToggleVideoLike(context.Background(), alice, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCommentLifecycle(t *testing.T) {
	f := newEngagementFixture()
	alice := f.addUser(t, "alice")
	bob := f.addUser(t, "bob")
	videoID := f.addVideo(t, bob)

	comment, err := f.service.AddComment(context.Background(), alice, videoID, "  nice video  ")
	require.NoError(t, err)
	assert.Equal(t, "nice video", comment.Content)

	updated, err := f.service.UpdateComment(context.Background(), alice, comment.ID, "edited")
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Content)

	// Someone else cannot edit or delete it.
	_, err = f.service.UpdateComment(context.Background(), bob, comment.ID, "hijacked")
	assert.ErrorIs(t, err, ErrForbidden)
	err = f.service.DeleteComment(context.Background(), bob, comment.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	require.NoError(t, f.service.DeleteComment(context.Background(), alice, comment.ID))
	err = f.service.DeleteComment(context.Background(), alice, comment.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddCommentRejectsBlankAndUnknownVideo(t *testing.T) {
	f := newEngagementFixture()
	alice := f.addUser(t, "alice")
	bob := f.addUser(t, "bob")
	videoID := f.addVideo(t, bob)

	_, err := f.service.AddComment(context.Background(), alice, videoID, "   ")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.service.AddComment(context.Background(), alice, uuid.New(), "hello")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTogglePostLike(t *testing.T) {
	f := newEngagementFixture()
	alice := f.addUser(t, "alice")
	bob := f.addUser(t, "bob")
	post := &entity.CommunityPost{OwnerID: bob, Content: "announcement"}
	require.NoError(t, f.posts.Create(context.Background(), post))

	liked, err := f.service.TogglePostLike(context.Background(), alice, post.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	liked, err = f.service.TogglePostLike(context.Background(), alice, post.ID)
	require.NoError(t, err)
	assert.False(t, liked)
}
