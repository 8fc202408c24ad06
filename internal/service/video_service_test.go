package service

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"vidstream/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStorage struct {
	objects map[string]string
	putErr  error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: make(map[string]string)}
}

func (s *fakeStorage) EnsureBucket(context.Context) error { return nil }

func (s *fakeStorage) Put(_ context.Context, key string, r io.Reader, _ int64, contentType string) error {
	if s.putErr != nil {
		return s.putErr
	}
	s.objects[key] = contentType
	return nil
}

func (s *fakeStorage) Delete(_ context.Context, key string) error {
	delete(s.objects, key)
	return nil
}

func (s *fakeStorage) URL(key string) string { return "http://media.test/" + key }

type fakeWatchHistoryRepo struct {
	recorded map[uuid.UUID]uuid.UUID
}

func newFakeWatchHistoryRepo() *fakeWatchHistoryRepo {
	return &fakeWatchHistoryRepo{recorded: make(map[uuid.UUID]uuid.UUID)}
}

func (r *fakeWatchHistoryRepo) Record(_ context.Context, userID, videoID uuid.UUID, _ time.Time) error {
	r.recorded[userID] = videoID
	return nil
}

func (r *fakeWatchHistoryRepo) List(context.Context, uuid.UUID, int, int) ([]entity.WatchHistoryEntry, int64, error) {
	return nil, 0, nil
}

type videoFixture struct {
	service *VideoService
	videos  *fakeVideoRepoStore
	likes   *fakeLikeRepo
	history *fakeWatchHistoryRepo
	media   *fakeStorage
}

func newVideoFixture() *videoFixture {
	videos := newFakeVideoRepo()
	likes := newFakeLikeRepo()
	history := newFakeWatchHistoryRepo()
	media := newFakeStorage()
	clock := &fixedClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	return &videoFixture{
		service: NewVideoService(videos, likes, history, media, clock),
		videos:  videos,
		likes:   likes,
		history: history,
		media:   media,
	}
}

func mp4Upload(size int64) FileUpload {
	return FileUpload{
		Reader:      strings.NewReader("data"),
		Size:        size,
		ContentType: "video/mp4",
		Filename:    "clip.mp4",
	}
}

func (f *videoFixture) upload(t *testing.T, ownerID uuid.UUID) *entity.Video {
	t.Helper()
	video, err := f.service.Upload(context.Background(), ownerID, UploadVideoInput{
		Title: "My clip",
		Video: mp4Upload(1024),
	})
	require.NoError(t, err)
	return video
}

func TestUploadStoresVideo(t *testing.T) {
	f := newVideoFixture()
	owner := uuid.New()
	video := f.upload(t, owner)

	assert.Equal(t, owner, video.OwnerID)
	assert.True(t, video.IsPublished)
	assert.Contains(t, video.VideoURL, "http://media.test/videos/")
	assert.Contains(t, f.media.objects, video.VideoKey)
}

func TestUploadRejectsWrongType(t *testing.T) {
	f := newVideoFixture()
	upload := mp4Upload(1024)
	upload.ContentType = "video/webm"

	_, err := f.service.Upload(context.Background(), uuid.New(), UploadVideoInput{
		Title: "My clip",
		Video: upload,
	})
	assert.ErrorIs(t, err, ErrUnsupportedMediaType)
	assert.Empty(t, f.media.objects)
}

func TestUploadRejectsOversizedVideo(t *testing.T) {
	f := newVideoFixture()
	_, err := f.service.Upload(context.Background(), uuid.New(), UploadVideoInput{
		Title: "My clip",
		Video: mp4Upload(251 << 20),
	})
	assert.ErrorIs(t, err, ErrMediaTooLarge)
}

func TestUploadRejectsOversizedThumbnail(t *testing.T) {
	f := newVideoFixture()
	thumb := FileUpload{
		Reader:      strings.NewReader("img"),
		Size:        6 << 20,
		ContentType: "image/jpeg",
		Filename:    "thumb.jpg",
	}
	_, err := f.service.Upload(context.Background(), uuid.New(), UploadVideoInput{
		Title:     "My clip",
		Video:     mp4Upload(1024),
		Thumbnail: &thumb,
	})
	assert.ErrorIs(t, err, ErrMediaTooLarge)
	assert.Empty(t, f.media.objects)
}

func TestGetCountsViewForOtherViewers(t *testing.T) {
	f := newVideoFixture()
	owner := uuid.New()
	viewer := uuid.New()
	video := f.upload(t, owner)

	detail, err := f.service.Get(context.Background(), video.ID, &viewer)
	require.NoError(t, err)
	assert.Equal(t, int64(1), detail.Video.Views)
	assert.Equal(t, video.ID, f.history.recorded[viewer])

	// The owner's own visits do not count.
	detail, err = f.service.Get(context.Background(), video.ID, &owner)
	require.NoError(t, err)
	assert.Equal(t, int64(1), detail.Video.Views)
	_, recorded := f.history.recorded[owner]
	assert.False(t, recorded)
}

func TestGetHidesUnpublishedFromOthers(t *testing.T) {
	f := newVideoFixture()
	owner := uuid.New()
	viewer := uuid.New()
	video := f.upload(t, owner)

	_, err := f.service.TogglePublish(context.Background(), owner, video.ID)
	require.NoError(t, err)

	_, err = f.service.Get(context.Background(), video.ID, &viewer)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = f.service.Get(context.Background(), video.ID, nil)
	assert.ErrorIs(t, err, ErrNotFound)

	detail, err := f.service.Get(context.Background(), video.ID, &owner)
	require.NoError(t, err)
	assert.False(t, detail.Video.IsPublished)
}

func TestUpdateDetailsRequiresOwnership(t *testing.T) {
	f := newVideoFixture()
	owner := uuid.New()
	video := f.upload(t, owner)

	title := "Renamed"
	_, err := f.service.UpdateDetails(context.Background(), uuid.New(), video.ID, &title, nil)
	assert.ErrorIs(t, err, ErrForbidden)

	updated, err := f.service.UpdateDetails(context.Background(), owner, video.ID, &title, nil)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
}

func TestDeleteRemovesRecordAndObjects(t *testing.T) {
	f := newVideoFixture()
	owner := uuid.New()
	video := f.upload(t, owner)

	require.NoError(t, f.service.Delete(context.Background(), owner, video.ID))
	assert.Empty(t, f.media.objects)

	_, err := f.service.Get(context.Background(), video.ID, &owner)
	assert.ErrorIs(t, err, ErrNotFound)
}
