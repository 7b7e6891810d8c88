package video_test

import (
	"context"
	"testing"

	"github.com/clipfeed/backend/internal/video"
	"github.com/clipfeed/backend/testhelper"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, v *video.Video) error {
	return m.Called(ctx, v).Error(0)
}

func (m *mockRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]video.Video, error) {
	args := m.Called(ctx, userID)
	if v := args.Get(0); v != nil {
		return v.([]video.Video), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) GetByUserAndID(ctx context.Context, userID, videoID uuid.UUID) (*video.Video, error) {
	args := m.Called(ctx, userID, videoID)
	if v := args.Get(0); v != nil {
		return v.(*video.Video), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) Save(ctx context.Context, v *video.Video) error {
	return m.Called(ctx, v).Error(0)
}

func (m *mockRepository) Delete(ctx context.Context, userID, videoID uuid.UUID) error {
	return m.Called(ctx, userID, videoID).Error(0)
}

func (m *mockRepository) IDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, userID)
	if ids := args.Get(0); ids != nil {
		return ids.([]uuid.UUID), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestCreate_SetsCreator(t *testing.T) {
	creatorID := uuid.New()

	repo := new(mockRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(v *video.Video) bool {
		return v.Title == "My clip" && v.CreatedBy == creatorID
	})).Return(nil)

	service := video.NewService(repo, testhelper.NopLogger{})

	created, err := service.Create(context.Background(), video.CreateRequest{
		Title:    "My clip",
		VideoURL: "https://cdn.example/clip.mp4",
		Image:    "https://cdn.example/clip.jpg",
	}, creatorID)
	require.NoError(t, err)
	assert.Equal(t, creatorID, created.CreatedBy)
	repo.AssertExpectations(t)
}

func TestUpdate_PartialFields(t *testing.T) {
	userID := uuid.New()
	videoID := uuid.New()
	newTitle := "Renamed"

	repo := new(mockRepository)
	repo.On("GetByUserAndID", mock.Anything, userID, videoID).Return(&video.Video{
		ID:        videoID,
		Title:     "Original",
		URL:       "https://cdn.example/clip.mp4",
		Image:     "https://cdn.example/clip.jpg",
		CreatedBy: userID,
	}, nil)
	repo.On("Save", mock.Anything, mock.MatchedBy(func(v *video.Video) bool {
		return v.Title == newTitle &&
			v.URL == "https://cdn.example/clip.mp4" &&
			v.Image == "https://cdn.example/clip.jpg"
	})).Return(nil)

	service := video.NewService(repo, testhelper.NopLogger{})

	updated, err := service.Update(context.Background(), userID, videoID, video.UpdateRequest{
		Title: &newTitle,
	})
	require.NoError(t, err)
	assert.Equal(t, newTitle, updated.Title)
	repo.AssertExpectations(t)
}

func TestUpdate_SkipsEmptyStrings(t *testing.T) {
	userID := uuid.New()
	videoID := uuid.New()
	empty := ""

	repo := new(mockRepository)
	repo.On("GetByUserAndID", mock.Anything, userID, videoID).Return(&video.Video{
		ID:        videoID,
		Title:     "Original",
		URL:       "https://cdn.example/clip.mp4",
		Image:     "https://cdn.example/clip.jpg",
		CreatedBy: userID,
	}, nil)
	repo.On("Save", mock.Anything, mock.MatchedBy(func(v *video.Video) bool {
		return v.Title == "Original" &&
			v.URL == "https://cdn.example/clip.mp4" &&
			v.Image == "https://cdn.example/clip.jpg"
	})).Return(nil)

	service := video.NewService(repo, testhelper.NopLogger{})

	_, err := service.Update(context.Background(), userID, videoID, video.UpdateRequest{
		Title:    &empty,
		VideoURL: &empty,
		Image:    &empty,
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdate_MissingVideo(t *testing.T) {
	userID := uuid.New()
	videoID := uuid.New()

	repo := new(mockRepository)
	repo.On("GetByUserAndID", mock.Anything, userID, videoID).
		Return(nil, video.ErrVideoNotFound)

	service := video.NewService(repo, testhelper.NopLogger{})

	_, err := service.Update(context.Background(), userID, videoID, video.UpdateRequest{})
	assert.ErrorIs(t, err, video.ErrVideoNotFound)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestDelete_PropagatesNotFound(t *testing.T) {
	userID := uuid.New()
	videoID := uuid.New()

	repo := new(mockRepository)
	repo.On("Delete", mock.Anything, userID, videoID).Return(video.ErrVideoNotFound)

	service := video.NewService(repo, testhelper.NopLogger{})

	err := service.Delete(context.Background(), userID, videoID)
	assert.ErrorIs(t, err, video.ErrVideoNotFound)
}
