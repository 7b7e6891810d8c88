package video

import (
	"context"

	"github.com/clipfeed/backend/internal/logger"
	"github.com/google/uuid"
)

// Service defines the video operations used by the HTTP layer
type Service interface {
	Create(ctx context.Context, req CreateRequest, createdBy uuid.UUID) (*Video, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Video, error)
	GetByUserAndID(ctx context.Context, userID, videoID uuid.UUID) (*Video, error)
	Update(ctx context.Context, userID, videoID uuid.UUID, req UpdateRequest) (*Video, error)
	Delete(ctx context.Context, userID, videoID uuid.UUID) error
}

type service struct {
	repo   Repository
	logger logger.Logger
}

// NewService creates a new video service
func NewService(repo Repository, logger logger.Logger) Service {
	return &service{
		repo:   repo,
		logger: logger,
	}
}

// Create persists a new video owned by the given user
func (s *service) Create(ctx context.Context, req CreateRequest, createdBy uuid.UUID) (*Video, error) {
	video := &Video{
		Title:     req.Title,
		URL:       req.VideoURL,
		Image:     req.Image,
		CreatedBy: createdBy,
	}

	if err := s.repo.Create(ctx, video); err != nil {
		return nil, err
	}

	s.logger.LogInfo("Video created", map[string]interface{}{
		"videoID": video.ID,
		"userID":  createdBy,
	})
	return video, nil
}

// ListByUser returns all videos created by the given user
func (s *service) ListByUser(ctx context.Context, userID uuid.UUID) ([]Video, error) {
	return s.repo.ListByUser(ctx, userID)
}

// GetByUserAndID returns a single video scoped to its creator
func (s *service) GetByUserAndID(ctx context.Context, userID, videoID uuid.UUID) (*Video, error) {
	return s.repo.GetByUserAndID(ctx, userID, videoID)
}

// Update applies a partial update to a video. The read-then-write is not
// atomic; a concurrent writer can interleave between the two.
func (s *service) Update(ctx context.Context, userID, videoID uuid.UUID, req UpdateRequest) (*Video, error) {
	video, err := s.repo.GetByUserAndID(ctx, userID, videoID)
	if err != nil {
		return nil, err
	}

	// Empty strings count as absent, same as missing fields.
	if req.Title != nil && *req.Title != "" {
		video.Title = *req.Title
	}
	if req.VideoURL != nil && *req.VideoURL != "" {
		video.URL = *req.VideoURL
	}
	if req.Image != nil && *req.Image != "" {
		video.Image = *req.Image
	}

	if err := s.repo.Save(ctx, video); err != nil {
		return nil, err
	}

	s.logger.LogInfo("Video updated", map[string]interface{}{
		"videoID": video.ID,
		"userID":  userID,
	})
	return video, nil
}

// Delete removes a video scoped to its creator
func (s *service) Delete(ctx context.Context, userID, videoID uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID, videoID); err != nil {
		return err
	}

	s.logger.LogInfo("Video deleted", map[string]interface{}{
		"videoID": videoID,
		"userID":  userID,
	})
	return nil
}
