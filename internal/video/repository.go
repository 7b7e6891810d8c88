package video

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository defines the persistence operations for videos
type Repository interface {
	Create(ctx context.Context, video *Video) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Video, error)
	GetByUserAndID(ctx context.Context, userID, videoID uuid.UUID) (*Video, error)
	Save(ctx context.Context, video *Video) error
	Delete(ctx context.Context, userID, videoID uuid.UUID) error
	IDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewRepository creates a GORM-backed video repository
func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, video *Video) error {
	return r.db.WithContext(ctx).Create(video).Error
}

func (r *gormRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]Video, error) {
	var videos []Video
	err := r.db.WithContext(ctx).
		Where("created_by = ?", userID).
		Order("created_at DESC").
		Find(&videos).Error
	if err != nil {
		return nil, err
	}
	return videos, nil
}

func (r *gormRepository) GetByUserAndID(ctx context.Context, userID, videoID uuid.UUID) (*Video, error) {
	var video Video
	err := r.db.WithContext(ctx).
		Where("id = ? AND created_by = ?", videoID, userID).
		First(&video).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}
	return &video, nil
}

func (r *gormRepository) Save(ctx context.Context, video *Video) error {
	return r.db.WithContext(ctx).Save(video).Error
}

func (r *gormRepository) Delete(ctx context.Context, userID, videoID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND created_by = ?", videoID, userID).
		Delete(&Video{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrVideoNotFound
	}
	return nil
}

func (r *gormRepository) IDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).Model(&Video{}).
		Where("created_by = ?", userID).
		Order("created_at DESC").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
