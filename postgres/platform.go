package postgres

import (
	"context"
	"errors"

	"moviecatalog/movie"
	"moviecatalog/platform"
	"moviecatalog/sortfield"

	"gorm.io/gorm"
)

// StreamingPlatformModel represents the database model for streaming platforms
type StreamingPlatformModel struct {
	StreamingPlatformID int64  `gorm:"column:streaming_platform_id;primaryKey"`
	StreamingPlatform   string `gorm:"column:streaming_platform;not null"`
}

func (StreamingPlatformModel) TableName() string {
	return "streaming_platform"
}

// PlatformRepository implements platform.Repository interface
type PlatformRepository struct {
	db *gorm.DB
}

func NewPlatformRepository(db *gorm.DB) *PlatformRepository {
	return &PlatformRepository{db: db}
}

func (r *PlatformRepository) AllPlatforms(ctx context.Context) ([]platform.StreamingPlatform, error) {
	var models []StreamingPlatformModel
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, err
	}
	return toDomainPlatforms(models), nil
}

func (r *PlatformRepository) AllPlatformsSorted(ctx context.Context, field platform.SortField) ([]platform.StreamingPlatform, error) {
	if !platform.SortFields.Contains(field) {
		return nil, sortfield.ErrInvalidSortField
	}

	var models []StreamingPlatformModel
	if err := r.db.WithContext(ctx).Order(orderByColumn(string(field))).Find(&models).Error; err != nil {
		return nil, err
	}
	return toDomainPlatforms(models), nil
}

func (r *PlatformRepository) GetByID(ctx context.Context, id int64) (platform.StreamingPlatform, error) {
	var model StreamingPlatformModel

	err := r.db.WithContext(ctx).Where("streaming_platform_id = ?", id).Take(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return platform.StreamingPlatform{}, platform.ErrPlatformNotFound
		}
		return platform.StreamingPlatform{}, err
	}

	return toDomainPlatform(model), nil
}

func (r *PlatformRepository) MoviesByPlatform(ctx context.Context, id int64) ([]movie.Movie, error) {
	var models []MovieModel
	err := r.db.WithContext(ctx).
		Joins("JOIN movie_to_streaming ms ON ms.movie_id = movie.movie_id").
		Where("ms.streaming_platform_id = ?", id).
		Order("movie.movie_id").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return toDomainMovies(models), nil
}

func (r *PlatformRepository) PlatformsByMovie(ctx context.Context, movieID int64) ([]platform.StreamingPlatform, error) {
	var models []StreamingPlatformModel
	err := r.db.WithContext(ctx).
		Joins("JOIN movie_to_streaming ms ON ms.streaming_platform_id = streaming_platform.streaming_platform_id").
		Where("ms.movie_id = ?", movieID).
		Order("streaming_platform.streaming_platform_id").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return toDomainPlatforms(models), nil
}

func (r *PlatformRepository) CreatePlatform(ctx context.Context, p platform.StreamingPlatform) (int64, error) {
	model := StreamingPlatformModel{StreamingPlatform: p.StreamingPlatform}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return 0, err
	}
	return model.StreamingPlatformID, nil
}

func (r *PlatformRepository) UpdatePlatform(ctx context.Context, p platform.StreamingPlatform) error {
	result := r.db.WithContext(ctx).Model(&StreamingPlatformModel{}).
		Where("streaming_platform_id = ?", p.StreamingPlatformID).
		Update("streaming_platform", p.StreamingPlatform)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return platform.ErrPlatformNotFound
	}
	return nil
}

func toDomainPlatform(model StreamingPlatformModel) platform.StreamingPlatform {
	return platform.StreamingPlatform{
		StreamingPlatformID: model.StreamingPlatformID,
		StreamingPlatform:   model.StreamingPlatform,
	}
}

func toDomainPlatforms(models []StreamingPlatformModel) []platform.StreamingPlatform {
	platforms := make([]platform.StreamingPlatform, len(models))
	for i, model := range models {
		platforms[i] = toDomainPlatform(model)
	}
	return platforms
}
