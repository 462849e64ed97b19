package postgres

import (
	"context"
	"errors"

	"moviecatalog/director"
	"moviecatalog/movie"
	"moviecatalog/sortfield"

	"gorm.io/gorm"
)

// DirectorModel represents the database model for directors
type DirectorModel struct {
	DirectorID int64  `gorm:"column:director_id;primaryKey"`
	FirstName  string `gorm:"column:first_name;not null"`
	LastName   string `gorm:"column:last_name;not null"`
}

func (DirectorModel) TableName() string {
	return "director"
}

// DirectorRepository implements director.Repository interface
type DirectorRepository struct {
	db *gorm.DB
}

func NewDirectorRepository(db *gorm.DB) *DirectorRepository {
	return &DirectorRepository{db: db}
}

func (r *DirectorRepository) AllDirectors(ctx context.Context) ([]director.Director, error) {
	var models []DirectorModel
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, err
	}
	return toDomainDirectors(models), nil
}

func (r *DirectorRepository) AllDirectorsSorted(ctx context.Context, field director.SortField) ([]director.Director, error) {
	if !director.SortFields.Contains(field) {
		return nil, sortfield.ErrInvalidSortField
	}

	var models []DirectorModel
	if err := r.db.WithContext(ctx).Order(orderByColumn(string(field))).Find(&models).Error; err != nil {
		return nil, err
	}
	return toDomainDirectors(models), nil
}

func (r *DirectorRepository) GetByID(ctx context.Context, id int64) (director.Director, error) {
	var model DirectorModel

	err := r.db.WithContext(ctx).Where("director_id = ?", id).Take(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return director.Director{}, director.ErrDirectorNotFound
		}
		return director.Director{}, err
	}

	return toDomainDirector(model), nil
}

func (r *DirectorRepository) MoviesByDirector(ctx context.Context, id int64) ([]movie.Movie, error) {
	var models []MovieModel
	err := r.db.WithContext(ctx).
		Joins("JOIN movie_to_director md ON md.movie_id = movie.movie_id").
		Where("md.director_id = ?", id).
		Order("movie.movie_id").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return toDomainMovies(models), nil
}

func (r *DirectorRepository) DirectorsByMovie(ctx context.Context, movieID int64) ([]director.Director, error) {
	var models []DirectorModel
	err := r.db.WithContext(ctx).
		Joins("JOIN movie_to_director md ON md.director_id = director.director_id").
		Where("md.movie_id = ?", movieID).
		Order("director.director_id").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return toDomainDirectors(models), nil
}

func (r *DirectorRepository) CreateDirector(ctx context.Context, d director.Director) (int64, error) {
	model := DirectorModel{
		FirstName: d.FirstName,
		LastName:  d.LastName,
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return 0, err
	}
	return model.DirectorID, nil
}

func (r *DirectorRepository) UpdateDirector(ctx context.Context, d director.Director) error {
	result := r.db.WithContext(ctx).Model(&DirectorModel{}).Where("director_id = ?", d.DirectorID).Updates(map[string]interface{}{
		"first_name": d.FirstName,
		"last_name":  d.LastName,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return director.ErrDirectorNotFound
	}
	return nil
}

func toDomainDirector(model DirectorModel) director.Director {
	return director.Director{
		DirectorID: model.DirectorID,
		FirstName:  model.FirstName,
		LastName:   model.LastName,
	}
}

func toDomainDirectors(models []DirectorModel) []director.Director {
	directors := make([]director.Director, len(models))
	for i, model := range models {
		directors[i] = toDomainDirector(model)
	}
	return directors
}
