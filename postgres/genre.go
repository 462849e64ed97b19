package postgres

import (
	"context"
	"errors"

	"moviecatalog/genre"
	"moviecatalog/movie"
	"moviecatalog/sortfield"

	"gorm.io/gorm"
)

// GenreModel represents the database model for genres
type GenreModel struct {
	GenreID int64  `gorm:"column:genre_id;primaryKey"`
	Genre   string `gorm:"column:genre;not null;unique"`
}

func (GenreModel) TableName() string {
	return "genre"
}

// GenreRepository implements genre.Repository interface
type GenreRepository struct {
	db *gorm.DB
}

func NewGenreRepository(db *gorm.DB) *GenreRepository {
	return &GenreRepository{db: db}
}

func (r *GenreRepository) AllGenres(ctx context.Context) ([]genre.Genre, error) {
	var models []GenreModel
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, err
	}
	return toDomainGenres(models), nil
}

func (r *GenreRepository) AllGenresSorted(ctx context.Context, field genre.SortField) ([]genre.Genre, error) {
	if !genre.SortFields.Contains(field) {
		return nil, sortfield.ErrInvalidSortField
	}

	var models []GenreModel
	if err := r.db.WithContext(ctx).Order(orderByColumn(string(field))).Find(&models).Error; err != nil {
		return nil, err
	}
	return toDomainGenres(models), nil
}

func (r *GenreRepository) GetByID(ctx context.Context, id int64) (genre.Genre, error) {
	return r.take(ctx, "genre_id = ?", id)
}

func (r *GenreRepository) GetByName(ctx context.Context, name string) (genre.Genre, error) {
	return r.take(ctx, "genre = ?", name)
}

func (r *GenreRepository) take(ctx context.Context, query string, arg interface{}) (genre.Genre, error) {
	var model GenreModel

	err := r.db.WithContext(ctx).Where(query, arg).Take(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return genre.Genre{}, genre.ErrGenreNotFound
		}
		return genre.Genre{}, err
	}

	return toDomainGenre(model), nil
}

type movieSummaryRow struct {
	MovieID int64
	Title   string
}

// MoviesByGenre returns the id and title of each movie in the genre.
func (r *GenreRepository) MoviesByGenre(ctx context.Context, id int64) ([]movie.Summary, error) {
	var rows []movieSummaryRow
	err := r.db.WithContext(ctx).
		Model(&MovieModel{}).
		Select("movie.movie_id", "movie.title").
		Joins("JOIN movie_to_genre mg ON mg.movie_id = movie.movie_id").
		Where("mg.genre_id = ?", id).
		Order("movie.movie_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	summaries := make([]movie.Summary, len(rows))
	for i, row := range rows {
		summaries[i] = movie.Summary{MovieID: row.MovieID, Title: row.Title}
	}
	return summaries, nil
}

func (r *GenreRepository) GenresByMovie(ctx context.Context, movieID int64) ([]genre.Genre, error) {
	var models []GenreModel
	err := r.db.WithContext(ctx).
		Joins("JOIN movie_to_genre mg ON mg.genre_id = genre.genre_id").
		Where("mg.movie_id = ?", movieID).
		Order("genre.genre_id").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return toDomainGenres(models), nil
}

func (r *GenreRepository) CreateGenre(ctx context.Context, g genre.Genre) (int64, error) {
	model := GenreModel{Genre: g.Genre}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if isUniqueViolation(err) {
			return 0, genre.ErrGenreExists
		}
		return 0, err
	}
	return model.GenreID, nil
}

func (r *GenreRepository) UpdateGenre(ctx context.Context, g genre.Genre) error {
	result := r.db.WithContext(ctx).Model(&GenreModel{}).Where("genre_id = ?", g.GenreID).Update("genre", g.Genre)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return genre.ErrGenreExists
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return genre.ErrGenreNotFound
	}
	return nil
}

func toDomainGenre(model GenreModel) genre.Genre {
	return genre.Genre{
		GenreID: model.GenreID,
		Genre:   model.Genre,
	}
}

func toDomainGenres(models []GenreModel) []genre.Genre {
	genres := make([]genre.Genre, len(models))
	for i, model := range models {
		genres[i] = toDomainGenre(model)
	}
	return genres
}
