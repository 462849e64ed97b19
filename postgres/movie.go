package postgres

import (
	"context"
	"errors"

	"moviecatalog/movie"
	"moviecatalog/sortfield"

	"gorm.io/gorm"
)

// MovieModel represents the database model for movies.
// The title search index is an expression index created in the migration.
type MovieModel struct {
	MovieID      int64  `gorm:"column:movie_id;primaryKey"`
	Title        string `gorm:"column:title;not null"`
	ProductionID *int64 `gorm:"column:production_id"`
	YrReleased   *int   `gorm:"column:yr_released"`
}

// TableName specifies the table name for GORM
func (MovieModel) TableName() string {
	return "movie"
}

type MovieGenreModel struct {
	MovieID int64 `gorm:"column:movie_id;primaryKey"`
	GenreID int64 `gorm:"column:genre_id;primaryKey"`
}

func (MovieGenreModel) TableName() string {
	return "movie_to_genre"
}

type MovieDirectorModel struct {
	MovieID    int64 `gorm:"column:movie_id;primaryKey"`
	DirectorID int64 `gorm:"column:director_id;primaryKey"`
}

func (MovieDirectorModel) TableName() string {
	return "movie_to_director"
}

// MovieRepository implements movie.Repository interface
// and provides PostgreSQL full-text search over titles.
type MovieRepository struct {
	db *gorm.DB
}

// NewMovieRepository creates a new movie repository
func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

func (r *MovieRepository) AllMovies(ctx context.Context) ([]movie.Movie, error) {
	var models []MovieModel
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, err
	}
	return toDomainMovies(models), nil
}

func (r *MovieRepository) AllMoviesSorted(ctx context.Context, field movie.SortField) ([]movie.Movie, error) {
	if !movie.SortFields.Contains(field) {
		return nil, sortfield.ErrInvalidSortField
	}

	var models []MovieModel
	if err := r.db.WithContext(ctx).Order(orderByColumn(string(field))).Find(&models).Error; err != nil {
		return nil, err
	}
	return toDomainMovies(models), nil
}

func (r *MovieRepository) GetByID(ctx context.Context, id int64) (movie.Movie, error) {
	var model MovieModel

	err := r.db.WithContext(ctx).Where("movie_id = ?", id).Take(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return movie.Movie{}, movie.ErrMovieNotFound
		}
		return movie.Movie{}, err
	}

	return toDomainMovie(model), nil
}

func (r *MovieRepository) Search(ctx context.Context, query string, limit int) ([]movie.Movie, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	const sql = `
SELECT movie_id, title, production_id, yr_released
FROM movie
WHERE to_tsvector('english', title) @@ websearch_to_tsquery('english', ?)
ORDER BY ts_rank(to_tsvector('english', title), websearch_to_tsquery('english', ?)) DESC, movie_id
LIMIT ?`

	var models []MovieModel
	if err := r.db.WithContext(ctx).Raw(sql, query, query, limit).Scan(&models).Error; err != nil {
		return nil, err
	}

	return toDomainMovies(models), nil
}

// CreateMovie inserts the movie row and its links in one transaction.
func (r *MovieRepository) CreateMovie(ctx context.Context, m movie.Movie, l movie.Links) (int64, error) {
	model := MovieModel{
		Title:        m.Title,
		ProductionID: m.ProductionID,
		YrReleased:   m.YrReleased,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&model).Error; err != nil {
			return err
		}
		return replaceLinks(tx, model.MovieID, l)
	})
	if err != nil {
		return 0, movieWriteError(err)
	}

	return model.MovieID, nil
}

// UpdateMovie rewrites the movie row and replaces any links set in l. Nothing
// is committed if the movie is missing or a referenced row does not exist.
func (r *MovieRepository) UpdateMovie(ctx context.Context, m movie.Movie, l movie.Links) error {
	fields := map[string]interface{}{"title": m.Title}
	if m.ProductionID != nil {
		fields["production_id"] = *m.ProductionID
	}
	if m.YrReleased != nil {
		fields["yr_released"] = *m.YrReleased
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&MovieModel{}).Where("movie_id = ?", m.MovieID).Updates(fields)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return movie.ErrMovieNotFound
		}
		return replaceLinks(tx, m.MovieID, l)
	})
	return movieWriteError(err)
}

func replaceLinks(tx *gorm.DB, movieID int64, l movie.Links) error {
	if l.GenreID != nil {
		if err := tx.Where("movie_id = ?", movieID).Delete(&MovieGenreModel{}).Error; err != nil {
			return err
		}
		if err := tx.Create(&MovieGenreModel{MovieID: movieID, GenreID: *l.GenreID}).Error; err != nil {
			return err
		}
	}

	if l.DirectorID != nil {
		if err := tx.Where("movie_id = ?", movieID).Delete(&MovieDirectorModel{}).Error; err != nil {
			return err
		}
		if err := tx.Create(&MovieDirectorModel{MovieID: movieID, DirectorID: *l.DirectorID}).Error; err != nil {
			return err
		}
	}

	return nil
}

func movieWriteError(err error) error {
	if isForeignKeyViolation(err) {
		return movie.ErrInvalidReference
	}
	return err
}

func toDomainMovie(model MovieModel) movie.Movie {
	return movie.Movie{
		MovieID:      model.MovieID,
		Title:        model.Title,
		ProductionID: model.ProductionID,
		YrReleased:   model.YrReleased,
	}
}

func toDomainMovies(models []MovieModel) []movie.Movie {
	movies := make([]movie.Movie, len(models))
	for i, model := range models {
		movies[i] = toDomainMovie(model)
	}
	return movies
}
