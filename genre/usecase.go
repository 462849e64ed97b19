package genre

import (
	"context"
	"strings"

	"moviecatalog/movie"
)

type Service interface {
	ListGenres(ctx context.Context) ([]Genre, error)
	ListGenresSorted(ctx context.Context, field string) ([]Genre, error)
	GetGenre(ctx context.Context, id int64) (Genre, error)
	FindGenreByName(ctx context.Context, name string) (Genre, error)
	ListGenreMovies(ctx context.Context, id int64) ([]movie.Summary, error)
	ListMovieGenres(ctx context.Context, movieID int64) ([]Genre, error)
	AddGenre(ctx context.Context, g Genre) (int64, error)
	UpdateGenre(ctx context.Context, g Genre) error
}

type Repository interface {
	AllGenres(ctx context.Context) ([]Genre, error)
	AllGenresSorted(ctx context.Context, field SortField) ([]Genre, error)
	GetByID(ctx context.Context, id int64) (Genre, error)
	GetByName(ctx context.Context, name string) (Genre, error)
	MoviesByGenre(ctx context.Context, id int64) ([]movie.Summary, error)
	GenresByMovie(ctx context.Context, movieID int64) ([]Genre, error)
	CreateGenre(ctx context.Context, g Genre) (int64, error)
	UpdateGenre(ctx context.Context, g Genre) error
}

type Usecase struct {
	r Repository
}

func NewUsecase(r Repository) *Usecase {
	return &Usecase{r: r}
}

func (uc *Usecase) ListGenres(ctx context.Context) ([]Genre, error) {
	return uc.r.AllGenres(ctx)
}

func (uc *Usecase) ListGenresSorted(ctx context.Context, field string) ([]Genre, error) {
	f, err := SortFields.Parse(field)
	if err != nil {
		return nil, err
	}
	return uc.r.AllGenresSorted(ctx, f)
}

func (uc *Usecase) GetGenre(ctx context.Context, id int64) (Genre, error) {
	return uc.r.GetByID(ctx, id)
}

func (uc *Usecase) FindGenreByName(ctx context.Context, name string) (Genre, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Genre{}, ErrNameRequired
	}
	return uc.r.GetByName(ctx, name)
}

// ListGenreMovies returns only the id and title of each movie in the genre.
func (uc *Usecase) ListGenreMovies(ctx context.Context, id int64) ([]movie.Summary, error) {
	return uc.r.MoviesByGenre(ctx, id)
}

func (uc *Usecase) ListMovieGenres(ctx context.Context, movieID int64) ([]Genre, error) {
	return uc.r.GenresByMovie(ctx, movieID)
}

func (uc *Usecase) AddGenre(ctx context.Context, g Genre) (int64, error) {
	if err := g.Validate(); err != nil {
		return 0, err
	}
	return uc.r.CreateGenre(ctx, g)
}

func (uc *Usecase) UpdateGenre(ctx context.Context, g Genre) error {
	if err := g.Validate(); err != nil {
		return err
	}
	return uc.r.UpdateGenre(ctx, g)
}
