package director

import (
	"context"

	"moviecatalog/movie"
)

type Service interface {
	ListDirectors(ctx context.Context) ([]Director, error)
	ListDirectorsSorted(ctx context.Context, field string) ([]Director, error)
	GetDirector(ctx context.Context, id int64) (Director, error)
	ListDirectorMovies(ctx context.Context, id int64) ([]movie.Movie, error)
	ListMovieDirectors(ctx context.Context, movieID int64) ([]Director, error)
	AddDirector(ctx context.Context, d Director) (int64, error)
	UpdateDirector(ctx context.Context, d Director) error
}

type Repository interface {
	AllDirectors(ctx context.Context) ([]Director, error)
	AllDirectorsSorted(ctx context.Context, field SortField) ([]Director, error)
	GetByID(ctx context.Context, id int64) (Director, error)
	MoviesByDirector(ctx context.Context, id int64) ([]movie.Movie, error)
	DirectorsByMovie(ctx context.Context, movieID int64) ([]Director, error)
	CreateDirector(ctx context.Context, d Director) (int64, error)
	UpdateDirector(ctx context.Context, d Director) error
}

type Usecase struct {
	r Repository
}

func NewUsecase(r Repository) *Usecase {
	return &Usecase{r: r}
}

func (uc *Usecase) ListDirectors(ctx context.Context) ([]Director, error) {
	return uc.r.AllDirectors(ctx)
}

func (uc *Usecase) ListDirectorsSorted(ctx context.Context, field string) ([]Director, error) {
	f, err := SortFields.Parse(field)
	if err != nil {
		return nil, err
	}
	return uc.r.AllDirectorsSorted(ctx, f)
}

func (uc *Usecase) GetDirector(ctx context.Context, id int64) (Director, error) {
	return uc.r.GetByID(ctx, id)
}

func (uc *Usecase) ListDirectorMovies(ctx context.Context, id int64) ([]movie.Movie, error) {
	return uc.r.MoviesByDirector(ctx, id)
}

func (uc *Usecase) ListMovieDirectors(ctx context.Context, movieID int64) ([]Director, error) {
	return uc.r.DirectorsByMovie(ctx, movieID)
}

func (uc *Usecase) AddDirector(ctx context.Context, d Director) (int64, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}
	return uc.r.CreateDirector(ctx, d)
}

func (uc *Usecase) UpdateDirector(ctx context.Context, d Director) error {
	if err := d.Validate(); err != nil {
		return err
	}
	return uc.r.UpdateDirector(ctx, d)
}
