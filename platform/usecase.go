package platform

import (
	"context"

	"moviecatalog/movie"
)

type Service interface {
	ListPlatforms(ctx context.Context) ([]StreamingPlatform, error)
	ListPlatformsSorted(ctx context.Context, field string) ([]StreamingPlatform, error)
	GetPlatform(ctx context.Context, id int64) (StreamingPlatform, error)
	ListPlatformMovies(ctx context.Context, id int64) ([]movie.Movie, error)
	ListMoviePlatforms(ctx context.Context, movieID int64) ([]StreamingPlatform, error)
	AddPlatform(ctx context.Context, p StreamingPlatform) (int64, error)
	UpdatePlatform(ctx context.Context, p StreamingPlatform) error
}

type Repository interface {
	AllPlatforms(ctx context.Context) ([]StreamingPlatform, error)
	AllPlatformsSorted(ctx context.Context, field SortField) ([]StreamingPlatform, error)
	GetByID(ctx context.Context, id int64) (StreamingPlatform, error)
	MoviesByPlatform(ctx context.Context, id int64) ([]movie.Movie, error)
	PlatformsByMovie(ctx context.Context, movieID int64) ([]StreamingPlatform, error)
	CreatePlatform(ctx context.Context, p StreamingPlatform) (int64, error)
	UpdatePlatform(ctx context.Context, p StreamingPlatform) error
}

type Usecase struct {
	r Repository
}

func NewUsecase(r Repository) *Usecase {
	return &Usecase{r: r}
}

func (uc *Usecase) ListPlatforms(ctx context.Context) ([]StreamingPlatform, error) {
	return uc.r.AllPlatforms(ctx)
}

func (uc *Usecase) ListPlatformsSorted(ctx context.Context, field string) ([]StreamingPlatform, error) {
	f, err := SortFields.Parse(field)
	if err != nil {
		return nil, err
	}
	return uc.r.AllPlatformsSorted(ctx, f)
}

func (uc *Usecase) GetPlatform(ctx context.Context, id int64) (StreamingPlatform, error) {
	return uc.r.GetByID(ctx, id)
}

func (uc *Usecase) ListPlatformMovies(ctx context.Context, id int64) ([]movie.Movie, error) {
	return uc.r.MoviesByPlatform(ctx, id)
}

func (uc *Usecase) ListMoviePlatforms(ctx context.Context, movieID int64) ([]StreamingPlatform, error) {
	return uc.r.PlatformsByMovie(ctx, movieID)
}

func (uc *Usecase) AddPlatform(ctx context.Context, p StreamingPlatform) (int64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	return uc.r.CreatePlatform(ctx, p)
}

func (uc *Usecase) UpdatePlatform(ctx context.Context, p StreamingPlatform) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return uc.r.UpdatePlatform(ctx, p)
}
