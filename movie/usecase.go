package movie

import (
	"context"
	"strings"
)

type Service interface {
	ListMovies(ctx context.Context) ([]Movie, error)
	ListMoviesSorted(ctx context.Context, field string) ([]Movie, error)
	GetMovie(ctx context.Context, id int64) (Movie, error)
	Search(ctx context.Context, query string, limit int) ([]Movie, error)
	AddMovie(ctx context.Context, m Movie, l Links) (int64, error)
	UpdateMovie(ctx context.Context, m Movie, l Links) error
}

type Repository interface {
	AllMovies(ctx context.Context) ([]Movie, error)
	AllMoviesSorted(ctx context.Context, field SortField) ([]Movie, error)
	GetByID(ctx context.Context, id int64) (Movie, error)
	Search(ctx context.Context, query string, limit int) ([]Movie, error)
	// CreateMovie and UpdateMovie write the row and its links atomically.
	CreateMovie(ctx context.Context, m Movie, l Links) (int64, error)
	UpdateMovie(ctx context.Context, m Movie, l Links) error
}

type Usecase struct {
	r Repository
}

func NewUsecase(r Repository) *Usecase {
	return &Usecase{r: r}
}

func (uc *Usecase) ListMovies(ctx context.Context) ([]Movie, error) {
	return uc.r.AllMovies(ctx)
}

func (uc *Usecase) ListMoviesSorted(ctx context.Context, field string) ([]Movie, error) {
	f, err := SortFields.Parse(field)
	if err != nil {
		return nil, err
	}
	return uc.r.AllMoviesSorted(ctx, f)
}

func (uc *Usecase) GetMovie(ctx context.Context, id int64) (Movie, error) {
	return uc.r.GetByID(ctx, id)
}

func (uc *Usecase) Search(ctx context.Context, query string, limit int) ([]Movie, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrInvalidQuery
	}
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return uc.r.Search(ctx, query, limit)
}

func (uc *Usecase) AddMovie(ctx context.Context, m Movie, l Links) (int64, error) {
	if err := m.Validate(); err != nil {
		return 0, err
	}
	return uc.r.CreateMovie(ctx, m, l)
}

func (uc *Usecase) UpdateMovie(ctx context.Context, m Movie, l Links) error {
	if err := m.Validate(); err != nil {
		return err
	}
	return uc.r.UpdateMovie(ctx, m, l)
}
