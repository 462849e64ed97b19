package production

import (
	"context"

	"moviecatalog/movie"
)

type Service interface {
	ListProductions(ctx context.Context) ([]Production, error)
	ListProductionsSorted(ctx context.Context, field string) ([]Production, error)
	GetProduction(ctx context.Context, id int64) (Production, error)
	ListProductionMovies(ctx context.Context, id int64) ([]movie.Movie, error)
	AddProduction(ctx context.Context, p Production) (int64, error)
	UpdateProduction(ctx context.Context, p Production) error
}

type Repository interface {
	AllProductions(ctx context.Context) ([]Production, error)
	AllProductionsSorted(ctx context.Context, field SortField) ([]Production, error)
	GetByID(ctx context.Context, id int64) (Production, error)
	MoviesByProduction(ctx context.Context, id int64) ([]movie.Movie, error)
	CreateProduction(ctx context.Context, p Production) (int64, error)
	UpdateProduction(ctx context.Context, p Production) error
}

type Usecase struct {
	r Repository
}

func NewUsecase(r Repository) *Usecase {
	return &Usecase{r: r}
}

func (uc *Usecase) ListProductions(ctx context.Context) ([]Production, error) {
	return uc.r.AllProductions(ctx)
}

func (uc *Usecase) ListProductionsSorted(ctx context.Context, field string) ([]Production, error) {
	f, err := SortFields.Parse(field)
	if err != nil {
		return nil, err
	}
	return uc.r.AllProductionsSorted(ctx, f)
}

func (uc *Usecase) GetProduction(ctx context.Context, id int64) (Production, error) {
	return uc.r.GetByID(ctx, id)
}

func (uc *Usecase) ListProductionMovies(ctx context.Context, id int64) ([]movie.Movie, error) {
	return uc.r.MoviesByProduction(ctx, id)
}

func (uc *Usecase) AddProduction(ctx context.Context, p Production) (int64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	return uc.r.CreateProduction(ctx, p)
}

func (uc *Usecase) UpdateProduction(ctx context.Context, p Production) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return uc.r.UpdateProduction(ctx, p)
}
