package actor

import (
	"context"

	"moviecatalog/movie"
)

type Service interface {
	ListActors(ctx context.Context) ([]Actor, error)
	ListActorsSorted(ctx context.Context, field string) ([]Actor, error)
	GetActor(ctx context.Context, id int64) (Actor, error)
	ListActorMovies(ctx context.Context, id int64) ([]movie.Movie, error)
	ListMovieActors(ctx context.Context, movieID int64) ([]Actor, error)
	AddActor(ctx context.Context, a Actor) (int64, error)
	UpdateActor(ctx context.Context, a Actor) error
}

type Repository interface {
	AllActors(ctx context.Context) ([]Actor, error)
	AllActorsSorted(ctx context.Context, field SortField) ([]Actor, error)
	GetByID(ctx context.Context, id int64) (Actor, error)
	MoviesByActor(ctx context.Context, id int64) ([]movie.Movie, error)
	ActorsByMovie(ctx context.Context, movieID int64) ([]Actor, error)
	CreateActor(ctx context.Context, a Actor) (int64, error)
	UpdateActor(ctx context.Context, a Actor) error
}

type Usecase struct {
	r Repository
}

func NewUsecase(r Repository) *Usecase {
	return &Usecase{r: r}
}

func (uc *Usecase) ListActors(ctx context.Context) ([]Actor, error) {
	return uc.r.AllActors(ctx)
}

// ListActorsSorted orders actors by field, which must name a column in SortFields.
func (uc *Usecase) ListActorsSorted(ctx context.Context, field string) ([]Actor, error) {
	f, err := SortFields.Parse(field)
	if err != nil {
		return nil, err
	}
	return uc.r.AllActorsSorted(ctx, f)
}

func (uc *Usecase) GetActor(ctx context.Context, id int64) (Actor, error) {
	return uc.r.GetByID(ctx, id)
}

func (uc *Usecase) ListActorMovies(ctx context.Context, id int64) ([]movie.Movie, error) {
	return uc.r.MoviesByActor(ctx, id)
}

func (uc *Usecase) ListMovieActors(ctx context.Context, movieID int64) ([]Actor, error) {
	return uc.r.ActorsByMovie(ctx, movieID)
}

func (uc *Usecase) AddActor(ctx context.Context, a Actor) (int64, error) {
	if err := a.Validate(); err != nil {
		return 0, err
	}
	return uc.r.CreateActor(ctx, a)
}

func (uc *Usecase) UpdateActor(ctx context.Context, a Actor) error {
	if err := a.Validate(); err != nil {
		return err
	}
	return uc.r.UpdateActor(ctx, a)
}
