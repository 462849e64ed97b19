package catalog

import (
	"context"

	"moviecatalog/pagination"

	"golang.org/x/sync/errgroup"
)

type Service interface {
	All(ctx context.Context, page int) (pagination.Page[Movie], error)
	ByGenre(ctx context.Context, genre string, page int) (pagination.Page[Movie], error)
	Find(ctx context.Context, genre, id string) (Movie, error)
}

type Usecase struct {
	f        Fetcher
	pageSize int
}

func NewUsecase(f Fetcher) *Usecase {
	return &Usecase{f: f, pageSize: pagination.DefaultPageSize}
}

// All fetches every genre and pages through the concatenation, which keeps
// the order of Genres.
func (uc *Usecase) All(ctx context.Context, page int) (pagination.Page[Movie], error) {
	lists := make([][]Movie, len(Genres))

	g, gctx := errgroup.WithContext(ctx)
	for i, genre := range Genres {
		i, genre := i, genre
		g.Go(func() error {
			movies, err := uc.f.FetchGenre(gctx, genre)
			if err != nil {
				return err
			}
			lists[i] = movies
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return pagination.Page[Movie]{}, err
	}

	var all []Movie
	for _, movies := range lists {
		all = append(all, movies...)
	}
	return pagination.Paginate(all, page, uc.pageSize), nil
}

func (uc *Usecase) ByGenre(ctx context.Context, genre string, page int) (pagination.Page[Movie], error) {
	if !IsGenre(genre) {
		return pagination.Page[Movie]{}, ErrGenreNotFound
	}

	movies, err := uc.f.FetchGenre(ctx, genre)
	if err != nil {
		return pagination.Page[Movie]{}, err
	}
	return pagination.Paginate(movies, page, uc.pageSize), nil
}

func (uc *Usecase) Find(ctx context.Context, genre, id string) (Movie, error) {
	if !IsGenre(genre) {
		return Movie{}, ErrUnknownGenre
	}

	movies, err := uc.f.FetchGenre(ctx, genre)
	if err != nil {
		return Movie{}, err
	}
	for _, m := range movies {
		if m.MatchesID(id) {
			return m, nil
		}
	}
	return Movie{}, ErrMovieNotFound
}
