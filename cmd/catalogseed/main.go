// Command catalogseed copies titles from the upstream movies API into the
// movie table, linking each one to its genre row.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"moviecatalog/catalog"
	"moviecatalog/genre"
	"moviecatalog/movie"
	"moviecatalog/pkg/config"
	"moviecatalog/pkg/sentry"
	"moviecatalog/postgres"

	sentrygo "github.com/getsentry/sentry-go"
	_ "github.com/lib/pq"
)

func main() {
	var (
		only  string
		limit int
	)

	flag.StringVar(&only, "genre", "", "Seed a single genre (default: all)")
	flag.IntVar(&limit, "limit", 0, "Limit number of movies per genre (0 = all)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("load config failed", "error", err)
		os.Exit(1)
	}

	if err := sentrygo.Init(sentrygo.ClientOptions{Dsn: cfg.SentryDSN, Environment: cfg.AppEnv}); err != nil {
		slog.Error("cannot init sentry", "error", err)
		os.Exit(1)
	}

	genres := catalog.Genres
	if only != "" {
		if !catalog.IsGenre(only) {
			slog.Error("unknown genre", "genre", only, "allowed", catalog.Genres)
			os.Exit(1)
		}
		genres = []string{only}
	}

	db, err := postgres.NewConnection(postgres.Options{
		DBName:   cfg.DB.Name,
		DBUser:   cfg.DB.User,
		Password: cfg.DB.Pass,
		Host:     cfg.DB.Host,
		Port:     fmt.Sprintf("%d", cfg.DB.Port),
		SSLMode:  cfg.DB.EnableSSL,
	})
	if err != nil {
		slog.Error("cannot open postgres connection", "error", err)
		os.Exit(1)
	}

	s := seeder{
		fetcher: catalog.NewClient(catalog.ClientOptions{
			BaseURL:   cfg.Catalog.BaseURL,
			Timeout:   cfg.Catalog.Timeout,
			RateLimit: cfg.Catalog.RateLimit,
		}),
		genres: genre.NewUsecase(postgres.NewGenreRepository(db)),
		movies: movie.NewUsecase(postgres.NewMovieRepository(db)),
		limit:  limit,
	}

	total := 0
	for _, g := range genres {
		count, err := s.seedGenre(context.Background(), g)
		if err != nil {
			slog.Error("seed failed", "genre", g, "error", err)
			sentry.WithTags(map[string]string{"genre": g}).Fatal(err)
			os.Exit(1)
		}
		slog.Info("seeded genre", "genre", g, "rows", count)
		total += count
	}

	slog.Info("import completed", "rows", total)
}

type seeder struct {
	fetcher catalog.Fetcher
	genres  genre.Service
	movies  movie.Service
	limit   int
}

// seedGenre inserts the genre's upstream titles that are not linked to it yet.
// Running it twice adds nothing the second time.
func (s seeder) seedGenre(ctx context.Context, name string) (int, error) {
	upstream, err := s.fetcher.FetchGenre(ctx, name)
	if err != nil {
		return 0, err
	}

	genreID, err := s.ensureGenre(ctx, name)
	if err != nil {
		return 0, err
	}

	existing, err := s.genres.ListGenreMovies(ctx, genreID)
	if err != nil {
		return 0, err
	}
	seen := make(map[string]bool, len(existing))
	for _, m := range existing {
		seen[m.Title] = true
	}

	count := 0
	for _, m := range upstream {
		if s.limit > 0 && count >= s.limit {
			break
		}
		if m.Title == "" || seen[m.Title] {
			continue
		}

		if _, err := s.movies.AddMovie(ctx, movie.Movie{Title: m.Title}, movie.Links{GenreID: &genreID}); err != nil {
			return count, fmt.Errorf("add %q: %w", m.Title, err)
		}
		seen[m.Title] = true
		count++
	}

	return count, nil
}

func (s seeder) ensureGenre(ctx context.Context, name string) (int64, error) {
	g, err := s.genres.FindGenreByName(ctx, name)
	if err == nil {
		return g.GenreID, nil
	}
	if !errors.Is(err, genre.ErrGenreNotFound) {
		return 0, err
	}
	return s.genres.AddGenre(ctx, genre.Genre{Genre: name})
}
