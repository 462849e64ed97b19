package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"moviecatalog/actor"
	"moviecatalog/catalog"
	"moviecatalog/director"
	"moviecatalog/genre"
	"moviecatalog/httpserver"
	"moviecatalog/movie"
	"moviecatalog/pkg/config"
	"moviecatalog/pkg/sentry"
	"moviecatalog/platform"
	"moviecatalog/postgres"
	"moviecatalog/production"
	"moviecatalog/redis"

	sentrygo "github.com/getsentry/sentry-go"
	_ "github.com/lib/pq"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Cannot load config", "error", err)
		os.Exit(1)
	}

	err = sentrygo.Init(sentrygo.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.AppEnv,
		AttachStacktrace: true,
	})
	if err != nil {
		slog.Error("Cannot init sentry", "error", err)
		os.Exit(1)
	}
	defer sentrygo.Flush(sentry.FlushTime)

	db, err := postgres.NewConnection(postgres.Options{
		DBName:   cfg.DB.Name,
		DBUser:   cfg.DB.User,
		Password: cfg.DB.Pass,
		Host:     cfg.DB.Host,
		Port:     fmt.Sprintf("%d", cfg.DB.Port),
		SSLMode:  cfg.DB.EnableSSL,
	})
	if err != nil {
		slog.Error("Cannot open postgres connection", "error", err)
		os.Exit(1)
	}

	fetcher, err := newCatalogFetcher(cfg, logger)
	if err != nil {
		slog.Error("Cannot set up movie catalog", "error", err)
		os.Exit(1)
	}

	server := httpserver.Default(cfg)
	server.Logger = logger
	server.ActorService = actor.NewUsecase(postgres.NewActorRepository(db))
	server.DirectorService = director.NewUsecase(postgres.NewDirectorRepository(db))
	server.GenreService = genre.NewUsecase(postgres.NewGenreRepository(db))
	server.ProductionService = production.NewUsecase(postgres.NewProductionRepository(db))
	server.PlatformService = platform.NewUsecase(postgres.NewPlatformRepository(db))
	server.MovieService = movie.NewUsecase(postgres.NewMovieRepository(db))
	server.CatalogService = catalog.NewUsecase(fetcher)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server started!", "addr", server.Addr)
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server stopped with error", "error", err)
			sentry.Fatal(err)
			os.Exit(1)
		}
	case <-ctx.Done():
		slog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("graceful shutdown failed", "error", err)
		}
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// newCatalogFetcher builds the upstream client and puts the configured cache
// in front of it.
func newCatalogFetcher(cfg *config.Config, logger *slog.Logger) (catalog.Fetcher, error) {
	client := catalog.NewClient(catalog.ClientOptions{
		BaseURL:   cfg.Catalog.BaseURL,
		Timeout:   cfg.Catalog.Timeout,
		RateLimit: cfg.Catalog.RateLimit,
	})

	switch cfg.Catalog.Cache {
	case config.CacheNone:
		return client, nil
	case config.CacheRedis:
		rdb, err := redis.NewClient(redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, err
		}
		return catalog.NewCachedFetcher(client, redis.NewCatalogCache(rdb, cfg.Catalog.CacheTTL), logger), nil
	default:
		return catalog.NewCachedFetcher(client, catalog.NewMemoryCache(cfg.Catalog.CacheTTL), logger), nil
	}
}
