package httpserver_test

import (
	"context"

	"moviecatalog/actor"
	"moviecatalog/catalog"
	"moviecatalog/director"
	"moviecatalog/genre"
	"moviecatalog/movie"
	"moviecatalog/pagination"
	"moviecatalog/platform"
	"moviecatalog/production"

	"github.com/stretchr/testify/mock"
)

type MockActorService struct {
	mock.Mock
}

func (m *MockActorService) ListActors(ctx context.Context) ([]actor.Actor, error) {
	args := m.Called(ctx)
	return args.Get(0).([]actor.Actor), args.Error(1)
}

func (m *MockActorService) ListActorsSorted(ctx context.Context, field string) ([]actor.Actor, error) {
	args := m.Called(ctx, field)
	return args.Get(0).([]actor.Actor), args.Error(1)
}

func (m *MockActorService) GetActor(ctx context.Context, id int64) (actor.Actor, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(actor.Actor), args.Error(1)
}

func (m *MockActorService) ListActorMovies(ctx context.Context, id int64) ([]movie.Movie, error) {
	args := m.Called(ctx, id)
	return args.Get(0).([]movie.Movie), args.Error(1)
}

func (m *MockActorService) ListMovieActors(ctx context.Context, movieID int64) ([]actor.Actor, error) {
	args := m.Called(ctx, movieID)
	return args.Get(0).([]actor.Actor), args.Error(1)
}

func (m *MockActorService) AddActor(ctx context.Context, a actor.Actor) (int64, error) {
	args := m.Called(ctx, a)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockActorService) UpdateActor(ctx context.Context, a actor.Actor) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

// MockGenreRepository backs a real genre.Usecase so sort-field parsing is
// exercised end to end.
type MockGenreRepository struct {
	mock.Mock
}

func (m *MockGenreRepository) AllGenres(ctx context.Context) ([]genre.Genre, error) {
	args := m.Called(ctx)
	return args.Get(0).([]genre.Genre), args.Error(1)
}

func (m *MockGenreRepository) AllGenresSorted(ctx context.Context, field genre.SortField) ([]genre.Genre, error) {
	args := m.Called(ctx, field)
	return args.Get(0).([]genre.Genre), args.Error(1)
}

func (m *MockGenreRepository) GetByID(ctx context.Context, id int64) (genre.Genre, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(genre.Genre), args.Error(1)
}

func (m *MockGenreRepository) GetByName(ctx context.Context, name string) (genre.Genre, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(genre.Genre), args.Error(1)
}

func (m *MockGenreRepository) MoviesByGenre(ctx context.Context, id int64) ([]movie.Summary, error) {
	args := m.Called(ctx, id)
	return args.Get(0).([]movie.Summary), args.Error(1)
}

func (m *MockGenreRepository) GenresByMovie(ctx context.Context, movieID int64) ([]genre.Genre, error) {
	args := m.Called(ctx, movieID)
	return args.Get(0).([]genre.Genre), args.Error(1)
}

func (m *MockGenreRepository) CreateGenre(ctx context.Context, g genre.Genre) (int64, error) {
	args := m.Called(ctx, g)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockGenreRepository) UpdateGenre(ctx context.Context, g genre.Genre) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}

type MockMovieService struct {
	mock.Mock
}

func (m *MockMovieService) ListMovies(ctx context.Context) ([]movie.Movie, error) {
	args := m.Called(ctx)
	return args.Get(0).([]movie.Movie), args.Error(1)
}

func (m *MockMovieService) ListMoviesSorted(ctx context.Context, field string) ([]movie.Movie, error) {
	args := m.Called(ctx, field)
	return args.Get(0).([]movie.Movie), args.Error(1)
}

func (m *MockMovieService) GetMovie(ctx context.Context, id int64) (movie.Movie, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(movie.Movie), args.Error(1)
}

func (m *MockMovieService) Search(ctx context.Context, query string, limit int) ([]movie.Movie, error) {
	args := m.Called(ctx, query, limit)
	return args.Get(0).([]movie.Movie), args.Error(1)
}

func (m *MockMovieService) AddMovie(ctx context.Context, mv movie.Movie, l movie.Links) (int64, error) {
	args := m.Called(ctx, mv, l)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMovieService) UpdateMovie(ctx context.Context, mv movie.Movie, l movie.Links) error {
	args := m.Called(ctx, mv, l)
	return args.Error(0)
}

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) All(ctx context.Context, page int) (pagination.Page[catalog.Movie], error) {
	args := m.Called(ctx, page)
	return args.Get(0).(pagination.Page[catalog.Movie]), args.Error(1)
}

func (m *MockCatalogService) ByGenre(ctx context.Context, genre string, page int) (pagination.Page[catalog.Movie], error) {
	args := m.Called(ctx, genre, page)
	return args.Get(0).(pagination.Page[catalog.Movie]), args.Error(1)
}

func (m *MockCatalogService) Find(ctx context.Context, genre, id string) (catalog.Movie, error) {
	args := m.Called(ctx, genre, id)
	return args.Get(0).(catalog.Movie), args.Error(1)
}

type MockDirectorRepository struct {
	mock.Mock
}

func (m *MockDirectorRepository) AllDirectors(ctx context.Context) ([]director.Director, error) {
	args := m.Called(ctx)
	return args.Get(0).([]director.Director), args.Error(1)
}

func (m *MockDirectorRepository) AllDirectorsSorted(ctx context.Context, field director.SortField) ([]director.Director, error) {
	args := m.Called(ctx, field)
	return args.Get(0).([]director.Director), args.Error(1)
}

func (m *MockDirectorRepository) GetByID(ctx context.Context, id int64) (director.Director, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(director.Director), args.Error(1)
}

func (m *MockDirectorRepository) MoviesByDirector(ctx context.Context, id int64) ([]movie.Movie, error) {
	args := m.Called(ctx, id)
	return args.Get(0).([]movie.Movie), args.Error(1)
}

func (m *MockDirectorRepository) DirectorsByMovie(ctx context.Context, movieID int64) ([]director.Director, error) {
	args := m.Called(ctx, movieID)
	return args.Get(0).([]director.Director), args.Error(1)
}

func (m *MockDirectorRepository) CreateDirector(ctx context.Context, d director.Director) (int64, error) {
	args := m.Called(ctx, d)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDirectorRepository) UpdateDirector(ctx context.Context, d director.Director) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

type MockProductionRepository struct {
	mock.Mock
}

func (m *MockProductionRepository) AllProductions(ctx context.Context) ([]production.Production, error) {
	args := m.Called(ctx)
	return args.Get(0).([]production.Production), args.Error(1)
}

func (m *MockProductionRepository) AllProductionsSorted(ctx context.Context, field production.SortField) ([]production.Production, error) {
	args := m.Called(ctx, field)
	return args.Get(0).([]production.Production), args.Error(1)
}

func (m *MockProductionRepository) GetByID(ctx context.Context, id int64) (production.Production, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(production.Production), args.Error(1)
}

func (m *MockProductionRepository) MoviesByProduction(ctx context.Context, id int64) ([]movie.Movie, error) {
	args := m.Called(ctx, id)
	return args.Get(0).([]movie.Movie), args.Error(1)
}

func (m *MockProductionRepository) CreateProduction(ctx context.Context, p production.Production) (int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductionRepository) UpdateProduction(ctx context.Context, p production.Production) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

type MockPlatformRepository struct {
	mock.Mock
}

func (m *MockPlatformRepository) AllPlatforms(ctx context.Context) ([]platform.StreamingPlatform, error) {
	args := m.Called(ctx)
	return args.Get(0).([]platform.StreamingPlatform), args.Error(1)
}

func (m *MockPlatformRepository) AllPlatformsSorted(ctx context.Context, field platform.SortField) ([]platform.StreamingPlatform, error) {
	args := m.Called(ctx, field)
	return args.Get(0).([]platform.StreamingPlatform), args.Error(1)
}

func (m *MockPlatformRepository) GetByID(ctx context.Context, id int64) (platform.StreamingPlatform, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(platform.StreamingPlatform), args.Error(1)
}

func (m *MockPlatformRepository) MoviesByPlatform(ctx context.Context, id int64) ([]movie.Movie, error) {
	args := m.Called(ctx, id)
	return args.Get(0).([]movie.Movie), args.Error(1)
}

func (m *MockPlatformRepository) PlatformsByMovie(ctx context.Context, movieID int64) ([]platform.StreamingPlatform, error) {
	args := m.Called(ctx, movieID)
	return args.Get(0).([]platform.StreamingPlatform), args.Error(1)
}

func (m *MockPlatformRepository) CreatePlatform(ctx context.Context, p platform.StreamingPlatform) (int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPlatformRepository) UpdatePlatform(ctx context.Context, p platform.StreamingPlatform) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
