package director_test

import (
	"context"
	"testing"

	"moviecatalog/director"
	"moviecatalog/movie"
	"moviecatalog/sortfield"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

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

func TestListDirectorsSorted(t *testing.T) {
	r := new(MockDirectorRepository)
	uc := director.NewUsecase(r)
	directors := []director.Director{{DirectorID: 1, FirstName: "Lana", LastName: "Wachowski"}}
	r.On("AllDirectorsSorted", mock.Anything, director.SortByFirstName).Return(directors, nil).Once()

	result, err := uc.ListDirectorsSorted(context.Background(), "first_name")
	assert.NoError(t, err)
	assert.Equal(t, directors, result)

	_, err = uc.ListDirectorsSorted(context.Background(), "year")
	assert.Equal(t, sortfield.ErrInvalidSortField, err)

	r.AssertExpectations(t)
	r.AssertNumberOfCalls(t, "AllDirectorsSorted", 1)
}

func TestAddDirector(t *testing.T) {
	t.Run("should create a director with both names", func(t *testing.T) {
		r := new(MockDirectorRepository)
		uc := director.NewUsecase(r)
		d := director.Director{FirstName: "Denis", LastName: "Villeneuve"}
		r.On("CreateDirector", mock.Anything, d).Return(int64(4), nil).Once()

		id, err := uc.AddDirector(context.Background(), d)

		assert.NoError(t, err)
		assert.Equal(t, int64(4), id)
		r.AssertExpectations(t)
	})

	t.Run("should reject a blank last name", func(t *testing.T) {
		r := new(MockDirectorRepository)
		uc := director.NewUsecase(r)

		_, err := uc.AddDirector(context.Background(), director.Director{FirstName: "Denis", LastName: "  "})

		assert.Equal(t, director.ErrNameRequired, err)
		r.AssertNotCalled(t, "CreateDirector", mock.Anything, mock.Anything)
	})
}

func TestUpdateDirector(t *testing.T) {
	r := new(MockDirectorRepository)
	uc := director.NewUsecase(r)
	d := director.Director{DirectorID: 9, FirstName: "Greta", LastName: "Gerwig"}
	r.On("UpdateDirector", mock.Anything, d).Return(director.ErrDirectorNotFound).Once()

	err := uc.UpdateDirector(context.Background(), d)

	assert.Equal(t, director.ErrDirectorNotFound, err)
	r.AssertExpectations(t)
}
