package httpserver_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"moviecatalog/httpserver"
	"moviecatalog/movie"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func int64Ptr(v int64) *int64 { return &v }

func TestMovieRoutes(t *testing.T) {
	svc := new(MockMovieService)
	server := httpserver.Default(testConfig())
	server.MovieService = svc

	t.Run("adds a movie with its links", func(t *testing.T) {
		year := 2014
		svc.On("AddMovie", mock.Anything,
			movie.Movie{Title: "Birdman", YrReleased: &year},
			movie.Links{GenreID: int64Ptr(3), DirectorID: int64Ptr(5)},
		).Return(int64(11), nil).Once()
		rec := httptest.NewRecorder()

		server.Router.ServeHTTP(rec, newJSONRequest(t, http.MethodPost, "/movies/db", map[string]interface{}{
			"title":       "Birdman",
			"yr_released": 2014,
			"genre_id":    3,
			"director_id": 5,
		}))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"Movie added","movie_id":11}`, rec.Body.String())
	})

	t.Run("update without links leaves them unset", func(t *testing.T) {
		svc.On("UpdateMovie", mock.Anything, movie.Movie{MovieID: 11, Title: "Birdman"}, movie.Links{}).Return(nil).Once()
		rec := httptest.NewRecorder()

		server.Router.ServeHTTP(rec, newJSONRequest(t, http.MethodPatch, "/movies/db/11", map[string]interface{}{
			"title": "Birdman",
		}))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"Movie updated"}`, rec.Body.String())
	})

	t.Run("unknown reference is a bad request", func(t *testing.T) {
		svc.On("UpdateMovie", mock.Anything, mock.Anything, mock.Anything).Return(movie.ErrInvalidReference).Once()
		rec := httptest.NewRecorder()

		server.Router.ServeHTTP(rec, newJSONRequest(t, http.MethodPatch, "/movies/db/11", map[string]interface{}{
			"title":    "Birdman",
			"genre_id": 999,
		}))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("out of range year fails validation", func(t *testing.T) {
		rec := httptest.NewRecorder()

		server.Router.ServeHTTP(rec, newJSONRequest(t, http.MethodPost, "/movies/db", map[string]interface{}{
			"title":       "Future",
			"yr_released": 3001,
		}))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeBody(t, rec)["message"], "yr_released failed on lte")
	})

	t.Run("searches titles", func(t *testing.T) {
		svc.On("Search", mock.Anything, "godfather", 5).Return([]movie.Movie{{MovieID: 1, Title: "The Godfather"}}, nil).Once()
		rec := httptest.NewRecorder()

		server.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/movies/db/search?q=godfather&limit=5", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "The Godfather")
	})

	t.Run("blank search query is rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()

		server.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/movies/db/search?q=%20%20", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("gets one movie row", func(t *testing.T) {
		svc.On("GetMovie", mock.Anything, int64(11)).Return(movie.Movie{MovieID: 11, Title: "Birdman"}, nil).Once()
		rec := httptest.NewRecorder()

		server.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/movies/db/11", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Birdman", decodeBody(t, rec)["title"])
	})

	svc.AssertExpectations(t)
}
