package httpserver

import (
	"github.com/labstack/echo/v4"
)

// RegisterMovieRoutes serves the movie table. The /movies prefix without
// /db belongs to the catalog pages.
func (s *Server) RegisterMovieRoutes() {
	g := s.Router.Group("/movies/db")
	g.GET("", s.handleListMovies)
	g.GET("/search", s.handleSearchMovies)
	g.GET("/sort/:field", s.handleListMoviesSorted)
	g.GET("/:id", s.handleGetMovie)
	g.GET("/:id/actors", s.handleListMovieActors)
	g.GET("/:id/directors", s.handleListMovieDirectors)
	g.GET("/:id/genres", s.handleListMovieGenres)
	g.GET("/:id/streamingPlatform", s.handleListMoviePlatforms)
	g.POST("", s.handleAddMovie)
	g.PATCH("/:id", s.handleUpdateMovie)
}

func (s *Server) handleListMovies(c echo.Context) error {
	movies, err := s.MovieService.ListMovies(c.Request().Context())
	if err != nil {
		return err
	}
	return writeList(c, movies)
}

// handleListMoviesSorted godoc
// @Summary List Movies Sorted
// @Description Sort by movie_id, title, yr_released or production_id
// @Tags movies
// @Produce json
// @Param field path string true "Sort field"
// @Success 200 {array} movie.Movie
// @Failure 400 {object} map[string]string
// @Router /movies/db/sort/{field} [get]
func (s *Server) handleListMoviesSorted(c echo.Context) error {
	movies, err := s.MovieService.ListMoviesSorted(c.Request().Context(), c.Param("field"))
	if err != nil {
		return err
	}
	return writeList(c, movies)
}

// handleSearchMovies godoc
// @Summary Search Movies
// @Description Full-text search over movie titles
// @Tags movies
// @Produce json
// @Param q query string true "Search query"
// @Param limit query int false "Max results (1-100), default 20"
// @Success 200 {array} movie.Movie
// @Failure 400 {object} map[string]string
// @Router /movies/db/search [get]
func (s *Server) handleSearchMovies(c echo.Context) error {
	var req SearchMoviesRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	results, err := s.MovieService.Search(c.Request().Context(), req.Query, req.Limit)
	if err != nil {
		return err
	}
	return writeList(c, results)
}

func (s *Server) handleGetMovie(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	m, err := s.MovieService.GetMovie(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return writeList(c, m)
}

func (s *Server) handleListMovieActors(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	actors, err := s.ActorService.ListMovieActors(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return writeList(c, actors)
}

func (s *Server) handleListMovieDirectors(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	directors, err := s.DirectorService.ListMovieDirectors(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return writeList(c, directors)
}

func (s *Server) handleListMovieGenres(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	genres, err := s.GenreService.ListMovieGenres(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return writeList(c, genres)
}

func (s *Server) handleListMoviePlatforms(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	platforms, err := s.PlatformService.ListMoviePlatforms(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return writeList(c, platforms)
}

// handleAddMovie godoc
// @Summary Create Movie
// @Description Insert a movie and, when given, its genre and director links in one transaction
// @Tags movies
// @Accept json
// @Produce json
// @Param movie body MovieRequest true "Movie Data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /movies/db [post]
func (s *Server) handleAddMovie(c echo.Context) error {
	var req MovieRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	m, links := req.ToMovie(0)
	id, err := s.MovieService.AddMovie(c.Request().Context(), m, links)
	if err != nil {
		return err
	}
	return writeCreated(c, "Movie added", "movie_id", id)
}

// handleUpdateMovie godoc
// @Summary Update Movie
// @Description Update a movie row; genre_id and director_id replace the existing links
// @Tags movies
// @Accept json
// @Produce json
// @Param id path int true "Movie ID"
// @Param movie body MovieRequest true "Movie Data"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /movies/db/{id} [patch]
func (s *Server) handleUpdateMovie(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req MovieRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	m, links := req.ToMovie(id)
	if err := s.MovieService.UpdateMovie(c.Request().Context(), m, links); err != nil {
		return err
	}
	return writeMessage(c, "Movie updated")
}
