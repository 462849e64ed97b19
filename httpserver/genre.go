package httpserver

import (
	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterGenreRoutes() {
	g := s.Router.Group("/genres")
	g.GET("", s.handleListGenres)
	g.GET("/sort/:field", s.handleListGenresSorted)
	g.GET("/:id/movies", s.handleListGenreMovies)
	g.GET("/:id", s.handleGetGenre)
	g.POST("", s.handleAddGenre)
	g.PATCH("/:id", s.handleUpdateGenre)
}

func (s *Server) handleListGenres(c echo.Context) error {
	genres, err := s.GenreService.ListGenres(c.Request().Context())
	if err != nil {
		return err
	}
	return writeList(c, genres)
}

// handleListGenresSorted godoc
// @Summary List Genres Sorted
// @Description Sort by genre_id or genre
// @Tags genres
// @Produce json
// @Param field path string true "Sort field"
// @Success 200 {array} genre.Genre
// @Failure 400 {object} map[string]string
// @Router /genres/sort/{field} [get]
func (s *Server) handleListGenresSorted(c echo.Context) error {
	genres, err := s.GenreService.ListGenresSorted(c.Request().Context(), c.Param("field"))
	if err != nil {
		return err
	}
	return writeList(c, genres)
}

func (s *Server) handleGetGenre(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	g, err := s.GenreService.GetGenre(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return writeList(c, g)
}

// handleListGenreMovies returns only movie_id and title for each movie.
func (s *Server) handleListGenreMovies(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	movies, err := s.GenreService.ListGenreMovies(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return writeList(c, movies)
}

func (s *Server) handleAddGenre(c echo.Context) error {
	var req GenreRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	id, err := s.GenreService.AddGenre(c.Request().Context(), req.ToGenre(0))
	if err != nil {
		return err
	}
	return writeCreated(c, "Genre added", "genre_id", id)
}

func (s *Server) handleUpdateGenre(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req GenreRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := s.GenreService.UpdateGenre(c.Request().Context(), req.ToGenre(id)); err != nil {
		return err
	}
	return writeMessage(c, "Genre updated")
}
