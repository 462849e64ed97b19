package httpserver

import (
	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterDirectorRoutes() {
	g := s.Router.Group("/directors")
	g.GET("", s.handleListDirectors)
	g.GET("/sort/:field", s.handleListDirectorsSorted)
	g.GET("/:id/movies", s.handleListDirectorMovies)
	g.GET("/:id", s.handleGetDirector)
	g.POST("", s.handleAddDirector)
	g.PATCH("/:id", s.handleUpdateDirector)
}

func (s *Server) handleListDirectors(c echo.Context) error {
	directors, err := s.DirectorService.ListDirectors(c.Request().Context())
	if err != nil {
		return err
	}
	return writeList(c, directors)
}

func (s *Server) handleListDirectorsSorted(c echo.Context) error {
	directors, err := s.DirectorService.ListDirectorsSorted(c.Request().Context(), c.Param("field"))
	if err != nil {
		return err
	}
	return writeList(c, directors)
}

func (s *Server) handleGetDirector(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	d, err := s.DirectorService.GetDirector(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return writeList(c, d)
}

func (s *Server) handleListDirectorMovies(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	movies, err := s.DirectorService.ListDirectorMovies(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return writeList(c, movies)
}

// handleAddDirector godoc
// @Summary Create Director
// @Tags directors
// @Accept json
// @Produce json
// @Param director body PersonRequest true "Director Data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /directors [post]
func (s *Server) handleAddDirector(c echo.Context) error {
	var req PersonRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	id, err := s.DirectorService.AddDirector(c.Request().Context(), req.ToDirector(0))
	if err != nil {
		return err
	}
	return writeCreated(c, "Director added", "director_id", id)
}

func (s *Server) handleUpdateDirector(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req PersonRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := s.DirectorService.UpdateDirector(c.Request().Context(), req.ToDirector(id)); err != nil {
		return err
	}
	return writeMessage(c, "Director updated")
}
