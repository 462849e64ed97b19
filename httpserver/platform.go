package httpserver

import (
	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterPlatformRoutes() {
	g := s.Router.Group("/streamingPlatform")
	g.GET("", s.handleListPlatforms)
	g.GET("/sort/:field", s.handleListPlatformsSorted)
	g.GET("/:id/movies", s.handleListPlatformMovies)
	g.GET("/:id", s.handleGetPlatform)
	g.POST("", s.handleAddPlatform)
	g.PATCH("/:id", s.handleUpdatePlatform)
}

func (s *Server) handleListPlatforms(c echo.Context) error {
	platforms, err := s.PlatformService.ListPlatforms(c.Request().Context())
	if err != nil {
		return err
	}
	return writeList(c, platforms)
}

func (s *Server) handleListPlatformsSorted(c echo.Context) error {
	platforms, err := s.PlatformService.ListPlatformsSorted(c.Request().Context(), c.Param("field"))
	if err != nil {
		return err
	}
	return writeList(c, platforms)
}

func (s *Server) handleGetPlatform(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	p, err := s.PlatformService.GetPlatform(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return writeList(c, p)
}

func (s *Server) handleListPlatformMovies(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	movies, err := s.PlatformService.ListPlatformMovies(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return writeList(c, movies)
}

func (s *Server) handleAddPlatform(c echo.Context) error {
	var req PlatformRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	id, err := s.PlatformService.AddPlatform(c.Request().Context(), req.ToPlatform(0))
	if err != nil {
		return err
	}
	return writeCreated(c, "Platform added", "streaming_platform_id", id)
}

func (s *Server) handleUpdatePlatform(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req PlatformRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := s.PlatformService.UpdatePlatform(c.Request().Context(), req.ToPlatform(id)); err != nil {
		return err
	}
	return writeMessage(c, "Platform updated")
}
