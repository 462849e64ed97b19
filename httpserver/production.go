package httpserver

import (
	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterProductionRoutes() {
	g := s.Router.Group("/production")
	g.GET("", s.handleListProductions)
	g.GET("/sort/:field", s.handleListProductionsSorted)
	g.GET("/:id/movies", s.handleListProductionMovies)
	g.GET("/:id", s.handleGetProduction)
	g.POST("", s.handleAddProduction)
	g.PATCH("/:id", s.handleUpdateProduction)
}

func (s *Server) handleListProductions(c echo.Context) error {
	productions, err := s.ProductionService.ListProductions(c.Request().Context())
	if err != nil {
		return err
	}
	return writeList(c, productions)
}

func (s *Server) handleListProductionsSorted(c echo.Context) error {
	productions, err := s.ProductionService.ListProductionsSorted(c.Request().Context(), c.Param("field"))
	if err != nil {
		return err
	}
	return writeList(c, productions)
}

func (s *Server) handleGetProduction(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	p, err := s.ProductionService.GetProduction(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return writeList(c, p)
}

func (s *Server) handleListProductionMovies(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	movies, err := s.ProductionService.ListProductionMovies(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return writeList(c, movies)
}

func (s *Server) handleAddProduction(c echo.Context) error {
	var req ProductionRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	id, err := s.ProductionService.AddProduction(c.Request().Context(), req.ToProduction(0))
	if err != nil {
		return err
	}
	return writeCreated(c, "Production added", "production_id", id)
}

func (s *Server) handleUpdateProduction(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req ProductionRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := s.ProductionService.UpdateProduction(c.Request().Context(), req.ToProduction(id)); err != nil {
		return err
	}
	return writeMessage(c, "Production updated")
}
