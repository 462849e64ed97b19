package httpserver

import (
	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterActorRoutes() {
	g := s.Router.Group("/actors")
	g.GET("", s.handleListActors)
	g.GET("/sort/:field", s.handleListActorsSorted)
	g.GET("/:id/movies", s.handleListActorMovies)
	g.GET("/:id", s.handleGetActor)
	g.POST("", s.handleAddActor)
	g.PATCH("/:id", s.handleUpdateActor)
}

// handleListActors godoc
// @Summary List Actors
// @Tags actors
// @Produce json
// @Success 200 {array} actor.Actor
// @Router /actors [get]
func (s *Server) handleListActors(c echo.Context) error {
	actors, err := s.ActorService.ListActors(c.Request().Context())
	if err != nil {
		return err
	}
	return writeList(c, actors)
}

// handleListActorsSorted godoc
// @Summary List Actors Sorted
// @Description Sort by actor_id, first_name or last_name
// @Tags actors
// @Produce json
// @Param field path string true "Sort field"
// @Success 200 {array} actor.Actor
// @Failure 400 {object} map[string]string
// @Router /actors/sort/{field} [get]
func (s *Server) handleListActorsSorted(c echo.Context) error {
	actors, err := s.ActorService.ListActorsSorted(c.Request().Context(), c.Param("field"))
	if err != nil {
		return err
	}
	return writeList(c, actors)
}

// handleGetActor godoc
// @Summary Get Actor
// @Tags actors
// @Produce json
// @Param id path int true "Actor ID"
// @Success 200 {object} actor.Actor
// @Failure 404 {object} map[string]string
// @Router /actors/{id} [get]
func (s *Server) handleGetActor(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	a, err := s.ActorService.GetActor(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return writeList(c, a)
}

func (s *Server) handleListActorMovies(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	movies, err := s.ActorService.ListActorMovies(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return writeList(c, movies)
}

// handleAddActor godoc
// @Summary Create Actor
// @Tags actors
// @Accept json
// @Produce json
// @Param actor body PersonRequest true "Actor Data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /actors [post]
func (s *Server) handleAddActor(c echo.Context) error {
	var req PersonRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	id, err := s.ActorService.AddActor(c.Request().Context(), req.ToActor(0))
	if err != nil {
		return err
	}
	return writeCreated(c, "Actor added", "actor_id", id)
}

// handleUpdateActor godoc
// @Summary Update Actor
// @Tags actors
// @Accept json
// @Produce json
// @Param id path int true "Actor ID"
// @Param actor body PersonRequest true "Actor Data"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /actors/{id} [patch]
func (s *Server) handleUpdateActor(c echo.Context) error {
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

	if err := s.ActorService.UpdateActor(c.Request().Context(), req.ToActor(id)); err != nil {
		return err
	}
	return writeMessage(c, "Actor updated")
}
