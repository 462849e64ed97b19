package httpserver

import (
	"errors"
	"net/http"

	"moviecatalog/catalog"
	"moviecatalog/pagination"

	"github.com/labstack/echo/v4"
)

type errorPage struct {
	Title   string
	Message string
	Genres  []string
}

type listingPage struct {
	Title       string
	Genres      []string
	Genre       string
	Movies      []catalog.Movie
	CurrentPage int
	TotalPages  int
	HasPrevious bool
	HasNext     bool
}

type moviePage struct {
	Title  string
	Genres []string
	Genre  string
	Movie  catalog.Movie
}

type formField struct {
	Name     string
	Label    string
	Type     string
	Required bool
}

type formPage struct {
	Title  string
	Genres []string
	Action string
	Method string
	Fields []formField
}

var forms = map[string]formPage{
	"/actors/new": {
		Title:  "New Actor",
		Action: "/actors",
		Fields: []formField{
			{Name: "first_name", Label: "First name", Type: "text", Required: true},
			{Name: "last_name", Label: "Last name", Type: "text", Required: true},
		},
	},
	"/directors/new": {
		Title:  "New Director",
		Action: "/directors",
		Fields: []formField{
			{Name: "first_name", Label: "First name", Type: "text", Required: true},
			{Name: "last_name", Label: "Last name", Type: "text", Required: true},
		},
	},
	"/genres/new": {
		Title:  "New Genre",
		Action: "/genres",
		Fields: []formField{
			{Name: "genre", Label: "Genre", Type: "text", Required: true},
		},
	},
	"/production/new": {
		Title:  "New Production Company",
		Action: "/production",
		Fields: []formField{
			{Name: "production", Label: "Production", Type: "text", Required: true},
		},
	},
	"/movies/new": {
		Title:  "New Movie",
		Action: "/movies/db",
		Fields: []formField{
			{Name: "title", Label: "Title", Type: "text", Required: true},
			{Name: "yr_released", Label: "Year released", Type: "number"},
			{Name: "production_id", Label: "Production ID", Type: "number"},
			{Name: "genre_id", Label: "Genre ID", Type: "number"},
			{Name: "director_id", Label: "Director ID", Type: "number"},
		},
	},
}

func (s *Server) RegisterPageRoutes() {
	s.Router.GET("/", s.handleHomePage, pageRoute)
	s.Router.GET("/movies", s.handleAllMoviesPage, pageRoute)
	s.Router.GET("/movies/:genre", s.handleGenrePage, pageRoute)
	s.Router.GET("/movies/:genre/:id", s.handleMoviePage, pageRoute)
	for path := range forms {
		s.Router.GET(path, s.handleFormPage, pageRoute)
	}
}

func (s *Server) handleHomePage(c echo.Context) error {
	return c.Render(http.StatusOK, "home", map[string]interface{}{
		"Title":  "Home",
		"Genres": catalog.Genres,
	})
}

func (s *Server) handleAllMoviesPage(c echo.Context) error {
	page, err := s.CatalogService.All(c.Request().Context(), pagination.ParsePage(c.QueryParam("page")))
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "movies", newListingPage("All Movies", "", page))
}

func (s *Server) handleGenrePage(c echo.Context) error {
	genre := c.Param("genre")
	page, err := s.CatalogService.ByGenre(c.Request().Context(), genre, pagination.ParsePage(c.QueryParam("page")))
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "movies", newListingPage(titleCase(genre), genre, page))
}

func (s *Server) handleMoviePage(c echo.Context) error {
	genre := c.Param("genre")
	m, err := s.CatalogService.Find(c.Request().Context(), genre, c.Param("id"))
	if errors.Is(err, catalog.ErrUnknownGenre) {
		return c.Redirect(http.StatusFound, "/movies")
	}
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "movie", moviePage{
		Title:  m.Title,
		Genres: catalog.Genres,
		Genre:  genre,
		Movie:  m,
	})
}

func (s *Server) handleFormPage(c echo.Context) error {
	form := forms[c.Path()]
	form.Genres = catalog.Genres
	if form.Method == "" {
		form.Method = http.MethodPost
	}
	return c.Render(http.StatusOK, "form", form)
}

func newListingPage(title, genre string, page pagination.Page[catalog.Movie]) listingPage {
	return listingPage{
		Title:       title,
		Genres:      catalog.Genres,
		Genre:       genre,
		Movies:      page.Items,
		CurrentPage: page.CurrentPage,
		TotalPages:  page.TotalPages,
		HasPrevious: page.HasPrevious(),
		HasNext:     page.HasNext(),
	}
}
