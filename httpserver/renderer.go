package httpserver

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed public
var publicFS embed.FS

var pageNames = []string{"home", "movies", "movie", "form", "error"}

// Renderer executes one template set per page, each made of the shared
// layout plus the page body.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() *Renderer {
	funcs := template.FuncMap{
		"add":     func(a, b int) int { return a + b },
		"sub":     func(a, b int) int { return a - b },
		"title":   titleCase,
		"pageURL": pageURL,
	}

	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		pages[name] = template.Must(template.New("").Funcs(funcs).ParseFS(templateFS,
			"templates/base.html", "templates/"+name+".html"))
	}
	return &Renderer{pages: pages}
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}
	return t.ExecuteTemplate(w, "base", data)
}

func (s *Server) RegisterStaticRoutes() {
	s.Router.StaticFS("/public", echo.MustSubFS(publicFS, "public"))
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// pageURL links to page n of the full listing or of one genre.
func pageURL(genre string, n int) string {
	if genre == "" {
		return fmt.Sprintf("/movies?page=%d", n)
	}
	return fmt.Sprintf("/movies/%s?page=%d", genre, n)
}
