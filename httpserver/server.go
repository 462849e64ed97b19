package httpserver

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"moviecatalog/actor"
	"moviecatalog/catalog"
	"moviecatalog/director"
	"moviecatalog/errs"
	"moviecatalog/genre"
	"moviecatalog/movie"
	"moviecatalog/pkg/config"
	"moviecatalog/pkg/sentry"
	"moviecatalog/platform"
	"moviecatalog/production"

	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	// Router is the Echo router instance
	Router *echo.Echo

	// Addr represents the address the server will listen on
	Addr string

	// Allowed origins for CORS
	AllowOrigins []string

	Logger *slog.Logger

	ActorService      actor.Service
	DirectorService   director.Service
	GenreService      genre.Service
	ProductionService production.Service
	PlatformService   platform.Service
	MovieService      movie.Service

	// CatalogService backs the HTML movie pages.
	CatalogService catalog.Service
}

func Default(cfg *config.Config) *Server {
	s := Server{
		Router:       echo.New(),
		Addr:         ":8080",
		AllowOrigins: []string{"*"},
		Logger:       slog.Default(),
	}
	if cfg.Port != 0 {
		s.Addr = fmt.Sprintf(":%d", cfg.Port)
	}
	if cfg.AllowOrigins != "" {
		s.AllowOrigins = splitOrigins(cfg.AllowOrigins)
	}

	s.Router.HideBanner = true
	s.Router.Validator = NewValidator()
	s.Router.Renderer = NewRenderer()
	s.Router.HTTPErrorHandler = s.handleError
	s.RegisterGlobalMiddlewares()

	s.RegisterHealthRoutes()
	s.RegisterSwaggerRoutes()
	s.RegisterStaticRoutes()
	s.RegisterPageRoutes()
	s.RegisterActorRoutes()
	s.RegisterDirectorRoutes()
	s.RegisterGenreRoutes()
	s.RegisterProductionRoutes()
	s.RegisterPlatformRoutes()
	s.RegisterMovieRoutes()
	return &s
}

func (s *Server) RegisterGlobalMiddlewares() {
	s.Router.Use(middleware.Recover())
	s.Router.Use(middleware.Secure())
	s.Router.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	s.Router.Use(s.requestLogger())
	s.Router.Use(middleware.Gzip())
	s.Router.Use(sentryecho.New(sentryecho.Options{Repanic: true}))
	s.Router.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(20)))

	// CORS
	if len(s.AllowOrigins) > 0 {
		s.Router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: s.AllowOrigins,
		}))
	}
}

func (s *Server) requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			s.Logger.LogAttrs(c.Request().Context(), slog.LevelInfo, "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
			)
			return nil
		},
	})
}

func (s *Server) Start() error {
	return s.Router.Start(s.Addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.Router.Shutdown(ctx)
}

// handleError maps application errors to HTTP status codes. Page routes and
// clients asking for HTML get the error page, everyone else gets JSON:
// {"message"} below 500 and {"error"} from 500 up.
func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code, message := statusAndMessage(err)
	if code >= http.StatusInternalServerError {
		s.Logger.ErrorContext(c.Request().Context(), "request failed",
			"error", err,
			"uri", c.Request().RequestURI,
			"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
		)
		sentry.WithContext(c).
			WithTags(map[string]string{"route": c.Path()}).
			Error(err)
	}

	var werr error
	switch {
	case wantsPage(c):
		werr = c.Render(code, "error", errorPage{
			Title:   "Error",
			Message: message,
			Genres:  catalog.Genres,
		})
	case code >= http.StatusInternalServerError:
		werr = c.JSON(code, map[string]string{"error": message})
	default:
		werr = c.JSON(code, map[string]string{"message": message})
	}
	if werr != nil {
		s.Logger.Error("cannot write error response", "error", werr)
	}
}

func statusAndMessage(err error) (int, string) {
	if he, ok := err.(*echo.HTTPError); ok {
		if msg, ok := he.Message.(string); ok {
			return he.Code, msg
		}
		return he.Code, http.StatusText(he.Code)
	}

	switch errs.ErrorCode(err) {
	case errs.EINVALID:
		return http.StatusBadRequest, errs.ErrorMessage(err)
	case errs.ENOTFOUND:
		return http.StatusNotFound, errs.ErrorMessage(err)
	case errs.ECONFLICT:
		return http.StatusConflict, errs.ErrorMessage(err)
	case errs.EUNAUTHORIZED:
		return http.StatusUnauthorized, errs.ErrorMessage(err)
	case errs.ENOTIMPLEMENTED:
		return http.StatusNotImplemented, errs.ErrorMessage(err)
	case errs.EUPSTREAM:
		return http.StatusBadGateway, errs.ErrorMessage(err)
	}
	return http.StatusInternalServerError, "Internal server error"
}

const pageContextKey = "html_page"

// pageRoute marks a route as rendering HTML so its errors do too.
func pageRoute(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Set(pageContextKey, true)
		return next(c)
	}
}

func wantsPage(c echo.Context) bool {
	if page, _ := c.Get(pageContextKey).(bool); page {
		return true
	}
	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMETextHTML)
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
