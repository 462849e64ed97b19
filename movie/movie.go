package movie

import (
	"strings"

	"moviecatalog/errs"
	"moviecatalog/sortfield"
)

var (
	ErrMovieNotFound    = errs.Errorf(errs.ENOTFOUND, "Movie not found")
	ErrTitleRequired    = errs.Errorf(errs.EINVALID, "Title is required")
	ErrInvalidReference = errs.Errorf(errs.EINVALID, "Referenced production, genre or director does not exist")
	ErrInvalidQuery     = errs.Errorf(errs.EINVALID, "invalid search query")
)

type Movie struct {
	MovieID      int64  `json:"movie_id"`
	Title        string `json:"title"`
	ProductionID *int64 `json:"production_id"`
	YrReleased   *int   `json:"yr_released"`
}

func (m Movie) Validate() error {
	if strings.TrimSpace(m.Title) == "" {
		return ErrTitleRequired
	}
	return nil
}

// Summary is the reduced projection returned for genre listings.
type Summary struct {
	MovieID int64  `json:"movie_id"`
	Title   string `json:"title"`
}

// Links names the associations written alongside a movie row. A nil field
// leaves the existing links in that join table untouched; a set field
// replaces them with exactly that one link.
type Links struct {
	GenreID    *int64
	DirectorID *int64
}

// SortField is a column of the movie table that listings may be ordered by.
type SortField string

const (
	SortByID           SortField = "movie_id"
	SortByTitle        SortField = "title"
	SortByYearReleased SortField = "yr_released"
	SortByProduction   SortField = "production_id"
)

var SortFields = sortfield.New(SortByID, SortByTitle, SortByYearReleased, SortByProduction)
