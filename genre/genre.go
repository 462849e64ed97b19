package genre

import (
	"strings"

	"moviecatalog/errs"
	"moviecatalog/sortfield"
)

var (
	ErrGenreNotFound = errs.Errorf(errs.ENOTFOUND, "Genre not found")
	ErrNameRequired  = errs.Errorf(errs.EINVALID, "Genre is required")
	ErrGenreExists   = errs.Errorf(errs.ECONFLICT, "Genre already exists")
)

type Genre struct {
	GenreID int64  `json:"genre_id"`
	Genre   string `json:"genre"`
}

func (g Genre) Validate() error {
	if strings.TrimSpace(g.Genre) == "" {
		return ErrNameRequired
	}
	return nil
}

type SortField string

const (
	SortByID   SortField = "genre_id"
	SortByName SortField = "genre"
)

var SortFields = sortfield.New(SortByID, SortByName)
