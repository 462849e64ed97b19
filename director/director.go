package director

import (
	"strings"

	"moviecatalog/errs"
	"moviecatalog/sortfield"
)

var (
	ErrDirectorNotFound = errs.Errorf(errs.ENOTFOUND, "Director not found")
	ErrNameRequired     = errs.Errorf(errs.EINVALID, "First and Last name are required")
)

type Director struct {
	DirectorID int64  `json:"director_id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
}

func (d Director) Validate() error {
	if strings.TrimSpace(d.FirstName) == "" || strings.TrimSpace(d.LastName) == "" {
		return ErrNameRequired
	}
	return nil
}

type SortField string

const (
	SortByID        SortField = "director_id"
	SortByFirstName SortField = "first_name"
	SortByLastName  SortField = "last_name"
)

var SortFields = sortfield.New(SortByID, SortByFirstName, SortByLastName)
