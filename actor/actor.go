package actor

import (
	"strings"

	"moviecatalog/errs"
	"moviecatalog/sortfield"
)

var (
	ErrActorNotFound = errs.Errorf(errs.ENOTFOUND, "Actor not found")
	ErrNameRequired  = errs.Errorf(errs.EINVALID, "First and Last name are required")
)

type Actor struct {
	ActorID   int64  `json:"actor_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (a Actor) Validate() error {
	if strings.TrimSpace(a.FirstName) == "" || strings.TrimSpace(a.LastName) == "" {
		return ErrNameRequired
	}

	return nil
}

// SortField is a column of the actor table that listings may be ordered by.
type SortField string

const (
	SortByID        SortField = "actor_id"
	SortByFirstName SortField = "first_name"
	SortByLastName  SortField = "last_name"
)

var SortFields = sortfield.New(SortByID, SortByFirstName, SortByLastName)
