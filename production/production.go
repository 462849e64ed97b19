package production

import (
	"strings"

	"moviecatalog/errs"
	"moviecatalog/sortfield"
)

var (
	ErrProductionNotFound = errs.Errorf(errs.ENOTFOUND, "Production not found")
	ErrNameRequired       = errs.Errorf(errs.EINVALID, "Production is required")
)

// Production is a production company. Movies reference it through
// movie.production_id.
type Production struct {
	ProductionID int64  `json:"production_id"`
	Production   string `json:"production"`
}

func (p Production) Validate() error {
	if strings.TrimSpace(p.Production) == "" {
		return ErrNameRequired
	}
	return nil
}

type SortField string

const (
	SortByID   SortField = "production_id"
	SortByName SortField = "production"
)

// SortFields also accepts "name" for the company name column.
var SortFields = sortfield.New(SortByID, SortByName).WithAlias("name", SortByName)
