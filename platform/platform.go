package platform

import (
	"strings"

	"moviecatalog/errs"
	"moviecatalog/sortfield"
)

var (
	ErrPlatformNotFound = errs.Errorf(errs.ENOTFOUND, "Platform not found")
	ErrNameRequired     = errs.Errorf(errs.EINVALID, "Streaming platform is required")
)

// StreamingPlatform is a service a movie can be watched on.
type StreamingPlatform struct {
	StreamingPlatformID int64  `json:"streaming_platform_id"`
	StreamingPlatform   string `json:"streaming_platform"`
}

func (p StreamingPlatform) Validate() error {
	if strings.TrimSpace(p.StreamingPlatform) == "" {
		return ErrNameRequired
	}
	return nil
}

type SortField string

const (
	SortByID   SortField = "streaming_platform_id"
	SortByName SortField = "streaming_platform"
)

var SortFields = sortfield.New(SortByID, SortByName).WithAlias("name", SortByName)
