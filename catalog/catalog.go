// Package catalog serves movie listings from the external movies API,
// grouped by a fixed set of genres.
package catalog

import (
	"context"
	"strconv"
	"strings"

	"moviecatalog/errs"
)

var (
	ErrGenreNotFound = errs.Errorf(errs.ENOTFOUND, "Genre not found")
	ErrMovieNotFound = errs.Errorf(errs.ENOTFOUND, "Movie not found")
	// ErrUnknownGenre is returned by Find when the genre is not one of Genres.
	// Page handlers redirect to the full listing instead of failing.
	ErrUnknownGenre = errs.Errorf(errs.ENOTFOUND, "Unknown genre")
)

// Genres is the whitelist of genre path segments, in listing order.
var Genres = []string{
	"animation",
	"classic",
	"comedy",
	"drama",
	"horror",
	"family",
	"mystery",
	"western",
}

// IsGenre reports whether genre is one of Genres.
func IsGenre(genre string) bool {
	for _, g := range Genres {
		if g == genre {
			return true
		}
	}
	return false
}

// Movie is one entry of an upstream genre list.
type Movie struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	PosterURL string `json:"posterURL,omitempty"`
	IMDBID    string `json:"imdbId,omitempty"`
	Genre     string `json:"genre"`
}

// MatchesID compares the movie id with a raw path value numerically, so
// "7", " 7" and "07" all match id 7.
func (m Movie) MatchesID(raw string) bool {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return m.ID == id
}

// Fetcher returns the full upstream list for one genre.
type Fetcher interface {
	FetchGenre(ctx context.Context, genre string) ([]Movie, error)
}
