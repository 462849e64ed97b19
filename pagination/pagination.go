package pagination

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// DefaultPageSize is the number of items shown on a listing page.
const DefaultPageSize = 10

// Page is one 1-indexed slice of a larger sequence.
type Page[T any] struct {
	Items       []T
	CurrentPage int
	TotalPages  int
}

// Paginate returns the requested page of seq. Pages below 1 are treated as 1.
// Pages past the end yield an empty slice rather than an error.
func Paginate[T any](seq []T, page, pageSize int) Page[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}

	total := (len(seq) + pageSize - 1) / pageSize

	// page-1 < total keeps the multiplication below len(seq).
	start := len(seq)
	if page-1 < total {
		start = (page - 1) * pageSize
	}
	end := start + pageSize
	if end > len(seq) {
		end = len(seq)
	}

	return Page[T]{
		Items:       seq[start:end],
		CurrentPage: page,
		TotalPages:  total,
	}
}

// ParsePage reads a page number from the leading digits of a query value, so
// "2abc" is page 2. Values without leading digits, or below 1, become 1.
// Numbers too large for an int become math.MaxInt.
func ParsePage(raw string) int {
	raw = strings.TrimPrefix(strings.TrimSpace(raw), "+")
	n := 0
	for n < len(raw) && raw[n] >= '0' && raw[n] <= '9' {
		n++
	}

	page, err := strconv.Atoi(raw[:n])
	if errors.Is(err, strconv.ErrRange) {
		return math.MaxInt
	}
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func (p Page[T]) HasPrevious() bool {
	return p.CurrentPage > 1
}

func (p Page[T]) HasNext() bool {
	return p.CurrentPage < p.TotalPages
}
