// Package sortfield holds the closed sets of columns an entity may be
// ordered by. Values are parsed from untrusted input into typed constants;
// only the constants ever reach query text.
package sortfield

import (
	"sort"

	"moviecatalog/errs"
)

var ErrInvalidSortField = errs.Errorf(errs.EINVALID, "Invalid sort field")

// Set maps accepted request tokens to column constants of type F.
type Set[F ~string] struct {
	allowed map[string]F
}

// New builds a Set where every field is accepted under its own column name.
func New[F ~string](fields ...F) Set[F] {
	allowed := make(map[string]F, len(fields))
	for _, f := range fields {
		allowed[string(f)] = f
	}
	return Set[F]{allowed: allowed}
}

// WithAlias returns a copy of the set that also accepts token for field.
func (s Set[F]) WithAlias(token string, field F) Set[F] {
	allowed := make(map[string]F, len(s.allowed)+1)
	for k, v := range s.allowed {
		allowed[k] = v
	}
	allowed[token] = field
	return Set[F]{allowed: allowed}
}

// Parse checks raw for membership and returns the matching constant.
func (s Set[F]) Parse(raw string) (F, error) {
	f, ok := s.allowed[raw]
	if !ok {
		var zero F
		return zero, ErrInvalidSortField
	}
	return f, nil
}

// Contains reports whether f is one of the set's columns.
func (s Set[F]) Contains(f F) bool {
	for _, v := range s.allowed {
		if v == f {
			return true
		}
	}
	return false
}

// Tokens lists the accepted request tokens in lexical order.
func (s Set[F]) Tokens() []string {
	tokens := make([]string, 0, len(s.allowed))
	for k := range s.allowed {
		tokens = append(tokens, k)
	}
	sort.Strings(tokens)
	return tokens
}
