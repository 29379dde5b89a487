// Package resource maps hierarchical book:// addresses onto query engine
// calls, for callers that prefer path-style addressing over named
// operations.
//
// Address patterns:
//
//	book://collection                  -> the entire catalog
//	book://collection/{identifier}     -> id-or-title lookup
//	book://collection/genres           -> distinct genre list
//	book://collection/genres/{genre}   -> books in a genre
//
// The literal "genres" segment takes precedence over the identifier
// pattern. Every address that resolves to an empty set is an error, except
// the genres listing, which may legitimately be empty.
package resource

import (
	"strings"

	"github.com/bookdenapp/bookden-server/internal/catalog"
	"github.com/bookdenapp/bookden-server/internal/errors"
	"github.com/bookdenapp/bookden-server/internal/query"
)

// Scheme is the address scheme this resolver owns.
const Scheme = "book://"

const collectionRoot = "collection"

// Result is the resolved value of an address. Exactly one field is set,
// matching the shape the underlying engine call produces.
type Result struct {
	Books  []catalog.Book `json:"books,omitempty"`
	Genres []string       `json:"genres,omitempty"`
}

// Resolver resolves book:// addresses against a query engine.
type Resolver struct {
	engine *query.Engine
}

// NewResolver creates a resolver over the given engine.
func NewResolver(engine *query.Engine) *Resolver {
	return &Resolver{engine: engine}
}

// Resolve maps an address to its engine call. Engine failures pass through
// unchanged; addresses outside the grammar fail with an invalid argument
// error naming the address.
func (r *Resolver) Resolve(uri string) (*Result, error) {
	rest, ok := strings.CutPrefix(uri, Scheme)
	if !ok {
		return nil, errors.InvalidArgumentf("unsupported address scheme: %s", uri)
	}

	segments := strings.Split(strings.Trim(rest, "/"), "/")
	if segments[0] != collectionRoot {
		return nil, errors.InvalidArgumentf("unknown collection: %s", uri)
	}
	segments = segments[1:]

	switch {
	case len(segments) == 0 || (len(segments) == 1 && segments[0] == ""):
		return &Result{Books: r.engine.ListAll()}, nil

	case segments[0] == "genres":
		return r.resolveGenres(segments[1:])

	case len(segments) == 1:
		books, err := r.engine.FindByIDOrTitle(segments[0])
		if err != nil {
			return nil, err
		}
		return &Result{Books: books}, nil

	default:
		return nil, errors.InvalidArgumentf("unresolvable address: %s", uri)
	}
}

// resolveGenres handles the genres subtree: the listing itself, or the
// books of one genre.
func (r *Resolver) resolveGenres(segments []string) (*Result, error) {
	switch len(segments) {
	case 0:
		genres := r.engine.DistinctGenres()
		return &Result{Genres: genres}, nil
	case 1:
		books, err := r.engine.FilterGenre(segments[0])
		if err != nil {
			return nil, err
		}
		return &Result{Books: books}, nil
	default:
		return nil, errors.InvalidArgumentf("unresolvable genre address: %s", strings.Join(segments, "/"))
	}
}
