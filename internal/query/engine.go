// Package query implements the pure read operations over the book catalog:
// lookups, genre filtering, rating ranking, and random selection. Every
// operation is a side-effect-free read; the engine never modifies a record.
package query

import (
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/bookdenapp/bookden-server/internal/catalog"
	"github.com/bookdenapp/bookden-server/internal/errors"
)

// Engine answers queries against a single immutable catalog. It holds no
// other state and is safe for unbounded concurrent use.
type Engine struct {
	catalog *catalog.Catalog
}

// NewEngine creates an engine over the given catalog.
func NewEngine(c *catalog.Catalog) *Engine {
	return &Engine{catalog: c}
}

// fold normalizes text for comparison. All matching in the engine is
// case-insensitive on the value rendered as text, even when the stored
// value is numeric.
func fold(s string) string {
	return strings.ToLower(s)
}

// FindByID returns every record whose book_id matches id case-insensitively,
// in catalog order. IDs are not unique; callers wanting a single record take
// the first match.
func (e *Engine) FindByID(id string) ([]catalog.Book, error) {
	want := fold(id)

	var matches []catalog.Book
	for _, b := range e.catalog.Books() {
		if fold(b.ID.String()) == want {
			matches = append(matches, b)
		}
	}

	if len(matches) == 0 {
		return nil, errors.NotFoundf("no book found with id: %s", id)
	}
	return matches, nil
}

// FindByIDOrTitle returns every record whose book_id equals the identifier
// or whose title contains it as a substring, both case-insensitive, in
// catalog order. An empty identifier matches every record.
func (e *Engine) FindByIDOrTitle(identifier string) ([]catalog.Book, error) {
	want := fold(identifier)

	var matches []catalog.Book
	for _, b := range e.catalog.Books() {
		if fold(b.ID.String()) == want || strings.Contains(fold(b.Title), want) {
			matches = append(matches, b)
		}
	}

	if len(matches) == 0 {
		return nil, errors.NotFoundf("no book found for: %s", identifier)
	}
	return matches, nil
}

// SearchTitle returns every record whose title contains the keyword as a
// case-insensitive substring, in catalog order.
func (e *Engine) SearchTitle(keyword string) ([]catalog.Book, error) {
	want := fold(keyword)

	var matches []catalog.Book
	for _, b := range e.catalog.Books() {
		if strings.Contains(fold(b.Title), want) {
			matches = append(matches, b)
		}
	}

	if len(matches) == 0 {
		return nil, errors.NotFoundf("no books found for query: %s", keyword)
	}
	return matches, nil
}

// FilterGenre returns every record whose genre equals the given genre
// case-insensitively, in catalog order.
func (e *Engine) FilterGenre(genre string) ([]catalog.Book, error) {
	want := fold(genre)

	var matches []catalog.Book
	for _, b := range e.catalog.Books() {
		if fold(b.Genre) == want {
			matches = append(matches, b)
		}
	}

	if len(matches) == 0 {
		return nil, errors.NotFoundf("no books found in genre '%s'", genre)
	}
	return matches, nil
}

// TopByRating returns the n highest-rated records, descending by effective
// rating. The sort is stable so records with equal ratings keep their
// catalog order. When n exceeds the catalog size, every record is returned.
func (e *Engine) TopByRating(n int) ([]catalog.Book, error) {
	if n < 1 {
		return nil, errors.InvalidArgument("n must be at least 1")
	}

	books := e.catalog.Books()
	ranked := make([]catalog.Book, len(books))
	copy(ranked, books)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].EffectiveRating() > ranked[j].EffectiveRating()
	})

	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n], nil
}

// Pick returns one uniformly random record from the candidate set. The
// candidate set is fixed before the draw; Pick never filters.
func (e *Engine) Pick(candidates []catalog.Book) (catalog.Book, error) {
	if len(candidates) == 0 {
		return catalog.Book{}, errors.NotFound("no books to pick from")
	}
	return candidates[rand.IntN(len(candidates))], nil
}

// Random returns one uniformly random record from the whole catalog.
func (e *Engine) Random() (catalog.Book, error) {
	if e.catalog.Len() == 0 {
		return catalog.Book{}, errors.NotFound("no books in catalog")
	}
	return e.Pick(e.catalog.Books())
}

// ListAll returns the entire catalog in insertion order. An empty catalog
// yields an empty sequence, not an error.
func (e *Engine) ListAll() []catalog.Book {
	return e.catalog.Books()
}

// ListTitles returns every title in catalog order. An empty catalog yields
// an empty sequence, not an error.
func (e *Engine) ListTitles() []string {
	books := e.catalog.Books()
	titles := make([]string, len(books))
	for i, b := range books {
		titles[i] = b.Title
	}
	return titles
}

// Count returns the catalog size.
func (e *Engine) Count() int {
	return e.catalog.Len()
}

// DistinctGenres returns the unique genre values sorted lexicographically.
// Uniqueness is on the raw stored value; only matching is case-insensitive.
func (e *Engine) DistinctGenres() []string {
	seen := make(map[string]struct{})
	genres := make([]string, 0)
	for _, b := range e.catalog.Books() {
		if _, ok := seen[b.Genre]; ok {
			continue
		}
		seen[b.Genre] = struct{}{}
		genres = append(genres, b.Genre)
	}
	sort.Strings(genres)
	return genres
}
