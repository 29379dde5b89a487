// Package service provides the named operation surface over the catalog
// query engine. Every operation validates its declared inputs, delegates to
// the engine, and passes engine errors through with the offending input in
// the message. Operations are stateless, idempotent reads, safe to invoke
// concurrently.
package service

import (
	"context"
	"log/slog"

	"github.com/bookdenapp/bookden-server/internal/catalog"
	"github.com/bookdenapp/bookden-server/internal/errors"
	"github.com/bookdenapp/bookden-server/internal/query"
	"github.com/bookdenapp/bookden-server/internal/summary"
)

// CatalogService exposes the named catalog operations.
type CatalogService struct {
	engine   *query.Engine
	renderer *summary.Renderer
	logger   *slog.Logger
}

// NewCatalogService creates the catalog operation surface.
func NewCatalogService(engine *query.Engine, renderer *summary.Renderer, logger *slog.Logger) *CatalogService {
	return &CatalogService{
		engine:   engine,
		renderer: renderer,
		logger:   logger,
	}
}

// ListBooks returns the titles of all books in catalog order.
func (s *CatalogService) ListBooks(ctx context.Context) []string {
	return s.engine.ListTitles()
}

// ListAll returns every record in catalog order.
func (s *CatalogService) ListAll(ctx context.Context) []catalog.Book {
	return s.engine.ListAll()
}

// TotalBooks returns the number of books in the catalog.
func (s *CatalogService) TotalBooks(ctx context.Context) int {
	return s.engine.Count()
}

// GetBookDetail fetches a single book by id. Duplicate ids are legal; the
// first match in catalog order wins.
func (s *CatalogService) GetBookDetail(ctx context.Context, id string) (catalog.Book, error) {
	if id == "" {
		return catalog.Book{}, errors.InvalidArgument("book id is required")
	}

	matches, err := s.engine.FindByID(id)
	if err != nil {
		return catalog.Book{}, err
	}
	return matches[0], nil
}

// FindBooks returns every record matching the identifier by exact id or
// title substring, in catalog order.
func (s *CatalogService) FindBooks(ctx context.Context, identifier string) ([]catalog.Book, error) {
	return s.engine.FindByIDOrTitle(identifier)
}

// SearchBooks returns books whose titles contain the query keyword.
func (s *CatalogService) SearchBooks(ctx context.Context, keyword string) ([]catalog.Book, error) {
	return s.engine.SearchTitle(keyword)
}

// RecommendBook picks one random book from the requested genre. The
// candidate set is fixed by the filter before the draw.
func (s *CatalogService) RecommendBook(ctx context.Context, genre string) (catalog.Book, error) {
	if genre == "" {
		return catalog.Book{}, errors.InvalidArgument("genre is required")
	}

	candidates, err := s.engine.FilterGenre(genre)
	if err != nil {
		return catalog.Book{}, err
	}
	return s.engine.Pick(candidates)
}

// BooksByGenre returns every book in the given genre.
func (s *CatalogService) BooksByGenre(ctx context.Context, genre string) ([]catalog.Book, error) {
	if genre == "" {
		return nil, errors.InvalidArgument("genre is required")
	}
	return s.engine.FilterGenre(genre)
}

// TopBooks returns the n highest-rated books.
func (s *CatalogService) TopBooks(ctx context.Context, n int) ([]catalog.Book, error) {
	return s.engine.TopByRating(n)
}

// RandomBook returns one random book from the whole catalog.
func (s *CatalogService) RandomBook(ctx context.Context) (catalog.Book, error) {
	return s.engine.Random()
}

// ListGenres returns the distinct genres, sorted lexicographically.
func (s *CatalogService) ListGenres(ctx context.Context) []string {
	return s.engine.DistinctGenres()
}

// SummarizeBook renders a one-sentence summary for the identifier. Failures
// come back as descriptive text, never as an error.
func (s *CatalogService) SummarizeBook(ctx context.Context, identifier string) string {
	return s.renderer.Summarize(identifier)
}
