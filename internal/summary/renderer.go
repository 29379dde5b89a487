// Package summary renders one resolved book record into a human-readable
// sentence. This is the one component that reports failures as data: it
// never returns an error, it returns a descriptive string instead.
package summary

import (
	"fmt"

	"github.com/bookdenapp/bookden-server/internal/catalog"
	"github.com/bookdenapp/bookden-server/internal/query"
)

// Display defaults. Note these are display values, distinct from the 0.0
// effective rating used for ranking.
const (
	unknownTitle = "Unknown title"
	unknownGenre = "Unknown genre"
	notAvailable = "N/A"
)

// Renderer formats book summaries from id-or-title lookups.
type Renderer struct {
	engine *query.Engine
}

// NewRenderer creates a renderer over the given engine.
func NewRenderer(engine *query.Engine) *Renderer {
	return &Renderer{engine: engine}
}

// Summarize resolves the identifier (exact book_id or title substring),
// takes the first match in catalog order, and renders one sentence. Lookup
// failures come back as descriptive strings, never as errors.
func (r *Renderer) Summarize(identifier string) string {
	matches, err := r.engine.FindByIDOrTitle(identifier)
	if err != nil {
		return fmt.Sprintf("No book found with ID or title: %s", identifier)
	}

	return Sentence(matches[0])
}

// Sentence renders a single record, substituting display defaults for
// absent fields.
func Sentence(b catalog.Book) string {
	title := b.Title
	if title == "" {
		title = unknownTitle
	}

	genre := b.Genre
	if genre == "" {
		genre = unknownGenre
	}

	rating := b.Rating.String()
	if rating == "" {
		rating = notAvailable
	}

	price := b.Price.String()
	if price == "" {
		price = notAvailable
	}

	availability := "Out of stock"
	if b.Available() {
		availability = "In stock"
	}

	return fmt.Sprintf("'%s' is a %s book rated %s/5, priced at $%s. Availability: %s.",
		title, genre, rating, price, availability)
}
