package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (s *Server) registerGenreRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "list_genres",
		Method:      http.MethodGet,
		Path:        "/api/v1/genres",
		Summary:     "List genres",
		Description: "Returns the unique genres, sorted",
		Tags:        []string{"Genres"},
	}, s.handleListGenres)

	huma.Register(s.api, huma.Operation{
		OperationID: "list_genre_books",
		Method:      http.MethodGet,
		Path:        "/api/v1/genres/{genre}/books",
		Summary:     "List genre books",
		Description: "Returns all books in a genre",
		Tags:        []string{"Genres"},
	}, s.handleListGenreBooks)

	huma.Register(s.api, huma.Operation{
		OperationID: "recommend_book",
		Method:      http.MethodGet,
		Path:        "/api/v1/genres/{genre}/recommendation",
		Summary:     "Recommend book",
		Description: "Recommends a random book from the requested genre",
		Tags:        []string{"Genres"},
	}, s.handleRecommendBook)
}

// === DTOs ===

type GenresResponse struct {
	Genres []string `json:"genres" doc:"Unique genres, sorted lexicographically"`
}

type GenresOutput struct {
	Body GenresResponse
}

type GenreInput struct {
	Genre string `path:"genre" doc:"Genre to filter by, e.g. 'Fiction'"`
}

// === Handlers ===

func (s *Server) handleListGenres(ctx context.Context, _ *struct{}) (*GenresOutput, error) {
	return &GenresOutput{Body: GenresResponse{Genres: s.services.Catalog.ListGenres(ctx)}}, nil
}

func (s *Server) handleListGenreBooks(ctx context.Context, input *GenreInput) (*BooksOutput, error) {
	books, err := s.services.Catalog.BooksByGenre(ctx, input.Genre)
	if err != nil {
		return nil, err
	}
	return &BooksOutput{Body: BooksResponse{Books: mapBookResponses(books)}}, nil
}

func (s *Server) handleRecommendBook(ctx context.Context, input *GenreInput) (*BookOutput, error) {
	book, err := s.services.Catalog.RecommendBook(ctx, input.Genre)
	if err != nil {
		return nil, err
	}
	return &BookOutput{Body: mapBookResponse(book)}, nil
}
