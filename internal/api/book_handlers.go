package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/bookdenapp/bookden-server/internal/catalog"
)

func (s *Server) registerBookRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "list_collection",
		Method:      http.MethodGet,
		Path:        "/api/v1/books",
		Summary:     "List the collection",
		Description: "Returns every book record in catalog order",
		Tags:        []string{"Books"},
	}, s.handleListCollection)

	huma.Register(s.api, huma.Operation{
		OperationID: "list_books",
		Method:      http.MethodGet,
		Path:        "/api/v1/books/titles",
		Summary:     "List book titles",
		Description: "Returns the titles of all books",
		Tags:        []string{"Books"},
	}, s.handleListBooks)

	huma.Register(s.api, huma.Operation{
		OperationID: "total_books",
		Method:      http.MethodGet,
		Path:        "/api/v1/books/count",
		Summary:     "Count books",
		Description: "Returns the total number of books",
		Tags:        []string{"Books"},
	}, s.handleTotalBooks)

	huma.Register(s.api, huma.Operation{
		OperationID: "search_books",
		Method:      http.MethodGet,
		Path:        "/api/v1/books/search",
		Summary:     "Search books",
		Description: "Searches books by title keyword",
		Tags:        []string{"Books"},
	}, s.handleSearchBooks)

	huma.Register(s.api, huma.Operation{
		OperationID: "top_books",
		Method:      http.MethodGet,
		Path:        "/api/v1/books/top",
		Summary:     "Top books",
		Description: "Returns the top N books by rating",
		Tags:        []string{"Books"},
	}, s.handleTopBooks)

	huma.Register(s.api, huma.Operation{
		OperationID: "random_book",
		Method:      http.MethodGet,
		Path:        "/api/v1/books/random",
		Summary:     "Random book",
		Description: "Returns a random book from the collection",
		Tags:        []string{"Books"},
	}, s.handleRandomBook)

	huma.Register(s.api, huma.Operation{
		OperationID: "get_book_detail",
		Method:      http.MethodGet,
		Path:        "/api/v1/books/{id}",
		Summary:     "Get book detail",
		Description: "Returns details for a book by ID",
		Tags:        []string{"Books"},
	}, s.handleGetBookDetail)

	huma.Register(s.api, huma.Operation{
		OperationID: "summarize_book",
		Method:      http.MethodGet,
		Path:        "/api/v1/books/{id}/summary",
		Summary:     "Summarize book",
		Description: "Returns a one-sentence summary for a book by ID or title",
		Tags:        []string{"Books"},
	}, s.handleSummarizeBook)
}

// === DTOs ===

// BookResponse mirrors a catalog record. Rating, price, and stock keep
// their raw source form; the query engine never reshapes them.
type BookResponse struct {
	ID      any    `json:"book_id,omitempty" doc:"Opaque book identifier"`
	Title   string `json:"title,omitempty" doc:"Book title"`
	Genre   string `json:"genre,omitempty" doc:"Book genre"`
	Rating  any    `json:"rating,omitempty" doc:"Rating as stored in the source"`
	Price   any    `json:"price,omitempty" doc:"Price as stored in the source"`
	InStock any    `json:"in_stock_availability,omitempty" doc:"Stock token as stored in the source"`
}

func mapBookResponse(b catalog.Book) BookResponse {
	return BookResponse{
		ID:      b.ID.Raw(),
		Title:   b.Title,
		Genre:   b.Genre,
		Rating:  b.Rating.Raw(),
		Price:   b.Price.Raw(),
		InStock: b.InStock.Raw(),
	}
}

func mapBookResponses(books []catalog.Book) []BookResponse {
	resp := make([]BookResponse, len(books))
	for i, b := range books {
		resp[i] = mapBookResponse(b)
	}
	return resp
}

type BooksResponse struct {
	Books []BookResponse `json:"books" doc:"Matching books in catalog order"`
}

type BooksOutput struct {
	Body BooksResponse
}

type BookOutput struct {
	Body BookResponse
}

type ListBooksResponse struct {
	Titles []string `json:"titles" doc:"All book titles in catalog order"`
}

type ListBooksOutput struct {
	Body ListBooksResponse
}

type TotalBooksResponse struct {
	Total int `json:"total" doc:"Number of books in the catalog"`
}

type TotalBooksOutput struct {
	Body TotalBooksResponse
}

type SearchBooksInput struct {
	Query string `query:"query" doc:"A keyword to search within the book title"`
}

type TopBooksInput struct {
	N int `query:"n" json:"n" validate:"gte=1" doc:"Number of books to return, sorted by rating desc"`
}

type GetBookDetailInput struct {
	ID string `path:"id" doc:"Book ID"`
}

type SummarizeBookInput struct {
	ID string `path:"id" doc:"Book ID or title"`
}

type SummaryResponse struct {
	Summary string `json:"summary" doc:"One-sentence book summary"`
}

type SummaryOutput struct {
	Body SummaryResponse
}

// === Handlers ===

func (s *Server) handleListCollection(ctx context.Context, _ *struct{}) (*BooksOutput, error) {
	books := s.services.Catalog.ListAll(ctx)
	return &BooksOutput{Body: BooksResponse{Books: mapBookResponses(books)}}, nil
}

func (s *Server) handleListBooks(ctx context.Context, _ *struct{}) (*ListBooksOutput, error) {
	titles := s.services.Catalog.ListBooks(ctx)
	return &ListBooksOutput{Body: ListBooksResponse{Titles: titles}}, nil
}

func (s *Server) handleTotalBooks(ctx context.Context, _ *struct{}) (*TotalBooksOutput, error) {
	return &TotalBooksOutput{Body: TotalBooksResponse{Total: s.services.Catalog.TotalBooks(ctx)}}, nil
}

func (s *Server) handleSearchBooks(ctx context.Context, input *SearchBooksInput) (*BooksOutput, error) {
	books, err := s.services.Catalog.SearchBooks(ctx, input.Query)
	if err != nil {
		return nil, err
	}
	return &BooksOutput{Body: BooksResponse{Books: mapBookResponses(books)}}, nil
}

func (s *Server) handleTopBooks(ctx context.Context, input *TopBooksInput) (*BooksOutput, error) {
	if err := s.validator.Validate(input); err != nil {
		return nil, err
	}

	books, err := s.services.Catalog.TopBooks(ctx, input.N)
	if err != nil {
		return nil, err
	}
	return &BooksOutput{Body: BooksResponse{Books: mapBookResponses(books)}}, nil
}

func (s *Server) handleRandomBook(ctx context.Context, _ *struct{}) (*BookOutput, error) {
	book, err := s.services.Catalog.RandomBook(ctx)
	if err != nil {
		return nil, err
	}
	return &BookOutput{Body: mapBookResponse(book)}, nil
}

func (s *Server) handleGetBookDetail(ctx context.Context, input *GetBookDetailInput) (*BookOutput, error) {
	book, err := s.services.Catalog.GetBookDetail(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &BookOutput{Body: mapBookResponse(book)}, nil
}

func (s *Server) handleSummarizeBook(ctx context.Context, input *SummarizeBookInput) (*SummaryOutput, error) {
	return &SummaryOutput{Body: SummaryResponse{Summary: s.services.Catalog.SummarizeBook(ctx, input.ID)}}, nil
}
