package api

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"encoding/json/v2"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookdenapp/bookden-server/internal/catalog"
	"github.com/bookdenapp/bookden-server/internal/http/response"
	"github.com/bookdenapp/bookden-server/internal/query"
	"github.com/bookdenapp/bookden-server/internal/resource"
	"github.com/bookdenapp/bookden-server/internal/service"
	"github.com/bookdenapp/bookden-server/internal/summary"
)

// setupTestServer builds a server over a small in-memory catalog. The
// fixture mixes raw value forms the way real source files do: numeric and
// string ratings, a record with most fields absent, and varied stock tokens.
func setupTestServer(t *testing.T) *Server {
	t.Helper()

	books := []catalog.Book{
		{
			ID:      catalog.NewValue("1"),
			Title:   "Dune",
			Genre:   "Sci-Fi",
			Rating:  catalog.NewValue(4.8),
			Price:   catalog.NewValue(9.99),
			InStock: catalog.NewValue("yes"),
		},
		{
			ID:      catalog.NewValue("2"),
			Title:   "Dune Messiah",
			Genre:   "Sci-Fi",
			Rating:  catalog.NewValue("4.2"),
			Price:   catalog.NewValue("12.50"),
			InStock: catalog.NewValue("no"),
		},
		{
			ID:      catalog.NewValue("3"),
			Title:   "The Hobbit",
			Genre:   "Fantasy",
			Rating:  catalog.NewValue(4.7),
			Price:   catalog.NewValue(14.0),
			InStock: catalog.NewValue("true"),
		},
		{
			ID:    catalog.NewValue("4"),
			Title: "Bare Record",
		},
	}

	engine := query.NewEngine(catalog.New(books))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	services := &Services{
		Instance: service.NewInstanceService("Test Server", engine, logger),
		Catalog:  service.NewCatalogService(engine, summary.NewRenderer(engine), logger),
	}

	return NewServer(services, resource.NewResolver(engine), logger)
}

func TestHealthCheck(t *testing.T) {
	server := setupTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", http.NoBody)
	w := httptest.NewRecorder()

	server.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))

	var result response.Envelope
	err := json.Unmarshal(w.Body.Bytes(), &result)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.NotNil(t, result.Data)
}

func TestResolve_Collection(t *testing.T) {
	server := setupTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/resolve?uri=book://collection", http.NoBody)
	w := httptest.NewRecorder()

	server.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var result response.Envelope
	err := json.Unmarshal(w.Body.Bytes(), &result)
	require.NoError(t, err)

	assert.True(t, result.Success)

	data, ok := result.Data.(map[string]any)
	require.True(t, ok)

	books, ok := data["books"].([]any)
	require.True(t, ok)
	assert.Len(t, books, 4)
}

func TestResolve_Genres(t *testing.T) {
	server := setupTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/resolve?uri=book://collection/genres", http.NoBody)
	w := httptest.NewRecorder()

	server.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var result response.Envelope
	err := json.Unmarshal(w.Body.Bytes(), &result)
	require.NoError(t, err)

	data, ok := result.Data.(map[string]any)
	require.True(t, ok)

	genres, ok := data["genres"].([]any)
	require.True(t, ok)
	assert.Equal(t, []any{"", "Fantasy", "Sci-Fi"}, genres)
}

func TestResolve_MissingURI(t *testing.T) {
	server := setupTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/resolve", http.NoBody)
	w := httptest.NewRecorder()

	server.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var result response.Envelope
	err := json.Unmarshal(w.Body.Bytes(), &result)
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "uri parameter is required")
}

func TestResolve_ForeignScheme(t *testing.T) {
	server := setupTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/resolve?uri=file:///etc/passwd", http.NoBody)
	w := httptest.NewRecorder()

	server.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var result response.Envelope
	err := json.Unmarshal(w.Body.Bytes(), &result)
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "unsupported address scheme")
}

func TestResolve_UnknownIdentifier(t *testing.T) {
	server := setupTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/resolve?uri=book://collection/nope", http.NoBody)
	w := httptest.NewRecorder()

	server.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var result response.Envelope
	err := json.Unmarshal(w.Body.Bytes(), &result)
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "nope")
}

func TestServer_Routes(t *testing.T) {
	server := setupTestServer(t)

	tests := []struct {
		name           string
		path           string
		expectedStatus int
	}{
		{
			name:           "health check",
			path:           "/health",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "instance",
			path:           "/api/v1/instance",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "collection",
			path:           "/api/v1/books",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "titles",
			path:           "/api/v1/books/titles",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "count",
			path:           "/api/v1/books/count",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "random",
			path:           "/api/v1/books/random",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "genres",
			path:           "/api/v1/genres",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "not found",
			path:           "/api/v1/nonexistent",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, http.NoBody)
			w := httptest.NewRecorder()

			server.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
