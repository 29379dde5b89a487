package api

import (
	"net/http"
	"testing"

	"encoding/json/v2"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListGenres(t *testing.T) {
	api := setupTestAPI(t)

	resp := api.Get("/api/v1/genres")

	assert.Equal(t, http.StatusOK, resp.Code)

	var body GenresResponse
	err := json.Unmarshal(resp.Body.Bytes(), &body)
	require.NoError(t, err)

	// The bare fixture record has no genre; its empty value is still a
	// distinct genre, matching the raw-value dedupe.
	assert.Equal(t, []string{"", "Fantasy", "Sci-Fi"}, body.Genres)
}

func TestListGenreBooks(t *testing.T) {
	api := setupTestAPI(t)

	resp := api.Get("/api/v1/genres/sci-fi/books")

	assert.Equal(t, http.StatusOK, resp.Code)

	var body BooksResponse
	err := json.Unmarshal(resp.Body.Bytes(), &body)
	require.NoError(t, err)

	require.Len(t, body.Books, 2)
	assert.Equal(t, "Dune", body.Books[0].Title)
	assert.Equal(t, "Dune Messiah", body.Books[1].Title)
}

func TestListGenreBooks_Unknown(t *testing.T) {
	api := setupTestAPI(t)

	resp := api.Get("/api/v1/genres/horror/books")

	assert.Equal(t, http.StatusNotFound, resp.Code)

	var apiErr APIError
	err := json.Unmarshal(resp.Body.Bytes(), &apiErr)
	require.NoError(t, err)

	assert.Equal(t, "NOT_FOUND", apiErr.Code)
	assert.Contains(t, apiErr.Message, "horror")
}

func TestRecommendBook(t *testing.T) {
	api := setupTestAPI(t)

	for range 5 {
		resp := api.Get("/api/v1/genres/fantasy/recommendation")

		assert.Equal(t, http.StatusOK, resp.Code)

		var body BookResponse
		err := json.Unmarshal(resp.Body.Bytes(), &body)
		require.NoError(t, err)

		assert.Equal(t, "The Hobbit", body.Title)
	}
}

func TestRecommendBook_UnknownGenre(t *testing.T) {
	api := setupTestAPI(t)

	resp := api.Get("/api/v1/genres/horror/recommendation")

	assert.Equal(t, http.StatusNotFound, resp.Code)

	var apiErr APIError
	err := json.Unmarshal(resp.Body.Bytes(), &apiErr)
	require.NoError(t, err)

	assert.Equal(t, "NOT_FOUND", apiErr.Code)
}
