package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/bookdenapp/bookden-server/internal/errors"
	"github.com/bookdenapp/bookden-server/internal/validation"
)

type testRequest struct {
	Count int    `json:"n" validate:"gte=1"`
	Genre string `json:"genre" validate:"required"`
}

func TestValidator_ValidateSuccess(t *testing.T) {
	v := validation.New()

	err := v.Validate(testRequest{Count: 3, Genre: "Fantasy"})
	assert.NoError(t, err)
}

func TestValidator_ValidateErrors(t *testing.T) {
	v := validation.New()

	tests := []struct {
		name      string
		req       testRequest
		wantField string
	}{
		{
			name:      "count below minimum",
			req:       testRequest{Count: 0, Genre: "Fantasy"},
			wantField: "n",
		},
		{
			name:      "missing required field",
			req:       testRequest{Count: 3, Genre: ""},
			wantField: "genre",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)

			var domainErr *domainerrors.Error
			require.ErrorAs(t, err, &domainErr)

			details, ok := domainErr.Details.(map[string]string)
			require.True(t, ok)
			assert.Contains(t, details, tt.wantField)
		})
	}
}

func TestValidator_JSONFieldNames(t *testing.T) {
	v := validation.New()

	err := v.Validate(testRequest{Count: 1, Genre: ""})
	require.Error(t, err)

	var domainErr *domainerrors.Error
	require.ErrorAs(t, err, &domainErr)

	details, ok := domainErr.Details.(map[string]string)
	require.True(t, ok)

	// Should use JSON tag name "genre", not struct field name "Genre".
	assert.Contains(t, details, "genre")
	assert.NotContains(t, details, "Genre")
}
