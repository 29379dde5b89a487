package catalog

import (
	"testing"

	"encoding/json/v2"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueString(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want string
	}{
		{"absent", nil, ""},
		{"string", "4.5", "4.5"},
		{"whole number", 10.0, "10"},
		{"fraction", 4.8, "4.8"},
		{"bool", true, "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewValue(tt.raw).String())
		})
	}
}

func TestEffectiveRating(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want float64
	}{
		{"number", 4.8, 4.8},
		{"numeric string", "4.7", 4.7},
		{"padded numeric string", " 3.5 ", 3.5},
		{"garbage string", "not rated", 0},
		{"absent", nil, 0},
		{"bool", true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Book{Rating: NewValue(tt.raw)}
			assert.InDelta(t, tt.want, b.EffectiveRating(), 1e-9)
		})
	}
}

func TestAvailable(t *testing.T) {
	truthy := []any{"true", "TRUE", "1", "yes", "Yes", "y", "Y", true, 1.0}
	for _, raw := range truthy {
		b := Book{InStock: NewValue(raw)}
		assert.True(t, b.Available(), "token %v should be in stock", raw)
	}

	falsy := []any{nil, "no", "false", "0", "out of stock", false}
	for _, raw := range falsy {
		b := Book{InStock: NewValue(raw)}
		assert.False(t, b.Available(), "token %v should be out of stock", raw)
	}
}

func TestBookUnmarshalKeepsRawForms(t *testing.T) {
	data := []byte(`{
		"book_id": 7,
		"title": "Dune",
		"genre": "Sci-Fi",
		"rating": "4.5",
		"price": 12.99,
		"in_stock_availability": "yes"
	}`)

	var b Book
	require.NoError(t, json.Unmarshal(data, &b))

	assert.Equal(t, "7", b.ID.String())
	assert.Equal(t, "Dune", b.Title)
	assert.InDelta(t, 4.5, b.EffectiveRating(), 1e-9)
	assert.Equal(t, 12.99, b.Price.Raw())
	assert.True(t, b.Available())
}

func TestBookMarshalOmitsAbsentFields(t *testing.T) {
	b := Book{Title: "Dune", Genre: "Sci-Fi"}

	out, err := json.Marshal(b)
	require.NoError(t, err)

	assert.JSONEq(t, `{"title":"Dune","genre":"Sci-Fi"}`, string(out))
}
