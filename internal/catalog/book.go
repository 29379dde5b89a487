// Package catalog holds the in-memory book catalog: the record type, its
// coercion rules, and the one-time JSON loader.
package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"encoding/json/v2"
)

// truthyTokens are the spellings of in_stock_availability that count as
// "in stock". Membership is tested case-insensitively.
var truthyTokens = map[string]bool{
	"true": true,
	"1":    true,
	"yes":  true,
	"y":    true,
}

// Value is a loosely-typed scalar as it appears in the source document.
// Catalog sources are hand-maintained JSON, so a rating may arrive as a
// number, a quoted number, garbage text, or not at all. Value preserves the
// raw form for passthrough and exposes coercions where the design calls for
// them.
type Value struct {
	raw any
}

// NewValue wraps a raw scalar, primarily for tests and fixtures.
func NewValue(raw any) Value {
	return Value{raw: raw}
}

// Raw exposes the underlying scalar for passthrough serialization.
func (v Value) Raw() any {
	return v.raw
}

// IsZero reports whether the field was absent from the source document.
// Satisfies the omitzero contract so absent fields stay absent on output.
func (v Value) IsZero() bool {
	return v.raw == nil
}

// String renders the scalar as text. Numbers drop their float artifacts
// (4.5, not 4.500000), absent values render as the empty string.
func (v Value) String() string {
	switch raw := v.raw.(type) {
	case nil:
		return ""
	case string:
		return raw
	case float64:
		return strconv.FormatFloat(raw, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(raw)
	default:
		return fmt.Sprint(raw)
	}
}

// Float parses the scalar as a float64. Returns ok=false when the value is
// absent or not numeric.
func (v Value) Float() (f float64, ok bool) {
	switch raw := v.raw.(type) {
	case float64:
		return raw, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// UnmarshalJSON accepts any JSON value and keeps it as-is.
func (v *Value) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &v.raw)
}

// MarshalJSON writes the raw value back out unchanged.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.raw)
}

// Book is a single catalog record. book_id is opaque and not required to be
// unique; lookups return every record that matches.
type Book struct {
	ID      Value  `json:"book_id,omitzero"`
	Title   string `json:"title,omitzero"`
	Genre   string `json:"genre,omitzero"`
	Rating  Value  `json:"rating,omitzero"`
	Price   Value  `json:"price,omitzero"`
	InStock Value  `json:"in_stock_availability,omitzero"`
}

// EffectiveRating is the numeric rating used for ranking. Missing or
// unparsable ratings degrade to 0.0; the record still participates.
func (b Book) EffectiveRating() float64 {
	f, ok := b.Rating.Float()
	if !ok {
		return 0
	}
	return f
}

// Available interprets the loose in_stock_availability token as a boolean.
// Only the summary renderer consumes this; queries never look at stock.
func (b Book) Available() bool {
	return truthyTokens[strings.ToLower(b.InStock.String())]
}
