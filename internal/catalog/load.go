package catalog

import (
	"fmt"
	"os"

	"encoding/json/v2"
)

// LoadError reports a catalog source that could not be read or parsed.
// It is fatal at startup and never occurs during query serving.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load catalog %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// document is the expected shape of the catalog source.
type document struct {
	Books []Book `json:"books"`
}

// Load reads the catalog from a JSON document of the form
// {"books": [...]}. A document without a "books" key yields an empty
// catalog; an absent, unreadable, or malformed file yields a LoadError.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path) //#nosec G304 -- catalog path comes from config
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	var doc document
	if err := json.UnmarshalRead(f, &doc); err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	return New(doc.Books), nil
}
