package catalog

// Catalog is the immutable ordered collection of book records. It is built
// exactly once before any query is served and read concurrently without
// synchronization afterwards, since no writer exists.
type Catalog struct {
	books []Book
}

// New builds a catalog from an already-ordered record slice. The catalog
// takes ownership of the slice; callers must not modify it afterwards.
func New(books []Book) *Catalog {
	return &Catalog{books: books}
}

// Books returns the full record sequence in insertion order. The returned
// slice is shared; treat it as read-only.
func (c *Catalog) Books() []Book {
	return c.books
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	return len(c.books)
}
