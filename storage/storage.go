package storage

import "github.com/openokr/okr/okr"

// Meta identifies a stored OKR record without its payload.
type Meta struct {
	Id       int
	Sentence string
}

// OkrReader defines read operations for OKR storage
type OkrReader interface {
	// List returns the metadata of stored records, ordered by id.
	List() ([]Meta, error)

	// Read returns a record by id.
	Read(id int) (okr.OKR, error)

	// Sentences returns stored sentences containing the pattern,
	// all of them when the pattern is empty.
	Sentences(pattern string) ([]string, error)
}

// OkrWriter defines write operations for OKR storage
type OkrWriter interface {
	// Write persists a record and returns its id.
	Write(o okr.OKR) (int, error)
}

// OkrRepository combines read and write operations
type OkrRepository interface {
	OkrReader
	OkrWriter
}
