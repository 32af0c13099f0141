package refgenome

import (
	"errors"
	"fmt"
)

var (
	// ErrNoIndex is returned when a FASTA file has no ".fai" index next to it
	ErrNoIndex = errors.New("missing FASTA index (.fai)")

	// ErrEmptyDictionary is returned when a genome's dictionary has no contigs
	ErrEmptyDictionary = errors.New("sequence dictionary has no contigs")

	// ErrClosed is returned on reads against a closed genome
	ErrClosed = errors.New("genome is closed")
)

// OutOfRangeError is returned when a requested offset falls outside a
// contig. It is raised before any backend read is attempted.
type OutOfRangeError struct {
	// Contig is the name of the contig the offset was requested on
	Contig string

	// Offset is the rejected 0-based offset
	Offset int

	// Length is the contig's total length
	Length int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("offset %d out of range [0,%d) on %s", e.Offset, e.Length, e.Contig)
}

// UnavailableError wraps an I/O or transport failure from a backend:
// a refused connection, a timeout, a non-200 status, or a response
// whose syntax could not be decoded. It is never retried here.
type UnavailableError struct {
	URL string
	Err error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("backend unavailable at %s: %v", e.URL, e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// ProtocolError is returned when a DAS /dna response parsed but did not
// have the expected structure (no DNA element, an unexpected node inside
// it, or a stream that ended before the element closed).
type ProtocolError struct {
	URL    string
	Reason string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("%s: %s", e.URL, e.Reason)
}

// MetadataError is returned when a DAS entry-point listing parsed but a
// SEGMENT element was missing a required attribute.
type MetadataError struct {
	URL    string
	Reason string
}

func (e *MetadataError) Error() string {
	return fmt.Sprintf("%s: %s", e.URL, e.Reason)
}
