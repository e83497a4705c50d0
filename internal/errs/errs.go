// Package errs defines the sentinel error kinds shared by every layer of
// the nbt library (stream, compression, codec, tag tree), so that a single
// set of errors.Is-checkable values is reused everywhere instead of each
// package inventing its own. The root nbt package re-exports these under
// its public names (ErrEndOfStream, ErrFormatError, ErrRangeError,
// ErrInvalidReaderState).
package errs

import "errors"

var (
	// EndOfStream: attempted to read past the logical end of the stream, or
	// to write past a non-expandable stream's capacity.
	EndOfStream = errors.New("end of stream")

	// FormatError: a structural or semantic violation of the NBT
	// invariants (negative length, unknown tag code, duplicate name,
	// unnamed tag in a compound, named tag in a list, list type mismatch,
	// unset list element type at encode, undefined name at encode,
	// non-Compound root on decode, unresolved compression, ...).
	FormatError = errors.New("nbt format error")

	// RangeError: a numeric value out of its declared width, or an invalid
	// enum code supplied by the caller.
	RangeError = errors.New("range error")

	// InvalidReaderState: codec misuse, e.g. operating on an exhausted or
	// already-closed reader. Callers must surface, not recover from, this.
	InvalidReaderState = errors.New("invalid reader state")
)
