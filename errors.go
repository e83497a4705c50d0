package nbt

import "github.com/gonbt/nbt/internal/errs"

// Sentinel errors callers can match against with errors.Is. Errors from the
// tag tree, the codec and stream bounds wrap one of these via
// internal/utils.WrapError. Filesystem and gzip/zlib failures, and a few
// stream argument checks (Wrap range, Seek, SetPosition, an over-long
// string on write), are returned with their own cause and match none of
// them.
var (
	// ErrEndOfStream: attempted to read past the logical end of a buffer,
	// or to write past a non-expandable stream's capacity.
	ErrEndOfStream = errs.EndOfStream

	// ErrFormatError: a structural or semantic violation of the tag-tree
	// invariants — negative or oversized length prefix, unknown tag code,
	// duplicate name in a Compound, unnamed tag inside a Compound, named
	// tag inside a List, List element-type mismatch, an unresolved List
	// element type at encode time, a non-Compound root, or unrecognized
	// compression framing.
	ErrFormatError = errs.FormatError

	// ErrRangeError: a numeric value outside its declared width, an
	// assigned string exceeding the 65535-byte wire limit, or an invalid
	// enum value supplied by the caller.
	ErrRangeError = errs.RangeError

	// ErrInvalidReaderState: the stream was used after being exhausted or
	// otherwise left in a state that cannot be recovered from.
	ErrInvalidReaderState = errs.InvalidReaderState
)
