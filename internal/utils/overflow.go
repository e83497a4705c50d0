package utils

import (
	"fmt"
	"math"
)

// CheckMultiplyOverflow checks if multiplying two uint64 values would overflow.
// Returns an error if overflow would occur.
func CheckMultiplyOverflow(a, b uint64) error {
	if a == 0 || b == 0 {
		return nil // No overflow when either is zero
	}

	if a > math.MaxUint64/b {
		return fmt.Errorf("multiplication overflow: %d * %d exceeds uint64 max", a, b)
	}

	return nil
}

// SafeMultiply multiplies two uint64 values and returns the result if no overflow occurs.
// Returns 0 and an error if overflow would occur.
func SafeMultiply(a, b uint64) (uint64, error) {
	if err := CheckMultiplyOverflow(a, b); err != nil {
		return 0, err
	}
	return a * b, nil
}

// ValidateBufferSize validates that a buffer size is within reasonable limits.
// maxSize parameter allows different limits for different use cases.
func ValidateBufferSize(size, maxSize uint64, description string) error {
	if size > maxSize {
		return fmt.Errorf("%s: size %d exceeds maximum %d", description, size, maxSize)
	}

	return nil
}

// Length ceilings for NBT arrays, strings, and lists. The array and list
// ceilings are applied while decoding off the wire: a negative length
// already fails before they are consulted, and they guard against a
// huge-but-positive int32 length forcing an oversized allocation before the
// rest of the payload has even been read.
const (
	// MaxArrayElements limits ByteArray/IntArray/LongArray element counts.
	MaxArrayElements = 256 * 1024 * 1024 // 256M elements

	// MaxStringBytes limits a single String tag's UTF-8 byte length. The
	// wire format already caps this at 65535 via its uint16 length prefix;
	// StringTag construction and SetValue reject longer values with it.
	MaxStringBytes = 65535

	// MaxListElements limits a List tag's declared element count.
	MaxListElements = 256 * 1024 * 1024 // 256M elements

	// MaxArrayPayloadBytes limits the total byte size of a decoded
	// ByteArray/IntArray/LongArray (element count * element width), catching
	// a declared count that passes MaxArrayElements alone but still forces
	// an oversized allocation once width is taken into account (a LongArray
	// at the full MaxArrayElements count would otherwise demand 2GiB).
	MaxArrayPayloadBytes = 1024 * 1024 * 1024 // 1GiB
)

// CalculatePayloadSize safely computes count*elementSize for an
// array/list payload, returning an error instead of silently wrapping on
// overflow. Callers combine this with ValidateBufferSize against the
// appropriate Max* ceiling.
func CalculatePayloadSize(count, elementSize uint64) (uint64, error) {
	total, err := SafeMultiply(count, elementSize)
	if err != nil {
		return 0, fmt.Errorf("payload size overflow: %w", err)
	}
	return total, nil
}
