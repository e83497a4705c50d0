// Package stream implements the self-expanding, positioned byte buffer that
// both the NBT decoder and encoder read and write through: a single
// abstraction that can wrap a bounded input slice for decoding, or grow a
// scratch buffer forward for encoding, in either big- or little-endian byte
// order.
package stream

import (
	"encoding/binary"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/gonbt/nbt/internal/errs"
	"github.com/gonbt/nbt/internal/utils"
)

// Endian selects the byte order used for all multi-byte reads and writes.
type Endian int

const (
	// BigEndian is the on-disk NBT convention default.
	BigEndian Endian = iota
	// LittleEndian writes/reads genuine little-endian values.
	LittleEndian
)

func (e Endian) order() binary.ByteOrder {
	if e == LittleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// Origin selects the reference point for Seek.
type Origin int

const (
	Begin Origin = iota
	Current
	End
)

// maxCapacity bounds auto-growth so that a doubling request can never wrap
// around into a smaller int on 32-bit platforms.
const maxCapacity = math.MaxInt32

// Stream is a positioned byte buffer supporting typed big/little-endian
// reads and writes, with optional auto-growth on write.
//
// Two construction modes exist: New creates an empty, expandable stream
// used as encoder scratch space; Wrap creates a non-expandable bounded view
// over caller-owned bytes, used to feed bounded-read decoding.
//
// Not safe for concurrent use — a Stream belongs to a single decode or
// encode call.
type Stream struct {
	data       []byte
	origin     int
	length     int
	pos        int
	endian     Endian
	expandable bool
}

// New creates an empty, expandable stream with the given initial capacity
// and endianness.
func New(initialCapacity int, bigEndian bool) *Stream {
	if initialCapacity < 0 {
		initialCapacity = 0
	}
	e := BigEndian
	if !bigEndian {
		e = LittleEndian
	}
	return &Stream{
		data:       make([]byte, initialCapacity),
		origin:     0,
		length:     0,
		pos:        0,
		endian:     e,
		expandable: true,
	}
}

// Wrap creates a non-expandable stream over data[index : index+count].
// Reads past the wrapped region fail with utils-wrapped ErrEndOfStream;
// writes that would extend past count also fail.
func Wrap(data []byte, index, count int, bigEndian bool) (*Stream, error) {
	if index < 0 || count < 0 || index+count > len(data) {
		return nil, fmt.Errorf("stream: wrap range [%d:%d+%d) out of bounds (len %d)", index, index, count, len(data))
	}
	e := BigEndian
	if !bigEndian {
		e = LittleEndian
	}
	return &Stream{
		data:       data[:index+count],
		origin:     index,
		length:     index + count,
		pos:        index,
		endian:     e,
		expandable: false,
	}, nil
}

// Endian reports the stream's configured byte order.
func (s *Stream) Endian() Endian { return s.endian }

// Position returns the current read/write offset, relative to the start of
// the wrapped/owned region (the origin), not to the start of the
// underlying byte slice.
func (s *Stream) Position() int64 { return int64(s.pos - s.origin) }

// SetPosition moves the read/write offset. Negative positions fail.
func (s *Stream) SetPosition(p int64) error {
	if p < 0 {
		return fmt.Errorf("stream: negative position %d", p)
	}
	s.pos = s.origin + int(p)
	return nil
}

// Length returns the logical length of live data in the stream.
func (s *Stream) Length() int64 { return int64(s.length - s.origin) }

// SetLength changes the logical length. Shrinking clamps Position.
func (s *Stream) SetLength(l int64) error {
	if l < 0 {
		return fmt.Errorf("stream: negative length %d", l)
	}
	newLen := s.origin + int(l)
	if newLen > len(s.data) {
		if !s.expandable {
			return utils.WrapError("stream set length", errs.EndOfStream)
		}
		if err := s.grow(newLen); err != nil {
			return err
		}
	}
	s.length = newLen
	if s.pos > s.length {
		s.pos = s.length
	}
	return nil
}

// Capacity returns the allocated capacity of the owned/wrapped region.
func (s *Stream) Capacity() int64 { return int64(len(s.data) - s.origin) }

// Seek repositions the stream relative to origin and returns the new
// position. Seeking before the start of the region fails.
func (s *Stream) Seek(offset int64, origin Origin) (int64, error) {
	var base int
	switch origin {
	case Begin:
		base = s.origin
	case Current:
		base = s.pos
	case End:
		base = s.length
	default:
		return 0, fmt.Errorf("stream: invalid seek origin %d", origin)
	}

	next := base + int(offset)
	if next < s.origin {
		return 0, fmt.Errorf("stream: seek before start of stream (offset %d, origin %d)", offset, origin)
	}
	s.pos = next
	return s.Position(), nil
}

// Bytes returns the live region of the stream ([origin:length)) as a slice.
// For an expandable stream this is the encoder's finished output.
func (s *Stream) Bytes() []byte {
	return s.data[s.origin:s.length]
}

// grow expands capacity to at least `required` bytes, doubling from the
// current capacity (floor 256) and clamping to maxCapacity.
func (s *Stream) grow(required int) error {
	if required <= len(s.data) {
		return nil
	}
	if required > maxCapacity {
		return fmt.Errorf("stream: required capacity %d exceeds maximum %d", required, maxCapacity)
	}

	newCap := len(s.data) * 2
	if newCap < 256 {
		newCap = 256
	}
	if newCap < required {
		newCap = required
	}
	if newCap > maxCapacity {
		newCap = maxCapacity
	}

	grown := make([]byte, newCap)
	copy(grown, s.data[:s.length])
	s.data = grown
	return nil
}

// ensureWritable grows (if expandable) or fails (if not) so that
// [s.pos, s.pos+n) is addressable, zero-filling any gap between the old
// length and the new write position.
func (s *Stream) ensureWritable(n int) error {
	end := s.pos + n
	if end <= len(s.data) {
		if end > s.length {
			// Zero-fill the gap between old length and pos, if any.
			for i := s.length; i < s.pos; i++ {
				s.data[i] = 0
			}
			s.length = end
		}
		return nil
	}

	if !s.expandable {
		return utils.WrapError("stream write", errs.EndOfStream)
	}

	if err := s.grow(end); err != nil {
		return err
	}
	for i := s.length; i < s.pos; i++ {
		s.data[i] = 0
	}
	s.length = end
	return nil
}

// requireReadable fails with ErrEndOfStream unless n bytes remain at pos.
func (s *Stream) requireReadable(n int) error {
	if s.pos+n > s.length {
		return utils.WrapError("stream read", errs.EndOfStream)
	}
	return nil
}

// ReadBytes returns up to n bytes from the current position, truncated to
// whatever remains. Never fails from EOF; callers validate lengths
// themselves (e.g. against a declared array/string length).
func (s *Stream) ReadBytes(n int) []byte {
	if n < 0 {
		n = 0
	}
	avail := s.length - s.pos
	if n > avail {
		n = avail
	}
	out := make([]byte, n)
	copy(out, s.data[s.pos:s.pos+n])
	s.pos += n
	return out
}

// WriteBytes writes raw bytes at the current position, advancing it.
func (s *Stream) WriteBytes(b []byte) error {
	if err := s.ensureWritable(len(b)); err != nil {
		return err
	}
	copy(s.data[s.pos:s.pos+len(b)], b)
	s.pos += len(b)
	return nil
}

func (s *Stream) readFixed(n int) ([]byte, error) {
	if err := s.requireReadable(n); err != nil {
		return nil, err
	}
	buf := utils.GetBuffer(n)
	copy(buf, s.data[s.pos:s.pos+n])
	s.pos += n
	return buf, nil
}

// ReadInt8 reads one signed byte.
func (s *Stream) ReadInt8() (int8, error) {
	b, err := s.readFixed(1)
	if err != nil {
		return 0, err
	}
	v := int8(b[0])
	utils.ReleaseBuffer(b)
	return v, nil
}

// ReadInt16 reads a signed 16-bit integer in the stream's endianness.
func (s *Stream) ReadInt16() (int16, error) {
	b, err := s.readFixed(2)
	if err != nil {
		return 0, err
	}
	v := int16(s.endian.order().Uint16(b))
	utils.ReleaseBuffer(b)
	return v, nil
}

// ReadInt32 reads a signed 32-bit integer in the stream's endianness.
func (s *Stream) ReadInt32() (int32, error) {
	b, err := s.readFixed(4)
	if err != nil {
		return 0, err
	}
	v := int32(s.endian.order().Uint32(b))
	utils.ReleaseBuffer(b)
	return v, nil
}

// ReadInt64 reads a signed 64-bit integer in the stream's endianness.
func (s *Stream) ReadInt64() (int64, error) {
	b, err := s.readFixed(8)
	if err != nil {
		return 0, err
	}
	v := int64(s.endian.order().Uint64(b))
	utils.ReleaseBuffer(b)
	return v, nil
}

// ReadFloat32 reads an IEEE-754 single-precision float.
func (s *Stream) ReadFloat32() (float32, error) {
	bits32, err := s.ReadInt32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(uint32(bits32)), nil
}

// ReadFloat64 reads an IEEE-754 double-precision float.
func (s *Stream) ReadFloat64() (float64, error) {
	bits64, err := s.ReadInt64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(uint64(bits64)), nil
}

// ReadString reads a uint16-length-prefixed UTF-8 string.
func (s *Stream) ReadString() (string, error) {
	n, err := s.readUint16Length()
	if err != nil {
		return "", err
	}
	if err := s.requireReadable(n); err != nil {
		return "", err
	}
	raw := s.ReadBytes(n)
	if !utf8.Valid(raw) {
		return "", utils.WrapError("stream read string", errs.FormatError)
	}
	return string(raw), nil
}

func (s *Stream) readUint16Length() (int, error) {
	b, err := s.readFixed(2)
	if err != nil {
		return 0, err
	}
	n := int(s.endian.order().Uint16(b))
	utils.ReleaseBuffer(b)
	return n, nil
}

// WriteInt8 writes one signed byte.
func (s *Stream) WriteInt8(v int8) error {
	return s.WriteBytes([]byte{byte(v)})
}

// WriteInt16 writes a signed 16-bit integer in the stream's endianness.
func (s *Stream) WriteInt16(v int16) error {
	buf := utils.GetBuffer(2)
	defer utils.ReleaseBuffer(buf)
	s.endian.order().PutUint16(buf, uint16(v))
	return s.WriteBytes(buf)
}

// WriteInt32 writes a signed 32-bit integer in the stream's endianness.
func (s *Stream) WriteInt32(v int32) error {
	buf := utils.GetBuffer(4)
	defer utils.ReleaseBuffer(buf)
	s.endian.order().PutUint32(buf, uint32(v))
	return s.WriteBytes(buf)
}

// WriteInt64 writes a signed 64-bit integer in the stream's endianness,
// genuinely little-endian when the stream is configured little-endian.
func (s *Stream) WriteInt64(v int64) error {
	buf := utils.GetBuffer(8)
	defer utils.ReleaseBuffer(buf)
	s.endian.order().PutUint64(buf, uint64(v))
	return s.WriteBytes(buf)
}

// WriteFloat32 writes an IEEE-754 single-precision float.
func (s *Stream) WriteFloat32(v float32) error {
	return s.WriteInt32(int32(math.Float32bits(v)))
}

// WriteFloat64 writes an IEEE-754 double-precision float.
func (s *Stream) WriteFloat64(v float64) error {
	return s.WriteInt64(int64(math.Float64bits(v)))
}

// WriteString writes a uint16-length-prefixed UTF-8 string.
func (s *Stream) WriteString(v string) error {
	if len(v) > math.MaxUint16 {
		return fmt.Errorf("stream: string length %d exceeds uint16 prefix range", len(v))
	}
	buf := utils.GetBuffer(2)
	s.endian.order().PutUint16(buf, uint16(len(v)))
	if err := s.WriteBytes(buf); err != nil {
		utils.ReleaseBuffer(buf)
		return err
	}
	utils.ReleaseBuffer(buf)
	return s.WriteBytes([]byte(v))
}
