package nbt

import (
	"fmt"
	"math"

	"github.com/gonbt/nbt/internal/errs"
	"github.com/gonbt/nbt/internal/utils"
)

// ByteTag holds a signed 8-bit integer.
type ByteTag struct {
	baseTag
	value int8
}

// NewByte creates a named ByteTag.
func NewByte(name string, value int8) *ByteTag {
	return &ByteTag{baseTag: baseTag{name: name}, value: value}
}

func (t *ByteTag) Type() TagType { return TagByte }

func (t *ByteTag) Value() int8 { return t.value }

// SetValue updates the tag's value.
func (t *ByteTag) SetValue(v int8) { t.value = v }

func (t *ByteTag) SetName(name string) error { return setNameChecked(t, &t.baseTag, name) }

func (t *ByteTag) Path() string { return buildPath(t) }

func (t *ByteTag) Clone() Tag {
	return &ByteTag{baseTag: baseTag{name: t.name}, value: t.value}
}

func (t *ByteTag) prettyLines(indent string, depth int) []string {
	return []string{prettyScalarLine(indent, depth, "Byte", t.name, fmt.Sprintf("%d", t.value))}
}

// ShortTag holds a signed 16-bit integer.
type ShortTag struct {
	baseTag
	value int16
}

func NewShort(name string, value int16) *ShortTag {
	return &ShortTag{baseTag: baseTag{name: name}, value: value}
}

func (t *ShortTag) Type() TagType { return TagShort }

func (t *ShortTag) Value() int16 { return t.value }

func (t *ShortTag) SetValue(v int16) { t.value = v }

func (t *ShortTag) SetName(name string) error { return setNameChecked(t, &t.baseTag, name) }

func (t *ShortTag) Path() string { return buildPath(t) }

func (t *ShortTag) Clone() Tag {
	return &ShortTag{baseTag: baseTag{name: t.name}, value: t.value}
}

func (t *ShortTag) prettyLines(indent string, depth int) []string {
	return []string{prettyScalarLine(indent, depth, "Short", t.name, fmt.Sprintf("%d", t.value))}
}

// IntTag holds a signed 32-bit integer.
type IntTag struct {
	baseTag
	value int32
}

func NewInt(name string, value int32) *IntTag {
	return &IntTag{baseTag: baseTag{name: name}, value: value}
}

func (t *IntTag) Type() TagType { return TagInt }

func (t *IntTag) Value() int32 { return t.value }

func (t *IntTag) SetValue(v int32) { t.value = v }

func (t *IntTag) SetName(name string) error { return setNameChecked(t, &t.baseTag, name) }

func (t *IntTag) Path() string { return buildPath(t) }

func (t *IntTag) Clone() Tag {
	return &IntTag{baseTag: baseTag{name: t.name}, value: t.value}
}

func (t *IntTag) prettyLines(indent string, depth int) []string {
	return []string{prettyScalarLine(indent, depth, "Int", t.name, fmt.Sprintf("%d", t.value))}
}

// LongTag holds a signed 64-bit integer.
type LongTag struct {
	baseTag
	value int64
}

func NewLong(name string, value int64) *LongTag {
	return &LongTag{baseTag: baseTag{name: name}, value: value}
}

func (t *LongTag) Type() TagType { return TagLong }

func (t *LongTag) Value() int64 { return t.value }

func (t *LongTag) SetValue(v int64) { t.value = v }

func (t *LongTag) SetName(name string) error { return setNameChecked(t, &t.baseTag, name) }

func (t *LongTag) Path() string { return buildPath(t) }

func (t *LongTag) Clone() Tag {
	return &LongTag{baseTag: baseTag{name: t.name}, value: t.value}
}

func (t *LongTag) prettyLines(indent string, depth int) []string {
	return []string{prettyScalarLine(indent, depth, "Long", t.name, fmt.Sprintf("%d", t.value))}
}

// NewIntFromInt64 constructs an IntTag from an int64, returning
// ErrRangeError if v does not fit in a signed 32-bit integer. Useful for
// callers building trees from untyped numeric sources (JSON, CLI flags).
func NewIntFromInt64(name string, v int64) (*IntTag, error) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return nil, utils.WrapError(fmt.Sprintf("int tag %q: value %d out of range", name, v), errs.RangeError)
	}
	return NewInt(name, int32(v)), nil
}
