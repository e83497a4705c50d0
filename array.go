package nbt

import "fmt"

// ByteArrayTag holds a length-prefixed array of signed bytes.
type ByteArrayTag struct {
	baseTag
	value []int8
}

func NewByteArray(name string, value []int8) *ByteArrayTag {
	cp := make([]int8, len(value))
	copy(cp, value)
	return &ByteArrayTag{baseTag: baseTag{name: name}, value: cp}
}

func (t *ByteArrayTag) Type() TagType { return TagByteArray }

// Value returns the array contents. The returned slice is a live view;
// callers that need isolation should copy it themselves.
func (t *ByteArrayTag) Value() []int8 { return t.value }

func (t *ByteArrayTag) SetValue(v []int8) {
	cp := make([]int8, len(v))
	copy(cp, v)
	t.value = cp
}

func (t *ByteArrayTag) Len() int { return len(t.value) }

func (t *ByteArrayTag) SetName(name string) error { return setNameChecked(t, &t.baseTag, name) }

func (t *ByteArrayTag) Path() string { return buildPath(t) }

func (t *ByteArrayTag) Clone() Tag {
	cp := make([]int8, len(t.value))
	copy(cp, t.value)
	return &ByteArrayTag{baseTag: baseTag{name: t.name}, value: cp}
}

func (t *ByteArrayTag) prettyLines(indent string, depth int) []string {
	return []string{prettyScalarLine(indent, depth, "ByteArray", t.name, fmt.Sprintf("[%d bytes]", len(t.value)))}
}

// IntArrayTag holds a length-prefixed array of signed 32-bit integers.
type IntArrayTag struct {
	baseTag
	value []int32
}

func NewIntArray(name string, value []int32) *IntArrayTag {
	cp := make([]int32, len(value))
	copy(cp, value)
	return &IntArrayTag{baseTag: baseTag{name: name}, value: cp}
}

func (t *IntArrayTag) Type() TagType { return TagIntArray }

func (t *IntArrayTag) Value() []int32 { return t.value }

func (t *IntArrayTag) SetValue(v []int32) {
	cp := make([]int32, len(v))
	copy(cp, v)
	t.value = cp
}

func (t *IntArrayTag) Len() int { return len(t.value) }

func (t *IntArrayTag) SetName(name string) error { return setNameChecked(t, &t.baseTag, name) }

func (t *IntArrayTag) Path() string { return buildPath(t) }

func (t *IntArrayTag) Clone() Tag {
	cp := make([]int32, len(t.value))
	copy(cp, t.value)
	return &IntArrayTag{baseTag: baseTag{name: t.name}, value: cp}
}

func (t *IntArrayTag) prettyLines(indent string, depth int) []string {
	return []string{prettyScalarLine(indent, depth, "IntArray", t.name, fmt.Sprintf("[%d ints]", len(t.value)))}
}

// LongArrayTag holds a length-prefixed array of signed 64-bit integers.
type LongArrayTag struct {
	baseTag
	value []int64
}

func NewLongArray(name string, value []int64) *LongArrayTag {
	cp := make([]int64, len(value))
	copy(cp, value)
	return &LongArrayTag{baseTag: baseTag{name: name}, value: cp}
}

func (t *LongArrayTag) Type() TagType { return TagLongArray }

func (t *LongArrayTag) Value() []int64 { return t.value }

func (t *LongArrayTag) SetValue(v []int64) {
	cp := make([]int64, len(v))
	copy(cp, v)
	t.value = cp
}

func (t *LongArrayTag) Len() int { return len(t.value) }

func (t *LongArrayTag) SetName(name string) error { return setNameChecked(t, &t.baseTag, name) }

func (t *LongArrayTag) Path() string { return buildPath(t) }

func (t *LongArrayTag) Clone() Tag {
	cp := make([]int64, len(t.value))
	copy(cp, t.value)
	return &LongArrayTag{baseTag: baseTag{name: t.name}, value: cp}
}

func (t *LongArrayTag) prettyLines(indent string, depth int) []string {
	return []string{prettyScalarLine(indent, depth, "LongArray", t.name, fmt.Sprintf("[%d longs]", len(t.value)))}
}
